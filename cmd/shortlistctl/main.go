package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"github.com/MikeSquared-Agency/Shortlist/internal/config"
	"github.com/MikeSquared-Agency/Shortlist/internal/report"
	"github.com/MikeSquared-Agency/Shortlist/internal/rubric"
	"github.com/MikeSquared-Agency/Shortlist/internal/store"
)

const usage = `usage: shortlistctl [-config path] <command>

commands:
  rank          list candidates by total score
  rubric        show categories and their weights
  explain <id>  show how a candidate's score is built
`

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	_ = godotenv.Load()

	if err := run(context.Background(), *configPath, flag.Args(), os.Stdout); err != nil {
		color.Red("error: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errors.New("no command given, see -h")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	// Keep the tables clean; only warnings reach stderr.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	backend, err := store.OpenBackend(ctx, store.Driver(cfg.Storage.Driver), cfg.Storage.DSN)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	st := store.NewCollectionStore(backend, logger)
	defer st.Close()

	svc := rubric.NewService(st, cfg.Scoring.DefaultRating, logger)

	switch args[0] {
	case "rank":
		cmp, err := svc.Compare(ctx)
		if err != nil {
			return err
		}
		report.RenderRanking(out, cmp)
	case "rubric":
		cats, err := svc.ListCategories(ctx)
		if err != nil {
			return err
		}
		report.RenderRubric(out, cats)
	case "explain":
		if len(args) < 2 {
			return errors.New("explain needs a candidate id")
		}
		id, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid candidate id %q", args[1])
		}
		b, err := svc.Explain(ctx, id)
		if err != nil {
			return err
		}
		report.RenderBreakdown(out, b)
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
	return nil
}

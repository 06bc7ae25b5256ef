// Package report renders rankings, the rubric and single-candidate
// breakdowns as terminal tables.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/MikeSquared-Agency/Shortlist/internal/scoring"
	"github.com/MikeSquared-Agency/Shortlist/internal/store"
)

var (
	heading = color.New(color.FgYellow, color.Bold)
	warning = color.New(color.FgRed)
)

func score(v float64) string   { return fmt.Sprintf("%.1f", v) }
func percent(v float64) string { return fmt.Sprintf("%.1f%%", v) }

// RenderRanking prints every candidate in rank order.
func RenderRanking(w io.Writer, cmp scoring.Comparison) {
	heading.Fprintln(w, "\nRanking")
	if len(cmp.Candidates) == 0 {
		fmt.Fprintln(w, "No candidates yet.")
		return
	}

	// Every breakdown lists the main categories in the same order.
	header := []string{"Rank", "ID", "Candidate", "Score"}
	for _, c := range cmp.Candidates[0].Categories {
		header = append(header, c.Name)
	}
	header = append(header, "Pareto")

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	for _, b := range cmp.Candidates {
		row := []string{
			fmt.Sprintf("%d", b.Rank),
			fmt.Sprintf("%d", b.CandidateID),
			b.CandidateName,
			score(b.TotalScore),
		}
		for _, c := range b.Categories {
			row = append(row, score(c.Score))
		}
		pareto := ""
		if b.ParetoOptimal {
			pareto = "yes"
		}
		table.Append(append(row, pareto))
	}
	table.Render()
	renderOrphans(w, cmp.Orphans)
}

// RenderRubric prints main categories with their derived weights, each
// followed by its subcategories.
func RenderRubric(w io.Writer, categories []store.Category) {
	h := scoring.NewHierarchy(categories)

	heading.Fprintln(w, "\nRubric")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Category", "Weight", "Share"})
	table.SetAutoWrapText(false)
	for _, m := range h.Mains() {
		table.Append([]string{
			fmt.Sprintf("%d", m.ID),
			m.Name,
			score(h.EffectiveWeight(m.ID)),
			percent(h.NormalizedWeight(m.ID)),
		})
		subs := h.Subcategories(m.ID)
		for _, s := range subs {
			table.Append([]string{
				fmt.Sprintf("%d", s.ID),
				"  " + s.Name,
				score(s.WeightOrZero()),
				"",
			})
		}
	}
	table.Render()
	renderOrphans(w, h.Orphans())
}

// RenderBreakdown prints how one candidate's total score is assembled.
func RenderBreakdown(w io.Writer, b scoring.Breakdown) {
	heading.Fprintf(w, "\n%s (#%d)\n", b.CandidateName, b.Rank)
	fmt.Fprintf(w, "Total score: %s\n", score(b.TotalScore))

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Category", "Rating", "Weight", "Score", "Contribution"})
	table.SetAutoWrapText(false)
	for _, c := range b.Categories {
		table.Append([]string{c.Name, "", percent(c.NormalizedWeight), score(c.Score), score(c.Contribution)})
		for _, s := range c.Subcategories {
			rating := score(s.Rating)
			if !s.Rated {
				rating = "-"
			}
			table.Append([]string{"  " + s.Name, rating, percent(s.NormalizedWeight), "", ""})
		}
	}
	table.Render()
}

func renderOrphans(w io.Writer, orphans []store.Category) {
	if len(orphans) == 0 {
		return
	}
	names := make([]string, 0, len(orphans))
	for _, o := range orphans {
		names = append(names, fmt.Sprintf("%s (#%d)", o.Name, o.ID))
	}
	warning.Fprintf(w, "Not scored, parent missing: %s\n", strings.Join(names, ", "))
}

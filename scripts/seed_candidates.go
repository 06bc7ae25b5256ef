// seed_candidates.go: standalone script to parse a candidate list and create
// each entry via the Shortlist API.
//
// One candidate per line, ratings keyed by subcategory id:
//
//	Ada | 7=8, 8=6.5, 9=10
//	Bob
//
// Blank lines and lines starting with # are ignored.
//
// Usage:
//
//	go run scripts/seed_candidates.go -file candidates.txt -api http://localhost:8700
package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
)

type candidateInput struct {
	Name    string          `json:"name"`
	Ratings map[int]float64 `json:"ratings,omitempty"`
}

func main() {
	filePath := flag.String("file", "candidates.txt", "path to candidate list")
	apiURL := flag.String("api", "http://localhost:8700", "Shortlist API base URL")
	dryRun := flag.Bool("dry-run", false, "print candidates without posting")
	flag.Parse()

	f, err := os.Open(*filePath)
	if err != nil {
		log.Fatalf("open %s: %v", *filePath, err)
	}
	defer f.Close()

	var items []candidateInput
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		line = strings.TrimPrefix(line, "- ")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		item, err := parseLine(line)
		if err != nil {
			log.Printf("line %d: %v", lineNo, err)
			continue
		}
		items = append(items, item)
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("scan %s: %v", *filePath, err)
	}

	log.Printf("parsed %d candidates from %s", len(items), *filePath)

	if *dryRun {
		for i, item := range items {
			fmt.Printf("[%d] %s (%d ratings)\n", i+1, item.Name, len(item.Ratings))
		}
		return
	}

	client := &http.Client{}
	created, skipped := 0, 0
	for _, item := range items {
		body, _ := json.Marshal(item)
		req, err := http.NewRequest("POST", *apiURL+"/api/v1/candidates", bytes.NewReader(body))
		if err != nil {
			log.Printf("skip %q: %v", item.Name, err)
			skipped++
			continue
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			log.Printf("skip %q: %v", item.Name, err)
			skipped++
			continue
		}
		resp.Body.Close()

		if resp.StatusCode == http.StatusCreated {
			created++
		} else {
			log.Printf("skip %q: status %d", item.Name, resp.StatusCode)
			skipped++
		}
	}

	log.Printf("done: %d created, %d skipped", created, skipped)
}

func parseLine(line string) (candidateInput, error) {
	name, ratings, _ := strings.Cut(line, "|")
	item := candidateInput{Name: strings.TrimSpace(name)}
	if item.Name == "" {
		return item, fmt.Errorf("missing name")
	}

	for _, pair := range strings.Split(ratings, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			return item, fmt.Errorf("rating %q: want id=value", pair)
		}
		id, err := strconv.Atoi(strings.TrimSpace(k))
		if err != nil {
			return item, fmt.Errorf("rating %q: bad id", pair)
		}
		val, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return item, fmt.Errorf("rating %q: bad value", pair)
		}
		if item.Ratings == nil {
			item.Ratings = make(map[int]float64)
		}
		item.Ratings[id] = val
	}
	return item, nil
}

// ABOUTME: Text and JSON rendering for CLI output
// ABOUTME: JSON mirrors the HTTP API response shape

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	cosmos "cosmos-api/cosmos-lib"
	"cosmos-api/pkg/utils/html"
)

const descriptionWidth = 160

type resultsEnvelope struct {
	Query   string                 `json:"query,omitempty"`
	Count   int                    `json:"count"`
	Results []*cosmos.SearchResult `json:"results"`
}

type sourcesEnvelope struct {
	Count   int              `json:"count"`
	Sources []*cosmos.Source `json:"sources"`
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderResults(w io.Writer, query string, results []*cosmos.SearchResult, asJSON bool) error {
	if asJSON {
		return writeJSON(w, resultsEnvelope{Query: query, Count: len(results), Results: results})
	}

	if len(results) == 0 {
		_, err := fmt.Fprintln(w, "No results.")
		return err
	}

	for i, r := range results {
		fmt.Fprintf(w, "%d. %s\n", i+1, r.Title)
		fmt.Fprintf(w, "   [%s] %s", r.Type, r.Source)
		if !r.PublishedAt.IsZero() {
			fmt.Fprintf(w, " · %s", r.PublishedAt.UTC().Format(time.DateTime))
		}
		fmt.Fprintln(w)
		if r.URL != "" {
			fmt.Fprintf(w, "   %s\n", r.URL)
		}
		if r.Description != "" {
			fmt.Fprintf(w, "   %s\n", html.Truncate(r.Description, descriptionWidth, "..."))
		}
	}
	return nil
}

func renderSources(w io.Writer, sources []*cosmos.Source, asJSON bool) error {
	if asJSON {
		return writeJSON(w, sourcesEnvelope{Count: len(sources), Sources: sources})
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tLANGUAGE\tCOUNTRY")
	for _, s := range sources {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", s.ID, s.Name, s.Category, s.Language, s.Country)
	}
	return tw.Flush()
}

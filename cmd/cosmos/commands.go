// ABOUTME: Subcommands for searching, headlines and source listing
// ABOUTME: Translates flags into library options and renders the results

package main

import (
	"strings"

	cosmos "cosmos-api/cosmos-lib"

	"github.com/spf13/cobra"
)

func newSearchCmd(root *rootOptions) *cobra.Command {
	var (
		contentType string
		recency     string
		domains     []string
		sources     []string
		language    string
		sortBy      string
		limit       int
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search news and web sources",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(root)
			if err != nil {
				return err
			}
			defer client.Close()

			query := strings.Join(args, " ")
			results, err := client.Search(cmd.Context(), query,
				cosmos.WithType(contentType),
				cosmos.WithRecency(recency),
				cosmos.WithDomains(domains...),
				cosmos.WithSources(sources...),
				cosmos.WithLanguage(language),
				cosmos.WithSortBy(sortBy),
				cosmos.WithLimit(limit),
			)
			if err != nil {
				return err
			}
			return renderResults(cmd.OutOrStdout(), query, results, root.jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&contentType, "type", "t", "all", "content type: all|news|blogs|general")
	cmd.Flags().StringVarP(&recency, "recency", "r", "week", "time window: hour|day|week|month")
	cmd.Flags().StringSliceVar(&domains, "domain", nil, "restrict to domain (repeatable)")
	cmd.Flags().StringSliceVar(&sources, "source", nil, "restrict news to source ID (repeatable)")
	cmd.Flags().StringVar(&language, "language", "en", "news language")
	cmd.Flags().StringVar(&sortBy, "sort-by", "publishedAt", "ordering: publishedAt|relevancy|popularity")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of results (1-100)")
	return cmd
}

func newHeadlinesCmd(root *rootOptions) *cobra.Command {
	var (
		country  string
		category string
		sources  []string
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "headlines",
		Short: "Show current top headlines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(root)
			if err != nil {
				return err
			}
			defer client.Close()

			results, err := client.TopHeadlines(cmd.Context(),
				cosmos.WithCountry(country),
				cosmos.WithCategory(category),
				cosmos.WithHeadlineSources(sources...),
				cosmos.WithHeadlineLimit(limit),
			)
			if err != nil {
				return err
			}
			return renderResults(cmd.OutOrStdout(), "", results, root.jsonOutput)
		},
	}

	cmd.Flags().StringVar(&country, "country", "", "two-letter country code")
	cmd.Flags().StringVar(&category, "category", "", "news category, e.g. technology")
	cmd.Flags().StringSliceVar(&sources, "source", nil, "restrict to source ID (repeatable)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of headlines")
	return cmd
}

func newSourcesCmd(root *rootOptions) *cobra.Command {
	var filter cosmos.SourcesFilter

	cmd := &cobra.Command{
		Use:   "sources",
		Short: "List news sources usable with --source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(root)
			if err != nil {
				return err
			}
			defer client.Close()

			sources, err := client.Sources(cmd.Context(), filter)
			if err != nil {
				return err
			}
			return renderSources(cmd.OutOrStdout(), sources, root.jsonOutput)
		},
	}

	cmd.Flags().StringVar(&filter.Category, "category", "", "news category")
	cmd.Flags().StringVar(&filter.Language, "language", "", "two-letter language code")
	cmd.Flags().StringVar(&filter.Country, "country", "", "two-letter country code")
	return cmd
}

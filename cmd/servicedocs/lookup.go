package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/c360studio/servicedocs/enrich/wikidata"
	"github.com/c360studio/servicedocs/enrich/wikipedia"
	"github.com/c360studio/servicedocs/naics"
	"github.com/c360studio/servicedocs/naming"
)

func lookupCmd(flags *rootFlags) *cobra.Command {
	var (
		entity  string
		article string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "lookup <naics-code>",
		Short: "Resolve a NAICS code and print its classification record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := naics.NewRegistry()

			record, err := registry.Resolve(args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Code:            %s\n", record.Code)
			fmt.Printf("Title:           %s\n", record.Title)
			if record.Description != "" {
				fmt.Printf("Description:     %s\n", record.Description)
			}
			fmt.Printf("Sector:          %s %s\n", record.SectorCode, record.SectorName)
			fmt.Printf("Subsector:       %s\n", record.SubsectorCode)
			fmt.Printf("Industry group:  %s", record.IndustryGroupCode)
			if record.IndustryGroupName != "" {
				fmt.Printf(" %s", record.IndustryGroupName)
			}
			fmt.Println()
			fmt.Printf("Slug:            %s\n", naming.PathSlug(record.Title))
			fmt.Printf("Identifier:      %s\n", naming.Identifier(record.Title))
			fmt.Printf("Digital score:   %.1f\n", naics.DigitalScore(record.SectorCode, record.Title))

			if entity != "" {
				client := wikidata.NewClient(
					wikidata.WithHTTPClient(&http.Client{Timeout: timeout}),
				)
				facts, err := client.Lookup(cmd.Context(), entity)
				if err != nil {
					return fmt.Errorf("wikidata lookup %s: %w", entity, err)
				}
				fmt.Printf("\nWikidata %s\n", facts.ExternalID)
				if facts.Label != "" {
					fmt.Printf("  Label:       %s\n", facts.Label)
				}
				if facts.Description != "" {
					fmt.Printf("  Description: %s\n", facts.Description)
				}
				if facts.IndustryRef != nil {
					fmt.Printf("  Industry:    %s (%s)\n", facts.IndustryRef.Label, facts.IndustryRef.ID)
				}
				if facts.ProviderRef != nil {
					fmt.Printf("  Operator:    %s (%s)\n", facts.ProviderRef.Label, facts.ProviderRef.ID)
				}
				if facts.ArticleURL != "" {
					fmt.Printf("  Article:     %s\n", facts.ArticleURL)
				}
			}

			if article != "" {
				fetcher := wikipedia.NewFetcher(
					wikipedia.WithHTTPClient(&http.Client{Timeout: timeout}),
				)
				extract, err := fetcher.Fetch(cmd.Context(), article)
				if err != nil {
					return fmt.Errorf("fetch article: %w", err)
				}
				fmt.Printf("\n%s\n\n%s\n", extract.Title, extract.Excerpt)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&entity, "wikidata", "", "Wikidata entity ID (e.g. Q11707) to enrich with")
	cmd.Flags().StringVar(&article, "article", "", "Wikipedia article URL to fetch an excerpt from")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "HTTP timeout for external lookups")

	return cmd
}

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/textdex/textdex"
)

var smokeFlags struct {
	address    string
	collection string
}

var smokeCmd = &cobra.Command{
	Use:   "smoke",
	Short: "Run an end-to-end check: create, insert, search, drop",
	RunE: func(cmd *cobra.Command, args []string) error {
		return smoke(cmd.Context())
	},
}

func init() {
	smokeCmd.Flags().StringVar(&smokeFlags.address, "address", "localhost:19530", "database address")
	smokeCmd.Flags().StringVar(&smokeFlags.collection, "collection", "_textdex_smoke", "collection name")
	rootCmd.AddCommand(smokeCmd)
}

func smoke(ctx context.Context) error {
	client, err := textdex.New(ctx, textdex.WithAddress(smokeFlags.address))
	if err != nil {
		return err
	}
	defer client.Close()

	name := smokeFlags.collection

	if _, err := client.Collections().Create(ctx, name); err != nil {
		return fmt.Errorf("create: %w", err)
	}
	fmt.Printf("created collection %q\n", name)

	ack, err := client.Documents(name).InsertTexts(ctx,
		"information retrieval is a field of study.",
		"information retrieval focuses on finding relevant information in large datasets.",
		"data mining and information retrieval overlap in research.",
	)
	if err != nil {
		return fmt.Errorf("insert: %w", err)
	}
	fmt.Printf("inserted %d documents\n", ack.InsertCount)

	hits, err := client.Search(name).Query(ctx, "What's the focus of information retrieval?", 3)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}
	for _, h := range hits {
		fmt.Printf("  %.4f  %v\n", h.Score, h.Fields[textdex.FieldText])
	}

	if _, err := client.Collections().Drop(ctx, name); err != nil {
		return fmt.Errorf("drop: %w", err)
	}
	fmt.Printf("dropped collection %q\n", name)
	return nil
}

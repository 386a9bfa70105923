package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/textdex/textdex"
)

var benchFlags struct {
	address string
	rounds  int
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure per-operation latency against a running database",
	Long: `Runs n rounds of create-collection, insert, and full-text search
against throwaway collections and prints the average latency per operation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return bench(cmd.Context())
	},
}

func init() {
	benchCmd.Flags().StringVar(&benchFlags.address, "address", "localhost:19530", "database address")
	benchCmd.Flags().IntVar(&benchFlags.rounds, "rounds", 10, "rounds per operation")
	rootCmd.AddCommand(benchCmd)
}

func bench(ctx context.Context) error {
	client, err := textdex.New(ctx, textdex.WithAddress(benchFlags.address))
	if err != nil {
		return err
	}
	defer client.Close()

	// Warmup
	if _, err := client.Collections().List(ctx); err != nil {
		return fmt.Errorf("warmup: %w", err)
	}

	n := benchFlags.rounds
	collName := func(i int) string { return fmt.Sprintf("_bench_collection_%d", i) }

	createAvg, err := measure(n, func(i int) error {
		_, err := client.Collections().Create(ctx, collName(i))
		return err
	})
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}
	fmt.Printf("create_collection  avg %s over %d rounds\n", createAvg, n)

	insertAvg, err := measure(n, func(i int) error {
		_, err := client.Documents(collName(i)).InsertTexts(ctx,
			"information retrieval is a field of study.",
			"information retrieval focuses on finding relevant information in large datasets.",
			"data mining and information retrieval overlap in research.",
		)
		return err
	})
	if err != nil {
		return fmt.Errorf("insert: %w", err)
	}
	fmt.Printf("insert             avg %s over %d rounds\n", insertAvg, n)

	searchAvg, err := measure(n, func(i int) error {
		name := collName(i)
		if _, err := client.Search(name).Query(ctx, "What's the focus of information retrieval?", 3); err != nil {
			return err
		}
		_, err := client.Collections().Drop(ctx, name)
		return err
	})
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}
	fmt.Printf("full_text_search   avg %s over %d rounds\n", searchAvg, n)

	return nil
}

// measure runs op n times and returns the average elapsed time per round.
func measure(n int, op func(i int) error) (time.Duration, error) {
	var total time.Duration
	for i := range n {
		start := time.Now()
		if err := op(i); err != nil {
			return 0, fmt.Errorf("round %d: %w", i, err)
		}
		total += time.Since(start)
	}
	return total / time.Duration(n), nil
}

package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/arjunmahishi/sms-ledger/internal/cli"
	"github.com/spf13/cobra"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize spending by category",
		RunE:  runReport,
	}

	cmd.Flags().IntP("days", "d", 30, "period to report on, counting back from now")

	return cmd
}

func runReport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	days, _ := cmd.Flags().GetInt("days")

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = store.Close() }()

	end := time.Now()
	start := end.AddDate(0, 0, -days)

	summary, err := store.CategorySummary(ctx, start, end)
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}

	if len(summary) == 0 {
		fmt.Println(cli.FormatInfo(fmt.Sprintf("No spending recorded in the last %d days", days)))
		return nil
	}

	// Largest spend first.
	names := make([]string, 0, len(summary))
	for name := range summary {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return summary[names[i]].Total > summary[names[j]].Total
	})

	fmt.Println(cli.FormatTitle(fmt.Sprintf("Spending, last %d days", days)))
	var grand float64
	for _, name := range names {
		totals := summary[name]
		fmt.Printf("  %-15s %10.2f  %s\n",
			name, totals.Total,
			cli.SubtleStyle.Render(fmt.Sprintf("(%d txns)", totals.Count)))
		grand += totals.Total
	}
	fmt.Println(cli.BoldStyle.Render(fmt.Sprintf("  %-15s %10.2f", "Total", grand)))

	return nil
}

package main

import (
	"fmt"

	"github.com/arjunmahishi/sms-ledger/internal/cli"
	"github.com/arjunmahishi/sms-ledger/internal/model"
	"github.com/arjunmahishi/sms-ledger/internal/service"
	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List extracted transactions",
		RunE:  runList,
	}

	cmd.Flags().StringP("category", "c", "", "only show this category")
	cmd.Flags().String("direction", "", "only debits or credits (debit, credit)")
	cmd.Flags().IntP("limit", "n", 50, "maximum rows to show")

	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	filter := service.TransactionFilter{}
	filter.Category, _ = cmd.Flags().GetString("category")
	filter.Limit, _ = cmd.Flags().GetInt("limit")

	switch dir, _ := cmd.Flags().GetString("direction"); dir {
	case "":
	case "debit":
		filter.Direction = model.DirectionDebit
	case "credit":
		filter.Direction = model.DirectionCredit
	default:
		return fmt.Errorf("invalid --direction: %s", dir)
	}

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = store.Close() }()

	transactions, err := store.GetTransactions(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to list transactions: %w", err)
	}

	if len(transactions) == 0 {
		fmt.Println(cli.FormatInfo("No transactions found"))
		return nil
	}

	header := fmt.Sprintf("%-17s %10s  %-25s %-14s %s", "DATE", "AMOUNT", "MERCHANT", "CATEGORY", "REFERENCE")
	fmt.Println(cli.TableHeaderStyle.Render(header))
	for _, txn := range transactions {
		fmt.Printf("%-17s %10.2f  %-25s %-14s %s\n",
			txn.ObservedAt.Format("2006-01-02 15:04"),
			txn.SignedAmount,
			truncate(txn.Counterparty, 25),
			txn.Category,
			txn.Reference)
	}
	fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("%d transactions", len(transactions))))

	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

package main

import (
	"fmt"
	"strconv"

	"github.com/arjunmahishi/sms-ledger/internal/category"
	"github.com/arjunmahishi/sms-ledger/internal/cli"
	"github.com/spf13/cobra"
)

func reviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "List transactions waiting for manual review",
		Long: `Transactions ingested with --review-unknowns whose counterparty could
not be pinned down are parked here instead of the ledger. List them with
this command; move one into the ledger with "review resolve".`,
		RunE: runReviewList,
	}

	cmd.AddCommand(reviewResolveCmd())

	return cmd
}

func reviewResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [id]",
		Short: "Move a reviewed transaction into the ledger",
		Args:  cobra.ExactArgs(1),
		RunE:  runReviewResolve,
	}

	cmd.Flags().StringP("merchant", "m", "", "corrected counterparty name")
	cmd.Flags().StringP("category", "c", "", "corrected category (default: derived from the merchant)")

	return cmd
}

func runReviewList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = store.Close() }()

	items, err := store.PendingReviews(ctx)
	if err != nil {
		return fmt.Errorf("failed to list reviews: %w", err)
	}

	if len(items) == 0 {
		fmt.Println(cli.FormatInfo("Nothing waiting for review"))
		return nil
	}

	header := fmt.Sprintf("%-5s %-17s %10s  %-22s %s", "ID", "DATE", "AMOUNT", "EXTRACTED AS", "MESSAGE")
	fmt.Println(cli.TableHeaderStyle.Render(header))
	for _, item := range items {
		txn := item.Transaction
		fmt.Printf("%-5d %-17s %10.2f  %-22s %s\n",
			item.ID,
			txn.ObservedAt.Format("2006-01-02 15:04"),
			txn.SignedAmount,
			truncate(txn.Counterparty, 22),
			truncate(txn.Body, 60))
	}
	fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("%d pending", len(items))))

	return nil
}

func runReviewResolve(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid review id %q", args[0])
	}

	counterparty, _ := cmd.Flags().GetString("merchant")
	cat, _ := cmd.Flags().GetString("category")
	if cat == "" && counterparty != "" {
		cat = category.Categorize(counterparty)
	}

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.ResolveReview(ctx, id, counterparty, cat); err != nil {
		return fmt.Errorf("failed to resolve review: %w", err)
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Review %d moved into the ledger", id)))
	return nil
}

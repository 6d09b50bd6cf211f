package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/arjunmahishi/sms-ledger/internal/cli"
	"github.com/arjunmahishi/sms-ledger/internal/engine"
	"github.com/arjunmahishi/sms-ledger/internal/model"
	"github.com/spf13/cobra"
)

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify [message body]",
		Short: "Classify a single message without saving it",
		Long: `Run one message through the extraction pipeline and print the result.
Nothing is written to the database; use this to inspect how a message
would be handled.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runClassify,
	}

	cmd.Flags().StringP("sender", "s", "", "sender id the message arrived from (e.g. VM-HDFCBK)")
	cmd.Flags().String("received-at", "", "receive time, RFC 3339 (default: now)")
	cmd.Flags().Bool("json", false, "print the result as JSON")

	_ = cmd.MarkFlagRequired("sender")

	return cmd
}

// classifyOutput is the JSON shape of a classification result.
type classifyOutput struct {
	Verdict      string  `json:"verdict"`
	Amount       float64 `json:"amount,omitempty"`
	Direction    string  `json:"direction,omitempty"`
	Counterparty string  `json:"counterparty,omitempty"`
	Category     string  `json:"category,omitempty"`
	Reference    string  `json:"reference,omitempty"`
	Fingerprint  string  `json:"fingerprint,omitempty"`
}

func runClassify(cmd *cobra.Command, args []string) error {
	senderID, _ := cmd.Flags().GetString("sender")
	asJSON, _ := cmd.Flags().GetBool("json")

	receivedAt := time.Now()
	if raw, _ := cmd.Flags().GetString("received-at"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return fmt.Errorf("invalid --received-at: %w", err)
		}
		receivedAt = parsed
	}

	result := engine.New().Classify(model.Message{
		ReceivedAt: receivedAt,
		Sender:     senderID,
		Body:       strings.Join(args, " "),
	})

	if asJSON {
		out := classifyOutput{Verdict: string(result.Verdict)}
		if txn := result.Transaction; txn != nil {
			out.Amount = txn.SignedAmount
			out.Direction = string(txn.Direction)
			out.Counterparty = txn.Counterparty
			out.Category = txn.Category
			out.Reference = txn.Reference
			out.Fingerprint = txn.Fingerprint
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if result.Verdict.IsRejection() {
		fmt.Println(cli.FormatWarning(fmt.Sprintf("Rejected: %s", result.Verdict)))
		return nil
	}

	txn := result.Transaction
	fmt.Println(cli.FormatSuccess("Transaction extracted"))
	fmt.Printf("  %s %.2f (%s)\n", cli.BoldStyle.Render("Amount:"), txn.SignedAmount, txn.Direction)
	fmt.Printf("  %s %s\n", cli.BoldStyle.Render("Merchant:"), txn.Counterparty)
	fmt.Printf("  %s %s\n", cli.BoldStyle.Render("Category:"), txn.Category)
	if txn.Reference != "" {
		fmt.Printf("  %s %s\n", cli.BoldStyle.Render("Reference:"), txn.Reference)
	}
	fmt.Printf("  %s %s\n", cli.SubtleStyle.Render("Fingerprint:"), cli.SubtleStyle.Render(txn.Fingerprint))
	return nil
}

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/arjunmahishi/sms-ledger/internal/cli"
	"github.com/arjunmahishi/sms-ledger/internal/common"
	"github.com/arjunmahishi/sms-ledger/internal/engine"
	"github.com/arjunmahishi/sms-ledger/internal/merchant"
	"github.com/arjunmahishi/sms-ledger/internal/model"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func ingestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest [file]",
		Short: "Ingest a message export into the ledger",
		Long: `Read an SMS export and extract transactions into the local database.

The input is JSON Lines: one message object per line with "received_at"
(RFC 3339), "sender" and "body" fields. Rejected messages are counted but
not stored; duplicates already in the ledger are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: runIngest,
	}

	cmd.Flags().Bool("dry-run", false, "classify everything but save nothing")
	cmd.Flags().Bool("review-unknowns", false, "park transactions with a generic counterparty for manual review")
	_ = viper.BindPFlag("ingest.dry_run", cmd.Flags().Lookup("dry-run"))
	_ = viper.BindPFlag("ingest.review_unknowns", cmd.Flags().Lookup("review-unknowns"))

	return cmd
}

// ingestMessage is one line of the JSONL export.
type ingestMessage struct {
	ReceivedAt time.Time `json:"received_at"`
	Sender     string    `json:"sender"`
	Body       string    `json:"body"`
}

func runIngest(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	dryRun := viper.GetBool("ingest.dry_run")
	reviewUnknowns := viper.GetBool("ingest.review_unknowns")

	messages, err := readMessages(args[0])
	if err != nil {
		return err
	}
	if len(messages) == 0 {
		slog.Info("No messages to ingest")
		return nil
	}

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = store.Close() }()

	eng := engine.New()
	bar := progressbar.Default(int64(len(messages)), "classifying")

	saved := 0
	persistedDups := 0
	parked := 0
	rejections := make(map[model.Verdict]int)

	for _, msg := range messages {
		_ = bar.Add(1)

		result := eng.Classify(model.Message(msg))
		if result.Verdict.IsRejection() {
			rejections[result.Verdict]++
			continue
		}

		match, err := store.FindDuplicate(ctx, result.Transaction)
		if err != nil {
			return fmt.Errorf("duplicate check failed: %w", err)
		}
		if match != nil {
			persistedDups++
			common.LogDebug("skipping persisted duplicate", common.Fields{
				"rule":        match.Rule,
				"fingerprint": result.Transaction.Fingerprint,
			})
			continue
		}

		if reviewUnknowns && merchant.IsGenericLabel(result.Transaction.Counterparty) {
			if !dryRun {
				if err := store.EnqueueReview(ctx, result.Transaction, "generic counterparty"); err != nil {
					return fmt.Errorf("failed to enqueue review: %w", err)
				}
			}
			parked++
			continue
		}

		if !dryRun {
			if err := store.SaveTransaction(ctx, result.Transaction); err != nil {
				// One bad row should not abort the whole export.
				common.LogError(err, "failed to save transaction", common.Fields{
					"fingerprint": result.Transaction.Fingerprint,
				})
				continue
			}
		}
		saved++
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Extracted %d transactions from %d messages", saved, len(messages))))
	if dryRun {
		fmt.Println(cli.FormatWarning("Dry run: nothing was saved"))
	}
	if persistedDups > 0 {
		fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("  %d already in the ledger", persistedDups)))
	}
	if parked > 0 {
		fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("  %d parked for review (smsledger review)", parked)))
	}
	for verdict, count := range rejections {
		fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("  %d %s", count, verdict)))
	}

	stats := eng.CacheStats()
	if stats.Hits > 0 {
		fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("  %d duplicate deliveries suppressed", stats.Hits)))
	}

	return nil
}

func readMessages(path string) ([]ingestMessage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, common.NewUserError("could not open message export", err)
	}
	defer func() { _ = f.Close() }()

	var messages []ingestMessage
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		var msg ingestMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		messages = append(messages, msg)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return messages, nil
}

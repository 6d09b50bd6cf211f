package main

import (
	"fmt"
	"strings"

	"github.com/arjunmahishi/sms-ledger/internal/category"
	"github.com/arjunmahishi/sms-ledger/internal/cli"
	"github.com/spf13/cobra"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Show the category taxonomy",
		Long: `List the spending categories and, with --keywords, the merchant
keywords that map into each one. Categories are evaluated in the order
shown; the first keyword hit wins.`,
		RunE: runCategories,
	}

	cmd.Flags().BoolP("keywords", "k", false, "also show the keywords per category")

	return cmd
}

func runCategories(cmd *cobra.Command, _ []string) error {
	showKeywords, _ := cmd.Flags().GetBool("keywords")

	fmt.Println(cli.FormatTitle("Categories"))
	for _, name := range category.Names() {
		fmt.Println("  " + cli.BoldStyle.Render(name))
		if !showKeywords {
			continue
		}
		keywords := category.Keywords(name)
		if len(keywords) == 0 {
			fmt.Println(cli.SubtleStyle.Render("    (fallback, no keywords)"))
			continue
		}
		fmt.Println(cli.SubtleStyle.Render("    " + strings.Join(keywords, ", ")))
	}

	return nil
}

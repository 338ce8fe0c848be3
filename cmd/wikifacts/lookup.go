// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/wikifacts/pkg/types"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup [fact] [subject]",
	Short: "Fetch one fact directly by kind and subject",
	Long: `Lookup bypasses the question patterns and extracts a single fact for a
subject, e.g.:

  wikifacts lookup polar-radius Earth
  wikifacts lookup birth-date "Albert Einstein"

Fact kinds: fastest-time, highest-score, longest-distance, polar-radius,
birth-date (plus any kinds added via a field-specs file).`,
	Args: cobra.MinimumNArgs(2),
	RunE: runLookup,
}

func runLookup(cmd *cobra.Command, args []string) error {
	kind, err := types.ParseFactKind(args[0])
	if err != nil {
		// A field-specs file may define kinds beyond the built-ins.
		kind = types.FactKind(args[0])
	}
	subject := strings.Join(args[1:], " ")

	svc, cleanup, err := buildService()
	if err != nil {
		return err
	}
	defer cleanup()

	fact, err := svc.Lookup(context.Background(), kind, subject)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(fact)
	}

	raw, _ := cmd.Flags().GetBool("raw")
	if raw {
		fmt.Println(fact.Value)
		return nil
	}
	fmt.Println(fact.Sentence())
	return nil
}

func init() {
	lookupCmd.Flags().Bool("json", false, "output the fact as JSON")
	lookupCmd.Flags().Bool("raw", false, "print only the extracted value")

	rootCmd.AddCommand(lookupCmd)
}

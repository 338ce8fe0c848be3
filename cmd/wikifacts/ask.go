// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/wikifacts/internal/chat"
	"github.com/pdiddy/wikifacts/internal/match"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Answer a single question and exit",
	Long: `Ask runs one question through the same pattern table the chat loop uses
and prints the answer lines. The question can be quoted or given as
separate arguments; trailing question marks are fine.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func runAsk(cmd *cobra.Command, args []string) error {
	svc, cleanup, err := buildService()
	if err != nil {
		return err
	}
	defer cleanup()

	tokens := match.Tokenize(strings.Join(args, " "))
	if len(tokens) == 0 {
		return fmt.Errorf("empty question")
	}

	outcome, err := chat.DefaultTable(svc).Dispatch(context.Background(), tokens)
	if err != nil {
		return err
	}
	if outcome.Stop {
		return nil
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(outcome.Answers)
	}
	for _, line := range outcome.Answers {
		fmt.Println(line)
	}
	return nil
}

func init() {
	askCmd.Flags().Bool("json", false, "output answer lines as JSON")

	rootCmd.AddCommand(askCmd)
}

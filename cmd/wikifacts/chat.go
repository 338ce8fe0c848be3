// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/wikifacts/internal/chat"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Run the interactive question loop",
	Long: `Chat reads questions from standard input one line at a time, matches each
against the question patterns, and prints the answer. A failed lookup
(missing page, ambiguous title, no infobox) is printed and the loop
continues. Type "bye" or "exit" to quit; an interrupt also ends the loop.`,
	RunE: runChat,
}

func runChat(cmd *cobra.Command, args []string) error {
	svc, cleanup, err := buildService()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	loop := chat.NewLoop(chat.DefaultTable(svc), os.Stdin, os.Stdout, viper.GetString("chat.prompt"))
	if err := loop.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	// An interrupt is a normal way to leave the loop, not a failure.
	return nil
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

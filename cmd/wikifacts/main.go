// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the wikifacts CLI.
// See docs/ARCHITECTURE § CLI Surface.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/wikifacts/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns fallback when set, otherwise the secret value for key.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the wikifacts CLI.
var rootCmd = &cobra.Command{
	Use:   "wikifacts",
	Short: "Answer world-record questions from Wikipedia infoboxes",
	Long: `wikifacts answers natural-language questions about factual record-style
attributes — fastest times, highest scores, longest distances, a planet's
polar radius, a person's birth date — by fetching the subject's Wikipedia
page and extracting the value from its summary infobox.

Use "chat" for the interactive question loop, "ask" for a single question,
or "lookup" to fetch one fact directly by kind and subject.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./wikifacts.yaml or ~/.config/wikifacts/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("wikifacts")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "wikifacts"))
		}
	}

	viper.SetEnvPrefix("WIKIFACTS")
	viper.AutomaticEnv()

	viper.SetDefault("wikipedia.timeout", "15s")
	viper.SetDefault("wikipedia.user_agent", "wikifacts/0.1")
	viper.SetDefault("wikipedia.language", "en")
	viper.SetDefault("wikipedia.cache.enabled", false)
	viper.SetDefault("wikipedia.cache.path", "wikifacts-cache.db")
	viper.SetDefault("wikipedia.cache.ttl", "24h")
	viper.SetDefault("chat.prompt", "> ")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the configuration and fact types shared across stages.
// See docs/ARCHITECTURE § Configuration.
package types

import "time"

// HTTPConfig holds shared HTTP settings for stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "wikifacts/0.1"). Wikimedia asks API clients to identify
	// themselves; a contact email is appended when configured.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// CacheConfig holds settings for the retrieval-side page cache. The cache
// belongs to the Wikipedia client; nothing above it observes whether a page
// came from the network or from disk.
type CacheConfig struct {
	// Enabled turns the SQLite page cache on. Off by default.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Path is the SQLite database file (default "wikifacts-cache.db").
	Path string `json:"path" yaml:"path"`

	// TTL is how long a cached page stays fresh (default 24h).
	TTL time.Duration `json:"ttl" yaml:"ttl"`
}

// WikipediaConfig holds settings for the page-retrieval stage.
type WikipediaConfig struct {
	HTTPConfig `yaml:",inline"`

	// Language selects the Wikipedia edition (default "en").
	Language string `json:"language" yaml:"language"`

	// ContactEmail is appended to the User-Agent for polite API access,
	// loaded from .secrets/wikipedia-contact-email when not set here.
	ContactEmail string `json:"contact_email,omitempty" yaml:"contact_email,omitempty"`

	// Cache configures the client-owned page cache.
	Cache CacheConfig `json:"cache" yaml:"cache"`
}

// ChatConfig holds settings for the interactive question loop.
type ChatConfig struct {
	// Prompt is printed before each read (default "> ").
	Prompt string `json:"prompt" yaml:"prompt"`

	// FieldSpecsFile optionally points at a YAML file of field-spec
	// overrides merged over the built-in fact table.
	FieldSpecsFile string `json:"field_specs_file,omitempty" yaml:"field_specs_file,omitempty"`
}

// Config groups all stage configurations.
type Config struct {
	Wikipedia WikipediaConfig `json:"wikipedia" yaml:"wikipedia"`
	Chat      ChatConfig      `json:"chat" yaml:"chat"`
}

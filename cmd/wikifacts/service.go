// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/pdiddy/wikifacts/internal/records"
	"github.com/pdiddy/wikifacts/internal/wiki"
	"github.com/pdiddy/wikifacts/pkg/types"
)

// wikipediaConfig assembles the retrieval config from viper and secrets.
func wikipediaConfig() types.WikipediaConfig {
	return types.WikipediaConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("wikipedia.timeout"),
			UserAgent: viper.GetString("wikipedia.user_agent"),
		},
		Language:     viper.GetString("wikipedia.language"),
		ContactEmail: secretDefault("wikipedia-contact-email", viper.GetString("wikipedia.contact_email")),
		Cache: types.CacheConfig{
			Enabled: viper.GetBool("wikipedia.cache.enabled"),
			Path:    viper.GetString("wikipedia.cache.path"),
			TTL:     viper.GetDuration("wikipedia.cache.ttl"),
		},
	}
}

// buildService wires the Wikipedia client (and its optional page cache) to
// a records service. The returned cleanup closes the cache and is safe to
// call when no cache is open.
func buildService() (*records.Service, func(), error) {
	cfg := wikipediaConfig()

	var cache *wiki.PageCache
	if cfg.Cache.Enabled {
		c, err := wiki.OpenCache(cfg.Cache.Path, cfg.Cache.TTL)
		if err != nil {
			// The cache is an optimization; run without it.
			fmt.Fprintf(os.Stderr, "warning: page cache disabled: %v\n", err)
		} else {
			cache = c
		}
	}
	cleanup := func() {
		if cache != nil {
			cache.Close()
		}
	}

	specs, err := records.LoadSpecs(viper.GetString("chat.field_specs_file"))
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	svc, err := records.NewService(wiki.New(cfg, cache), specs)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return svc, cleanup, nil
}

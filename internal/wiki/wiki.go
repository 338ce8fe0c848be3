// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package wiki retrieves Wikipedia page HTML through the MediaWiki action API.
// See docs/ARCHITECTURE § Page Retrieval.
//
// Retrieval failures are typed so callers can tell them apart without string
// matching: ErrPageNotFound, ErrTimeout, and AmbiguousTitleError (which
// carries the candidate titles from a disambiguation page).
package wiki

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/wikifacts/internal/httputil"
	"github.com/pdiddy/wikifacts/pkg/types"
)

// apiBase is the MediaWiki action API endpoint for the English Wikipedia.
// Declared as a var so tests can substitute an httptest server.
var apiBase = "https://en.wikipedia.org/w/api.php"

// APIBase returns the endpoint for the given language edition, or the
// test-substituted endpoint when apiBase no longer points at Wikipedia.
func APIBase(language string) string {
	if language == "" || language == "en" || !strings.Contains(apiBase, "wikipedia.org") {
		return apiBase
	}
	return fmt.Sprintf("https://%s.wikipedia.org/w/api.php", language)
}

// Sentinel retrieval errors.
var (
	ErrPageNotFound = errors.New("page not found")
	ErrTimeout      = errors.New("page retrieval timed out")
)

// AmbiguousTitleError reports that a title resolved to a disambiguation
// page. Options holds the candidate titles in page order; the client never
// chooses among them.
type AmbiguousTitleError struct {
	Title   string
	Options []string
}

func (e *AmbiguousTitleError) Error() string {
	return fmt.Sprintf("multiple pages found for %q, please be more specific (options: %s)",
		e.Title, strings.Join(e.Options, "; "))
}

// maxDisambiguationOptions caps the candidate list surfaced from a
// disambiguation page.
const maxDisambiguationOptions = 10

// Client fetches rendered page HTML. The zero value is not usable; use New.
type Client struct {
	httpClient *http.Client
	endpoint   string
	userAgent  string
	cache      *PageCache
}

// New builds a Client from config. The contact email, when present, is
// appended to the User-Agent per Wikimedia API etiquette. A non-nil cache
// is consulted before the network and updated after successful fetches.
func New(cfg types.WikipediaConfig, cache *PageCache) *Client {
	ua := cfg.UserAgent
	if ua == "" {
		ua = "wikifacts/0.1"
	}
	if cfg.ContactEmail != "" {
		ua = fmt.Sprintf("%s (%s)", ua, cfg.ContactEmail)
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		endpoint:   APIBase(cfg.Language),
		userAgent:  ua,
		cache:      cache,
	}
}

// parse API JSON structures (formatversion=2).
type parseResponse struct {
	Parse *parseResult `json:"parse"`
	Error *apiError    `json:"error"`
}

type parseResult struct {
	Title      string            `json:"title"`
	PageID     int               `json:"pageid"`
	Text       string            `json:"text"`
	Properties map[string]string `json:"properties"`
}

type apiError struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

// PageHTML returns the rendered HTML of the page with the given title,
// following redirects. The title is matched the way the Wikipedia search
// box matches it, so "mario kart" finds "Mario Kart".
func (c *Client) PageHTML(ctx context.Context, title string) (string, error) {
	if strings.TrimSpace(title) == "" {
		return "", fmt.Errorf("empty page title: %w", ErrPageNotFound)
	}

	if c.cache != nil {
		if html, ok := c.cache.Get(ctx, title); ok {
			return html, nil
		}
	}

	params := url.Values{
		"action":        {"parse"},
		"page":          {title},
		"prop":          {"text|properties"},
		"redirects":     {"1"},
		"format":        {"json"},
		"formatversion": {"2"},
	}
	reqURL := c.endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := httputil.DoWithRetry(ctx, c.httpClient, req, 0)
	if err != nil {
		if isTimeout(err) {
			return "", fmt.Errorf("fetching %q: %w", title, ErrTimeout)
		}
		return "", fmt.Errorf("fetching %q: %w", title, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Wikipedia API returned HTTP %d for %q", resp.StatusCode, title)
	}

	var pr parseResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return "", fmt.Errorf("parsing API response: %w", err)
	}

	if pr.Error != nil {
		switch pr.Error.Code {
		case "missingtitle", "pagecannotexist", "invalidtitle", "nosuchpageid":
			return "", fmt.Errorf("%q: %w", title, ErrPageNotFound)
		default:
			return "", fmt.Errorf("Wikipedia API error for %q: %s (%s)", title, pr.Error.Info, pr.Error.Code)
		}
	}
	if pr.Parse == nil {
		return "", fmt.Errorf("Wikipedia API response for %q has no parse payload", title)
	}

	if _, ok := pr.Parse.Properties["disambiguation"]; ok {
		return "", &AmbiguousTitleError{
			Title:   title,
			Options: disambiguationOptions(pr.Parse.Text),
		}
	}

	if c.cache != nil {
		if err := c.cache.Put(ctx, title, pr.Parse.Text); err != nil {
			fmt.Fprintf(os.Stderr, "warning: page cache write failed: %v\n", err)
		}
	}

	return pr.Parse.Text, nil
}

// disambiguationOptions scrapes candidate article titles from the rendered
// body of a disambiguation page: the links inside its top-level list items.
func disambiguationOptions(html string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	var options []string
	seen := make(map[string]bool)
	doc.Find("ul li a[title]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		title := s.AttrOr("title", "")
		if title == "" || seen[title] {
			return true
		}
		seen[title] = true
		options = append(options, title)
		return len(options) < maxDisambiguationOptions
	})
	return options
}

// isTimeout reports whether err is a deadline or network timeout.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne interface{ Timeout() bool }
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}
	return os.IsTimeout(err)
}

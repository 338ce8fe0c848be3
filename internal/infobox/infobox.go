// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package infobox turns raw page HTML into clean infobox text and extracts
// labeled fields from it. See docs/ARCHITECTURE § Extraction.
package infobox

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrNoInfobox reports that a page has no summary infobox.
var ErrNoInfobox = errors.New("page has no infobox")

// FirstText returns the text of the first element carrying the "infobox"
// class. Wikipedia renders the summary box of an article as a table with
// that class; pages without one (stubs, lists, talk pages) yield
// ErrNoInfobox.
func FirstText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing page HTML: %w", err)
	}

	sel := doc.Find(".infobox").First()
	if sel.Length() == 0 {
		return "", ErrNoInfobox
	}
	return sel.Text(), nil
}

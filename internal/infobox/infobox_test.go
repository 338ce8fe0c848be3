// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package infobox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstText(t *testing.T) {
	html := `<html><body>
		<p>Lead paragraph.</p>
		<table class="infobox vcard"><tbody>
			<tr><th>Fastest time</th><td>1:31.552</td></tr>
			<tr><th>Set by</th><td>Somebody</td></tr>
		</tbody></table>
		<table class="infobox"><tbody>
			<tr><th>Second box</th><td>ignored</td></tr>
		</tbody></table>
	</body></html>`

	text, err := FirstText(html)
	require.NoError(t, err)
	assert.Contains(t, text, "Fastest time")
	assert.Contains(t, text, "1:31.552")
	assert.NotContains(t, text, "Second box", "only the first infobox is used")
	assert.NotContains(t, text, "Lead paragraph", "body text outside the infobox is excluded")
}

func TestFirstText_NoInfobox(t *testing.T) {
	_, err := FirstText(`<html><body><p>No summary box here.</p></body></html>`)
	assert.ErrorIs(t, err, ErrNoInfobox)
}

func TestFirstText_EmptyDocument(t *testing.T) {
	_, err := FirstText("")
	assert.ErrorIs(t, err, ErrNoInfobox)
}

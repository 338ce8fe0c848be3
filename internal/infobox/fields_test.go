// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package infobox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractField(t *testing.T) {
	re, err := CompileField(`(?:Fastest time.*?)(?: ?\d+ )?(?P<value>[\d:.]+)(?:.*?)s`)
	require.NoError(t, err)

	groups, err := ExtractField("Records\nFastest time\n1:31.552 by somebody", re, "no fastest time")
	require.NoError(t, err)
	assert.Equal(t, "1:31.552", groups["value"])
}

func TestExtractField_CaseInsensitive(t *testing.T) {
	re, err := CompileField(`polar radius.*?(?P<value>[\d,.]+)`)
	require.NoError(t, err)

	groups, err := ExtractField("POLAR RADIUS\n6356.8 km", re, "no radius")
	require.NoError(t, err)
	assert.Equal(t, "6356.8", groups["value"])
}

func TestExtractField_SpansNewlines(t *testing.T) {
	// The dot must match the newlines Normalize leaves between rows.
	re, err := CompileField(`Highest score.*?(?P<value>[\d,]+).*?points`)
	require.NoError(t, err)

	groups, err := ExtractField("Highest score\n999,999\npoints", re, "no score")
	require.NoError(t, err)
	assert.Equal(t, "999,999", groups["value"])
}

func TestExtractField_Missing(t *testing.T) {
	re, err := CompileField(`Fastest time.*?(?P<value>[\d:.]+)`)
	require.NoError(t, err)

	_, err = ExtractField("nothing relevant here", re, "page infobox has no fastest time information")

	var notFound *FieldNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "page infobox has no fastest time information", notFound.Message)
	assert.Equal(t, "page infobox has no fastest time information", err.Error())
}

func TestCompileField_BadPattern(t *testing.T) {
	_, err := CompileField(`(?P<value>[unclosed`)
	assert.Error(t, err)
}

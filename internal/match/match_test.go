// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package match

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch_LiteralOnly(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		source  string
		ok      bool
	}{
		{"equal sequences match", "what time is it", "what time is it", true},
		{"different token fails", "what time is it", "what time is now", false},
		{"shorter source fails", "what time is it", "what time is", false},
		{"longer source fails", "what time is", "what time is it", false},
		{"both empty match", "", "", true},
		{"empty pattern nonempty source fails", "", "hello", false},
		{"nonempty pattern empty source fails", "hello", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captures, ok := Match(Pattern(tt.pattern), strings.Fields(tt.source))
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Empty(t, captures, "literal-only patterns bind nothing")
			}
		})
	}
}

func TestMatch_BareWildcard(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		capture string
	}{
		{"captures whole source", "mario kart wii", "mario kart wii"},
		{"single token", "mercury", "mercury"},
		{"empty source captures empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captures, ok := Match([]string{Wildcard}, strings.Fields(tt.source))
			require.True(t, ok)
			require.Len(t, captures, 1)
			assert.Equal(t, tt.capture, captures[0])
		})
	}
}

func TestMatch_WildcardIsGreedy(t *testing.T) {
	captures, ok := Match(
		[]string{"a", Wildcard, "b"},
		[]string{"a", "x", "b", "x", "b"},
	)
	require.True(t, ok)
	require.Len(t, captures, 1)
	assert.Equal(t, "x b x", captures[0], "the wildcard binds the longest valid middle span")
}

func TestMatch_WildcardPositions(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		source  string
		ok      bool
		want    []string
	}{
		{"middle", "what is the fastest time for %", "what is the fastest time for mario kart", true, []string{"mario kart"}},
		{"trailing empty span", "when was % born", "when was born", true, []string{""}},
		{"leading", "% was born when", "einstein was born when", true, []string{"einstein"}},
		{"prefix mismatch", "what is the fastest time for %", "which is the fastest time for mario kart", false, nil},
		{"suffix mismatch", "when was % born", "when was einstein buried", false, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captures, ok := Match(Pattern(tt.pattern), strings.Fields(tt.source))
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, captures)
			}
		})
	}
}

func TestMatch_MultipleWildcards(t *testing.T) {
	captures, ok := Match(
		[]string{Wildcard, "and", Wildcard},
		[]string{"salt", "and", "black", "pepper"},
	)
	require.True(t, ok)
	assert.Equal(t, []string{"salt", "black pepper"}, captures)
}

func TestMatch_NoMatchDistinctFromEmptyCaptures(t *testing.T) {
	captures, ok := Match(Pattern("hello"), []string{"hello"})
	require.True(t, ok)
	assert.NotNil(t, captures)
	assert.Empty(t, captures)

	captures, ok = Match(Pattern("hello"), []string{"goodbye"})
	assert.False(t, ok)
	assert.Nil(t, captures)
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"strips question marks and lowercases", "What is the Fastest Time for Mario Kart?", []string{"what", "is", "the", "fastest", "time", "for", "mario", "kart"}},
		{"collapses whitespace", "  when   was  einstein born ", []string{"when", "was", "einstein", "born"}},
		{"interior question marks", "who? what? where?", []string{"who", "what", "where"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.in))
		})
	}

	assert.Empty(t, Tokenize("   "), "a blank line yields no tokens")
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package match

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoAction(t *testing.T) Action {
	t.Helper()
	return func(_ context.Context, captures []string) ([]string, error) {
		return captures, nil
	}
}

func TestDispatch_FirstMatchWins(t *testing.T) {
	table := NewTable(
		Entry{Pattern: Pattern("hello %"), Action: func(_ context.Context, _ []string) ([]string, error) {
			return []string{"first"}, nil
		}},
		Entry{Pattern: Pattern("hello world"), Action: func(_ context.Context, _ []string) ([]string, error) {
			return []string{"second"}, nil
		}},
	)

	out, err := table.Dispatch(context.Background(), []string{"hello", "world"})
	require.NoError(t, err)
	assert.Equal(t, []string{"first"}, out.Answers)
}

func TestDispatch_PassesCaptures(t *testing.T) {
	table := NewTable(
		Entry{Pattern: Pattern("what is the fastest time for %"), Action: echoAction(t)},
	)

	out, err := table.Dispatch(context.Background(),
		Tokenize("what is the fastest time for mario kart?"))
	require.NoError(t, err)
	assert.Equal(t, []string{"mario kart"}, out.Answers)
}

func TestDispatch_NoPatternMatched(t *testing.T) {
	table := NewTable(
		Entry{Pattern: Pattern("what is the fastest time for %"), Action: echoAction(t)},
	)

	out, err := table.Dispatch(context.Background(), []string{"hello"})
	require.NoError(t, err)
	assert.Equal(t, []string{NotUnderstood}, out.Answers)
	assert.False(t, out.Stop)
}

func TestDispatch_EmptyActionResult(t *testing.T) {
	table := NewTable(
		Entry{Pattern: Pattern("lookup %"), Action: func(_ context.Context, _ []string) ([]string, error) {
			return nil, nil
		}},
	)

	out, err := table.Dispatch(context.Background(), []string{"lookup", "nothing"})
	require.NoError(t, err)
	assert.Equal(t, []string{NoAnswers}, out.Answers)
}

func TestDispatch_ActionErrorSurfaces(t *testing.T) {
	boom := errors.New("page has no infobox")
	table := NewTable(
		Entry{Pattern: Pattern("lookup %"), Action: func(_ context.Context, _ []string) ([]string, error) {
			return nil, boom
		}},
	)

	_, err := table.Dispatch(context.Background(), []string{"lookup", "stub"})
	assert.ErrorIs(t, err, boom)
}

func TestDispatch_StopEntry(t *testing.T) {
	table := NewTable(
		Entry{Pattern: Pattern("bye"), Stop: true},
		Entry{Pattern: Pattern("%"), Action: echoAction(t)},
	)

	out, err := table.Dispatch(context.Background(), []string{"bye"})
	require.NoError(t, err)
	assert.True(t, out.Stop)
	assert.Empty(t, out.Answers)
}

func TestDispatch_Deterministic(t *testing.T) {
	table := NewTable(
		Entry{Pattern: Pattern("what is %"), Action: echoAction(t)},
		Entry{Pattern: Pattern("% is what"), Action: echoAction(t)},
	)

	query := Tokenize("what is the answer")
	first, err := table.Dispatch(context.Background(), query)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := table.Dispatch(context.Background(), query)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

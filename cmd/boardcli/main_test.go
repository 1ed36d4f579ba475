package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/programme-lv/leaderboard/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintBoardFailsInEveryFormat(t *testing.T) {
	loadErr := errors.New("attempts: status 500")

	for _, format := range []string{"text", "html"} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			err := printBoard(context.Background(), &buf, fakeLoader{err: loadErr}, format, "Leaderboard")

			require.ErrorIs(t, err, loadErr)
			assert.Contains(t, buf.String(), board.ErrorMessage)
			assert.NotContains(t, buf.String(), "Attempt #")
		})
	}
}

func TestPrintBoard(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printBoard(context.Background(), &buf, fakeLoader{snapshot: exampleSnapshot()}, "html", "Leaderboard"))
	assert.Contains(t, buf.String(), `<table class="table">`)

	buf.Reset()
	require.NoError(t, printBoard(context.Background(), &buf, fakeLoader{snapshot: exampleSnapshot()}, "text", "Leaderboard"))
	assert.Contains(t, buf.String(), "Attempt #2")
	assert.Contains(t, buf.String(), "35")
}

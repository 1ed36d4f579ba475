package boardhttp_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/programme-lv/leaderboard/board"
	"github.com/programme-lv/leaderboard/boardhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPage(t *testing.T) {
	h := setupBoardHttpHandler(t, &fakeLoader{snapshot: exampleSnapshot()})

	w := get(t, h, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))

	page := w.Body.String()
	assert.Contains(t, page, `<td class="attempt attempt-1 best">10</td>`)
	assert.Contains(t, page, `<td class="attempt attempt-2 best">30</td>`)
	assert.Contains(t, page, `<td class="participant-score best" data-id="2">35</td>`)
	assert.NotContains(t, page, board.ErrorMessage)
}

func TestGetPageShowsOnlyBannerOnLoadFailure(t *testing.T) {
	h := setupBoardHttpHandler(t, &fakeLoader{err: serverError()})

	w := get(t, h, "/")
	assert.Equal(t, http.StatusBadGateway, w.Code)

	page := w.Body.String()
	assert.Contains(t, page, board.ErrorMessage)
	assert.NotContains(t, page, "<table")
	assert.NotContains(t, page, `class="participant-name"`)
	assert.NotContains(t, page, `<tr class="participant"`)
	assert.NotContains(t, page, "<script>")
	assert.Equal(t, 1, strings.Count(page, board.ErrorMessage))
}

func TestSnapshotIsLoadedOnce(t *testing.T) {
	l := &fakeLoader{snapshot: exampleSnapshot()}
	h := setupBoardHttpHandler(t, l)

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, get(t, h, "/").Code)
	}
	require.Equal(t, http.StatusOK, get(t, h, "/api/standings").Code)
	assert.Equal(t, int32(1), l.calls.Load())
}

func TestFailedLoadIsNotCached(t *testing.T) {
	l := &fakeLoader{err: serverError()}
	h := setupBoardHttpHandler(t, l)

	assert.Equal(t, http.StatusBadGateway, get(t, h, "/").Code)
	assert.Equal(t, http.StatusBadGateway, get(t, h, "/").Code)
	assert.Equal(t, int32(2), l.calls.Load())
}

func TestConcurrentFirstLoadsAreCollapsed(t *testing.T) {
	l := &fakeLoader{snapshot: exampleSnapshot(), gate: make(chan struct{})}
	h := setupBoardHttpHandler(t, l)

	var wg sync.WaitGroup
	codes := make([]int, 10)
	for i := range codes {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			codes[i] = get(t, h, "/").Code
		}(i)
	}
	require.Eventually(t, func() bool { return l.calls.Load() > 0 }, time.Second, time.Millisecond)
	close(l.gate)
	wg.Wait()

	for _, code := range codes {
		assert.Equal(t, http.StatusOK, code)
	}
	assert.Equal(t, int32(1), l.calls.Load())
	assert.Equal(t, http.StatusOK, get(t, h, "/").Code)
}

func TestGetStandings(t *testing.T) {
	h := setupBoardHttpHandler(t, &fakeLoader{snapshot: exampleSnapshot()})

	w := get(t, h, "/api/standings")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Status string              `json:"status"`
		Data   boardhttp.Standings `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)

	st := resp.Data
	assert.Equal(t, 2, st.AttemptCount)
	assert.Equal(t, []string{"Attempt #1", "Attempt #2", "Total"}, st.Headers)
	require.Len(t, st.Rows, 2)

	a := st.Rows[0]
	assert.Equal(t, "A", a.Name)
	assert.Equal(t, "X", a.City)
	require.Len(t, a.Attempts, 2)
	assert.Equal(t, "10", a.Attempts[0].Value.String())
	assert.True(t, a.Attempts[0].Best)
	assert.False(t, a.Attempts[1].Best)
	assert.Equal(t, "30", a.Score.Value.String())
	assert.False(t, a.Score.Best)

	b := st.Rows[1]
	assert.True(t, b.Attempts[1].Best)
	assert.True(t, b.Score.Best)
	assert.Equal(t, "35", b.Score.Value.String())
}

func TestGetStandingsMissingResultIsNull(t *testing.T) {
	snap := exampleSnapshot()
	attempts := snap.Attempts()[:3] // B lost the second round
	h := setupBoardHttpHandler(t, &fakeLoader{snapshot: newSnapshot(snap, attempts)})

	w := get(t, h, "/api/standings")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `{"value":null,"best":false}`)
}

func TestGetStandingsLoadFailure(t *testing.T) {
	h := setupBoardHttpHandler(t, &fakeLoader{err: serverError()})

	w := get(t, h, "/api/standings")
	assert.Equal(t, http.StatusBadGateway, w.Code)

	var resp struct {
		Status  string `json:"status"`
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, boardhttp.ErrCodeDataUnavailable, resp.Code)
	assert.Equal(t, board.ErrorMessage, resp.Message)
	assert.False(t, strings.Contains(w.Body.String(), "500 Internal"))
}

func TestGetHealth(t *testing.T) {
	l := &fakeLoader{err: serverError()}
	h := setupBoardHttpHandler(t, l)

	w := get(t, h, "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
	assert.Equal(t, int32(0), l.calls.Load())
}

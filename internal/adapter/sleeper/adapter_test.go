package sleeper

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PranavThoppe/GameTracker/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestAdapter(srv *httptest.Server) *Adapter {
	return NewAdapter(&config.UpstreamConfig{BaseURL: srv.URL}, testLogger())
}

func TestGetNFLState(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/state/nfl", r.URL.Path)
		_, _ = w.Write([]byte(`{"week": 3, "display_week": 3, "season": "2025", "season_type": "regular", "leg": 3}`))
	}))
	defer srv.Close()

	state, err := newTestAdapter(srv).GetNFLState(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, state.Week)
	assert.Equal(t, "2025", state.Season)
	assert.Equal(t, "regular", state.SeasonType)
}

func TestGetUser_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestAdapter(srv).GetUser(context.Background(), "nobody")
	assert.Error(t, err)
}

func TestGetLeagues(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user/12345/leagues/nfl/2025", r.URL.Path)
		_, _ = w.Write([]byte(`[{"league_id": "l1", "name": "Dynasty", "season": "2025", "status": "in_season", "total_rosters": 12}]`))
	}))
	defer srv.Close()

	leagues, err := newTestAdapter(srv).GetLeagues(context.Background(), "12345", "2025")
	require.NoError(t, err)
	require.Len(t, leagues, 1)
	assert.Equal(t, "l1", leagues[0].LeagueID)
	assert.Equal(t, 12, leagues[0].TotalRoster)
}

func TestFetchPlayers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/players/nfl", r.URL.Path)
		_, _ = w.Write([]byte(`{
		  "4034": {"full_name": "Dak Prescott", "first_name": "Dak", "last_name": "Prescott", "position": "QB", "team": "DAL", "active": true, "fantasy_positions": ["QB"], "search_rank": 40},
		  "9999": {"first_name": "No", "last_name": "Name", "position": "K", "active": false}
		}`))
	}))
	defer srv.Close()

	players, err := newTestAdapter(srv).FetchPlayers(context.Background())
	require.NoError(t, err)
	require.Len(t, players, 2)

	dak := players["4034"]
	require.NotNil(t, dak)
	assert.Equal(t, "Dak Prescott", dak.FullName)
	assert.Equal(t, "DAL", dak.Team)
	assert.True(t, dak.Active)
	assert.Equal(t, []string{"QB"}, dak.FantasyPositions)
}

package espn

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

const scoreboardFixture = `{
  "events": [
    {
      "id": "401671001",
      "date": "2025-09-07T17:00Z",
      "competitions": [
        {
          "id": "401671001",
          "competitors": [
            {"homeAway": "home", "team": {"id": "21", "abbreviation": "PHI", "displayName": "Philadelphia Eagles"}},
            {"homeAway": "away", "team": {"id": "6", "abbreviation": "DAL", "displayName": "Dallas Cowboys"}}
          ],
          "broadcasts": [{"names": ["FOX", "FOX Deportes"]}],
          "status": {"type": {"state": "pre", "detail": "Sun, September 7th at 1:00 PM EDT"}}
        }
      ]
    },
    {
      "id": "401671002",
      "date": "2025-09-07T20:25Z",
      "competitions": [
        {
          "id": "401671002",
          "competitors": [
            {"homeAway": "home", "team": {"id": "7", "abbreviation": "DEN", "displayName": "Denver Broncos"}},
            {"homeAway": "away", "team": {"id": "12", "abbreviation": "KC", "displayName": "Kansas City Chiefs"}}
          ],
          "broadcasts": [],
          "status": {"type": {"state": "post", "detail": "Sun, September 7th at 4:25 PM EDT"}}
        }
      ]
    }
  ]
}`

func TestFetchWeek(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/scoreboard", r.URL.Path)
		assert.Equal(t, "2025", r.URL.Query().Get("year"))
		assert.Equal(t, "1", r.URL.Query().Get("week"))
		assert.Equal(t, "2", r.URL.Query().Get("seasontype"))
		_, _ = w.Write([]byte(scoreboardFixture))
	}))
	defer srv.Close()

	adapter := NewAdapter(&config.UpstreamConfig{BaseURL: srv.URL}, testLogger())
	games, err := adapter.FetchWeek(context.Background(), 2025, 1)
	require.NoError(t, err)
	require.Len(t, games, 2)

	first := games[0]
	assert.Equal(t, 2025, first.Year)
	assert.Equal(t, 1, first.Week)
	assert.Equal(t, "PHI", first.HomeTeam)
	assert.Equal(t, "DAL", first.AwayTeam)
	assert.Equal(t, "Sun, September 7th at 1:00 PM EDT", first.Time)
	require.NotNil(t, first.Broadcast)
	assert.Equal(t, "FOX", *first.Broadcast)
	assert.JSONEq(t, `["FOX","FOX Deportes"]`, string(first.BroadcastNames))
	assert.Equal(t, "scheduled", first.Status)

	// 无转播信息 → Broadcast为nil；post → final
	second := games[1]
	assert.Nil(t, second.Broadcast)
	assert.Equal(t, "final", second.Status)
}

func TestFetchWeek_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	adapter := NewAdapter(&config.UpstreamConfig{BaseURL: srv.URL}, testLogger())
	_, err := adapter.FetchWeek(context.Background(), 2025, 1)
	assert.Error(t, err)
}

func TestFetchTeams(t *testing.T) {
	fixture := `{
	  "sports": [{"leagues": [{"teams": [
	    {"team": {"id": "6", "abbreviation": "DAL", "displayName": "Dallas Cowboys", "logos": [{"href": "https://a.espncdn.com/i/teamlogos/nfl/500/dal.png"}]}},
	    {"team": {"id": "bogus", "abbreviation": "XX", "displayName": "Broken"}}
	  ]}]}]
	}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/teams", r.URL.Path)
		_, _ = w.Write([]byte(fixture))
	}))
	defer srv.Close()

	adapter := NewAdapter(&config.UpstreamConfig{BaseURL: srv.URL}, testLogger())
	teams, err := adapter.FetchTeams(context.Background(), 2025)
	require.NoError(t, err)

	// 非数字ID的条目被跳过
	require.Len(t, teams, 1)
	assert.Equal(t, 6, teams[0].ESPNTeamID)
	assert.Equal(t, "DAL", teams[0].Abbreviation)
	assert.Equal(t, 2025, teams[0].Season)
	require.NotNil(t, teams[0].LogoURL)
}

func TestFetchRecord(t *testing.T) {
	fixture := `{"items": [
	  {"name": "Home", "summary": "2-1"},
	  {"name": "overall", "summary": "3-2-1"}
	]}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/seasons/2025/types/2/teams/6/record", r.URL.Path)
		_, _ = w.Write([]byte(fixture))
	}))
	defer srv.Close()

	adapter := NewAdapter(&config.UpstreamConfig{CoreURL: srv.URL}, testLogger())
	wins, losses, ties, err := adapter.FetchRecord(context.Background(), 6, 2025)
	require.NoError(t, err)
	assert.Equal(t, 3, wins)
	assert.Equal(t, 2, losses)
	assert.Equal(t, 1, ties)
}

func TestParseRecordSummary(t *testing.T) {
	tests := []struct {
		name    string
		summary string
		wins    int
		losses  int
		ties    int
		wantErr bool
	}{
		{"with ties", "3-2-1", 3, 2, 1, false},
		{"without ties", "10-7", 10, 7, 0, false},
		{"garbage", "n/a", 0, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wins, losses, ties, err := parseRecordSummary(tt.summary)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wins, wins)
			assert.Equal(t, tt.losses, losses)
			assert.Equal(t, tt.ties, ties)
		})
	}
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/PranavThoppe/GameTracker/internal/model"

	"github.com/stretchr/testify/assert"
)

type stubSleeper struct {
	state *model.SleeperNFLState
	err   error
}

func (s *stubSleeper) GetNFLState(ctx context.Context) (*model.SleeperNFLState, error) {
	return s.state, s.err
}

func (s *stubSleeper) GetUser(ctx context.Context, username string) (*model.SleeperUser, error) {
	return nil, nil
}

func (s *stubSleeper) GetLeagues(ctx context.Context, userID, season string) ([]*model.SleeperLeague, error) {
	return nil, nil
}

func (s *stubSleeper) GetLeagueRosters(ctx context.Context, leagueID string) ([]*model.SleeperRoster, error) {
	return nil, nil
}

func (s *stubSleeper) GetLeagueUsers(ctx context.Context, leagueID string) ([]*model.SleeperLeagueUser, error) {
	return nil, nil
}

func (s *stubSleeper) FetchPlayers(ctx context.Context) (map[string]*model.SleeperRawPlayer, error) {
	return nil, nil
}

func TestCurrentWeek(t *testing.T) {
	tests := []struct {
		name         string
		sleeper      *stubSleeper
		expectedYear int
		expectedWeek int
	}{
		{
			name:         "uses upstream state",
			sleeper:      &stubSleeper{state: &model.SleeperNFLState{Week: 5, Season: "2025"}},
			expectedYear: 2025,
			expectedWeek: 5,
		},
		{
			name:         "falls back on error",
			sleeper:      &stubSleeper{err: errors.New("timeout")},
			expectedYear: 2024,
			expectedWeek: 1,
		},
		{
			name:         "falls back on bad season",
			sleeper:      &stubSleeper{state: &model.SleeperNFLState{Week: 0, Season: "offseason"}},
			expectedYear: 2024,
			expectedWeek: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := NewSyncRunner(nil, nil, nil, tt.sleeper, 2024, testLogger())
			year, week := runner.CurrentWeek(context.Background())
			assert.Equal(t, tt.expectedYear, year)
			assert.Equal(t, tt.expectedWeek, week)
		})
	}
}

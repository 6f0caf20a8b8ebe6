package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/PranavThoppe/GameTracker/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPredictor struct {
	mu         sync.Mutex
	prediction *model.MLPrediction
	err        error
	failGameID string // 请求中包含该game_id时返回错误（模拟单分组失败）
	requests   [][]model.MLGame
}

func (s *stubPredictor) PredictTop(ctx context.Context, games []model.MLGame) (*model.MLPrediction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, games)
	if s.failGameID != "" {
		for _, g := range games {
			if g.GameID == s.failGameID {
				return nil, errors.New("model endpoint unavailable")
			}
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	if s.prediction == nil {
		return &model.MLPrediction{}, nil
	}
	return s.prediction, nil
}

func TestRankGroups_BuildsFeatures(t *testing.T) {
	predictor := &stubPredictor{}
	svc := NewPredictionService(predictor, testTeams(), testLogger())

	groups := map[string][]GameView{
		"FOX Early Games": {
			gv("g1", "DAL", "PHI", "Sun, September 7th at 1:00 PM EDT", "FOX"),
			gv("g2", "MIN", "ATL", "Sun, September 7th at 1:00 PM EDT", "FOX"),
		},
	}
	records := []*model.Team{
		{Abbreviation: "DAL", Season: 2025, Wins: 3, WinPercentage: 0.75},
		{Abbreviation: "PHI", Season: 2025, Wins: 2, WinPercentage: 0.5},
	}

	svc.RankGroups(context.Background(), groups, records)

	require.Len(t, predictor.requests, 1)
	features := predictor.requests[0]
	require.Len(t, features, 2)

	byID := make(map[string]model.MLGame, len(features))
	for _, f := range features {
		byID[f.GameID] = f
	}

	dal := byID[model.MLGameID(2025, 1, "DAL", "PHI")]
	assert.Equal(t, "PHI", dal.HomeTeam)
	assert.Equal(t, "DAL", dal.AwayTeam)
	assert.Equal(t, 0.5, dal.HomeWinPctPre)
	assert.Equal(t, 0.75, dal.AwayWinPctPre)
	assert.Equal(t, 2, dal.HomeWinsPre)
	assert.Equal(t, 3, dal.AwayWinsPre)
	assert.Equal(t, 1, dal.IsLocalTeam)
	assert.Equal(t, 1, dal.IsInStateTeam)
	assert.Equal(t, 1, dal.DivisionalMatchup)

	// 无战绩球队全0，非本地非同州非分区全0
	other := byID[model.MLGameID(2025, 1, "MIN", "ATL")]
	assert.Zero(t, other.HomeWinPctPre)
	assert.Zero(t, other.AwayWinsPre)
	assert.Equal(t, 0, other.IsLocalTeam)
	assert.Equal(t, 0, other.IsInStateTeam)
	assert.Equal(t, 0, other.DivisionalMatchup)
}

func TestRankGroups_FailedGroupIsIsolated(t *testing.T) {
	badID := model.MLGameID(2025, 1, "MIN", "GB")
	goodID := model.MLGameID(2025, 1, "NO", "ATL")
	predictor := &stubPredictor{
		failGameID: badID,
		prediction: &model.MLPrediction{
			TopGameID:      goodID,
			TopProbability: 0.9,
			Probabilities:  []model.MLProbability{{GameID: goodID, Probability: 0.9, Score: 2.1, ProbabilityAll: 0.45}},
		},
	}
	svc := NewPredictionService(predictor, testTeams(), testLogger())

	groups := map[string][]GameView{
		"FOX Early Games": {gv("g1", "MIN", "GB", "Sun, September 7th at 1:00 PM EDT", "FOX")},
		"CBS Early Games": {gv("g2", "NO", "ATL", "Sun, September 7th at 1:00 PM EDT", "CBS")},
	}

	outcomes := svc.RankGroups(context.Background(), groups, nil)
	require.Len(t, outcomes, 2)

	// 失败的组带错误且不标注比赛
	assert.NotEmpty(t, outcomes["FOX Early Games"].Error)
	assert.Nil(t, groups["FOX Early Games"][0].Prediction)

	// 成功的组正常标注
	assert.Empty(t, outcomes["CBS Early Games"].Error)
	assert.Equal(t, goodID, outcomes["CBS Early Games"].TopGameID)
	require.NotNil(t, groups["CBS Early Games"][0].Prediction)
	assert.True(t, groups["CBS Early Games"][0].Prediction.TopPick)
}

func TestRankGroups_SkippedGamesStayUnannotated(t *testing.T) {
	topID := model.MLGameID(2025, 1, "NO", "ATL")
	skippedID := model.MLGameID(2025, 1, "MIN", "GB")
	predictor := &stubPredictor{
		prediction: &model.MLPrediction{
			TopGameID:      topID,
			TopProbability: 0.8,
			Probabilities:  []model.MLProbability{{GameID: topID, Probability: 0.8, Score: 1.5, ProbabilityAll: 0.4}},
			Skipped:        []string{skippedID},
			LocalEnforced:  true,
		},
	}
	svc := NewPredictionService(predictor, testTeams(), testLogger())

	groups := map[string][]GameView{
		"TBD Early Games": {
			gv("g1", "NO", "ATL", "Sun, September 7th at 1:00 PM EDT", ""),
			gv("g2", "MIN", "GB", "Sun, September 7th at 1:00 PM EDT", ""),
		},
	}

	outcomes := svc.RankGroups(context.Background(), groups, nil)
	require.Contains(t, outcomes, "TBD Early Games")
	assert.True(t, outcomes["TBD Early Games"].LocalEnforced)

	require.NotNil(t, groups["TBD Early Games"][0].Prediction)
	assert.Nil(t, groups["TBD Early Games"][1].Prediction)
}

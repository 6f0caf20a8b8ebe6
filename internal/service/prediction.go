package service

import (
	"context"
	"sync"

	"github.com/PranavThoppe/GameTracker/internal/config"
	"github.com/PranavThoppe/GameTracker/internal/interfaces"
	"github.com/PranavThoppe/GameTracker/internal/model"

	"github.com/sirupsen/logrus"
)

// PredictionService 把TBD分组送给模型端点排序。每个分组互相独立：
// 一个分组失败不影响其他分组出结果
type PredictionService struct {
	predictor interfaces.Predictor
	teams     config.TeamMap
	localTeam string
	logger    *logrus.Logger
}

func NewPredictionService(predictor interfaces.Predictor, teams config.TeamMap, logger *logrus.Logger) *PredictionService {
	return &PredictionService{
		predictor: predictor,
		teams:     teams,
		localTeam: teams.LocalTeam(),
		logger:    logger,
	}
}

// RankGroups 并发对每个分组调一次模型，结果合并回各组的 GameView.Prediction。
// 入参分组里的切片会被原地标注
func (s *PredictionService) RankGroups(ctx context.Context, groups map[string][]GameView, records []*model.Team) map[string]*GroupPrediction {
	recordMap := make(map[string]*model.Team, len(records))
	for _, t := range records {
		recordMap[t.Abbreviation] = t
	}

	outcomes := make(map[string]*GroupPrediction, len(groups))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for key, games := range groups {
		wg.Add(1)
		go func(key string, games []GameView) {
			defer wg.Done()
			features := s.buildFeatures(games, recordMap)
			pred, err := s.predictor.PredictTop(ctx, features)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				s.logger.WithFields(logrus.Fields{"group": key, "error": err}).Warn("分组模型排序失败，降级为无预测展示")
				outcomes[key] = &GroupPrediction{Error: err.Error()}
				return
			}
			outcomes[key] = s.apply(games, pred)
		}(key, games)
	}
	wg.Wait()

	return outcomes
}

// buildFeatures 构造模型输入特征。战绩缺失的球队胜率和胜场都按0处理
func (s *PredictionService) buildFeatures(games []GameView, records map[string]*model.Team) []model.MLGame {
	features := make([]model.MLGame, 0, len(games))
	for _, g := range games {
		var homeWinPct, awayWinPct float64
		var homeWins, awayWins int
		if t, ok := records[g.HomeTeam]; ok {
			homeWinPct = t.WinPercentage
			homeWins = t.Wins
		}
		if t, ok := records[g.AwayTeam]; ok {
			awayWinPct = t.WinPercentage
			awayWins = t.Wins
		}
		features = append(features, model.MLGame{
			GameID:            model.MLGameID(g.Year, g.Week, g.AwayTeam, g.HomeTeam),
			HomeTeam:          g.HomeTeam,
			AwayTeam:          g.AwayTeam,
			HomeWinPctPre:     homeWinPct,
			AwayWinPctPre:     awayWinPct,
			HomeWinsPre:       homeWins,
			AwayWinsPre:       awayWins,
			IsLocalTeam:       boolFlag(s.isLocalMatchup(g)),
			IsInStateTeam:     boolFlag(s.isInStateMatchup(g)),
			DivisionalMatchup: boolFlag(s.teams.IsDivisionalMatchup(g.HomeTeam, g.AwayTeam)),
		})
	}
	return features
}

func (s *PredictionService) isLocalMatchup(g GameView) bool {
	return s.localTeam != "" && (g.HomeTeam == s.localTeam || g.AwayTeam == s.localTeam)
}

func (s *PredictionService) isInStateMatchup(g GameView) bool {
	return s.teams[g.HomeTeam].InStateTeams || s.teams[g.AwayTeam].InStateTeams
}

// apply 模型结果写回本组比赛。skipped里的比赛保持无预测
func (s *PredictionService) apply(games []GameView, pred *model.MLPrediction) *GroupPrediction {
	skipped := make(map[string]struct{}, len(pred.Skipped))
	for _, id := range pred.Skipped {
		skipped[id] = struct{}{}
	}
	probByID := make(map[string]*model.MLProbability, len(pred.Probabilities))
	for i := range pred.Probabilities {
		probByID[pred.Probabilities[i].GameID] = &pred.Probabilities[i]
	}

	for i := range games {
		id := model.MLGameID(games[i].Year, games[i].Week, games[i].AwayTeam, games[i].HomeTeam)
		if _, ok := skipped[id]; ok {
			continue
		}
		p, ok := probByID[id]
		if !ok {
			continue
		}
		games[i].Prediction = &GamePrediction{
			Probability:    p.Probability,
			Score:          p.Score,
			ProbabilityAll: p.ProbabilityAll,
			TopPick:        id == pred.TopGameID,
		}
	}

	return &GroupPrediction{
		TopGameID:      pred.TopGameID,
		TopProbability: pred.TopProbability,
		LocalEnforced:  pred.LocalEnforced,
	}
}

func boolFlag(b bool) int {
	if b {
		return 1
	}
	return 0
}

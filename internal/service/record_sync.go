package service

import (
	"context"
	"fmt"
	"math"

	"github.com/PranavThoppe/GameTracker/internal/interfaces"
	"github.com/PranavThoppe/GameTracker/internal/repository"

	"github.com/sirupsen/logrus"
)

// RecordSyncService 球队与战绩同步：ESPN teams/record → teams表
type RecordSyncService struct {
	source interfaces.RecordSource
	repo   repository.TeamRepository
	logger *logrus.Logger
}

func NewRecordSyncService(source interfaces.RecordSource, repo repository.TeamRepository, logger *logrus.Logger) *RecordSyncService {
	return &RecordSyncService{source: source, repo: repo, logger: logger}
}

// SyncTeams 同步联盟全部球队基础信息（名称/缩写/队徽），战绩走 SyncRecords
func (s *RecordSyncService) SyncTeams(ctx context.Context, season int) (int, error) {
	teams, err := s.source.FetchTeams(ctx, season)
	if err != nil {
		return 0, fmt.Errorf("拉取球队列表失败: %w", err)
	}

	processed, err := s.repo.UpsertTeams(ctx, teams)
	if err != nil {
		return 0, fmt.Errorf("写入球队失败: %w", err)
	}

	s.logger.WithFields(logrus.Fields{"season": season, "count": processed}).Info("球队同步完成")
	return processed, nil
}

// SyncRecords 逐队拉取战绩并更新。单队失败只记日志继续，
// 全部失败才算整体失败
func (s *RecordSyncService) SyncRecords(ctx context.Context, season int) (int, error) {
	teams, err := s.repo.ListBySeason(ctx, season)
	if err != nil {
		return 0, fmt.Errorf("查询球队列表失败: %w", err)
	}
	if len(teams) == 0 {
		return 0, fmt.Errorf("赛季%d球队表为空，请先同步球队", season)
	}

	updated := 0
	for _, t := range teams {
		wins, losses, ties, err := s.source.FetchRecord(ctx, t.ESPNTeamID, season)
		if err != nil {
			s.logger.WithFields(logrus.Fields{
				"team":  t.Abbreviation,
				"error": err,
			}).Warn("拉取单队战绩失败，跳过")
			continue
		}
		winPct := WinPercentage(wins, losses, ties)
		if err := s.repo.UpdateRecord(ctx, t.ESPNTeamID, season, wins, losses, ties, winPct); err != nil {
			s.logger.WithFields(logrus.Fields{
				"team":  t.Abbreviation,
				"error": err,
			}).Warn("更新单队战绩失败，跳过")
			continue
		}
		updated++
	}

	if updated == 0 {
		return 0, fmt.Errorf("赛季%d战绩同步全部失败", season)
	}
	s.logger.WithFields(logrus.Fields{"season": season, "count": updated}).Info("战绩同步完成")
	return updated, nil
}

// WinPercentage 胜率=（胜场+0.5*平局）/总场次，保留3位小数，零场次返回0
func WinPercentage(wins, losses, ties int) float64 {
	total := wins + losses + ties
	if total == 0 {
		return 0
	}
	pct := (float64(wins) + 0.5*float64(ties)) / float64(total)
	return math.Round(pct*1000) / 1000
}

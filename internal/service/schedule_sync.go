package service

import (
	"context"
	"fmt"

	"github.com/PranavThoppe/GameTracker/internal/interfaces"
	"github.com/PranavThoppe/GameTracker/internal/repository"

	"github.com/sirupsen/logrus"
)

// ScheduleSyncService 周赛程同步：ESPN scoreboard → schedules表
type ScheduleSyncService struct {
	source interfaces.ScheduleSource
	repo   repository.ScheduleRepository
	logger *logrus.Logger
}

func NewScheduleSyncService(source interfaces.ScheduleSource, repo repository.ScheduleRepository, logger *logrus.Logger) *ScheduleSyncService {
	return &ScheduleSyncService{source: source, repo: repo, logger: logger}
}

// SyncWeek 同步指定赛季指定周的赛程，返回处理条数
func (s *ScheduleSyncService) SyncWeek(ctx context.Context, year, week int) (int, error) {
	games, err := s.source.FetchWeek(ctx, year, week)
	if err != nil {
		return 0, fmt.Errorf("拉取赛程失败: %w", err)
	}
	if len(games) == 0 {
		s.logger.WithFields(logrus.Fields{"year": year, "week": week}).Warn("上游返回空赛程，跳过写库")
		return 0, nil
	}

	processed, err := s.repo.UpsertGames(ctx, games)
	if err != nil {
		return 0, fmt.Errorf("写入赛程失败: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"year":  year,
		"week":  week,
		"count": processed,
	}).Info("赛程同步完成")
	return processed, nil
}

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PranavThoppe/GameTracker/internal/interfaces"
	"github.com/PranavThoppe/GameTracker/internal/model"
	"github.com/PranavThoppe/GameTracker/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

// PlayerSyncService 球员字典同步：Sleeper /players/nfl → players表。
// 全量字典上万条，Sleeper建议每天最多拉一次，靠定时任务触发
type PlayerSyncService struct {
	source interfaces.SleeperSource
	repo   repository.PlayerRepository
	logger *logrus.Logger
}

func NewPlayerSyncService(source interfaces.SleeperSource, repo repository.PlayerRepository, logger *logrus.Logger) *PlayerSyncService {
	return &PlayerSyncService{source: source, repo: repo, logger: logger}
}

// SyncPlayers 拉取全量球员字典并写库，返回处理条数
func (s *PlayerSyncService) SyncPlayers(ctx context.Context) (int, error) {
	raw, err := s.source.FetchPlayers(ctx)
	if err != nil {
		return 0, fmt.Errorf("拉取球员字典失败: %w", err)
	}

	players := make([]*model.Player, 0, len(raw))
	for id, p := range raw {
		if p == nil {
			continue
		}
		players = append(players, toPlayer(id, p))
	}

	processed, err := s.repo.UpsertPlayers(ctx, players)
	if err != nil {
		return 0, fmt.Errorf("写入球员失败: %w", err)
	}

	s.logger.WithField("count", processed).Info("球员同步完成")
	return processed, nil
}

// toPlayer Sleeper原始结构 → 数据库模型
func toPlayer(id string, p *model.SleeperRawPlayer) *model.Player {
	fullName := p.FullName
	if fullName == "" {
		fullName = strings.TrimSpace(p.FirstName + " " + p.LastName)
	}

	var positions datatypes.JSON
	if len(p.FantasyPositions) > 0 {
		if b, err := json.Marshal(p.FantasyPositions); err == nil {
			positions = datatypes.JSON(b)
		}
	}

	return &model.Player{
		ID:               id,
		FullName:         fullName,
		FirstName:        p.FirstName,
		LastName:         p.LastName,
		Position:         p.Position,
		TeamAbbr:         p.Team,
		Status:           p.Status,
		Active:           p.Active,
		YearsExp:         p.YearsExp,
		Age:              p.Age,
		College:          p.College,
		FantasyPositions: positions,
		InjuryStatus:     p.InjuryStatus,
		InjuryBodyPart:   p.InjuryBodyPart,
		SearchRank:       p.SearchRank,
		ESPNID:           p.ESPNID,
	}
}

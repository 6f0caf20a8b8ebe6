package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/PranavThoppe/GameTracker/internal/model"

	"gorm.io/gorm"
)

// TeamRepository 球队战绩表仓储接口
type TeamRepository interface {
	// ListRecords 按缩写列表查询指定赛季战绩，abbrs 为空返回该赛季全部
	ListRecords(ctx context.Context, abbrs []string, season int) ([]*model.Team, error)
	// ListBySeason 指定赛季全部球队（战绩同步遍历用）
	ListBySeason(ctx context.Context, season int) ([]*model.Team, error)
	// UpsertTeams 批量写入球队基础信息，(abbreviation,season) 冲突则更新
	UpsertTeams(ctx context.Context, teams []*model.Team) (int, error)
	// UpdateRecord 更新单队战绩
	UpdateRecord(ctx context.Context, espnTeamID, season, wins, losses, ties int, winPct float64) error
}

type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository 创建 TeamRepository 实例
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

// ListRecords 按缩写列表查询战绩
func (r *teamRepository) ListRecords(ctx context.Context, abbrs []string, season int) ([]*model.Team, error) {
	db := r.db.WithContext(ctx).Model(&model.Team{}).Where("season = ?", season)

	if len(abbrs) > 0 {
		upper := make([]string, 0, len(abbrs))
		for _, a := range abbrs {
			upper = append(upper, strings.ToUpper(strings.TrimSpace(a)))
		}
		db = db.Where("abbreviation IN ?", upper)
	}

	var teams []*model.Team
	if err := db.Order("abbreviation ASC").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

// ListBySeason 指定赛季全部球队
func (r *teamRepository) ListBySeason(ctx context.Context, season int) ([]*model.Team, error) {
	var teams []*model.Team
	if err := r.db.WithContext(ctx).Model(&model.Team{}).
		Where("season = ?", season).
		Order("abbreviation ASC").
		Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

// UpsertTeams 批量写入球队基础信息
func (r *teamRepository) UpsertTeams(ctx context.Context, teams []*model.Team) (int, error) {
	if len(teams) == 0 {
		return 0, nil
	}

	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return 0, fmt.Errorf("开启事务失败: %w", tx.Error)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
		}
	}()

	processed := 0
	for i := range teams {
		if err := tx.Create(teams[i]).Error; err != nil {
			if strings.Contains(err.Error(), "uk_abbr_season") {
				if err := tx.Model(&model.Team{}).
					Where("abbreviation = ? AND season = ?", teams[i].Abbreviation, teams[i].Season).
					Updates(map[string]interface{}{
						"espn_team_id": teams[i].ESPNTeamID,
						"name":         teams[i].Name,
						"logo_url":     teams[i].LogoURL,
						"updated_at":   teams[i].UpdatedAt,
					}).Error; err != nil {
					tx.Rollback()
					return 0, fmt.Errorf("更新Team失败: %w, 球队: %s", err, teams[i].Abbreviation)
				}
			} else {
				tx.Rollback()
				return 0, fmt.Errorf("保存Team失败: %w, 球队: %s", err, teams[i].Abbreviation)
			}
		}
		processed++
	}

	if err := tx.Commit().Error; err != nil {
		return 0, fmt.Errorf("提交事务失败: %w", err)
	}
	return processed, nil
}

// UpdateRecord 更新单队战绩（胜率已在服务层按3位小数舍入）
func (r *teamRepository) UpdateRecord(ctx context.Context, espnTeamID, season, wins, losses, ties int, winPct float64) error {
	return r.db.WithContext(ctx).Model(&model.Team{}).
		Where("espn_team_id = ? AND season = ?", espnTeamID, season).
		Updates(map[string]interface{}{
			"wins":           wins,
			"losses":         losses,
			"ties":           ties,
			"win_percentage": winPct,
		}).Error
}

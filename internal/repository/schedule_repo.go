package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/PranavThoppe/GameTracker/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GameFilter 赛程查询条件
type GameFilter struct {
	Year  int      // 赛季，0为不过滤
	Week  int      // 周次，0为不过滤
	Teams []string // 任一方命中即返回，空为不过滤
}

// ScheduleRepository 赛程表仓储接口
type ScheduleRepository interface {
	// ListGames 按条件查询比赛，固定按 year/week/time 排序
	ListGames(ctx context.Context, filter GameFilter) ([]*model.Schedule, error)
	// UpsertGames 批量写入，(year,week,home,away) 冲突则更新时间/转播/状态
	UpsertGames(ctx context.Context, games []*model.Schedule) (int, error)
}

type scheduleRepository struct {
	db *gorm.DB
}

// NewScheduleRepository 创建 ScheduleRepository 实例
func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

// ListGames 按条件查询比赛
func (r *scheduleRepository) ListGames(ctx context.Context, filter GameFilter) ([]*model.Schedule, error) {
	db := r.db.WithContext(ctx).Model(&model.Schedule{})

	if filter.Year > 0 {
		db = db.Where("year = ?", filter.Year)
	}
	if filter.Week > 0 {
		db = db.Where("week = ?", filter.Week)
	}
	if len(filter.Teams) > 0 {
		teams := make([]string, 0, len(filter.Teams))
		for _, t := range filter.Teams {
			teams = append(teams, strings.ToUpper(strings.TrimSpace(t)))
		}
		db = db.Where("home_team IN ? OR away_team IN ?", teams, teams)
	}

	var games []*model.Schedule
	if err := db.Order("year ASC, week ASC, time ASC").Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

// UpsertGames 批量写入赛程（事务内逐条 create，唯一键冲突转 update）
func (r *scheduleRepository) UpsertGames(ctx context.Context, games []*model.Schedule) (int, error) {
	if len(games) == 0 {
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
	for i := range games {
		if games[i].GameUUID == "" {
			games[i].GameUUID = uuid.NewString() // 生成全局唯一ID
		}
		if err := tx.Create(games[i]).Error; err != nil {
			if strings.Contains(err.Error(), "uk_year_week_teams") {
				// 同一场比赛已存在：只刷新可变字段
				if err := tx.Model(&model.Schedule{}).
					Where("year = ? AND week = ? AND home_team = ? AND away_team = ?",
						games[i].Year, games[i].Week, games[i].HomeTeam, games[i].AwayTeam).
					Updates(map[string]interface{}{
						"time":            games[i].Time,
						"broadcast":       games[i].Broadcast,
						"broadcast_names": games[i].BroadcastNames,
						"status":          games[i].Status,
						"updated_at":      games[i].UpdatedAt,
					}).Error; err != nil {
					tx.Rollback()
					return 0, fmt.Errorf("更新Schedule失败: %w, 比赛: %s@%s", err, games[i].AwayTeam, games[i].HomeTeam)
				}
			} else {
				tx.Rollback()
				return 0, fmt.Errorf("保存Schedule失败: %w, 比赛: %s@%s", err, games[i].AwayTeam, games[i].HomeTeam)
			}
		}
		processed++
	}

	if err := tx.Commit().Error; err != nil {
		return 0, fmt.Errorf("提交事务失败: %w", err)
	}
	return processed, nil
}

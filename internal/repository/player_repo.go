package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/PranavThoppe/GameTracker/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PlayerFilter 球员查询条件
type PlayerFilter struct {
	IDs      []string // Sleeper球员ID列表（阵容查询的主场景）
	Team     string   // 球队缩写
	Position string   // 场上位置
	Active   *bool    // 是否现役，nil为不过滤
	Search   string   // 姓名模糊搜索
}

// PlayerRepository 球员表仓储接口
type PlayerRepository interface {
	ListPlayers(ctx context.Context, filter PlayerFilter) ([]*model.Player, error)
	// UpsertPlayers 批量写入球员（全量字典上万条，分批+主键冲突整行更新）
	UpsertPlayers(ctx context.Context, players []*model.Player) (int, error)
}

type playerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository 创建 PlayerRepository 实例
func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

// ListPlayers 按条件查询球员
func (r *playerRepository) ListPlayers(ctx context.Context, filter PlayerFilter) ([]*model.Player, error) {
	db := r.db.WithContext(ctx).Model(&model.Player{})

	if len(filter.IDs) > 0 {
		ids := make([]string, 0, len(filter.IDs))
		for _, id := range filter.IDs {
			ids = append(ids, strings.TrimSpace(id))
		}
		db = db.Where("id IN ?", ids)
	}
	if filter.Team != "" {
		db = db.Where("team_abbr = ?", strings.ToUpper(filter.Team))
	}
	if filter.Position != "" {
		db = db.Where("position = ?", strings.ToUpper(filter.Position))
	}
	if filter.Active != nil {
		db = db.Where("active = ?", *filter.Active)
	}
	if filter.Search != "" {
		like := "%" + strings.ToLower(filter.Search) + "%"
		db = db.Where("LOWER(full_name) LIKE ? OR LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?", like, like, like)
	}

	var players []*model.Player
	if err := db.Order("search_rank ASC").Limit(500).Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}

// UpsertPlayers 批量写入球员
func (r *playerRepository) UpsertPlayers(ctx context.Context, players []*model.Player) (int, error) {
	if len(players) == 0 {
		return 0, nil
	}

	const batchSize = 200
	processed := 0
	for start := 0; start < len(players); start += batchSize {
		end := start + batchSize
		if end > len(players) {
			end = len(players)
		}
		batch := players[start:end]
		if err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				UpdateAll: true,
			}).
			Create(&batch).Error; err != nil {
			return processed, fmt.Errorf("保存Player批次失败: %w", err)
		}
		processed += len(batch)
	}
	return processed, nil
}

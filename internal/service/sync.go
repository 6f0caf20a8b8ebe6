package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/PranavThoppe/GameTracker/internal/interfaces"

	"github.com/sirupsen/logrus"
)

// SyncResult 一次组合同步的统计
type SyncResult struct {
	Year      int    `json:"year"`
	Week      int    `json:"week"`
	Schedules int    `json:"schedules"`
	Teams     int    `json:"teams"`
	Records   int    `json:"records"`
	Players   int    `json:"players"`
	Duration  string `json:"duration"`
}

// SyncRunner 组合同步入口，定时任务和手动触发共用。
// 各步骤串行执行：球队 → 战绩 → 赛程 → 球员，前三步任一失败整体失败，
// 球员字典失败只记日志（与核心视图无关）
type SyncRunner struct {
	schedule      *ScheduleSyncService
	record        *RecordSyncService
	player        *PlayerSyncService
	sleeper       interfaces.SleeperSource
	defaultSeason int
	logger        *logrus.Logger
}

func NewSyncRunner(
	schedule *ScheduleSyncService,
	record *RecordSyncService,
	player *PlayerSyncService,
	sleeper interfaces.SleeperSource,
	defaultSeason int,
	logger *logrus.Logger,
) *SyncRunner {
	return &SyncRunner{
		schedule:      schedule,
		record:        record,
		player:        player,
		sleeper:       sleeper,
		defaultSeason: defaultSeason,
		logger:        logger,
	}
}

// CurrentWeek 从Sleeper状态接口解析当前赛季与周次，失败时回退到配置默认赛季第1周
func (r *SyncRunner) CurrentWeek(ctx context.Context) (year, week int) {
	state, err := r.sleeper.GetNFLState(ctx)
	if err != nil {
		r.logger.WithField("error", err).Warn("获取NFL状态失败，回退默认赛季")
		return r.defaultSeason, 1
	}
	year, err = strconv.Atoi(state.Season)
	if err != nil || year == 0 {
		year = r.defaultSeason
	}
	week = state.Week
	if week < 1 {
		week = 1
	}
	return year, week
}

// SyncAll 执行一轮完整同步。year/week 传0则按当前周
func (r *SyncRunner) SyncAll(ctx context.Context, year, week int) (*SyncResult, error) {
	start := time.Now()
	if year == 0 || week == 0 {
		cy, cw := r.CurrentWeek(ctx)
		if year == 0 {
			year = cy
		}
		if week == 0 {
			week = cw
		}
	}

	result := &SyncResult{Year: year, Week: week}

	teams, err := r.record.SyncTeams(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("同步球队失败: %w", err)
	}
	result.Teams = teams

	records, err := r.record.SyncRecords(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("同步战绩失败: %w", err)
	}
	result.Records = records

	schedules, err := r.schedule.SyncWeek(ctx, year, week)
	if err != nil {
		return nil, fmt.Errorf("同步赛程失败: %w", err)
	}
	result.Schedules = schedules

	players, err := r.player.SyncPlayers(ctx)
	if err != nil {
		r.logger.WithField("error", err).Warn("同步球员失败，不影响本轮结果")
	}
	result.Players = players

	result.Duration = time.Since(start).String()
	r.logger.WithFields(logrus.Fields{
		"year":     year,
		"week":     week,
		"duration": result.Duration,
	}).Info("组合同步完成")
	return result, nil
}

// RunScheduled 定时任务入口（cron回调不带ctx，这里自己兜一个超时）
func (r *SyncRunner) RunScheduled() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()
	if _, err := r.SyncAll(ctx, 0, 0); err != nil {
		r.logger.WithField("error", err).Error("定时同步失败")
	}
}

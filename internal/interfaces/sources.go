package interfaces

import (
	"context"

	"github.com/PranavThoppe/GameTracker/internal/model"
)

// ScheduleSource 周赛程数据源（ESPN scoreboard）
type ScheduleSource interface {
	// FetchWeek 拉取指定赛季指定周的全部比赛，已转换为数据库模型
	FetchWeek(ctx context.Context, year, week int) ([]*model.Schedule, error)
}

// RecordSource 球队与战绩数据源（ESPN teams/record）
type RecordSource interface {
	// FetchTeams 拉取联盟全部球队（球队表引导用）
	FetchTeams(ctx context.Context, season int) ([]*model.Team, error)
	// FetchRecord 拉取单队总战绩，返回胜/负/平
	FetchRecord(ctx context.Context, espnTeamID, season int) (wins, losses, ties int, err error)
}

// SleeperSource Sleeper公共API数据源
type SleeperSource interface {
	GetNFLState(ctx context.Context) (*model.SleeperNFLState, error)
	GetUser(ctx context.Context, username string) (*model.SleeperUser, error)
	GetLeagues(ctx context.Context, userID, season string) ([]*model.SleeperLeague, error)
	GetLeagueRosters(ctx context.Context, leagueID string) ([]*model.SleeperRoster, error)
	GetLeagueUsers(ctx context.Context, leagueID string) ([]*model.SleeperLeagueUser, error)
	// FetchPlayers 全量球员字典，键为Sleeper球员ID
	FetchPlayers(ctx context.Context) (map[string]*model.SleeperRawPlayer, error)
}

// Predictor 外部排序模型。每个TBD分组一次调用，整组要么全部返回要么整体失败
type Predictor interface {
	PredictTop(ctx context.Context, games []model.MLGame) (*model.MLPrediction, error)
}

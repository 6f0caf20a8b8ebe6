package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/PranavThoppe/GameTracker/internal/config"
	"github.com/PranavThoppe/GameTracker/internal/model"
	"github.com/PranavThoppe/GameTracker/internal/repository"

	"github.com/sirupsen/logrus"
)

// GameView 对前端暴露的单场比赛结构
type GameView struct {
	ID          string          `json:"id"`
	Year        int             `json:"year"`
	Week        int             `json:"week"`
	HomeTeam    string          `json:"homeTeam"`
	AwayTeam    string          `json:"awayTeam"`
	TimeDisplay string          `json:"timeDisplay"`
	Broadcast   *string         `json:"broadcast"`
	Matchup     string          `json:"matchup"`
	Status      string          `json:"status"`
	Prediction  *GamePrediction `json:"prediction,omitempty"`
}

// GamePrediction 模型结果合并到单场比赛上的展示字段
type GamePrediction struct {
	Probability    float64 `json:"probability"`
	Score          float64 `json:"score"`
	ProbabilityAll float64 `json:"probability_all"`
	TopPick        bool    `json:"top_pick"`
}

// GroupPrediction 分组级模型结果。Error 非空表示该组排序不可用（软失败），
// 组内比赛照常展示，只是没有预测徽标
type GroupPrediction struct {
	TopGameID      string  `json:"top_game_id,omitempty"`
	TopProbability float64 `json:"top_probability,omitempty"`
	LocalEnforced  bool    `json:"local_enforced,omitempty"`
	Error          string  `json:"error,omitempty"`
}

// ClassifiedWeek 一周比赛的已确认/TBD分桶结果
type ClassifiedWeek struct {
	Confirmed     map[string][]GameView `json:"confirmed"`
	ConfirmedKeys []string              `json:"confirmed_keys"`
	TBD           map[string][]GameView `json:"tbd"`
	TBDKeys       []string              `json:"tbd_keys"`
}

// WeekViewResult 转播分析视图的完整返回
type WeekViewResult struct {
	Year          int                         `json:"year"`
	Week          int                         `json:"week"`
	Confirmed     map[string][]GameView       `json:"confirmed"`
	ConfirmedKeys []string                    `json:"confirmed_keys"`
	TBD           map[string][]GameView       `json:"tbd"`
	TBDKeys       []string                    `json:"tbd_keys"`
	Predictions   map[string]*GroupPrediction `json:"predictions,omitempty"`
}

// BroadcastService 转播分类与排序视图服务。纯转换：除每组一次模型调用外无副作用
type BroadcastService struct {
	scheduleRepo     repository.ScheduleRepository
	teamRepo         repository.TeamRepository
	prediction       *PredictionService
	teams            config.TeamMap
	localTeam        string
	promoteSingleTBD bool
	logger           *logrus.Logger
}

// NewBroadcastService 创建 BroadcastService。prediction 可为nil（纯分类，不排序）
func NewBroadcastService(
	scheduleRepo repository.ScheduleRepository,
	teamRepo repository.TeamRepository,
	prediction *PredictionService,
	teams config.TeamMap,
	bcfg *config.BroadcastConfig,
	logger *logrus.Logger,
) *BroadcastService {
	local := teams.LocalTeam()
	if local == "" {
		logger.Warn("球队配置中没有本地队标记，本地队规则不生效")
	}
	return &BroadcastService{
		scheduleRepo:     scheduleRepo,
		teamRepo:         teamRepo,
		prediction:       prediction,
		teams:            teams,
		localTeam:        local,
		promoteSingleTBD: bcfg.PromoteSingleTBD,
		logger:           logger,
	}
}

// ToGameView 数据库行 → 展示结构
func ToGameView(s *model.Schedule) GameView {
	return GameView{
		ID:          s.GameUUID,
		Year:        s.Year,
		Week:        s.Week,
		HomeTeam:    s.HomeTeam,
		AwayTeam:    s.AwayTeam,
		TimeDisplay: s.Time,
		Broadcast:   s.Broadcast,
		Matchup:     fmt.Sprintf("%s @ %s", s.AwayTeam, s.HomeTeam),
		Status:      s.Status,
	}
}

// isLocalGame 任一方为本地队
func (s *BroadcastService) isLocalGame(g GameView) bool {
	return s.localTeam != "" && (g.HomeTeam == s.localTeam || g.AwayTeam == s.localTeam)
}

// networkOf 转播网络，未定统一归为"TBD"
func networkOf(g GameView) string {
	if g.Broadcast == nil || *g.Broadcast == "" {
		return "TBD"
	}
	return *g.Broadcast
}

// isNFLNetwork NFL Network系转播不展示
func isNFLNetwork(g GameView) bool {
	if g.Broadcast == nil {
		return false
	}
	b := strings.ToLower(*g.Broadcast)
	return strings.Contains(b, "nfl net") || b == "nfln" || b == "nfl network"
}

// is405Game 上游会重复吐出"4:05 PM"这个噪声时段，按文本匹配压掉
func is405Game(g GameView) bool {
	return strings.Contains(g.TimeDisplay, "4:05 PM")
}

// Classify 执行完整分类管线。顺序固定：
// 先过滤（NFL Network、非本地队的4:05 PM）→ 焦点时段判定 → 本地队覆写
// （本地队比赛必入已确认，并从TBD剔除同网络同时段的其他比赛）→ 分组排序
// → 单场TBD分组可选提升 → 分桶键排序。同样输入必产生同样输出
func (s *BroadcastService) Classify(games []GameView, year int) *ClassifiedWeek {
	// 过滤前先记下本地队比赛：4:05过滤对本地队豁免，覆写规则也要用
	var localGames []GameView
	for _, g := range games {
		if s.isLocalGame(g) {
			localGames = append(localGames, g)
		}
	}

	filtered := make([]GameView, 0, len(games))
	for _, g := range games {
		if isNFLNetwork(g) {
			continue
		}
		if is405Game(g) && !s.isLocalGame(g) {
			continue
		}
		filtered = append(filtered, g)
	}

	var confirmed, tbd []GameView
	for _, g := range filtered {
		if isConfirmedSlot(g.TimeDisplay) {
			confirmed = append(confirmed, g)
		} else {
			tbd = append(tbd, g)
		}
	}

	// 本地队覆写：只往已确认加、只从TBD删，绝不反向
	filteredByID := make(map[string]struct{}, len(filtered))
	for _, g := range filtered {
		filteredByID[g.ID] = struct{}{}
	}
	for _, lg := range localGames {
		if _, ok := filteredByID[lg.ID]; !ok {
			continue
		}
		if !isConfirmedSlot(lg.TimeDisplay) {
			tbd = removeByID(tbd, lg.ID)
			confirmed = append(confirmed, lg)
		}
		localNet := networkOf(lg)
		localSlot := timeSlotContext(lg.TimeDisplay)
		kept := tbd[:0:0]
		for _, g := range tbd {
			sameWindow := networkOf(g) == localNet && timeSlotContext(g.TimeDisplay) == localSlot
			if !sameWindow || s.isLocalGame(g) {
				kept = append(kept, g)
			}
		}
		tbd = kept
	}

	tbdGrouped := s.groupByNetworkAndSlot(tbd, year)

	// 仅剩一场的TBD分组没有歧义可言，按策略直接提升为已确认
	if s.promoteSingleTBD {
		var promoted []GameView
		for key, group := range tbdGrouped {
			if len(group) == 1 {
				promoted = append(promoted, group...)
				delete(tbdGrouped, key)
			}
		}
		confirmed = append(confirmed, promoted...)
	}

	confirmedGrouped := s.groupByNetworkAndSlot(confirmed, year)

	return &ClassifiedWeek{
		Confirmed:     confirmedGrouped,
		ConfirmedKeys: sortedBucketKeys(confirmedGrouped),
		TBD:           tbdGrouped,
		TBDKeys:       sortedBucketKeys(tbdGrouped),
	}
}

// groupByNetworkAndSlot 按(网络,时段)构造分组键并做组内确定性排序
func (s *BroadcastService) groupByNetworkAndSlot(games []GameView, year int) map[string][]GameView {
	grouped := make(map[string][]GameView)
	for _, g := range games {
		key := groupKey(networkOf(g), timeSlotContext(g.TimeDisplay))
		grouped[key] = append(grouped[key], g)
	}
	for key := range grouped {
		sortGamesInGroup(grouped[key], year)
	}
	return grouped
}

// groupKey 焦点时段用描述性命名，周日早晚场用"{网络} {时段} Games"
func groupKey(network, timeSlot string) string {
	if network == "TBD" {
		return fmt.Sprintf("TBD %s Games", timeSlot)
	}
	switch timeSlot {
	case "Thursday Night":
		return fmt.Sprintf("Thursday Night Football - %s", network)
	case "Friday Night":
		return fmt.Sprintf("Friday Night Football - %s", network)
	case "Sunday Night":
		return fmt.Sprintf("Sunday Night Football - %s", network)
	case "Monday Night":
		return fmt.Sprintf("Monday Night Football - %s", network)
	case "Saturday":
		return fmt.Sprintf("Saturday Games - %s", network)
	default:
		return fmt.Sprintf("%s %s Games", network, timeSlot)
	}
}

// sortGamesInGroup 三级确定性排序：开球时刻升序（不可解析排最后）→
// 对阵串不分大小写字典序 → 比赛ID字典序
func sortGamesInGroup(games []GameView, year int) {
	sort.SliceStable(games, func(i, j int) bool {
		ti := kickoffSortKey(games[i].TimeDisplay, year)
		tj := kickoffSortKey(games[j].TimeDisplay, year)
		if ti != tj {
			return ti < tj
		}
		mi := strings.ToLower(games[i].Matchup)
		mj := strings.ToLower(games[j].Matchup)
		if mi != mj {
			return mi < mj
		}
		return games[i].ID < games[j].ID
	})
}

// sortedBucketKeys 分桶键展示顺序：非TBD在前TBD在后，各自内部Early优先，
// 其余按键全文字典序
func sortedBucketKeys(groups map[string][]GameView) []string {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return bucketKeyLess(keys[i], keys[j])
	})
	return keys
}

func bucketKeyLess(a, b string) bool {
	aTBD := strings.HasPrefix(a, "TBD")
	bTBD := strings.HasPrefix(b, "TBD")
	if aTBD != bTBD {
		return !aTBD
	}
	aEarly := strings.Contains(a, "Early")
	bEarly := strings.Contains(b, "Early")
	if aEarly != bEarly {
		return aEarly
	}
	return a < b
}

func removeByID(games []GameView, id string) []GameView {
	kept := games[:0:0]
	for _, g := range games {
		if g.ID != id {
			kept = append(kept, g)
		}
	}
	return kept
}

// WeekView 转播分析视图：读库 → 分类 → TBD分组并发提交模型 → 合并。
// 赛程/战绩读库失败是整个视图的硬失败；单分组模型失败只降级该组
func (s *BroadcastService) WeekView(ctx context.Context, year, week int, teams []string) (*WeekViewResult, error) {
	rows, err := s.scheduleRepo.ListGames(ctx, repository.GameFilter{Year: year, Week: week, Teams: teams})
	if err != nil {
		return nil, fmt.Errorf("查询赛程失败: %w", err)
	}

	views := make([]GameView, 0, len(rows))
	for _, r := range rows {
		views = append(views, ToGameView(r))
	}

	cls := s.Classify(views, year)
	result := &WeekViewResult{
		Year:          year,
		Week:          week,
		Confirmed:     cls.Confirmed,
		ConfirmedKeys: cls.ConfirmedKeys,
		TBD:           cls.TBD,
		TBDKeys:       cls.TBDKeys,
	}

	if s.prediction == nil || len(cls.TBD) == 0 {
		return result, nil
	}

	// 只取TBD分组涉及的球队战绩
	abbrSet := make(map[string]struct{})
	for _, group := range cls.TBD {
		for _, g := range group {
			abbrSet[g.HomeTeam] = struct{}{}
			abbrSet[g.AwayTeam] = struct{}{}
		}
	}
	abbrs := make([]string, 0, len(abbrSet))
	for a := range abbrSet {
		abbrs = append(abbrs, a)
	}
	records, err := s.teamRepo.ListRecords(ctx, abbrs, year)
	if err != nil {
		return nil, fmt.Errorf("查询球队战绩失败: %w", err)
	}

	result.Predictions = s.prediction.RankGroups(ctx, cls.TBD, records)
	return result, nil
}

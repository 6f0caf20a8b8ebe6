package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/PranavThoppe/GameTracker/internal/config"
	"github.com/PranavThoppe/GameTracker/internal/interfaces"
	"github.com/PranavThoppe/GameTracker/internal/model"
	"github.com/PranavThoppe/GameTracker/internal/utils/httpclient"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

// Adapter ESPN公共API适配器，同时承担赛程源与战绩源
type Adapter struct {
	cfg        *config.UpstreamConfig
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewAdapter 创建ESPN适配器
func NewAdapter(cfg *config.UpstreamConfig, logger *logrus.Logger) *Adapter {
	return &Adapter{
		cfg:        cfg,
		httpClient: httpclient.NewHTTPClient(cfg, logger),
		logger:     logger,
	}
}

var _ interfaces.ScheduleSource = (*Adapter)(nil)
var _ interfaces.RecordSource = (*Adapter)(nil)

// FetchWeek 拉取指定赛季指定周的scoreboard并转换为数据库模型
func (a *Adapter) FetchWeek(ctx context.Context, year, week int) ([]*model.Schedule, error) {
	url := fmt.Sprintf("%s/scoreboard?year=%d&week=%d&seasontype=2", a.cfg.BaseURL, year, week)

	var sb model.ESPNScoreboard
	if err := a.getJSON(ctx, url, &sb); err != nil {
		return nil, fmt.Errorf("获取ESPN赛程失败: %w", err)
	}

	now := time.Now()
	games := make([]*model.Schedule, 0, len(sb.Events))
	for _, event := range sb.Events {
		if len(event.Competitions) == 0 {
			continue
		}
		comp := event.Competitions[0]

		var home, away *model.ESPNTeam
		for i := range comp.Competitors {
			switch comp.Competitors[i].HomeAway {
			case "home":
				home = &comp.Competitors[i].Team
			case "away":
				away = &comp.Competitors[i].Team
			}
		}
		if home == nil || away == nil {
			a.logger.WithField("event_id", event.ID).Warn("跳过缺少主客队信息的比赛")
			continue
		}

		games = append(games, &model.Schedule{
			Year:           year,
			Week:           week,
			HomeTeam:       home.Abbreviation,
			AwayTeam:       away.Abbreviation,
			Time:           comp.Status.Type.Detail,
			Broadcast:      firstBroadcast(comp.Broadcasts),
			BroadcastNames: broadcastNamesJSON(comp.Broadcasts),
			Status:         mapStatus(comp.Status.Type.State),
			UpdatedAt:      now,
		})
	}

	a.logger.Infof("从ESPN拉取到%d场比赛（%d赛季 第%d周）", len(games), year, week)
	return games, nil
}

// FetchTeams 拉取联盟球队列表（球队表引导）
func (a *Adapter) FetchTeams(ctx context.Context, season int) ([]*model.Team, error) {
	url := fmt.Sprintf("%s/teams", a.cfg.BaseURL)

	var resp model.ESPNTeamsResponse
	if err := a.getJSON(ctx, url, &resp); err != nil {
		return nil, fmt.Errorf("获取ESPN球队列表失败: %w", err)
	}

	now := time.Now()
	var teams []*model.Team
	for _, sport := range resp.Sports {
		for _, league := range sport.Leagues {
			for _, entry := range league.Teams {
				espnID, err := strconv.Atoi(entry.Team.ID)
				if err != nil {
					a.logger.WithField("team_id", entry.Team.ID).Warn("跳过非数字的ESPN球队ID")
					continue
				}
				t := &model.Team{
					ESPNTeamID:   espnID,
					Name:         entry.Team.DisplayName,
					Abbreviation: entry.Team.Abbreviation,
					Season:       season,
					UpdatedAt:    now,
				}
				if len(entry.Team.Logos) > 0 {
					logo := entry.Team.Logos[0].Href
					t.LogoURL = &logo
				}
				teams = append(teams, t)
			}
		}
	}

	a.logger.Infof("从ESPN拉取到%d支球队", len(teams))
	return teams, nil
}

// FetchRecord 拉取单队总战绩，解析 "W-L" 或 "W-L-T" 形式的summary
func (a *Adapter) FetchRecord(ctx context.Context, espnTeamID, season int) (int, int, int, error) {
	url := fmt.Sprintf("%s/seasons/%d/types/2/teams/%d/record", a.cfg.CoreURL, season, espnTeamID)

	var resp model.ESPNRecordResponse
	if err := a.getJSON(ctx, url, &resp); err != nil {
		return 0, 0, 0, fmt.Errorf("获取ESPN战绩失败: %w", err)
	}

	var overall *model.ESPNRecordItem
	for i := range resp.Items {
		if resp.Items[i].Name == "overall" {
			overall = &resp.Items[i]
			break
		}
	}
	if overall == nil {
		return 0, 0, 0, fmt.Errorf("ESPN战绩响应缺少overall条目, team_id: %d", espnTeamID)
	}

	return parseRecordSummary(overall.Summary)
}

// getJSON 统一GET+解码，确保响应体关闭
func (a *Adapter) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := a.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			a.logger.Errorf("关闭ESPN响应体失败: %v", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ESPN API状态异常: %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// parseRecordSummary "3-2" 或 "3-2-1" → 胜/负/平
func parseRecordSummary(summary string) (int, int, int, error) {
	var wins, losses, ties int
	n, err := fmt.Sscanf(summary, "%d-%d-%d", &wins, &losses, &ties)
	if err != nil && n < 2 {
		if _, err2 := fmt.Sscanf(summary, "%d-%d", &wins, &losses); err2 != nil {
			return 0, 0, 0, fmt.Errorf("无法解析战绩summary: %q", summary)
		}
	}
	return wins, losses, ties, nil
}

// mapStatus ESPN state → 本系统状态枚举
func mapStatus(state string) string {
	switch state {
	case "in":
		return "in_progress"
	case "post":
		return "final"
	default:
		return "scheduled"
	}
}

// firstBroadcast 取第一个转播网络名，没有则为nil（即转播未定）
func firstBroadcast(broadcasts []model.ESPNBroadcast) *string {
	for _, b := range broadcasts {
		if len(b.Names) > 0 && b.Names[0] != "" {
			name := b.Names[0]
			return &name
		}
	}
	return nil
}

// broadcastNamesJSON 全部转播名称存jsonb，供排障与后续扩展
func broadcastNamesJSON(broadcasts []model.ESPNBroadcast) datatypes.JSON {
	var names []string
	for _, b := range broadcasts {
		names = append(names, b.Names...)
	}
	if len(names) == 0 {
		return nil
	}
	raw, err := json.Marshal(names)
	if err != nil {
		return nil
	}
	return raw
}

package sleeper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/PranavThoppe/GameTracker/internal/config"
	"github.com/PranavThoppe/GameTracker/internal/interfaces"
	"github.com/PranavThoppe/GameTracker/internal/model"
	"github.com/PranavThoppe/GameTracker/internal/utils/httpclient"

	"github.com/sirupsen/logrus"
)

// Adapter Sleeper公共API适配器（无需鉴权）
type Adapter struct {
	cfg        *config.UpstreamConfig
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewAdapter 创建Sleeper适配器
func NewAdapter(cfg *config.UpstreamConfig, logger *logrus.Logger) *Adapter {
	return &Adapter{
		cfg:        cfg,
		httpClient: httpclient.NewHTTPClient(cfg, logger),
		logger:     logger,
	}
}

var _ interfaces.SleeperSource = (*Adapter)(nil)

// GetNFLState 当前赛季与周次
func (a *Adapter) GetNFLState(ctx context.Context) (*model.SleeperNFLState, error) {
	var state model.SleeperNFLState
	if err := a.getJSON(ctx, a.cfg.BaseURL+"/state/nfl", &state); err != nil {
		return nil, fmt.Errorf("获取NFL状态失败: %w", err)
	}
	return &state, nil
}

// GetUser 按用户名查询用户（Sleeper用户名不存在时返回404）
func (a *Adapter) GetUser(ctx context.Context, username string) (*model.SleeperUser, error) {
	var user model.SleeperUser
	if err := a.getJSON(ctx, a.cfg.BaseURL+"/user/"+url.PathEscape(username), &user); err != nil {
		return nil, fmt.Errorf("查询Sleeper用户失败: %w", err)
	}
	return &user, nil
}

// GetLeagues 用户在指定赛季的全部联盟
func (a *Adapter) GetLeagues(ctx context.Context, userID, season string) ([]*model.SleeperLeague, error) {
	u := fmt.Sprintf("%s/user/%s/leagues/nfl/%s", a.cfg.BaseURL, url.PathEscape(userID), url.PathEscape(season))
	var leagues []*model.SleeperLeague
	if err := a.getJSON(ctx, u, &leagues); err != nil {
		return nil, fmt.Errorf("查询联盟列表失败: %w", err)
	}
	return leagues, nil
}

// GetLeagueRosters 联盟全部阵容
func (a *Adapter) GetLeagueRosters(ctx context.Context, leagueID string) ([]*model.SleeperRoster, error) {
	u := fmt.Sprintf("%s/league/%s/rosters", a.cfg.BaseURL, url.PathEscape(leagueID))
	var rosters []*model.SleeperRoster
	if err := a.getJSON(ctx, u, &rosters); err != nil {
		return nil, fmt.Errorf("查询联盟阵容失败: %w", err)
	}
	return rosters, nil
}

// GetLeagueUsers 联盟全部成员
func (a *Adapter) GetLeagueUsers(ctx context.Context, leagueID string) ([]*model.SleeperLeagueUser, error) {
	u := fmt.Sprintf("%s/league/%s/users", a.cfg.BaseURL, url.PathEscape(leagueID))
	var users []*model.SleeperLeagueUser
	if err := a.getJSON(ctx, u, &users); err != nil {
		return nil, fmt.Errorf("查询联盟成员失败: %w", err)
	}
	return users, nil
}

// FetchPlayers 全量球员字典（约5MB，仅同步任务调用）
func (a *Adapter) FetchPlayers(ctx context.Context) (map[string]*model.SleeperRawPlayer, error) {
	var players map[string]*model.SleeperRawPlayer
	if err := a.getJSON(ctx, a.cfg.BaseURL+"/players/nfl", &players); err != nil {
		return nil, fmt.Errorf("获取球员字典失败: %w", err)
	}
	return players, nil
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
			a.logger.Errorf("关闭Sleeper响应体失败: %v", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("Sleeper API状态异常: %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

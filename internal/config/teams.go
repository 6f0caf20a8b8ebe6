package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/viper"
)

// TeamConfig 单支球队的静态配置（teams.yaml，按队伍缩写为键）
// 本地队/同州队/分区对手用于转播分类与排序模型的特征打标
type TeamConfig struct {
	DisplayName    string   `mapstructure:"display_name"`    // 展示名称
	IsLocalTeam    bool     `mapstructure:"is_local_team"`   // 是否本地队（全联盟应恰好一支）
	InStateTeams   bool     `mapstructure:"in_state_teams"`  // 是否与本地队同州
	DivisionRivals []string `mapstructure:"division_rivals"` // 分区对手缩写列表
}

// TeamMap 队伍缩写 → 配置。进程启动时加载一次，作为参数显式传入各服务，
// 不做包级全局变量
type TeamMap map[string]TeamConfig

// LoadTeams 从指定路径加载球队配置
func LoadTeams(path string) (TeamMap, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("读取球队配置失败: %w", err)
	}

	var raw TeamMap
	if err := v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("解析球队配置失败: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("球队配置为空: %s", path)
	}

	// viper会把配置键统一转成小写，这里按缩写大写重建，
	// 保证与数据库/上游的球队缩写直接可比
	teams := make(TeamMap, len(raw))
	for abbr, tc := range raw {
		teams[strings.ToUpper(abbr)] = tc
	}
	return teams, nil
}

// LocalTeam 返回被标记为本地队的缩写。多支被标记时取字典序第一个（保证确定性），
// 一支都没有时返回空串
func (m TeamMap) LocalTeam() string {
	var locals []string
	for abbr, tc := range m {
		if tc.IsLocalTeam {
			locals = append(locals, abbr)
		}
	}
	if len(locals) == 0 {
		return ""
	}
	sort.Strings(locals)
	return locals[0]
}

// IsDivisionalMatchup 任意一方把对方列为分区对手即视为分区内对决
func (m TeamMap) IsDivisionalMatchup(home, away string) bool {
	for _, r := range m[home].DivisionRivals {
		if r == away {
			return true
		}
	}
	for _, r := range m[away].DivisionRivals {
		if r == home {
			return true
		}
	}
	return false
}

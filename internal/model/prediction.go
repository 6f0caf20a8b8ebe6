package model

import "fmt"

// ========== 外部排序模型接口结构（POST {base_url}/predict_top） ==========

// MLGame 单场比赛的特征载荷
type MLGame struct {
	GameID            string  `json:"game_id"`            // 格式：{year}W{week:02d}-{away}@{home}
	HomeTeam          string  `json:"home_team"`          // 主队缩写
	AwayTeam          string  `json:"away_team"`          // 客队缩写
	HomeWinPctPre     float64 `json:"home_win_pct_pre"`   // 主队赛前胜率，无战绩默认0
	AwayWinPctPre     float64 `json:"away_win_pct_pre"`   // 客队赛前胜率
	HomeWinsPre       int     `json:"home_wins_pre"`      // 主队赛前胜场
	AwayWinsPre       int     `json:"away_wins_pre"`      // 客队赛前胜场
	IsLocalTeam       int     `json:"is_local_team"`      // 任一方为本地队=1
	IsInStateTeam     int     `json:"is_in_state_team"`   // 任一方为同州队=1
	DivisionalMatchup int     `json:"divisional_matchup"` // 分区内对决=1
}

// MLPredictRequest 整个分组一次性提交
type MLPredictRequest struct {
	Games []MLGame `json:"games"`
}

// MLProbability 模型返回的单场概率
type MLProbability struct {
	GameID         string  `json:"game_id"`
	ProbabilityAll float64 `json:"probability_all"` // 跨分组概率
	Score          float64 `json:"score"`           // 原始模型分
	Probability    float64 `json:"probability"`     // 组内归一化概率
}

// MLPrediction 模型对单个分组的完整响应
type MLPrediction struct {
	TopGameID      string          `json:"top_game_id"`     // 该组最可能上焦点转播的一场
	TopProbability float64         `json:"top_probability"` // 对应概率
	Probabilities  []MLProbability `json:"probabilities"`
	Skipped        []string        `json:"skipped"`        // 模型放弃预测的game_id列表
	LocalEnforced  bool            `json:"local_enforced"` // 模型端是否施加了本地队偏置
}

// MLGameID 生成模型侧game_id，格式与模型训练数据保持一致
func MLGameID(year, week int, awayTeam, homeTeam string) string {
	return fmt.Sprintf("%dW%02d-%s@%s", year, week, awayTeam, homeTeam)
}

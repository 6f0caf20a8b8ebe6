package model

// ========== ESPN scoreboard API 响应结构（GET /scoreboard?year=&week=&seasontype=2） ==========

// ESPNScoreboard GET /scoreboard 的根响应
type ESPNScoreboard struct {
	Events []ESPNEvent `json:"events"`
}

// ESPNEvent 单场比赛事件
type ESPNEvent struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Date         string            `json:"date"`
	Competitions []ESPNCompetition `json:"competitions"`
}

// ESPNCompetition 比赛主体（ESPN一个event固定一个competition）
type ESPNCompetition struct {
	ID          string           `json:"id"`
	Competitors []ESPNCompetitor `json:"competitors"`
	Broadcasts  []ESPNBroadcast  `json:"broadcasts"`
	Status      ESPNStatus       `json:"status"`
}

// ESPNCompetitor 参赛一方，homeAway 区分主客
type ESPNCompetitor struct {
	HomeAway string   `json:"homeAway"`
	Team     ESPNTeam `json:"team"`
}

// ESPNTeam 球队基础信息
type ESPNTeam struct {
	ID           string     `json:"id"`
	DisplayName  string     `json:"displayName"`
	Abbreviation string     `json:"abbreviation"`
	Logos        []ESPNLogo `json:"logos"`
}

// ESPNLogo 队徽
type ESPNLogo struct {
	Href string `json:"href"`
}

// ESPNBroadcast 转播信息（names 为网络名称列表，如 ["FOX"]）
type ESPNBroadcast struct {
	Names []string `json:"names"`
}

// ESPNStatus 比赛状态
type ESPNStatus struct {
	Type ESPNStatusType `json:"type"`
}

// ESPNStatusType state: pre/in/post；detail 为开球时间展示原文
// （如 "Sun, September 7th at 4:05 PM EDT"），分类引擎只认这个字符串
type ESPNStatusType struct {
	State  string `json:"state"`
	Detail string `json:"detail"`
}

// ========== ESPN teams API 响应结构（GET /teams，球队列表引导用） ==========

// ESPNTeamsResponse GET /teams 的根响应
type ESPNTeamsResponse struct {
	Sports []ESPNTeamsSport `json:"sports"`
}

type ESPNTeamsSport struct {
	Leagues []ESPNTeamsLeague `json:"leagues"`
}

type ESPNTeamsLeague struct {
	Teams []ESPNTeamsEntry `json:"teams"`
}

type ESPNTeamsEntry struct {
	Team ESPNTeam `json:"team"`
}

// ========== ESPN core API 战绩响应（GET /seasons/{yr}/types/2/teams/{id}/record） ==========

// ESPNRecordResponse 战绩接口根响应
type ESPNRecordResponse struct {
	Items []ESPNRecordItem `json:"items"`
}

// ESPNRecordItem name=overall 的条目即总战绩，summary 形如 "3-2" 或 "3-2-1"
type ESPNRecordItem struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Summary string `json:"summary"`
}

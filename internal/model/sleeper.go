package model

// ========== Sleeper 公共API响应结构（api.sleeper.app/v1） ==========

// SleeperNFLState GET /state/nfl，当前赛季与周次
type SleeperNFLState struct {
	Week        int    `json:"week"`
	DisplayWeek int    `json:"display_week"`
	Season      string `json:"season"`
	SeasonType  string `json:"season_type"`
	Leg         int    `json:"leg"`
}

// SleeperUser GET /user/{username}
type SleeperUser struct {
	Username string `json:"username"`
	UserID   string `json:"user_id"`
	Avatar   string `json:"avatar"`
}

// SleeperLeague GET /user/{user_id}/leagues/nfl/{season} 中的单个联盟
type SleeperLeague struct {
	LeagueID    string `json:"league_id"`
	Name        string `json:"name"`
	Season      string `json:"season"`
	Status      string `json:"status"`
	TotalRoster int    `json:"total_rosters"`
	Avatar      string `json:"avatar"`
}

// SleeperRoster GET /league/{league_id}/rosters 中的单个阵容
type SleeperRoster struct {
	RosterID int      `json:"roster_id"`
	OwnerID  string   `json:"owner_id"`
	Players  []string `json:"players"`
	Starters []string `json:"starters"`
}

// SleeperLeagueUser GET /league/{league_id}/users 中的单个成员
type SleeperLeagueUser struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Avatar      string `json:"avatar"`
}

// SleeperRawPlayer GET /players/nfl 全量字典中的单个球员（按需取字段）
type SleeperRawPlayer struct {
	FullName         string   `json:"full_name"`
	FirstName        string   `json:"first_name"`
	LastName         string   `json:"last_name"`
	Position         string   `json:"position"`
	Team             string   `json:"team"`
	Status           string   `json:"status"`
	Active           bool     `json:"active"`
	YearsExp         int      `json:"years_exp"`
	Age              int      `json:"age"`
	College          string   `json:"college"`
	FantasyPositions []string `json:"fantasy_positions"`
	InjuryStatus     *string  `json:"injury_status"`
	InjuryBodyPart   *string  `json:"injury_body_part"`
	SearchRank       int      `json:"search_rank"`
	ESPNID           *int     `json:"espn_id"`
}

// LeagueMember 阵容与成员拼接后的返回结构（league-members接口）
type LeagueMember struct {
	RosterID    int      `json:"roster_id"`
	OwnerID     string   `json:"owner_id"`
	DisplayName string   `json:"display_name"`
	Avatar      string   `json:"avatar"`
	Players     []string `json:"players"`
	Starters    []string `json:"starters"`
}

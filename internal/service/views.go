package service

import (
	"encoding/json"

	"github.com/PranavThoppe/GameTracker/internal/model"
)

// TeamView 球队战绩展示结构
type TeamView struct {
	ESPNTeamID    int     `json:"espn_team_id"`
	Name          string  `json:"name"`
	Abbreviation  string  `json:"abbreviation"`
	Season        int     `json:"season"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Ties          int     `json:"ties"`
	WinPercentage float64 `json:"win_percentage"`
	LogoURL       *string `json:"logo_url"`
}

// ToTeamView 数据库行 → 展示结构
func ToTeamView(t *model.Team) TeamView {
	return TeamView{
		ESPNTeamID:    t.ESPNTeamID,
		Name:          t.Name,
		Abbreviation:  t.Abbreviation,
		Season:        t.Season,
		Wins:          t.Wins,
		Losses:        t.Losses,
		Ties:          t.Ties,
		WinPercentage: t.WinPercentage,
		LogoURL:       t.LogoURL,
	}
}

// PlayerView 球员展示结构
type PlayerView struct {
	ID               string   `json:"id"`
	FullName         string   `json:"full_name"`
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

// ToPlayerView 数据库行 → 展示结构
func ToPlayerView(p *model.Player) PlayerView {
	var positions []string
	if len(p.FantasyPositions) > 0 {
		_ = json.Unmarshal(p.FantasyPositions, &positions)
	}
	return PlayerView{
		ID:               p.ID,
		FullName:         p.FullName,
		Position:         p.Position,
		Team:             p.TeamAbbr,
		Status:           p.Status,
		Active:           p.Active,
		YearsExp:         p.YearsExp,
		Age:              p.Age,
		College:          p.College,
		FantasyPositions: positions,
		InjuryStatus:     p.InjuryStatus,
		InjuryBodyPart:   p.InjuryBodyPart,
		SearchRank:       p.SearchRank,
		ESPNID:           p.ESPNID,
	}
}

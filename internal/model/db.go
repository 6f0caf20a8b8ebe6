package model

import (
	"time"

	"gorm.io/datatypes"
)

// Schedule 周赛程表（一行一场比赛，由ESPN scoreboard同步写入）
type Schedule struct {
	ID             uint64         `gorm:"column:id;primaryKey;autoIncrement;comment:自增主键ID"`
	GameUUID       string         `gorm:"column:game_uuid;type:varchar(64);uniqueIndex;not null;comment:全局唯一ID"`
	Year           int            `gorm:"column:year;type:int;not null;uniqueIndex:uk_year_week_teams;comment:赛季年份"`
	Week           int            `gorm:"column:week;type:int;not null;uniqueIndex:uk_year_week_teams;comment:周次"`
	HomeTeam       string         `gorm:"column:home_team;type:varchar(8);not null;uniqueIndex:uk_year_week_teams;comment:主队缩写"`
	AwayTeam       string         `gorm:"column:away_team;type:varchar(8);not null;uniqueIndex:uk_year_week_teams;comment:客队缩写"`
	Time           string         `gorm:"column:time;type:varchar(64);comment:ESPN开球时间原文"`
	Broadcast      *string        `gorm:"column:broadcast;type:varchar(32);comment:转播网络，未定为空"`
	BroadcastNames datatypes.JSON `gorm:"column:broadcast_names;type:jsonb;comment:ESPN返回的全部转播名称"`
	Status         string         `gorm:"column:status;type:varchar(16);default:scheduled;comment:状态：scheduled/in_progress/final"`
	CreatedAt      time.Time      `gorm:"column:created_at;type:timestamp;default:now();comment:创建时间"`
	UpdatedAt      time.Time      `gorm:"column:updated_at;type:timestamp;default:now();comment:更新时间"`
}

// Team 球队赛季战绩表（一行一队一赛季，由ESPN record接口同步）
type Team struct {
	ID            uint64    `gorm:"column:id;primaryKey;autoIncrement;comment:自增主键ID"`
	ESPNTeamID    int       `gorm:"column:espn_team_id;type:int;not null;comment:ESPN球队ID"`
	Name          string    `gorm:"column:name;type:varchar(64);not null;comment:球队全名"`
	Abbreviation  string    `gorm:"column:abbreviation;type:varchar(8);not null;uniqueIndex:uk_abbr_season;comment:球队缩写"`
	Season        int       `gorm:"column:season;type:int;not null;uniqueIndex:uk_abbr_season;comment:赛季"`
	Wins          int       `gorm:"column:wins;type:int;default:0;comment:胜场"`
	Losses        int       `gorm:"column:losses;type:int;default:0;comment:负场"`
	Ties          int       `gorm:"column:ties;type:int;default:0;comment:平局"`
	WinPercentage float64   `gorm:"column:win_percentage;type:numeric(5,3);default:0;comment:胜率（平局算半胜，保留3位小数）"`
	LogoURL       *string   `gorm:"column:logo_url;type:varchar(256);comment:队徽地址"`
	CreatedAt     time.Time `gorm:"column:created_at;type:timestamp;default:now();comment:创建时间"`
	UpdatedAt     time.Time `gorm:"column:updated_at;type:timestamp;default:now();comment:更新时间"`
}

// Player 球员表（Sleeper全量球员字典同步写入，主键即Sleeper球员ID）
type Player struct {
	ID               string         `gorm:"column:id;primaryKey;type:varchar(16);comment:Sleeper球员ID"`
	FullName         string         `gorm:"column:full_name;type:varchar(64);comment:全名"`
	FirstName        string         `gorm:"column:first_name;type:varchar(32);comment:名"`
	LastName         string         `gorm:"column:last_name;type:varchar(32);comment:姓"`
	Position         string         `gorm:"column:position;type:varchar(8);index;comment:场上位置"`
	TeamAbbr         string         `gorm:"column:team_abbr;type:varchar(8);index;comment:所属球队缩写"`
	Status           string         `gorm:"column:status;type:varchar(32);comment:球员状态"`
	Active           bool           `gorm:"column:active;type:boolean;default:false;comment:是否现役"`
	YearsExp         int            `gorm:"column:years_exp;type:int;default:0;comment:球龄"`
	Age              int            `gorm:"column:age;type:int;default:0;comment:年龄"`
	College          string         `gorm:"column:college;type:varchar(64);comment:大学"`
	FantasyPositions datatypes.JSON `gorm:"column:fantasy_positions;type:jsonb;comment:范特西位置列表"`
	InjuryStatus     *string        `gorm:"column:injury_status;type:varchar(32);comment:伤病状态"`
	InjuryBodyPart   *string        `gorm:"column:injury_body_part;type:varchar(32);comment:伤病部位"`
	SearchRank       int            `gorm:"column:search_rank;type:int;default:0;comment:搜索热度排名"`
	ESPNID           *int           `gorm:"column:espn_id;type:int;comment:ESPN球员ID"`
	CreatedAt        time.Time      `gorm:"column:created_at;type:timestamp;default:now();comment:创建时间"`
	UpdatedAt        time.Time      `gorm:"column:updated_at;type:timestamp;default:now();comment:更新时间"`
}

func (Schedule) TableName() string { return "schedules" }
func (Team) TableName() string     { return "teams" }
func (Player) TableName() string   { return "players" }

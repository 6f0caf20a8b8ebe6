package api

import (
	"net/http"
	"strconv"

	"github.com/PranavThoppe/GameTracker/internal/repository"
	"github.com/PranavThoppe/GameTracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// TeamHandler 球队战绩查询接口
type TeamHandler struct {
	teamRepo repository.TeamRepository
	logger   *logrus.Logger
}

// NewTeamHandler 创建 TeamHandler
func NewTeamHandler(db *gorm.DB, logger *logrus.Logger) *TeamHandler {
	return &TeamHandler{
		teamRepo: repository.NewTeamRepository(db),
		logger:   logger,
	}
}

// ListRecords 球队战绩列表，同时返回按缩写索引的map方便前端直接取用
// GET /api/teams?season=2025&abbrs=DAL,PHI
func (h *TeamHandler) ListRecords(c *gin.Context) {
	season, _ := strconv.Atoi(c.Query("season"))
	if season == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "season is required"})
		return
	}

	teams, err := h.teamRepo.ListRecords(c.Request.Context(), splitTeams(c.Query("abbrs")), season)
	if err != nil {
		h.logger.WithError(err).Error("ListRecords failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	views := make([]service.TeamView, 0, len(teams))
	records := make(map[string]service.TeamView, len(teams))
	for _, t := range teams {
		v := service.ToTeamView(t)
		views = append(views, v)
		records[v.Abbreviation] = v
	}
	c.JSON(http.StatusOK, gin.H{
		"season":  season,
		"teams":   views,
		"records": records,
	})
}

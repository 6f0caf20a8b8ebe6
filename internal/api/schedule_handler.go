package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/PranavThoppe/GameTracker/internal/repository"
	"github.com/PranavThoppe/GameTracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ScheduleHandler 赛程查询接口
type ScheduleHandler struct {
	scheduleRepo repository.ScheduleRepository
	logger       *logrus.Logger
}

// NewScheduleHandler 创建 ScheduleHandler
func NewScheduleHandler(db *gorm.DB, logger *logrus.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleRepo: repository.NewScheduleRepository(db),
		logger:       logger,
	}
}

// ListSchedule 赛程列表接口（平铺，不含分组逻辑）
// GET /api/schedule?year=2025&week=3&teams=DAL,PHI
func (h *ScheduleHandler) ListSchedule(c *gin.Context) {
	year, _ := strconv.Atoi(c.Query("year"))
	week, _ := strconv.Atoi(c.Query("week"))
	if year == 0 || week == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year and week are required"})
		return
	}

	games, err := h.scheduleRepo.ListGames(c.Request.Context(), repository.GameFilter{
		Year:  year,
		Week:  week,
		Teams: splitTeams(c.Query("teams")),
	})
	if err != nil {
		h.logger.WithError(err).Error("ListSchedule failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	views := make([]service.GameView, 0, len(games))
	for _, g := range games {
		views = append(views, service.ToGameView(g))
	}
	c.JSON(http.StatusOK, gin.H{
		"year":  year,
		"week":  week,
		"games": views,
	})
}

// splitTeams 逗号分隔的球队缩写列表，空串返回nil
func splitTeams(raw string) []string {
	if raw == "" {
		return nil
	}
	var teams []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			teams = append(teams, t)
		}
	}
	return teams
}

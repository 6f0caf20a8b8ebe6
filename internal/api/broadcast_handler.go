package api

import (
	"net/http"
	"strconv"

	"github.com/PranavThoppe/GameTracker/internal/config"
	"github.com/PranavThoppe/GameTracker/internal/interfaces"
	"github.com/PranavThoppe/GameTracker/internal/repository"
	"github.com/PranavThoppe/GameTracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// BroadcastHandler 转播分析视图接口（核心页面数据源）
type BroadcastHandler struct {
	broadcastService *service.BroadcastService
	logger           *logrus.Logger
}

// NewBroadcastHandler 创建 BroadcastHandler（注入模型端点适配器与球队配置）
func NewBroadcastHandler(db *gorm.DB, logger *logrus.Logger, predictor interfaces.Predictor, teams config.TeamMap, bcfg *config.BroadcastConfig) *BroadcastHandler {
	scheduleRepo := repository.NewScheduleRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	predictionSvc := service.NewPredictionService(predictor, teams, logger)
	svc := service.NewBroadcastService(scheduleRepo, teamRepo, predictionSvc, teams, bcfg, logger)
	return &BroadcastHandler{
		broadcastService: svc,
		logger:           logger,
	}
}

// GetWeekView 指定周的转播分类与排序视图
// GET /api/broadcast?year=2025&week=3&teams=DAL,PHI
func (h *BroadcastHandler) GetWeekView(c *gin.Context) {
	year, _ := strconv.Atoi(c.Query("year"))
	week, _ := strconv.Atoi(c.Query("week"))
	if year == 0 || week == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year and week are required"})
		return
	}

	result, err := h.broadcastService.WeekView(c.Request.Context(), year, week, splitTeams(c.Query("teams")))
	if err != nil {
		h.logger.WithError(err).Error("GetWeekView failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

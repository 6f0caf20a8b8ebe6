package api

import (
	"net/http"
	"strconv"

	"github.com/PranavThoppe/GameTracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SyncHandler 手动触发同步的接口（与定时任务走同一套服务）
type SyncHandler struct {
	runner   *service.SyncRunner
	schedule *service.ScheduleSyncService
	record   *service.RecordSyncService
	player   *service.PlayerSyncService
	logger   *logrus.Logger
}

// NewSyncHandler 创建 SyncHandler
func NewSyncHandler(
	runner *service.SyncRunner,
	schedule *service.ScheduleSyncService,
	record *service.RecordSyncService,
	player *service.PlayerSyncService,
	logger *logrus.Logger,
) *SyncHandler {
	return &SyncHandler{
		runner:   runner,
		schedule: schedule,
		record:   record,
		player:   player,
		logger:   logger,
	}
}

// SyncAll 完整同步一轮（球队→战绩→赛程→球员）
// POST /sync?year=2025&week=3，年/周不传则按Sleeper当前周
func (h *SyncHandler) SyncAll(c *gin.Context) {
	year, _ := strconv.Atoi(c.Query("year"))
	week, _ := strconv.Atoi(c.Query("week"))

	result, err := h.runner.SyncAll(c.Request.Context(), year, week)
	if err != nil {
		h.logger.Errorf("组合同步失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// SyncSchedule 只同步赛程
// POST /sync/schedule?year=2025&week=3
func (h *SyncHandler) SyncSchedule(c *gin.Context) {
	year, _ := strconv.Atoi(c.Query("year"))
	week, _ := strconv.Atoi(c.Query("week"))
	if year == 0 || week == 0 {
		cy, cw := h.runner.CurrentWeek(c.Request.Context())
		if year == 0 {
			year = cy
		}
		if week == 0 {
			week = cw
		}
	}

	count, err := h.schedule.SyncWeek(c.Request.Context(), year, week)
	if err != nil {
		h.logger.Errorf("同步赛程失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"year": year, "week": week, "count": count})
}

// SyncTeams 同步球队基础信息并刷新战绩
// POST /sync/teams?season=2025
func (h *SyncHandler) SyncTeams(c *gin.Context) {
	season, _ := strconv.Atoi(c.Query("season"))
	if season == 0 {
		season, _ = h.runner.CurrentWeek(c.Request.Context())
	}

	teams, err := h.record.SyncTeams(c.Request.Context(), season)
	if err != nil {
		h.logger.Errorf("同步球队失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	records, err := h.record.SyncRecords(c.Request.Context(), season)
	if err != nil {
		h.logger.Errorf("同步战绩失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"season": season, "teams": teams, "records": records})
}

// SyncPlayers 同步球员字典
// POST /sync/players
func (h *SyncHandler) SyncPlayers(c *gin.Context) {
	count, err := h.player.SyncPlayers(c.Request.Context())
	if err != nil {
		h.logger.Errorf("同步球员失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

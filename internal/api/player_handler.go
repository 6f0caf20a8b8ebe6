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

// PlayerHandler 球员查询接口
type PlayerHandler struct {
	playerRepo repository.PlayerRepository
	logger     *logrus.Logger
}

// NewPlayerHandler 创建 PlayerHandler
func NewPlayerHandler(db *gorm.DB, logger *logrus.Logger) *PlayerHandler {
	return &PlayerHandler{
		playerRepo: repository.NewPlayerRepository(db),
		logger:     logger,
	}
}

// ListPlayers 球员列表接口（阵容查询传ids，球员搜索传search）
// GET /api/players?ids=4034,6786&team=DAL&position=QB&active=true&search=pres
func (h *PlayerHandler) ListPlayers(c *gin.Context) {
	filter := repository.PlayerFilter{
		IDs:      splitTeams(c.Query("ids")),
		Team:     c.Query("team"),
		Position: c.Query("position"),
		Search:   c.Query("search"),
	}
	if raw := c.Query("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "active must be true or false"})
			return
		}
		filter.Active = &active
	}

	players, err := h.playerRepo.ListPlayers(c.Request.Context(), filter)
	if err != nil {
		h.logger.WithError(err).Error("ListPlayers failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	views := make([]service.PlayerView, 0, len(players))
	for _, p := range players {
		views = append(views, service.ToPlayerView(p))
	}
	c.JSON(http.StatusOK, gin.H{
		"count":   len(views),
		"players": views,
	})
}

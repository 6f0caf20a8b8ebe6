package api

import (
	"net/http"

	"github.com/PranavThoppe/GameTracker/internal/interfaces"
	"github.com/PranavThoppe/GameTracker/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SleeperHandler Sleeper联盟透传接口。联盟数据不落库，实时转发上游，
// 只有阵容+成员做一次服务端拼接
type SleeperHandler struct {
	source interfaces.SleeperSource
	logger *logrus.Logger
}

// NewSleeperHandler 创建 SleeperHandler
func NewSleeperHandler(source interfaces.SleeperSource, logger *logrus.Logger) *SleeperHandler {
	return &SleeperHandler{source: source, logger: logger}
}

// GetState 当前NFL赛季状态
// GET /api/sleeper/state
func (h *SleeperHandler) GetState(c *gin.Context) {
	state, err := h.source.GetNFLState(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("GetState failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, state)
}

// GetUser 按用户名查用户
// GET /api/sleeper/user/:username
func (h *SleeperHandler) GetUser(c *gin.Context) {
	username := c.Param("username")
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username is required"})
		return
	}

	user, err := h.source.GetUser(c.Request.Context(), username)
	if err != nil {
		h.logger.WithError(err).Error("GetUser failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}

// ListLeagues 用户的联盟列表
// GET /api/sleeper/leagues?user_id=xxx&season=2025
func (h *SleeperHandler) ListLeagues(c *gin.Context) {
	userID := c.Query("user_id")
	season := c.Query("season")
	if userID == "" || season == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and season are required"})
		return
	}

	leagues, err := h.source.GetLeagues(c.Request.Context(), userID, season)
	if err != nil {
		h.logger.WithError(err).Error("ListLeagues failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"leagues": leagues})
}

// ListLeagueMembers 联盟成员列表（阵容与用户两个接口拼接，owner缺失时展示名留空）
// GET /api/sleeper/league/:league_id/members
func (h *SleeperHandler) ListLeagueMembers(c *gin.Context) {
	leagueID := c.Param("league_id")
	if leagueID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "league_id is required"})
		return
	}

	ctx := c.Request.Context()
	rosters, err := h.source.GetLeagueRosters(ctx, leagueID)
	if err != nil {
		h.logger.WithError(err).Error("ListLeagueMembers rosters failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	users, err := h.source.GetLeagueUsers(ctx, leagueID)
	if err != nil {
		h.logger.WithError(err).Error("ListLeagueMembers users failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	userByID := make(map[string]*model.SleeperLeagueUser, len(users))
	for _, u := range users {
		userByID[u.UserID] = u
	}

	members := make([]model.LeagueMember, 0, len(rosters))
	for _, r := range rosters {
		m := model.LeagueMember{
			RosterID: r.RosterID,
			OwnerID:  r.OwnerID,
			Players:  r.Players,
			Starters: r.Starters,
		}
		if u, ok := userByID[r.OwnerID]; ok {
			m.DisplayName = u.DisplayName
			m.Avatar = u.Avatar
		}
		members = append(members, m)
	}
	c.JSON(http.StatusOK, gin.H{"members": members})
}

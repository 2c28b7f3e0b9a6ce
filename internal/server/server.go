// Package server exposes the persistence gateway tables over HTTP, so one
// host's store can act as the shared remote for several devices.
package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/devffelix/selfbank/internal/engine"
	"github.com/devffelix/selfbank/internal/remote"
)

// Server is the sync API server.
type Server struct {
	store  *remote.Store
	router *gin.Engine
}

func NewServer(store *remote.Store) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{store: store, router: router}

	api := router.Group("/api/v1")
	{
		api.GET("/users/:user/settings", s.handleGetSettings)
		api.PUT("/users/:user/settings", s.handlePutSettings)

		api.GET("/users/:user/items", s.handleListItems)
		api.POST("/users/:user/items", s.handleCreateItem)
		api.PATCH("/items/:id", s.handleUpdateItemCompletion)
		api.DELETE("/items/:id", s.handleDeleteItem)

		api.GET("/users/:user/rewards", s.handleListRewards)
		api.POST("/users/:user/rewards", s.handleCreateReward)
		api.DELETE("/rewards/:id", s.handleDeleteReward)

		api.DELETE("/users/:user", s.handleResetUser)
	}

	return s
}

// Run starts the sync server.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Handler returns the underlying http.Handler, used by tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

type settingsPayload struct {
	Balance    float64 `json:"balance"`
	GoalTitle  string  `json:"goalTitle"`
	GoalAmount float64 `json:"goalAmount"`
}

func (s *Server) handleGetSettings(c *gin.Context) {
	user := c.Param("user")
	set, err := s.store.GetOrCreateSettings(c.Request.Context(), user, engine.DefaultGoalTitle, engine.DefaultGoalTarget)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"userId":     set.UserID,
		"balance":    set.Balance,
		"goalTitle":  set.GoalTitle,
		"goalAmount": set.GoalAmount,
	})
}

func (s *Server) handlePutSettings(c *gin.Context) {
	var in settingsPayload
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	err := s.store.UpdateSettings(c.Request.Context(), &remote.Settings{
		UserID:     c.Param("user"),
		Balance:    in.Balance,
		GoalTitle:  in.GoalTitle,
		GoalAmount: in.GoalAmount,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

type itemPayload struct {
	Title             string  `json:"title" binding:"required"`
	Value             float64 `json:"value"`
	Type              string  `json:"type" binding:"required"`
	CreatedAt         int64   `json:"createdAt"`
	LastCompletedDate *string `json:"lastCompletedDate"`
	CompletedAt       *int64  `json:"completedAt"`
}

func (s *Server) handleListItems(c *gin.Context) {
	items, err := s.store.ListItems(c.Request.Context(), c.Param("user"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if items == nil {
		items = []remote.Item{}
	}
	c.JSON(http.StatusOK, items)
}

func (s *Server) handleCreateItem(c *gin.Context) {
	var in itemPayload
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id, err := s.store.InsertItem(c.Request.Context(), remote.ItemInsert{
		UserID:            c.Param("user"),
		Title:             in.Title,
		Value:             in.Value,
		Type:              in.Type,
		CreatedAt:         in.CreatedAt,
		LastCompletedDate: in.LastCompletedDate,
		CompletedAt:       in.CompletedAt,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

type completionPayload struct {
	CompletedAt       *int64  `json:"completedAt"`
	LastCompletedDate *string `json:"lastCompletedDate"`
}

func (s *Server) handleUpdateItemCompletion(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return
	}
	var in completionPayload
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.store.UpdateItemCompletion(c.Request.Context(), id, in.CompletedAt, in.LastCompletedDate); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleDeleteItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return
	}
	if err := s.store.DeleteItem(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

type rewardPayload struct {
	Title string  `json:"title" binding:"required"`
	Cost  float64 `json:"cost"`
}

func (s *Server) handleListRewards(c *gin.Context) {
	rewards, err := s.store.ListRewards(c.Request.Context(), c.Param("user"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if rewards == nil {
		rewards = []remote.Reward{}
	}
	c.JSON(http.StatusOK, rewards)
}

func (s *Server) handleCreateReward(c *gin.Context) {
	var in rewardPayload
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id, err := s.store.InsertReward(c.Request.Context(), remote.RewardInsert{
		UserID: c.Param("user"),
		Title:  in.Title,
		Cost:   in.Cost,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (s *Server) handleDeleteReward(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return
	}
	if err := s.store.DeleteReward(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleResetUser(c *gin.Context) {
	if err := s.store.ResetUser(c.Request.Context(), c.Param("user"), engine.DefaultGoalTitle, engine.DefaultGoalTarget); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

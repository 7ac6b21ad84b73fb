package handlers

import (
	"log"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/ramorim1998/gerador-times-back/internal/middleware"
	"github.com/ramorim1998/gerador-times-back/pkg/dto"
)

type StatsHandler struct {
	statsService StatsServiceInterface
}

func NewStatsHandler(statsService StatsServiceInterface) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Get returns the caller's standings. Store failures are reported as
// {"error": message} with status 500.
func (h *StatsHandler) Get(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.Unauthorized("not authenticated")
		return
	}

	stats, err := h.statsService.Standings(c.Request.Context(), userID)
	if err != nil {
		log.Printf("stats for %s: %v", userID, err)
		_ = c.JSON(500, dto.ErrorResponse{Error: err.Error()})
		return
	}

	_ = c.JSON(200, stats)
}

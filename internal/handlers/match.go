package handlers

import (
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/ramorim1998/gerador-times-back/internal/middleware"
	"github.com/ramorim1998/gerador-times-back/internal/models"
	"github.com/ramorim1998/gerador-times-back/pkg/dto"
)

type MatchHandler struct {
	matchService MatchServiceInterface
}

func NewMatchHandler(matchService MatchServiceInterface) *MatchHandler {
	return &MatchHandler{matchService: matchService}
}

func (h *MatchHandler) Create(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.Unauthorized("not authenticated")
		return
	}

	var req dto.CreateMatchRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if len(req.TeamA) == 0 || len(req.TeamB) == 0 {
		c.BadRequest("teamA and teamB are required")
		return
	}
	if req.ScoreA == nil || req.ScoreB == nil {
		c.BadRequest("scoreA and scoreB are required")
		return
	}
	if *req.ScoreA < 0 || *req.ScoreB < 0 {
		c.BadRequest("scores must not be negative")
		return
	}

	match, err := h.matchService.Create(c.Request.Context(), userID, req.TeamA, req.TeamB, *req.ScoreA, *req.ScoreB, req.Date)
	if err != nil {
		respondStoreError(c, err, "match not found", "failed to create match")
		return
	}

	_ = c.JSON(201, toMatchResponse(match))
}

func (h *MatchHandler) List(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.Unauthorized("not authenticated")
		return
	}

	matches, err := h.matchService.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		respondStoreError(c, err, "matches not found", "failed to get matches")
		return
	}

	response := make([]dto.MatchResponse, len(matches))
	for i := range matches {
		response[i] = toMatchResponse(&matches[i])
	}

	_ = c.JSON(200, response)
}

func (h *MatchHandler) Get(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.Unauthorized("not authenticated")
		return
	}

	matchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid match id")
		return
	}

	match, err := h.matchService.GetByID(c.Request.Context(), userID, matchID)
	if err != nil {
		respondStoreError(c, err, "match not found", "failed to get match")
		return
	}

	_ = c.JSON(200, toMatchResponse(match))
}

func (h *MatchHandler) Delete(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.Unauthorized("not authenticated")
		return
	}

	matchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid match id")
		return
	}

	if err := h.matchService.Delete(c.Request.Context(), userID, matchID); err != nil {
		respondStoreError(c, err, "match not found", "failed to delete match")
		return
	}

	_ = c.JSON(200, dto.MessageResponse{Message: "match deleted"})
}

func toMatchResponse(m *models.Match) dto.MatchResponse {
	return dto.MatchResponse{
		ID:        m.ID,
		TeamA:     m.TeamA,
		TeamB:     m.TeamB,
		ScoreA:    m.ScoreA,
		ScoreB:    m.ScoreB,
		Date:      m.Date,
		OwnerID:   m.OwnerID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

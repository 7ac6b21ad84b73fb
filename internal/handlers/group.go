package handlers

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/ramorim1998/gerador-times-back/internal/draw"
	"github.com/ramorim1998/gerador-times-back/internal/middleware"
	"github.com/ramorim1998/gerador-times-back/internal/models"
	"github.com/ramorim1998/gerador-times-back/pkg/dto"
)

type GroupHandler struct {
	groupService GroupServiceInterface
	newShuffler  func(seed int64) draw.Shuffler
}

func NewGroupHandler(groupService GroupServiceInterface) *GroupHandler {
	return &GroupHandler{
		groupService: groupService,
		newShuffler:  draw.NewSource,
	}
}

func (h *GroupHandler) Create(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.Unauthorized("not authenticated")
		return
	}

	var req dto.CreateGroupRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Name == "" {
		c.BadRequest("name is required")
		return
	}

	group, err := h.groupService.Create(c.Request.Context(), userID, req.Name, toMembers(req.Members))
	if err != nil {
		respondStoreError(c, err, "group not found", "failed to create group")
		return
	}

	_ = c.JSON(201, toGroupResponse(group))
}

func (h *GroupHandler) List(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.Unauthorized("not authenticated")
		return
	}

	groups, err := h.groupService.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		respondStoreError(c, err, "groups not found", "failed to get groups")
		return
	}

	response := make([]dto.GroupResponse, len(groups))
	for i := range groups {
		response[i] = toGroupResponse(&groups[i])
	}

	_ = c.JSON(200, response)
}

func (h *GroupHandler) Get(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.Unauthorized("not authenticated")
		return
	}

	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid group id")
		return
	}

	group, err := h.groupService.GetByID(c.Request.Context(), userID, groupID)
	if err != nil {
		respondStoreError(c, err, "group not found", "failed to get group")
		return
	}

	_ = c.JSON(200, toGroupResponse(group))
}

func (h *GroupHandler) Update(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.Unauthorized("not authenticated")
		return
	}

	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid group id")
		return
	}

	var req dto.UpdateGroupRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Name == "" {
		c.BadRequest("name is required")
		return
	}

	group, err := h.groupService.Update(c.Request.Context(), userID, groupID, req.Name, toMembers(req.Members))
	if err != nil {
		respondStoreError(c, err, "group not found", "failed to update group")
		return
	}

	_ = c.JSON(200, toGroupResponse(group))
}

func (h *GroupHandler) Delete(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.Unauthorized("not authenticated")
		return
	}

	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid group id")
		return
	}

	if err := h.groupService.Delete(c.Request.Context(), userID, groupID); err != nil {
		respondStoreError(c, err, "group not found", "failed to delete group")
		return
	}

	_ = c.JSON(200, dto.MessageResponse{Message: "group deleted"})
}

// Draw splits the group's active members into randomly composed teams.
func (h *GroupHandler) Draw(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.Unauthorized("not authenticated")
		return
	}

	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid group id")
		return
	}

	var req dto.DrawTeamsRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	group, err := h.groupService.GetByID(c.Request.Context(), userID, groupID)
	if err != nil {
		respondStoreError(c, err, "group not found", "failed to get group")
		return
	}

	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}

	teams, err := draw.Teams(group.ActiveMembers(), req.Teams, h.newShuffler(seed))
	if err != nil {
		if errors.Is(err, draw.ErrTooFewTeams) || errors.Is(err, draw.ErrTooFewPlayers) {
			c.BadRequest(err.Error())
			return
		}
		c.InternalServerError("failed to draw teams")
		return
	}

	_ = c.JSON(200, dto.DrawTeamsResponse{
		GroupID: group.ID,
		Teams:   teams,
		Seed:    seed,
	})
}

func toMembers(payload []dto.MemberPayload) []models.Member {
	members := make([]models.Member, len(payload))
	for i, m := range payload {
		members[i] = models.Member{Name: m.Name, Active: m.Active}
	}
	return members
}

func toGroupResponse(g *models.Group) dto.GroupResponse {
	members := make([]dto.MemberPayload, len(g.Members))
	for i, m := range g.Members {
		members[i] = dto.MemberPayload{Name: m.Name, Active: m.Active}
	}
	return dto.GroupResponse{
		ID:        g.ID,
		Name:      g.Name,
		Members:   members,
		OwnerID:   g.OwnerID,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

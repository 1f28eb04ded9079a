package api

import (
	"net/http"
	"strconv"

	reqdto "talentbridge/internal/handler/dto/request"
	resdto "talentbridge/internal/handler/dto/response"
	"talentbridge/internal/handler/httperr"
	"talentbridge/internal/handler/middleware"
	"talentbridge/internal/usecase/commands"
	"talentbridge/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FollowUpHandler struct {
	cmds commands.FollowUpCommands
	q    queries.FollowUpQueries
}

func NewFollowUpHandler(cmds commands.FollowUpCommands, q queries.FollowUpQueries) *FollowUpHandler {
	return &FollowUpHandler{cmds: cmds, q: q}
}

// @Summary Schedule follow-up
// @Description Queue a follow-up message to a candidate. Content comes from message_content or a template.
// @Tags followups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ScheduleFollowUpRequest true "Schedule request"
// @Success 201 {object} resdto.FollowUpResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/followups [post]
func (h *FollowUpHandler) Schedule(c *gin.Context) {
	recruiterID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingUserContext, "Internal server error", nil)
		return
	}
	var req reqdto.ScheduleFollowUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Schedule(c.Request.Context(), recruiterID, req)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	view, err := h.q.Get(c.Request.Context(), result.ID, recruiterID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load follow-up", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromFollowUpView(view))
}

// @Summary List follow-ups
// @Description The recruiter's queue, latest scheduled_at first
// @Tags followups
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending | processing | sent | failed | canceled"
// @Param limit query int false "Max items (default 50, max 200)"
// @Success 200 {object} resdto.FollowUpListResponse
// @Failure 400 {object} httperr.Response
// @Router /api/followups [get]
func (h *FollowUpHandler) List(c *gin.Context) {
	recruiterID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingUserContext, "Internal server error", nil)
		return
	}
	var filters queries.FollowUpFilters
	if v := c.Query("status"); v != "" {
		filters.Status = &v
	}
	if v := c.Query("limit"); v != "" {
		iv, err := strconv.Atoi(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		filters.Limit = iv
	}
	items, err := h.q.List(c.Request.Context(), recruiterID, filters)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFollowUpList(items))
}

// @Summary Get follow-up
// @Tags followups
// @Produce json
// @Security BearerAuth
// @Param id path string true "Follow-up ID"
// @Success 200 {object} resdto.FollowUpResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/followups/{id} [get]
func (h *FollowUpHandler) Get(c *gin.Context) {
	recruiterID, id, ok := h.pathIDs(c)
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), id, recruiterID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFollowUpView(view))
}

// @Summary Update follow-up
// @Description Edit content or schedule while the follow-up is still pending
// @Tags followups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Follow-up ID"
// @Param request body reqdto.UpdateFollowUpRequest true "Update request"
// @Success 200 {object} resdto.FollowUpResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/followups/{id} [patch]
func (h *FollowUpHandler) Update(c *gin.Context) {
	recruiterID, id, ok := h.pathIDs(c)
	if !ok {
		return
	}
	var req reqdto.UpdateFollowUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if _, err := h.cmds.Update(c.Request.Context(), id, recruiterID, req); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	h.respondView(c, id, recruiterID)
}

// @Summary Cancel follow-up
// @Tags followups
// @Produce json
// @Security BearerAuth
// @Param id path string true "Follow-up ID"
// @Success 200 {object} resdto.FollowUpResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/followups/{id}/cancel [post]
func (h *FollowUpHandler) Cancel(c *gin.Context) {
	recruiterID, id, ok := h.pathIDs(c)
	if !ok {
		return
	}
	if _, err := h.cmds.Cancel(c.Request.Context(), id, recruiterID); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	h.respondView(c, id, recruiterID)
}

// @Summary Record candidate response
// @Description Marks the recruiter/candidate follow-up record as answered
// @Tags followups
// @Produce json
// @Security BearerAuth
// @Param candidateId path string true "Candidate ID"
// @Success 200 {object} resdto.CandidateResponseRecorded
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/followups/candidates/{candidateId}/response [post]
func (h *FollowUpHandler) RecordResponse(c *gin.Context) {
	recruiterID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingUserContext, "Internal server error", nil)
		return
	}
	candidateID, err := uuid.Parse(c.Param("candidateId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid candidate id", nil)
		return
	}
	if err := h.cmds.RecordResponse(c.Request.Context(), recruiterID, candidateID); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.CandidateResponseRecorded{CandidateID: candidateID, ResponseReceived: true})
}

func (h *FollowUpHandler) pathIDs(c *gin.Context) (recruiterID, id uuid.UUID, ok bool) {
	recruiterID, ok = middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingUserContext, "Internal server error", nil)
		return uuid.Nil, uuid.Nil, false
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, uuid.Nil, false
	}
	return recruiterID, id, true
}

func (h *FollowUpHandler) respondView(c *gin.Context, id, recruiterID uuid.UUID) {
	view, err := h.q.Get(c.Request.Context(), id, recruiterID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load follow-up", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFollowUpView(view))
}

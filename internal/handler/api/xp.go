package api

import (
	"net/http"

	reqdto "talentbridge/internal/handler/dto/request"
	resdto "talentbridge/internal/handler/dto/response"
	"talentbridge/internal/handler/httperr"
	"talentbridge/internal/handler/middleware"
	"talentbridge/internal/usecase/commands"
	"talentbridge/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type XPHandler struct {
	cmds commands.XPCommands
	q    queries.XPQueries
}

func NewXPHandler(cmds commands.XPCommands, q queries.XPQueries) *XPHandler {
	return &XPHandler{cmds: cmds, q: q}
}

// @Summary Award XP action
// @Description Record a client-awardable action. Repeating an action with the same source_id awards nothing.
// @Tags xp
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AwardXPRequest true "Award request"
// @Success 201 {object} resdto.AwardXPResponse
// @Success 200 {object} resdto.AwardXPResponse "already awarded"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/xp/actions [post]
func (h *XPHandler) Award(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingUserContext, "Internal server error", nil)
		return
	}
	var req reqdto.AwardXPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.AwardAction(c.Request.Context(), userID, req)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	status := http.StatusCreated
	if !result.Awarded {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromAwardResult(result))
}

// @Summary XP summary
// @Description Total points, level progress and the most recent ledger entries
// @Tags xp
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.XPSummaryResponse
// @Router /api/xp/me [get]
func (h *XPHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingUserContext, "Internal server error", nil)
		return
	}
	view, err := h.q.Summary(c.Request.Context(), userID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromXPSummaryView(view))
}

package api

import (
	"net/http"

	"talentbridge/internal/handler/httperr"
	"talentbridge/internal/pkg/errs"
	"talentbridge/internal/usecase/commands"
	"talentbridge/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// abortWithUseCaseError maps marked use-case sentinels onto HTTP statuses.
func abortWithUseCaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrFollowUpNotPending):
		httperr.AbortWithError(c, http.StatusConflict, err, "Follow-up is no longer pending", nil)
	case errs.Is(err, errs.ErrDuplicateFollowUp):
		httperr.AbortWithError(c, http.StatusConflict, err, "A follow-up is already scheduled or was sent in the last 24 hours", nil)
	case errs.Is(err, errs.ErrFollowUpNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Follow-up not found", nil)
	case errs.Is(err, errs.ErrCandidateNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Candidate not found", nil)
	case errs.Is(err, errs.ErrTemplateNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Template not found", nil)
	case errs.Is(err, errs.ErrUnknownXPAction):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown XP action", nil)
	case errs.Is(err, commands.ErrActionNotClaimable):
		httperr.AbortWithError(c, http.StatusForbidden, err, "XP action is awarded by the server only", nil)
	case errs.Is(err, queries.ErrInvalidStatusFilter):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status filter", nil)
	case errs.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Validation failed", err.Error())
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

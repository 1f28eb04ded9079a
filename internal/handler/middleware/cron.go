package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"talentbridge/internal/handler/httperr"
	"talentbridge/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const CronSecretHeader = "X-Cron-Secret"

var errBadCronSecret = errs.New("cron secret mismatch")

// RequireCronSecret guards scheduler-triggered endpoints with a shared secret.
func RequireCronSecret(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got := c.GetHeader(CronSecretHeader)
		if secret == "" || subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
			slog.Warn("rejected cron request", "path", c.Request.URL.Path, "client_ip", c.ClientIP())
			httperr.AbortWithError(c, http.StatusUnauthorized, errBadCronSecret, "Unauthorized", nil)
			return
		}
		c.Next()
	}
}

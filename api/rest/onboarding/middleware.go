package onboarding

import (
	"codeberg.org/medlit/server/internal/auth"
	"codeberg.org/medlit/server/internal/errors"
	"codeberg.org/medlit/server/internal/logger"
	"codeberg.org/medlit/server/medlit/profiles"
	"github.com/gin-gonic/gin"
)

// rejects users who have not finished onboarding with a 403; a failed
// status check counts as not onboarded
func RequireOnboarded(svc *profiles.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.GetUserID(c)
		if !ok {
			errors.Unauthorized(c, "")
			return
		}

		status := svc.OnboardingStatus(c.Request.Context(), userID)
		if status.Err != nil {
			logger.ErrorErr(status.Err, "onboarding check failed", "user_id", userID)
		}

		if !status.Completed {
			errors.NotOnboarded(c)
			return
		}

		c.Next()
	}
}

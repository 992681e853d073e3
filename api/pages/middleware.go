package pages

import (
	"net/http"

	"codeberg.org/medlit/server/internal/auth"
	"codeberg.org/medlit/server/internal/logger"
	"codeberg.org/medlit/server/medlit/profiles"
	"github.com/gin-gonic/gin"
)

const onboardingPath = "/onboarding"

// sends users who have not finished onboarding to the wizard; a failed
// status check counts as not onboarded
func RequireOnboarding(svc *profiles.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.GetUserID(c)
		if !ok {
			c.Redirect(http.StatusTemporaryRedirect, auth.LoginURL(c.Request.URL.Path))
			c.Abort()
			return
		}

		status := svc.OnboardingStatus(c.Request.Context(), userID)
		if status.Err != nil {
			logger.ErrorErr(status.Err, "onboarding check failed", "user_id", userID)
		}

		if !status.Completed {
			c.Redirect(http.StatusTemporaryRedirect, onboardingPath)
			c.Abort()
			return
		}

		c.Next()
	}
}

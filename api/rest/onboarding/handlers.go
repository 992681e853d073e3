package onboarding

import (
	"net/http"

	"codeberg.org/medlit/server/internal/auth"
	"codeberg.org/medlit/server/internal/errors"
	"codeberg.org/medlit/server/medlit/profiles"
	"github.com/gin-gonic/gin"
)

// GetStatus godoc
// @Summary Get onboarding status
// @Description Reports whether the current user has completed onboarding
// @Tags onboarding
// @Produce json
// @Success 200 {object} StatusResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/v1/onboarding/status [get]
func GetStatus(svc *profiles.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.GetUserID(c)
		if !ok {
			errors.Unauthorized(c, "")
			return
		}

		status := svc.OnboardingStatus(c.Request.Context(), userID)

		resp := StatusResponse{Completed: status.Completed}
		if status.Err != nil {
			resp.Error = "Failed to check onboarding status"
		}

		c.JSON(http.StatusOK, resp)
	}
}

// GetOptions godoc
// @Summary Get onboarding options
// @Description Lists the professions, fields and reading frequencies offered during onboarding
// @Tags onboarding
// @Produce json
// @Success 200 {object} OptionsResponse
// @Router /api/v1/onboarding/options [get]
func GetOptions() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, Options())
	}
}

// Save godoc
// @Summary Complete onboarding
// @Description Saves the onboarding questionnaire and marks onboarding complete
// @Tags onboarding
// @Accept json
// @Produce json
// @Param request body SaveRequest true "Onboarding answers"
// @Success 200 {object} SaveResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/onboarding [post]
func Save(svc *profiles.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.GetUserID(c)
		if !ok {
			errors.Unauthorized(c, "")
			return
		}

		var req SaveRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		err := svc.SaveOnboarding(c.Request.Context(), userID, profiles.Onboarding{
			Profession: req.Profession,
			Field:      req.Field,
			Frequency:  req.Frequency,
			About:      req.About,
		})
		if err != nil {
			errors.InternalError(c, "failed to save onboarding data", err)
			return
		}

		c.JSON(http.StatusOK, SaveResponse{Success: true})
	}
}

func Options() OptionsResponse {
	return OptionsResponse{
		Professions: profiles.Professions,
		Fields:      profiles.Fields,
		Frequencies: profiles.Frequencies,
	}
}

package profile

import (
	stderrors "errors"
	"net/http"

	"codeberg.org/medlit/server/internal/auth"
	"codeberg.org/medlit/server/internal/errors"
	"codeberg.org/medlit/server/medlit/profiles"
	"github.com/gin-gonic/gin"
)

// GetProfile godoc
// @Summary Get profile
// @Description Returns onboarding answers and usage statistics, with defaults for anything missing
// @Tags profile
// @Produce json
// @Success 200 {object} ProfileResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/v1/profile [get]
func GetProfile(svc *profiles.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.GetUserID(c)
		if !ok {
			errors.Unauthorized(c, "")
			return
		}

		identity, _ := auth.GetIdentity(c)
		data := svc.ProfileData(c.Request.Context(), userID)

		resp := ProfileResponse{User: identity, Profile: data.Document}
		if data.Err != nil {
			resp.Error = "Failed to load profile data"
		}

		c.JSON(http.StatusOK, resp)
	}
}

// UpdateProfile godoc
// @Summary Update profile
// @Description Updates the display name, bio and specialty of the current user
// @Tags profile
// @Accept json
// @Produce json
// @Param request body UpdateRequest true "Profile update"
// @Success 200 {object} UpdateResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/profile [put]
func UpdateProfile(svc *profiles.Service, provider auth.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.GetUserID(c)
		if !ok {
			errors.Unauthorized(c, "")
			return
		}

		var req UpdateRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		ctx := c.Request.Context()

		if req.DisplayName != nil {
			if err := provider.UpdateDisplayName(ctx, userID, *req.DisplayName); err != nil {
				if stderrors.Is(err, auth.ErrUnsupported) {
					errors.BadRequest(c, "display name is managed by your sign-in provider", err)
					return
				}

				errors.InternalError(c, "failed to update display name", err)
				return
			}
		}

		err := svc.UpdateProfile(ctx, userID, profiles.Update{About: req.About, Field: req.Field})
		if stderrors.Is(err, profiles.ErrNotFound) {
			errors.NotFound(c, "profile")
			return
		}

		if err != nil {
			errors.InternalError(c, "failed to update profile", err)
			return
		}

		c.JSON(http.StatusOK, UpdateResponse{Success: true})
	}
}

package assistant

import (
	stderrors "errors"
	"net/http"

	"codeberg.org/medlit/server/internal/auth"
	"codeberg.org/medlit/server/internal/errors"
	"codeberg.org/medlit/server/medlit/assistant"
	"github.com/gin-gonic/gin"
)

// GetNewsfeed godoc
// @Summary Get newsfeed
// @Description Recent papers for the user's specialty; an upstream failure yields an empty list
// @Tags assistant
// @Produce json
// @Success 200 {object} NewsfeedResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/v1/newsfeed [get]
func GetNewsfeed(svc *assistant.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.GetUserID(c)
		if !ok {
			errors.Unauthorized(c, "")
			return
		}

		feed := svc.NewsfeedForUser(c.Request.Context(), userID)

		c.JSON(http.StatusOK, NewsfeedResponse{Niche: feed.Niche, Papers: feed.Papers})
	}
}

// MarkPaperRead godoc
// @Summary Record a paper read
// @Description Increments the papers-read counter of the current user
// @Tags assistant
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/newsfeed/read [post]
func MarkPaperRead(svc *assistant.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.GetUserID(c)
		if !ok {
			errors.Unauthorized(c, "")
			return
		}

		if err := svc.MarkPaperRead(c.Request.Context(), userID); err != nil {
			errors.InternalError(c, "failed to record paper read", err)
			return
		}

		c.JSON(http.StatusOK, MessageResponse{Message: "recorded"})
	}
}

// AnalyzeCase godoc
// @Summary Analyze a clinical case
// @Description Forwards the case to the research API for an evidence-backed analysis
// @Tags assistant
// @Accept json
// @Produce json
// @Param request body CaseAnalysisRequest true "Case details"
// @Success 200 {object} CaseAnalysisResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /api/v1/case-analysis [post]
func AnalyzeCase(svc *assistant.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.GetUserID(c)
		if !ok {
			errors.Unauthorized(c, "")
			return
		}

		var req CaseAnalysisRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		result := svc.AnalyzeCase(c.Request.Context(), userID, assistant.CaseInput{
			PatientHistory:     req.PatientHistory,
			CurrentSymptoms:    req.CurrentSymptoms,
			PatientPerspective: req.PatientPerspective,
			DoctorOpinion:      req.DoctorOpinion,
			Specialties:        req.Specialties,
		})

		if stderrors.Is(result.Err, assistant.ErrInvalidCase) {
			errors.BadRequest(c, result.Err.Error(), nil)
			return
		}

		if result.Err != nil {
			errors.Upstream(c, result.Err.Error())
			return
		}

		c.JSON(http.StatusOK, CaseAnalysisResponse{Analysis: result.Analysis, Sources: result.Sources})
	}
}

// Research godoc
// @Summary Ask a research question
// @Description Answers a free-text medical question with cited sources
// @Tags assistant
// @Accept json
// @Produce json
// @Param request body ResearchRequest true "Question"
// @Success 200 {object} ResearchResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /api/v1/research [post]
func Research(svc *assistant.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.GetUserID(c)
		if !ok {
			errors.Unauthorized(c, "")
			return
		}

		var req ResearchRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		outcome := svc.Research(c.Request.Context(), userID, req.Query)

		if stderrors.Is(outcome.Err, assistant.ErrEmptyQuery) {
			errors.BadRequest(c, outcome.Err.Error(), nil)
			return
		}

		if outcome.Err != nil {
			errors.Upstream(c, outcome.Err.Error())
			return
		}

		c.JSON(http.StatusOK, ResearchResponse{Answer: outcome.Answer, Sources: outcome.Sources})
	}
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/patent-lifecycle-api/internal/dto"
	"github.com/noah-isme/patent-lifecycle-api/internal/service"
	appErrors "github.com/noah-isme/patent-lifecycle-api/pkg/errors"
	"github.com/noah-isme/patent-lifecycle-api/pkg/response"
)

// RegistrationHandler exposes public sign-up and opposition endpoints.
type RegistrationHandler struct {
	registrations *service.RegistrationService
	metrics       *service.MetricsService
}

// NewRegistrationHandler constructs RegistrationHandler.
func NewRegistrationHandler(registrations *service.RegistrationService, metrics *service.MetricsService) *RegistrationHandler {
	return &RegistrationHandler{registrations: registrations, metrics: metrics}
}

// RegisterInventor godoc
// @Summary Register an inventor account
// @Tags Registration
// @Accept json
// @Produce json
// @Param payload body dto.RegisterInventorRequest true "Inventor payload"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /register/inventor [post]
func (h *RegistrationHandler) RegisterInventor(c *gin.Context) {
	var req dto.RegisterInventorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	inventor, err := h.registrations.RegisterInventor(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, inventor)
}

// RegisterReviewer godoc
// @Summary Register a reviewer account
// @Tags Registration
// @Accept json
// @Produce json
// @Param payload body dto.RegisterReviewerRequest true "Reviewer payload"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /register/reviewer [post]
func (h *RegistrationHandler) RegisterReviewer(c *gin.Context) {
	var req dto.RegisterReviewerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	reviewer, err := h.registrations.RegisterReviewer(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, reviewer)
}

// FileOpposition godoc
// @Summary File an opposition
// @Description Records a third-party opposition against a patent title
// @Tags Oppositions
// @Accept json
// @Produce json
// @Param payload body dto.FileOppositionRequest true "Opposition payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /oppositions [post]
func (h *RegistrationHandler) FileOpposition(c *gin.Context) {
	var req dto.FileOppositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	opposition, err := h.registrations.FileOpposition(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if h.metrics != nil {
		h.metrics.OppositionFiled()
	}
	response.Created(c, opposition)
}

// LatestOppositions godoc
// @Summary List the most recent oppositions
// @Tags Oppositions
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/oppositions [get]
func (h *RegistrationHandler) LatestOppositions(c *gin.Context) {
	oppositions, err := h.registrations.LatestOppositions(c.Request.Context(), claimsFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, oppositions, nil)
}

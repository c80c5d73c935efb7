package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/patent-lifecycle-api/internal/dto"
	"github.com/noah-isme/patent-lifecycle-api/internal/service"
	appErrors "github.com/noah-isme/patent-lifecycle-api/pkg/errors"
	"github.com/noah-isme/patent-lifecycle-api/pkg/response"
)

// ReviewHandler exposes reviewer assignment and decision endpoints.
type ReviewHandler struct {
	reviews *service.ReviewService
	metrics *service.MetricsService
}

// NewReviewHandler constructs ReviewHandler.
func NewReviewHandler(reviews *service.ReviewService, metrics *service.MetricsService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, metrics: metrics}
}

// Assign godoc
// @Summary Assign reviewers to a patent
// @Description Attaches reviewers to a patent; pairs that already exist are skipped
// @Tags Reviews
// @Accept json
// @Produce json
// @Param id path int true "Patent ID"
// @Param payload body dto.AssignReviewersRequest true "Reviewer ids"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 412 {object} response.Envelope
// @Router /patents/{id}/reviewers [post]
func (h *ReviewHandler) Assign(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.AssignReviewersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	assigned, err := h.reviews.AssignReviewers(c.Request.Context(), claimsFromContext(c), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.AssignReviewersResponse{Assigned: assigned}, nil)
}

// ListForPatent godoc
// @Summary List assignments for a patent
// @Tags Reviews
// @Produce json
// @Param id path int true "Patent ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /patents/{id}/reviewers [get]
func (h *ReviewHandler) ListForPatent(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	assignments, err := h.reviews.ListForPatent(c.Request.Context(), claimsFromContext(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, assignments, nil)
}

// ActiveReviewers godoc
// @Summary List reviewers eligible for assignment
// @Tags Reviews
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /reviewers/active [get]
func (h *ReviewHandler) ActiveReviewers(c *gin.Context) {
	reviewers, err := h.reviews.ActiveReviewers(c.Request.Context(), claimsFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, reviewers, nil)
}

// Submit godoc
// @Summary Submit a review decision
// @Description Records the decision and propagates it to the patent status
// @Tags Reviews
// @Accept json
// @Produce json
// @Param id path int true "Patent ID"
// @Param payload body dto.SubmitReviewRequest true "Decision payload"
// @Success 204
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /reviewer/patents/{id}/review [post]
func (h *ReviewHandler) Submit(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	if err := h.reviews.SubmitReview(c.Request.Context(), claimsFromContext(c), id, req); err != nil {
		response.Error(c, err)
		return
	}
	if h.metrics != nil {
		h.metrics.ReviewSubmitted(req.Decision)
	}
	response.NoContent(c)
}

// Pending godoc
// @Summary List the acting reviewer's pending assignments
// @Tags Reviews
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /reviewer/assignments [get]
func (h *ReviewHandler) Pending(c *gin.Context) {
	assignments, err := h.reviews.ListPending(c.Request.Context(), claimsFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, assignments, nil)
}

// History godoc
// @Summary List the acting reviewer's full review record
// @Tags Reviews
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /reviewer/history [get]
func (h *ReviewHandler) History(c *gin.Context) {
	assignments, err := h.reviews.History(c.Request.Context(), claimsFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, assignments, nil)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/patent-lifecycle-api/internal/dto"
	"github.com/noah-isme/patent-lifecycle-api/internal/service"
	appErrors "github.com/noah-isme/patent-lifecycle-api/pkg/errors"
	"github.com/noah-isme/patent-lifecycle-api/pkg/response"
)

// PatentHandler exposes patent register endpoints.
type PatentHandler struct {
	patents *service.PatentService
	metrics *service.MetricsService
}

// NewPatentHandler constructs PatentHandler.
func NewPatentHandler(patents *service.PatentService, metrics *service.MetricsService) *PatentHandler {
	return &PatentHandler{patents: patents, metrics: metrics}
}

// List godoc
// @Summary List patents
// @Tags Patents
// @Produce json
// @Param domain query string false "Filter by exact domain"
// @Success 200 {object} response.Envelope
// @Router /patents [get]
func (h *PatentHandler) List(c *gin.Context) {
	if domain := c.Query("domain"); domain != "" {
		patents, err := h.patents.ListByDomain(c.Request.Context(), domain)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.JSON(c, http.StatusOK, patents, nil)
		return
	}

	patents, err := h.patents.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, patents, nil)
}

// Get godoc
// @Summary Get patent detail
// @Tags Patents
// @Produce json
// @Param id path int true "Patent ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /patents/{id} [get]
func (h *PatentHandler) Get(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	patent, err := h.patents.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, patent, nil)
}

// Age godoc
// @Summary Get patent age
// @Description Calendar years and months elapsed since the filing date
// @Tags Patents
// @Produce json
// @Param id path int true "Patent ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /patents/{id}/age [get]
func (h *PatentHandler) Age(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	age, err := h.patents.Age(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, age, nil)
}

// Domains godoc
// @Summary List distinct patent domains
// @Tags Patents
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /patents/domains [get]
func (h *PatentHandler) Domains(c *gin.Context) {
	domains, err := h.patents.Domains(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, domains, nil)
}

// Create godoc
// @Summary File a patent
// @Description Files a new patent for the acting inventor; status starts Pending
// @Tags Patents
// @Accept json
// @Produce json
// @Param payload body dto.CreatePatentRequest true "Patent payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /patents [post]
func (h *PatentHandler) Create(c *gin.Context) {
	var req dto.CreatePatentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	patent, err := h.patents.Create(c.Request.Context(), claimsFromContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if h.metrics != nil {
		h.metrics.PatentFiled()
	}
	response.Created(c, patent)
}

// Update godoc
// @Summary Update a patent
// @Description Full-row replace of an existing patent
// @Tags Patents
// @Accept json
// @Produce json
// @Param id path int true "Patent ID"
// @Param payload body dto.UpdatePatentRequest true "Patent payload"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /patents/{id} [put]
func (h *PatentHandler) Update(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.UpdatePatentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	patent, err := h.patents.Update(c.Request.Context(), claimsFromContext(c), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, patent, nil)
}

// SetStatus godoc
// @Summary Update patent status
// @Tags Patents
// @Accept json
// @Produce json
// @Param id path int true "Patent ID"
// @Param payload body dto.SetStatusRequest true "Status payload"
// @Success 204
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /patents/{id}/status [patch]
func (h *PatentHandler) SetStatus(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	if err := h.patents.SetStatus(c.Request.Context(), claimsFromContext(c), id, req.Status); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ListMine godoc
// @Summary List the acting inventor's patents
// @Tags Patents
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /inventor/patents [get]
func (h *PatentHandler) ListMine(c *gin.Context) {
	patents, err := h.patents.ListMine(c.Request.Context(), claimsFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, patents, nil)
}

// CountMine godoc
// @Summary Count the acting inventor's patents
// @Tags Patents
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /inventor/patents/count [get]
func (h *PatentHandler) CountMine(c *gin.Context) {
	count, err := h.patents.CountMine(c.Request.Context(), claimsFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"count": count}, nil)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/patent-lifecycle-api/internal/service"
	"github.com/noah-isme/patent-lifecycle-api/pkg/response"
)

// ReportHandler exposes the reporting projections.
type ReportHandler struct {
	reports *service.ReportService
}

// NewReportHandler constructs ReportHandler.
func NewReportHandler(reports *service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// PublicStats godoc
// @Summary Public headline counters
// @Description Total, granted, expired patents plus renewals due inside 30 days
// @Tags Reports
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /stats [get]
func (h *ReportHandler) PublicStats(c *gin.Context) {
	stats, err := h.reports.PublicStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, stats, nil)
}

// DomainDistribution godoc
// @Summary Patent counts per domain
// @Tags Reports
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /reports/domains [get]
func (h *ReportHandler) DomainDistribution(c *gin.Context) {
	counts, err := h.reports.DomainDistribution(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, counts, nil)
}

// TypeDistribution godoc
// @Summary Patent counts per type
// @Tags Reports
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /reports/types [get]
func (h *ReportHandler) TypeDistribution(c *gin.Context) {
	counts, err := h.reports.TypeDistribution(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, counts, nil)
}

// AssignmentJoinView godoc
// @Summary Assignments joined to patent titles and reviewer names
// @Tags Reports
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /reports/assignments [get]
func (h *ReportHandler) AssignmentJoinView(c *gin.Context) {
	rows, err := h.reports.AssignmentJoinView(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rows, nil)
}

// GrantedReviewers godoc
// @Summary Reviewers who reviewed at least one granted patent
// @Tags Reports
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /reports/granted-reviewers [get]
func (h *ReportHandler) GrantedReviewers(c *gin.Context) {
	reviewers, err := h.reports.GrantedReviewers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, reviewers, nil)
}

// ReviewerWorkload godoc
// @Summary Completed versus pending reviews per reviewer
// @Tags Reports
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /reports/workload [get]
func (h *ReportHandler) ReviewerWorkload(c *gin.Context) {
	workload, err := h.reports.ReviewerWorkload(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, workload, nil)
}

// QualifyingRenewals godoc
// @Summary Patents with at least two paid renewals
// @Tags Reports
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /reports/qualifying-renewals [get]
func (h *ReportHandler) QualifyingRenewals(c *gin.Context) {
	renewals, err := h.reports.QualifyingRenewals(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, renewals, nil)
}

// ExportRegister godoc
// @Summary Export the patent register
// @Tags Reports
// @Produce text/csv
// @Produce application/pdf
// @Param format query string true "csv or pdf"
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /reports/register/export [get]
func (h *ReportHandler) ExportRegister(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")
	data, contentType, err := h.reports.ExportRegister(c.Request.Context(), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="patent-register.`+format+`"`)
	c.Data(http.StatusOK, contentType, data)
}

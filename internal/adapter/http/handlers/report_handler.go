package handlers

import (
	"net/http"

	response "avflow/internal/adapter/http/dto/response"
	"avflow/internal/usecase"
	"avflow/pkg"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves the read-only operator views: dashboard counters and
// the logistics agenda.

type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

func (h *ReportHandler) GetDashboard(c *gin.Context) {
	summary, err := h.usecase.Dashboard(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDashboard(summary))
}

func (h *ReportHandler) GetAgenda(c *gin.Context) {
	entries, err := h.usecase.Agenda(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAgenda(entries))
}

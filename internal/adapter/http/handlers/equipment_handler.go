package handlers

import (
	"errors"
	"net/http"

	request "avflow/internal/adapter/http/dto/request"
	response "avflow/internal/adapter/http/dto/response"
	"avflow/internal/usecase"
	"avflow/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEquipmentPayload  = pkg.NewDomainErrorSimple("INVALID_EQUIPMENT_INPUT", "Invalid equipment payload", http.StatusBadRequest)
	errInvalidAvailabilityQuery = pkg.NewDomainErrorSimple("INVALID_AVAILABILITY_QUERY", "Invalid availability query", http.StatusBadRequest)
)

// EquipmentHandler handles the rentable catalog plus the availability query
// used to bound quantity selection when a budget is being built.

type EquipmentHandler struct {
	usecase      usecase.IEquipmentUseCase
	availability usecase.IAvailabilityUseCase
}

func NewEquipmentHandler(uc usecase.IEquipmentUseCase, availability usecase.IAvailabilityUseCase) *EquipmentHandler {
	return &EquipmentHandler{usecase: uc, availability: availability}
}

func (h *EquipmentHandler) ListEquipments(c *gin.Context) {
	eqs, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapEquipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEquipments(eqs))
}

func (h *EquipmentHandler) CreateEquipment(c *gin.Context) {
	var payload request.EquipmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEquipmentPayload.HTTPStatus, errInvalidEquipmentPayload.ToHTTPError())
		return
	}

	eq, err := h.usecase.Add(c.Request.Context(), payload.Name, payload.Category, payload.TotalQuantity, payload.DailyRate)
	if err != nil {
		appErr := mapEquipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromEquipment(eq))
}

func (h *EquipmentHandler) DeleteEquipment(c *gin.Context) {
	if err := h.usecase.Remove(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapEquipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// GetAvailability answers how many units are free for the start/end query
// range. Unknown equipment answers 0 rather than 404: the engine fails soft.
func (h *EquipmentHandler) GetAvailability(c *gin.Context) {
	startRaw := c.Query("start")
	endRaw := c.Query("end")

	start, err := request.ParseDate(startRaw)
	if err != nil {
		c.JSON(errInvalidAvailabilityQuery.HTTPStatus, errInvalidAvailabilityQuery.ToHTTPError())
		return
	}
	end, err := request.ParseDate(endRaw)
	if err != nil {
		c.JSON(errInvalidAvailabilityQuery.HTTPStatus, errInvalidAvailabilityQuery.ToHTTPError())
		return
	}

	equipmentID := c.Param("id")
	available, err := h.availability.AvailableStock(c.Request.Context(), equipmentID, start, end)
	if err != nil {
		appErr := mapEquipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.AvailabilityResponse{
		EquipmentID: equipmentID,
		Start:       startRaw,
		End:         endRaw,
		Available:   available,
	})
}

func mapEquipmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEquipmentID),
		errors.Is(err, usecase.ErrInvalidEquipmentName),
		errors.Is(err, usecase.ErrInvalidTotalQuantity),
		errors.Is(err, usecase.ErrInvalidDailyRate),
		errors.Is(err, usecase.ErrInvalidDateRange):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEquipmentNotFound):
		return pkg.NewDomainErrorSimple("EQUIPMENT_NOT_FOUND", "Equipment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

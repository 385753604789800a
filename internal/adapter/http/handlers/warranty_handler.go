package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "garantias_service/internal/adapter/http/dto/request"
	response "garantias_service/internal/adapter/http/dto/response"
	"garantias_service/internal/domain/entities"
	"garantias_service/internal/usecase"
	"garantias_service/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidWarrantyPayload = pkg.NewDomainErrorSimple("INVALID_WARRANTY_INPUT", "Invalid warranty payload", http.StatusBadRequest)

// WarrantyHandler handles HTTP requests for air conditioner warranties.

type WarrantyHandler struct {
	usecase usecase.IWarrantyUseCase
}

func NewWarrantyHandler(uc usecase.IWarrantyUseCase) *WarrantyHandler {
	return &WarrantyHandler{usecase: uc}
}

// CreateWarranty registers a warranty and assigns its GAR number.
func (h *WarrantyHandler) CreateWarranty(c *gin.Context) {
	var payload request.WarrantyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWarrantyPayload.HTTPStatus, errInvalidWarrantyPayload.ToHTTPError())
		return
	}

	w, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapWarrantyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromWarranty(w))
}

// ListWarranties lists every warranty, optionally filtered with the estado,
// q (free text) or proximasAVencer query parameters.
func (h *WarrantyHandler) ListWarranties(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		ws  []entities.Warranty
		err error
	)
	switch {
	case c.Query("proximasAVencer") != "":
		days, convErr := strconv.Atoi(c.Query("proximasAVencer"))
		if convErr != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		ws, err = h.usecase.ListExpiring(ctx, days)
	case c.Query("estado") != "":
		ws, err = h.usecase.ListByStatus(ctx, entities.WarrantyStatus(c.Query("estado")))
	case c.Query("q") != "":
		ws, err = h.usecase.Search(ctx, c.Query("q"))
	default:
		ws, err = h.usecase.List(ctx)
	}
	if err != nil {
		appErr := mapWarrantyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWarranties(ws))
}

// GetWarranty resolves a warranty by store id.
func (h *WarrantyHandler) GetWarranty(c *gin.Context) {
	w, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWarrantyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWarranty(w))
}

// GetWarrantyByNumber resolves a warranty by its GAR number.
func (h *WarrantyHandler) GetWarrantyByNumber(c *gin.Context) {
	w, err := h.usecase.GetByNumber(c.Request.Context(), c.Param("numero"))
	if err != nil {
		appErr := mapWarrantyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWarranty(w))
}

// UpdateWarranty replaces a warranty's mutable fields.
func (h *WarrantyHandler) UpdateWarranty(c *gin.Context) {
	var payload request.WarrantyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWarrantyPayload.HTTPStatus, errInvalidWarrantyPayload.ToHTTPError())
		return
	}

	current, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWarrantyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	// The number, creation stamp and repair history survive a replace.
	w := payload.ToEntity()
	w.ID = current.ID
	w.Number = current.Number
	w.Coverage.Status = current.Coverage.Status
	w.Repairs = current.Repairs
	w.CreatedAt = current.CreatedAt

	updated, err := h.usecase.Update(c.Request.Context(), w)
	if err != nil {
		appErr := mapWarrantyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWarranty(updated))
}

// PatchWarrantyStatus moves a warranty to a new lifecycle status.
func (h *WarrantyHandler) PatchWarrantyStatus(c *gin.Context) {
	var payload request.WarrantyStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWarrantyPayload.HTTPStatus, errInvalidWarrantyPayload.ToHTTPError())
		return
	}

	if err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.WarrantyStatus(payload.Estado)); err != nil {
		appErr := mapWarrantyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	w, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWarrantyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWarranty(w))
}

// AddRepair appends one repair entry to the history.
func (h *WarrantyHandler) AddRepair(c *gin.Context) {
	var payload request.RepairRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWarrantyPayload.HTTPStatus, errInvalidWarrantyPayload.ToHTTPError())
		return
	}

	w, err := h.usecase.AddRepair(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		appErr := mapWarrantyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWarranty(w))
}

// DeleteWarranty removes a warranty permanently.
func (h *WarrantyHandler) DeleteWarranty(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapWarrantyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapWarrantyError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWarrantyID),
		errors.Is(err, usecase.ErrInvalidWarranty),
		errors.Is(err, usecase.ErrInvalidWarrantyStatus),
		errors.Is(err, usecase.ErrInvalidCoverageMonths),
		errors.Is(err, usecase.ErrInvalidRepair),
		errors.Is(err, usecase.ErrInvalidExpiryLookahead):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWarrantyNotFound):
		return pkg.NewDomainErrorSimple("WARRANTY_NOT_FOUND", "Warranty not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	types "github.com/yungbote/companyinfo-backend/internal/domain"
	"github.com/yungbote/companyinfo-backend/internal/http/response"
	"github.com/yungbote/companyinfo-backend/internal/platform/apierr"
	"github.com/yungbote/companyinfo-backend/internal/platform/logger"
	"github.com/yungbote/companyinfo-backend/internal/services"
	"github.com/yungbote/companyinfo-backend/internal/validation"
)

type CountryHandler struct {
	log       *logger.Logger
	countries services.CountryService
}

func NewCountryHandler(log *logger.Logger, countries services.CountryService) *CountryHandler {
	return &CountryHandler{log: log.With("handler", "CountryHandler"), countries: countries}
}

// GET /countries
func (h *CountryHandler) List(c *gin.Context) {
	rows, err := h.countries.List(c.Request.Context())
	if err != nil {
		h.log.Error("List countries failed", "error", err)
		response.RespondInternal(c)
		return
	}
	response.RespondOK(c, rows)
}

// GET /countries/:id
func (h *CountryHandler) Get(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	row, err := h.countries.GetByID(c.Request.Context(), id)
	if err != nil {
		h.log.Error("Get country failed", "country_id", id, "error", err)
		response.RespondInternal(c)
		return
	}
	if row == nil {
		notFound(c, "country", id)
		return
	}
	response.RespondOK(c, row)
}

// POST /countries
func (h *CountryHandler) Create(c *gin.Context) {
	var req types.Country
	if !bindJSON(c, &req) {
		return
	}
	if v := validation.Country(&req); !v.Valid() {
		response.RespondValidation(c, v)
		return
	}
	row, err := h.countries.Create(c.Request.Context(), &req)
	if err != nil {
		h.log.Error("Create country failed", "error", err)
		response.RespondInternal(c)
		return
	}
	response.RespondCreated(c, fmt.Sprintf("/countries/%d", row.ID), row)
}

// PUT /countries/:id
func (h *CountryHandler) Update(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	var req types.Country
	if !bindJSON(c, &req) {
		return
	}
	if v := validation.Country(&req); !v.Valid() {
		response.RespondValidation(c, v)
		return
	}
	if idMismatch(c, id, req.ID) {
		return
	}
	updated, err := h.countries.Update(c.Request.Context(), &req)
	if err != nil {
		h.log.Error("Update country failed", "country_id", id, "error", err)
		response.RespondInternal(c)
		return
	}
	if !updated {
		notFound(c, "country", id)
		return
	}
	response.RespondNoContent(c)
}

// DELETE /countries/:id
func (h *CountryHandler) Delete(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	deleted, err := h.countries.Delete(c.Request.Context(), id)
	if err != nil {
		h.log.Error("Delete country failed", "country_id", id, "error", err)
		response.RespondInternal(c)
		return
	}
	if !deleted {
		notFound(c, "country", id)
		return
	}
	response.RespondNoContent(c)
}

// GET /countries/:id/company-statistics
func (h *CountryHandler) CompanyStatistics(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	stats, err := h.countries.CompanyStatistics(c.Request.Context(), id)
	if err != nil {
		h.log.Error("Company statistics failed", "country_id", id, "error", err)
		response.RespondInternal(c)
		return
	}
	if len(stats) == 0 {
		response.RespondAPIError(c, apierr.NotFound("not_found", fmt.Errorf("no companies found for country %d", id)))
		return
	}
	response.RespondOK(c, stats)
}

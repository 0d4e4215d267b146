package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	types "github.com/yungbote/companyinfo-backend/internal/domain"
	"github.com/yungbote/companyinfo-backend/internal/http/response"
	"github.com/yungbote/companyinfo-backend/internal/platform/logger"
	"github.com/yungbote/companyinfo-backend/internal/services"
	"github.com/yungbote/companyinfo-backend/internal/validation"
)

type CompanyHandler struct {
	log       *logger.Logger
	companies services.CompanyService
}

func NewCompanyHandler(log *logger.Logger, companies services.CompanyService) *CompanyHandler {
	return &CompanyHandler{log: log.With("handler", "CompanyHandler"), companies: companies}
}

// GET /companies
func (h *CompanyHandler) List(c *gin.Context) {
	rows, err := h.companies.List(c.Request.Context())
	if err != nil {
		h.log.Error("List companies failed", "error", err)
		response.RespondInternal(c)
		return
	}
	response.RespondOK(c, rows)
}

// GET /companies/:id
func (h *CompanyHandler) Get(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	row, err := h.companies.GetByID(c.Request.Context(), id)
	if err != nil {
		h.log.Error("Get company failed", "company_id", id, "error", err)
		response.RespondInternal(c)
		return
	}
	if row == nil {
		notFound(c, "company", id)
		return
	}
	response.RespondOK(c, row)
}

// POST /companies
func (h *CompanyHandler) Create(c *gin.Context) {
	var req types.Company
	if !bindJSON(c, &req) {
		return
	}
	if v := validation.Company(&req); !v.Valid() {
		response.RespondValidation(c, v)
		return
	}
	row, err := h.companies.Create(c.Request.Context(), &req)
	if err != nil {
		h.log.Error("Create company failed", "error", err)
		response.RespondInternal(c)
		return
	}
	response.RespondCreated(c, fmt.Sprintf("/companies/%d", row.ID), row)
}

// PUT /companies/:id
func (h *CompanyHandler) Update(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	var req types.Company
	if !bindJSON(c, &req) {
		return
	}
	if v := validation.Company(&req); !v.Valid() {
		response.RespondValidation(c, v)
		return
	}
	if idMismatch(c, id, req.ID) {
		return
	}
	updated, err := h.companies.Update(c.Request.Context(), &req)
	if err != nil {
		h.log.Error("Update company failed", "company_id", id, "error", err)
		response.RespondInternal(c)
		return
	}
	if !updated {
		notFound(c, "company", id)
		return
	}
	response.RespondNoContent(c)
}

// DELETE /companies/:id
func (h *CompanyHandler) Delete(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	deleted, err := h.companies.Delete(c.Request.Context(), id)
	if err != nil {
		h.log.Error("Delete company failed", "company_id", id, "error", err)
		response.RespondInternal(c)
		return
	}
	if !deleted {
		notFound(c, "company", id)
		return
	}
	response.RespondNoContent(c)
}

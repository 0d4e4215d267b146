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

type ContactHandler struct {
	log      *logger.Logger
	contacts services.ContactService
}

func NewContactHandler(log *logger.Logger, contacts services.ContactService) *ContactHandler {
	return &ContactHandler{log: log.With("handler", "ContactHandler"), contacts: contacts}
}

// GET /contacts
func (h *ContactHandler) List(c *gin.Context) {
	rows, err := h.contacts.List(c.Request.Context())
	if err != nil {
		h.log.Error("List contacts failed", "error", err)
		response.RespondInternal(c)
		return
	}
	response.RespondOK(c, rows)
}

// GET /contacts/contacts-with-company-and-country
func (h *ContactHandler) ListWithRelations(c *gin.Context) {
	rows, err := h.contacts.ListWithRelations(c.Request.Context())
	if err != nil {
		h.log.Error("List contacts with relations failed", "error", err)
		response.RespondInternal(c)
		return
	}
	response.RespondOK(c, rows)
}

// GET /contacts/:id/:companyId/filter-contacts
//
// The first segment is the country id.
func (h *ContactHandler) Filter(c *gin.Context) {
	countryID, ok := intParam(c, "id")
	if !ok {
		return
	}
	companyID, ok := intParam(c, "companyId")
	if !ok {
		return
	}
	rows, err := h.contacts.Filter(c.Request.Context(), countryID, companyID)
	if err != nil {
		h.log.Error("Filter contacts failed", "country_id", countryID, "company_id", companyID, "error", err)
		response.RespondInternal(c)
		return
	}
	if len(rows) == 0 {
		response.RespondAPIError(c, apierr.NotFound("not_found",
			fmt.Errorf("no contacts found for country %d and company %d", countryID, companyID)))
		return
	}
	response.RespondOK(c, rows)
}

// GET /contacts/:id
func (h *ContactHandler) Get(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	row, err := h.contacts.GetByID(c.Request.Context(), id)
	if err != nil {
		h.log.Error("Get contact failed", "contact_id", id, "error", err)
		response.RespondInternal(c)
		return
	}
	if row == nil {
		notFound(c, "contact", id)
		return
	}
	response.RespondOK(c, row)
}

// POST /contacts
func (h *ContactHandler) Create(c *gin.Context) {
	var req types.Contact
	if !bindJSON(c, &req) {
		return
	}
	if v := validation.Contact(&req); !v.Valid() {
		response.RespondValidation(c, v)
		return
	}
	row, err := h.contacts.Create(c.Request.Context(), &req)
	if err != nil {
		h.log.Error("Create contact failed", "company_id", req.CompanyID, "country_id", req.CountryID, "error", err)
		response.RespondInternal(c)
		return
	}
	response.RespondCreated(c, fmt.Sprintf("/contacts/%d", row.ID), row)
}

// PUT /contacts/:id
func (h *ContactHandler) Update(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	var req types.Contact
	if !bindJSON(c, &req) {
		return
	}
	if v := validation.Contact(&req); !v.Valid() {
		response.RespondValidation(c, v)
		return
	}
	if idMismatch(c, id, req.ID) {
		return
	}
	updated, err := h.contacts.Update(c.Request.Context(), &req)
	if err != nil {
		h.log.Error("Update contact failed", "contact_id", id, "error", err)
		response.RespondInternal(c)
		return
	}
	if !updated {
		notFound(c, "contact", id)
		return
	}
	response.RespondNoContent(c)
}

// DELETE /contacts/:id
func (h *ContactHandler) Delete(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	deleted, err := h.contacts.Delete(c.Request.Context(), id)
	if err != nil {
		h.log.Error("Delete contact failed", "contact_id", id, "error", err)
		response.RespondInternal(c)
		return
	}
	if !deleted {
		notFound(c, "contact", id)
		return
	}
	response.RespondNoContent(c)
}

package handlers

import (
	"github.com/gofiber/fiber/v2"

	"standsreg/internal/models"
	"standsreg/internal/services/company"
	"standsreg/internal/utils"
)

type CompanyHandler struct {
	companyService company.Service
}

func NewCompanyHandler(companyService company.Service) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// ListPublic returns active companies for the registration form. Served
// without authentication.
func (h *CompanyHandler) ListPublic(c *fiber.Ctx) error {
	p := utils.GetPagination(c, 100, 500)

	companies, err := h.companyService.List(p.Skip, p.Limit, true)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, companies)
}

// List returns all companies including inactive ones.
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	p := utils.GetPagination(c, 100, 500)

	companies, err := h.companyService.List(p.Skip, p.Limit, false)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, companies)
}

// Get returns one company.
func (h *CompanyHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid company id")
	}

	comp, err := h.companyService.Get(id)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, comp)
}

// Create registers a new company.
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var comp models.Company
	if err := c.BodyParser(&comp); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	created, err := h.companyService.Create(&comp)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Created(c, created)
}

// Update applies a partial patch to a company.
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid company id")
	}

	var patch models.CompanyPatch
	if err := c.BodyParser(&patch); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	comp, err := h.companyService.Update(id, &patch)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, comp)
}

// Delete removes a company.
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid company id")
	}

	if err := h.companyService.Delete(id); err != nil {
		return respondError(c, err)
	}
	return utils.NoContent(c)
}

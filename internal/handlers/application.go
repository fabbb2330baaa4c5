package handlers

import (
	"github.com/gofiber/fiber/v2"

	"standsreg/internal/middleware"
	"standsreg/internal/models"
	"standsreg/internal/services/application"
	"standsreg/internal/utils"
)

type ApplicationHandler struct {
	appService application.Service
}

func NewApplicationHandler(appService application.Service) *ApplicationHandler {
	return &ApplicationHandler{appService: appService}
}

// Create files a new application for the authenticated user.
func (h *ApplicationHandler) Create(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)

	var input models.CreateApplicationInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	app, err := h.appService.Create(actor, &input)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Created(c, app)
}

// My lists the authenticated user's own applications.
func (h *ApplicationHandler) My(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)

	apps, err := h.appService.ListMine(actor)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, apps)
}

// Get returns one application with its nested records.
func (h *ApplicationHandler) Get(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid application id")
	}

	app, err := h.appService.GetVisible(actor, id)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, app)
}

// Update applies a partial patch to an application.
func (h *ApplicationHandler) Update(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid application id")
	}

	var patch models.ApplicationPatch
	if err := c.BodyParser(&patch); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	app, err := h.appService.Update(actor, id, &patch)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, app)
}

// Delete removes an application and everything scoped to it.
func (h *ApplicationHandler) Delete(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid application id")
	}

	if err := h.appService.Delete(actor, id); err != nil {
		return respondError(c, err)
	}
	return utils.NoContent(c)
}

// AddNextOfKin attaches the next of kin record.
func (h *ApplicationHandler) AddNextOfKin(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid application id")
	}

	var kin models.NextOfKin
	if err := c.BodyParser(&kin); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	created, err := h.appService.AddNextOfKin(actor, id, &kin)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Created(c, created)
}

// AddSpouse attaches the spouse record.
func (h *ApplicationHandler) AddSpouse(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid application id")
	}

	var spouse models.Spouse
	if err := c.BodyParser(&spouse); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	created, err := h.appService.AddSpouse(actor, id, &spouse)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Created(c, created)
}

// AddBeneficiary attaches a beneficiary record.
func (h *ApplicationHandler) AddBeneficiary(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid application id")
	}

	var ben models.Beneficiary
	if err := c.BodyParser(&ben); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	created, err := h.appService.AddBeneficiary(actor, id, &ben)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Created(c, created)
}

// RecordPayment books a payment against an application.
func (h *ApplicationHandler) RecordPayment(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid application id")
	}

	var input models.RecordPaymentInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	payment, err := h.appService.RecordPayment(actor, id, &input)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Created(c, payment)
}

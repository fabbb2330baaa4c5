package handlers

import (
	"github.com/gofiber/fiber/v2"

	"standsreg/internal/middleware"
	"standsreg/internal/models"
	"standsreg/internal/repositories"
	"standsreg/internal/services/application"
	"standsreg/internal/services/user"
	"standsreg/internal/utils"
)

// AdminHandler serves the admin-only surface: the full application list, the
// status decision endpoint, user management and the audit trail. Every route
// it serves sits behind the admin gate.
type AdminHandler struct {
	appService  application.Service
	userService user.Service
	auditRepo   repositories.AuditLogRepository
}

func NewAdminHandler(appService application.Service, userService user.Service, auditRepo repositories.AuditLogRepository) *AdminHandler {
	return &AdminHandler{
		appService:  appService,
		userService: userService,
		auditRepo:   auditRepo,
	}
}

// ListAllApplications returns every application, paginated.
func (h *AdminHandler) ListAllApplications(c *fiber.Ctx) error {
	p := utils.GetPagination(c, 50, 200)

	apps, total, err := h.appService.ListAll(p.Skip, p.Limit)
	if err != nil {
		return respondError(c, err)
	}
	p.Total = total
	return utils.Success(c, utils.NewPaginatedResponse(apps, p))
}

type statusUpdateRequest struct {
	Status models.ApplicationStatus `json:"status"`
}

// UpdateStatus approves or rejects a pending application.
func (h *AdminHandler) UpdateStatus(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid application id")
	}

	var req statusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}
	if !req.Status.Valid() {
		return utils.BadRequest(c, "status must be PENDING, APPROVED or REJECTED")
	}

	app, err := h.appService.UpdateStatus(actor, id, req.Status)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, app)
}

// ListUsers returns registered users, paginated, optionally filtered by
// company via the company_id query parameter.
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	p := utils.GetPagination(c, 50, 200)

	var companyID *uint
	if v := c.QueryInt("company_id", 0); v > 0 {
		id := uint(v)
		companyID = &id
	}

	users, total, err := h.userService.List(p.Skip, p.Limit, companyID)
	if err != nil {
		return respondError(c, err)
	}
	p.Total = total
	return utils.Success(c, utils.NewPaginatedResponse(users, p))
}

// GetUser returns one user.
func (h *AdminHandler) GetUser(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid user id")
	}

	u, err := h.userService.Get(id)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, u)
}

// UpdateUser applies a partial patch to a user account.
func (h *AdminHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid user id")
	}

	var patch models.UserPatch
	if err := c.BodyParser(&patch); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	u, err := h.userService.Update(id, &patch)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, u)
}

// DeleteUser removes a user and cascades through their applications.
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid user id")
	}

	if err := h.userService.Delete(id); err != nil {
		return respondError(c, err)
	}
	return utils.NoContent(c)
}

// GetLogs returns the audit trail, most recent first.
func (h *AdminHandler) GetLogs(c *fiber.Ctx) error {
	p := utils.GetPagination(c, 100, 500)

	entries, err := h.auditRepo.List(p.Skip, p.Limit)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, entries)
}

// GetApplicationLogs returns the audit trail for one application.
func (h *AdminHandler) GetApplicationLogs(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid application id")
	}

	entries, err := h.auditRepo.ListByTarget(id)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, entries)
}

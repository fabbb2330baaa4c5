package handlers

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"standsreg/internal/middleware"
	"standsreg/internal/services/document"
	"standsreg/internal/utils"
)

// maxDocumentSize caps uploads at 10 MiB before they reach blob storage.
const maxDocumentSize = 10 << 20

type DocumentHandler struct {
	docService document.Service
}

func NewDocumentHandler(docService document.Service) *DocumentHandler {
	return &DocumentHandler{docService: docService}
}

// Upload accepts a multipart form with a "file" part and a "kind" field and
// stores the document against the application.
func (h *DocumentHandler) Upload(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid application id")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.BadRequest(c, "file is required")
	}
	if fileHeader.Size > maxDocumentSize {
		return utils.Respond(c, fiber.StatusRequestEntityTooLarge, fiber.Map{"error": "file too large"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.InternalError(c, "could not read upload")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return utils.InternalError(c, "could not read upload")
	}

	kind := c.FormValue("kind")
	contentType := fileHeader.Header.Get("Content-Type")

	doc, err := h.docService.Upload(c.Context(), actor, id, fileHeader.Filename, contentType, kind, data)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Created(c, doc)
}

// List returns an application's documents.
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid application id")
	}

	docs, err := h.docService.List(actor, id)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, docs)
}

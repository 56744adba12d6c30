package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/s5redllms/NoteBuddy/internal/service"
)

// NoteHandler handles the owner-scoped note endpoints, including export.
type NoteHandler struct {
	noteService service.NoteService
}

// NewNoteHandler creates a new note handler.
func NewNoteHandler(noteService service.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

// NoteRequest represents a note create or update payload. Content is the
// serialized rich-text body; legacy clients may send plain text.
type NoteRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
}

// List godoc
// @Summary List the caller's notes, most recently updated first
// @Tags notes
// @Produce json
// @Success 200 {array} model.Note
// @Failure 401 {object} errors.ErrorResponse
// @Router /notes [get]
func (h *NoteHandler) List(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}
	notes, err := h.noteService.List(c.Request().Context(), session)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, notes)
}

// Create godoc
// @Summary Create a note owned by the caller
// @Tags notes
// @Accept json
// @Produce json
// @Param request body NoteRequest true "Note data"
// @Success 201 {object} model.Note
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /notes [post]
func (h *NoteHandler) Create(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}

	var req NoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}

	note, err := h.noteService.Create(c.Request().Context(), session, req.Title, req.Content)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, note)
}

// Update godoc
// @Summary Update a note the caller owns
// @Tags notes
// @Accept json
// @Produce json
// @Param id path int true "Note ID"
// @Param request body NoteRequest true "Note data"
// @Success 200 {object} successResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /notes/{id} [put]
func (h *NoteHandler) Update(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req NoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}

	if err := h.noteService.Update(c.Request().Context(), session, id, req.Title, req.Content); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, success())
}

// Delete godoc
// @Summary Delete a note the caller owns
// @Tags notes
// @Produce json
// @Param id path int true "Note ID"
// @Success 200 {object} successResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /notes/{id} [delete]
func (h *NoteHandler) Delete(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.noteService.Delete(c.Request().Context(), session, id); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, success())
}

// Export godoc
// @Summary Export a note as pdf data or a standalone HTML document
// @Tags notes
// @Produce json
// @Param id path int true "Note ID"
// @Param format path string true "Export format (pdf or html)"
// @Success 200 {object} service.NoteExport
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /notes/{id}/export/{format} [get]
func (h *NoteHandler) Export(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	format := service.ExportFormat(c.Param("format"))
	export, document, err := h.noteService.Export(c.Request().Context(), session, id, format)
	if err != nil {
		return domainError(err)
	}
	if format == service.ExportHTML {
		return c.HTML(http.StatusOK, document)
	}
	return c.JSON(http.StatusOK, export)
}

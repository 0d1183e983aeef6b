package handlers

import (
	"net/http"

	"wisewallet/internal/dto"
	"wisewallet/internal/errors"
	"wisewallet/internal/models"
	"wisewallet/internal/store"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// NoteHandler handles note and profile HTTP requests
type NoteHandler struct {
	store *store.Store
}

// NewNoteHandler creates a new note handler
func NewNoteHandler(st *store.Store) *NoteHandler {
	return &NoteHandler{store: st}
}

// ListNotes returns all notes in creation order.
// @Summary List notes
// @Tags Notes
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /notes [get]
func (h *NoteHandler) ListNotes(c echo.Context) error {
	return c.JSON(http.StatusOK, SuccessResponse{Data: h.store.Notes()})
}

// CreateNote adds a note with a server-assigned ID and timestamp.
// @Summary Create note
// @Tags Notes
// @Accept json
// @Produce json
// @Success 201 {object} SuccessResponse
// @Router /notes [post]
func (h *NoteHandler) CreateNote(c echo.Context) error {
	var req dto.CreateNoteRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	note := h.store.AddNote(req.Content)
	return c.JSON(http.StatusCreated, SuccessResponse{Data: note, Message: "Note created"})
}

// UpdateNote replaces a note's content.
// @Summary Update note
// @Tags Notes
// @Accept json
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /notes/{id} [put]
func (h *NoteHandler) UpdateNote(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid note ID"))
	}

	var req dto.UpdateNoteRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if !h.store.UpdateNote(id, req.Content) {
		return SendError(c, errors.NoteNotFound)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Note updated"})
}

// DeleteNote removes a note.
// @Summary Delete note
// @Tags Notes
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /notes/{id} [delete]
func (h *NoteHandler) DeleteNote(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid note ID"))
	}

	if !h.store.DeleteNote(id) {
		return SendError(c, errors.NoteNotFound)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Note deleted"})
}

// GetProfile returns the user profile.
// @Summary Get profile
// @Tags Profile
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /profile [get]
func (h *NoteHandler) GetProfile(c echo.Context) error {
	return c.JSON(http.StatusOK, SuccessResponse{Data: h.store.Profile()})
}

// UpdateProfile applies a partial replace to the user profile.
// @Summary Update profile
// @Tags Profile
// @Accept json
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /profile [put]
func (h *NoteHandler) UpdateProfile(c echo.Context) error {
	var req dto.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updated := h.store.UpdateProfile(models.ProfilePatch{
		Name:   req.Name,
		Email:  req.Email,
		Avatar: req.Avatar,
	})

	return c.JSON(http.StatusOK, SuccessResponse{Data: updated, Message: "Profile updated"})
}

// ToggleTheme flips the persisted UI theme between light and dark.
// @Summary Toggle theme
// @Tags Profile
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /theme/toggle [post]
func (h *NoteHandler) ToggleTheme(c echo.Context) error {
	return c.JSON(http.StatusOK, SuccessResponse{Data: dto.ThemeResponse{Theme: h.store.ToggleTheme()}})
}

// GetTheme reports the active UI theme.
// @Summary Get theme
// @Tags Profile
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /theme [get]
func (h *NoteHandler) GetTheme(c echo.Context) error {
	return c.JSON(http.StatusOK, SuccessResponse{Data: dto.ThemeResponse{Theme: h.store.Theme()}})
}

package dto

// CreateNoteRequest adds a free-form note.
type CreateNoteRequest struct {
	Content string `json:"content" validate:"required"`
}

// UpdateNoteRequest replaces a note's content.
type UpdateNoteRequest struct {
	Content string `json:"content" validate:"required"`
}

// UpdateProfileRequest is a partial replace of the user profile.
type UpdateProfileRequest struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty" validate:"omitempty,email"`
	Avatar *string `json:"avatar,omitempty"`
}

// ThemeResponse reports the active UI theme after a toggle.
type ThemeResponse struct {
	Theme string `json:"theme"`
}

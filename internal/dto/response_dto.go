package dto

import (
	"time"

	"github.com/prajwalb/sameeksha/internal/model"
)

// SaveResponseRequest is the body of both the submit and save-draft endpoints.
// Answers is the free-form section/field document; ResponseID optionally
// correlates a draft across saves.
type SaveResponseRequest struct {
	Answers    model.AnswerDocument `json:"answers" binding:"required"`
	ResponseID *string              `json:"response_id"`
}

type ResponseDTO struct {
	ID            uint                 `json:"id"`
	UserID        uint                 `json:"user_id"`
	Username      *string              `json:"username,omitempty"` // populated from the owning user
	ResponseID    *string              `json:"response_id,omitempty"`
	Status        string               `json:"status"`
	Answers       model.AnswerDocument `json:"answers"`
	SchemaVersion int                  `json:"schema_version"`
	SubmittedAt   *time.Time           `json:"submitted_at,omitempty"`
	LastSavedAt   time.Time            `json:"last_saved_at"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// CleanupReportDTO is returned by the duplicate-draft maintenance routine.
type CleanupReportDTO struct {
	CleanedCount    int `json:"cleaned_count"`
	RemainingDrafts int `json:"remaining_drafts"`
	DraftUsers      int `json:"draft_users"`
}

type ErrorResponse struct {
	Message string            `json:"message"`
	Details []string          `json:"details,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

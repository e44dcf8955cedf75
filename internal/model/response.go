package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

const (
	StatusDraft     = "draft"
	StatusSubmitted = "submitted"
)

// AnswersSchemaVersion is stamped onto every new response so the free-form
// answers blob can be migrated if the questionnaire layout ever changes.
const AnswersSchemaVersion = 1

// AnswerDocument holds the questionnaire answers as named sections of
// free-form fields. Section keys and field names are not enforced at the
// database layer; it is stored as a single jsonb column.
type AnswerDocument map[string]map[string]any

func (a AnswerDocument) Value() (driver.Value, error) {
	if a == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(a)
}

func (a *AnswerDocument) Scan(value any) error {
	if value == nil {
		*a = AnswerDocument{}
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for AnswerDocument", value)
	}
	return json.Unmarshal(raw, a)
}

type Response struct {
	ID     uint `gorm:"primarykey" json:"id"`
	UserID uint `json:"user_id" gorm:"not null;index"`
	User   User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	// ResponseID correlates a draft across saves from the client side.
	ResponseID    *string        `json:"response_id,omitempty" gorm:"index"`
	Status        string         `json:"status" gorm:"not null;default:'draft'"` // "draft", "submitted"
	Answers       AnswerDocument `json:"answers" gorm:"type:jsonb"`
	SchemaVersion int            `json:"schema_version" gorm:"not null;default:1"`
	SubmittedAt   *time.Time     `json:"submitted_at,omitempty"`
	LastSavedAt   time.Time      `json:"last_saved_at"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (r *Response) IsDraft() bool {
	return r.Status == StatusDraft
}

package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// GlossaryEntry is a persisted glossary term. Term is stored lowercase and
// is unique; it is the key the annotator matches on.
type GlossaryEntry struct {
	ID          uuid.UUID `json:"id"`
	Term        string    `json:"term"`
	Explanation string    `json:"explanation"`
	Category    string    `json:"category,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AddTermRequest represents a request to add a glossary term.
type AddTermRequest struct {
	Term        string `json:"term" validate:"required,min=1"`
	Explanation string `json:"explanation" validate:"required,min=1"`
	Category    string `json:"category,omitempty"`
}

// UpdateTermRequest represents a partial update to an existing term.
// Nil fields are left unchanged.
type UpdateTermRequest struct {
	Explanation *string `json:"explanation,omitempty" validate:"omitempty,min=1"`
	Category    *string `json:"category,omitempty"`
}

// ImportedTerm is one element of a glossary bulk-import file.
type ImportedTerm struct {
	Term        string `json:"term" validate:"required,min=1"`
	Explanation string `json:"explanation" validate:"required,min=1"`
	Category    string `json:"category,omitempty"`
}

// Validate validates the AddTermRequest using the validator.
func (r *AddTermRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdateTermRequest using the validator.
func (r *UpdateTermRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ImportedTerm using the validator.
func (t *ImportedTerm) Validate() error {
	validate := validator.New()
	return validate.Struct(t)
}

package dto

import "github.com/khaderelias2025-cloud/LrnBox-sub001/internal/app/models"

// SignupRequest carries the caller-supplied fields of a new account.
// Everything else (id, starting balance, empty social graphs) is assigned
// by the service.
type SignupRequest struct {
	Handle string          `json:"handle" validate:"required,handle"`
	Name   string          `json:"name" validate:"required,min=2,max=100"`
	Role   models.RoleType `json:"role" validate:"required,role"`
	Avatar string          `json:"avatar,omitempty"`
	Bio    string          `json:"bio,omitempty" validate:"max=300"`

	// Tutor fields are honored only when the role enables tutoring.
	Rate         int      `json:"rate,omitempty" validate:"gte=0"`
	Subjects     []string `json:"subjects,omitempty"`
	Availability []string `json:"availability,omitempty"`
}

package dto

import (
	"strings"

	"globalhearts_backend/internals/helpers/toast"
)

type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=120"`
	Email   string `json:"email" validate:"required,email,max=254"`
	Message string `json:"message" validate:"required,max=5000"`
}

func (r *ContactRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Message = strings.TrimSpace(r.Message)
}

type ContactResponse struct {
	Reference string              `json:"reference,omitempty"`
	Toasts    []toast.Toast       `json:"toasts"`
	Errors    map[string][]string `json:"errors,omitempty"`
}

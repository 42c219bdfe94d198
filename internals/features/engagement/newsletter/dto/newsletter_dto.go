package dto

import (
	"strings"

	"globalhearts_backend/internals/helpers/toast"
)

type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email,max=254"`
}

func (r *SubscribeRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
}

type SubscribeResponse struct {
	Reference string        `json:"reference,omitempty"`
	Toasts    []toast.Toast `json:"toasts"`
}

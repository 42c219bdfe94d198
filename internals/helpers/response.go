package helper

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var fieldMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email address",
	"gt":       "must be greater than zero",
	"max":      "is too long",
	"min":      "is too short",
	"oneof":    "has an unsupported value",
}

// FieldErrors turns validator errors into {json_field: [messages]}.
func FieldErrors(err error) map[string][]string {
	out := map[string][]string{}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		out["_"] = []string{"invalid input"}
		return out
	}
	for _, fe := range ve {
		msg, ok := fieldMessages[fe.Tag()]
		if !ok {
			msg = "failed " + fe.Tag()
		}
		key := jsonFieldPath(fe.Namespace())
		out[key] = append(out[key], msg)
	}
	return out
}

// ValidationError writes FieldErrors as a 422 response.
func ValidationError(c *fiber.Ctx, err error) error {
	return JsonValidationError(c, FieldErrors(err))
}

// FiberErrorHandler renders *fiber.Error (404 route, 405, body limit) in the standard shape.
func FiberErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, "")
}

// "UpdateDraftRequest.card.number" -> "card.number"
func jsonFieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		ns = ns[i+1:]
	}
	return ns
}

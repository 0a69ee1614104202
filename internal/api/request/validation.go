package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Decode parses the JSON request body into v.
func Decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return nil
}

// Validate runs struct-tag validation on v and translates failures into the
// human-readable messages reported in the response envelope, in field order.
func Validate(v any) []string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{"Invalid request payload."}
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "email":
			msgs = append(msgs, "Email must be valid.")
		case "required":
			msgs = append(msgs, fe.Field()+" must be provided.")
		default:
			msgs = append(msgs, fe.Field()+" is invalid.")
		}
	}
	return msgs
}

// ParseID parses a positive numeric path parameter.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

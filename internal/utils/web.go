package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/palengke-dev/palengke/internal/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report violations under json field names so clients can match them to payload keys
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// WriteErrorAndStatusCode writes err as the {"error": ...} JSON body the API
// promises. Errors without an explicit status code are 500s.
func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	if e, ok := err.(*errors.ErrorWithStatusCode); ok {
		statusCode = e.StatusCode
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

// DecodeValidate decodes a JSON body into body and checks its validate tags.
// A failed check enumerates every offending field, e.g.
// "invalid fields: price (required), seller_email (email)".
func DecodeValidate(r io.Reader, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		log.Print(err.Error())
		return errors.BadRequest("Body is invalid json")
	}
	if err := validate.Struct(body); err != nil {
		log.Print(err.Error())
		return errors.BadRequest(formatValidationError(err))
	}
	return nil
}

func formatValidationError(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return "Required fields missing"
	}
	violations := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		violations = append(violations, fmt.Sprintf("%s (%s)", fieldErr.Field(), fieldErr.Tag()))
	}
	return "invalid fields: " + strings.Join(violations, ", ")
}

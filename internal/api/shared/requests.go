package shared

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// validate is the process-wide validator. It is safe for concurrent use and
// caches struct metadata, so one instance serves every request.
var validate = validator.New()

// Validatable is implemented by request types that carry validation rules
// beyond what struct tags can express.
type Validatable interface {
	Validate() error
}

// DecodeJSON decodes the request body into v.
func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// ValidateRequest validates a decoded request. Types implementing
// Validatable run their own rules; everything else is checked against its
// validator struct tags.
func ValidateRequest(v interface{}) error {
	if validatable, ok := v.(Validatable); ok {
		return validatable.Validate()
	}

	return validate.Struct(v)
}

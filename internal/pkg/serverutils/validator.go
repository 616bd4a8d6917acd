package serverutils

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest checks struct tags on a parsed request body. The returned
// error is a validator.ValidationErrors, which the error handler maps to a
// 400 response; services receive only inputs that already passed here.
func ValidateRequest(req interface{}) error {
	return validate.Struct(req)
}

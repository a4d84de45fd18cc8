package middleware

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/yigit/studentinfo/internal/app/models/dto"
)

// RegisterValidatorTagNames makes binding errors report JSON field names
// instead of Go struct field names, so "Name" surfaces as "name".
func RegisterValidatorTagNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// HandleBindingError responds with a 400 describing why the request body
// was rejected and aborts the request.
func HandleBindingError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: BindingErrorMessage(err),
	})
}

// BindingErrorMessage creates a human-readable message for a request
// binding failure. Field-level validation failures are reported per field;
// anything else, such as a malformed JSON body, gets a generic message.
func BindingErrorMessage(err error) string {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return "invalid request body"
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, e := range fieldErrors {
		messages = append(messages, formatValidationError(e))
	}
	return strings.Join(messages, ", ")
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}

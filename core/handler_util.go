package core

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{"error": gin.H{"code": code, "message": message}})
}

var validatorSetup sync.Once

// setupValidator makes validator report fields by their json names so that
// per-field error maps match the wire format.
func setupValidator() {
	validatorSetup.Do(func() {
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
	})
}

// bindJSON binds and validates the request body. On failure it writes the
// 400 response (per-field messages for validation faults, a generic body
// for malformed JSON) and returns false.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make(map[string]string, len(verrs))
			for _, fe := range verrs {
				fields[fe.Field()] = validationMessage(fe)
			}
			c.JSON(http.StatusBadRequest, gin.H{"errors": fields})
			return false
		}
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Malformed JSON request")
		return false
	}
	return true
}

func validationMessage(fe validator.FieldError) string {
	name := displayName(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", name)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", name, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be after %s", name, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be before %s", name, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be a positive number", name)
	default:
		return fmt.Sprintf("%s is invalid", name)
	}
}

func displayName(field string) string {
	if field == "releaseYear" {
		return "Year"
	}
	if field == "" {
		return field
	}
	return strings.ToUpper(field[:1]) + field[1:]
}

// parseIDParam reads a positive int64 path parameter, writing the 400
// response on failure.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid id")
		return 0, false
	}
	return id, true
}

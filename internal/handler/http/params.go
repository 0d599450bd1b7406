package http

import (
	"strconv"

	"github.com/attendly/attendly-backend-go/internal/pkg/validator"
)

// validationErrors accumulates query parameter problems so a response can
// report all of them at once.
type validationErrors struct {
	errs validator.ValidationErrors
}

func (v *validationErrors) employeeID(raw string) int64 {
	if validator.IsEmpty(raw) {
		v.errs = append(v.errs, validator.ValidationError{Field: "employeeId", Message: "employeeId is required"})
		return 0
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		v.errs = append(v.errs, validator.ValidationError{Field: "employeeId", Message: "employeeId must be a positive number"})
		return 0
	}
	return id
}

func (v *validationErrors) month(raw string) string {
	if validator.IsEmpty(raw) {
		v.errs = append(v.errs, validator.ValidationError{Field: "month", Message: "month is required"})
		return ""
	}
	if !validator.IsValidMonth(raw) {
		v.errs = append(v.errs, validator.ValidationError{Field: "month", Message: "month must be in YYYY-MM format"})
		return ""
	}
	return raw
}

func (v *validationErrors) result() error {
	if len(v.errs) == 0 {
		return nil
	}
	return v.errs
}

package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	apperrors "github.com/arnavshah/duty-planner-go/internal/errors"
	"github.com/arnavshah/duty-planner-go/pkg/models"

	"github.com/go-playground/validator/v10"
)

// Clock returns the current time
type Clock func() time.Time

// NewValidator returns a validator reporting json field names
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// validationError converts validator failures into an apperrors.ValidationError
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		msg := fmt.Sprintf("failed on the '%s' rule", fe.Tag())
		if fe.Tag() == "required" {
			msg = "is required"
		}
		return apperrors.NewValidationError(fe.Field(), msg)
	}
	return apperrors.NewValidationError("request", err.Error())
}

func checkDate(date string) error {
	if _, err := models.ParseDate(date); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidDate, err)
	}
	return nil
}

func checkRole(role models.Role) error {
	if !role.IsValid() {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidRole, role)
	}
	return nil
}

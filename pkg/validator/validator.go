package validator

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jwalitptl/healthcare-platform/pkg/errors"
)

// DateLayout is the only accepted calendar date format.
const DateLayout = "2006-01-02"

// Validator checks tagged structs and reports the first failure as an
// *errors.AppError from the input error taxonomy.
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their form name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	// Custom tags are static; registration cannot fail
	_ = v.RegisterValidation("isodate", isISODate)
	_ = v.RegisterValidation("fileext", hasAllowedExtension)

	return &Validator{v: v}
}

// Struct validates s and translates the first violation.
func (v *Validator) Struct(s interface{}) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return errors.NewInternal(err)
	}
	return translate(verrs[0])
}

// Extension returns the lower-cased text after the last dot, or "".
func Extension(filename string) string {
	i := strings.LastIndex(filename, ".")
	if i < 0 {
		return ""
	}
	return strings.ToLower(filename[i+1:])
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

func isISODate(fl validator.FieldLevel) bool {
	_, err := ParseDate(fl.Field().String())
	return err == nil
}

func hasAllowedExtension(fl validator.FieldLevel) bool {
	ext := Extension(fl.Field().String())
	if ext == "" {
		return false
	}
	for _, allowed := range strings.Fields(fl.Param()) {
		if ext == allowed {
			return true
		}
	}
	return false
}

func translate(fe validator.FieldError) *errors.AppError {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return errors.NewMissingField(field)
	case "isodate":
		return errors.NewInvalidFormat(field, fmt.Sprintf("%s must be a valid date in YYYY-MM-DD format", field), fe)
	case "email":
		return errors.NewInvalidFormat(field, fmt.Sprintf("%s must be a valid email address", field), fe)
	case "gte", "min":
		return errors.NewOutOfRange(field, fmt.Sprintf("%s must be at least %s", field, fe.Param()))
	case "lte", "max":
		return errors.NewOutOfRange(field, fmt.Sprintf("%s must be at most %s", field, fe.Param()))
	case "fileext":
		allowed := strings.Join(strings.Fields(fe.Param()), ", ")
		return errors.NewUnsupportedType(field, fmt.Sprintf("unsupported file type %q; allowed types: %s",
			Extension(fmt.Sprint(fe.Value())), allowed))
	default:
		return errors.NewInvalidFormat(field, fmt.Sprintf("%s is invalid", field), fe)
	}
}

// Package validation checks submitted forms against struct tags and strips
// markup from free-text input before it is stored.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/shopspring/decimal"
)

// DateLayout is the accepted format for date fields.
const DateLayout = "2006-01-02"

// Violation is one failed rule on one field.
type Violation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Violations is returned by Struct when any rule fails.
type Violations []Violation

func (v Violations) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s", v[0].Message)
}

// Validator validates and sanitizes form structs. It is safe for concurrent use.
type Validator struct {
	validate  *validator.Validate
	sanitizer *bluemonday.Policy
}

// New creates a Validator. Field names in violations use the struct's json tags.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	v.RegisterValidation("int", isInt)
	v.RegisterValidation("decimal", isDecimal)
	v.RegisterValidation("date", isDate)
	v.RegisterValidation("year", isYear)

	return &Validator{
		validate:  v,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// Struct validates s and returns Violations on failure.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	violations := make(Violations, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, Violation{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: message(fe),
		})
	}
	return violations
}

// Sanitize strips markup from every exported string field of the struct
// pointed to by ptr and trims surrounding whitespace.
func (v *Validator) Sanitize(ptr any) {
	rv := reflect.ValueOf(ptr)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if f.Kind() == reflect.String && f.CanSet() {
			f.SetString(v.SanitizeString(f.String()))
		}
	}
}

// restore decodes the entities the policy writes for plain punctuation.
// &lt; and &gt; stay encoded, so sanitized text never contains a tag.
var restore = strings.NewReplacer("&#39;", "'", "&#34;", `"`, "&amp;", "&")

// SanitizeString strips markup from s. Quotes and ampersands round-trip,
// so plain text such as "O'Brien" is unchanged.
func (v *Validator) SanitizeString(s string) string {
	if s == "" {
		return s
	}
	return strings.TrimSpace(restore.Replace(v.sanitizer.Sanitize(s)))
}

// isInt accepts base-10 integers that fit in an int64.
func isInt(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}

func isDecimal(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, err := decimal.NewFromString(s)
	return err == nil
}

func isDate(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

func isYear(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	y, err := strconv.Atoi(s)
	return err == nil && y >= 1900 && y <= 2999
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "int":
		return fmt.Sprintf("%s must be a whole number", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", fe.Field())
	case "decimal":
		return fmt.Sprintf("%s must be a decimal number", fe.Field())
	case "date":
		return fmt.Sprintf("%s must be a date (YYYY-MM-DD)", fe.Field())
	case "year":
		return fmt.Sprintf("%s must be a four-digit year", fe.Field())
	default:
		return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
}

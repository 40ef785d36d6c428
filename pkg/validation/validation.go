package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/DSACMS/kyc-onboarding-api/pkg/complycube"
	"github.com/go-playground/validator/v10"
)

const (
	DateLayout = "2006-01-02"

	ErrorSummary = "Validation failed"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	// letters, combining accents, hyphen, apostrophe and space
	namePattern = regexp.MustCompile(`^[\p{L}\p{M}' \-]+$`)
)

// Errors is the list of field-level messages for one request, in field order.
type Errors []string

func (e Errors) Error() string {
	return ErrorSummary + ": " + strings.Join(e, "; ")
}

type Validator struct {
	v   *validator.Validate
	now func() time.Time
}

type Option func(*Validator)

// WithClock replaces time.Now for the notfuture rule.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		v.now = now
	}
}

func New(opts ...Option) *Validator {
	out := &Validator{now: time.Now}
	for _, opt := range opts {
		opt(out)
	}

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)

	_ = v.RegisterValidation("emailaddr", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if !datePattern.MatchString(s) {
			return false
		}
		_, err := time.Parse(DateLayout, s)
		return err == nil
	})
	_ = v.RegisterValidation("notfuture", func(fl validator.FieldLevel) bool {
		d, err := time.Parse(DateLayout, fl.Field().String())
		if err != nil {
			// shape is reported by isodate
			return true
		}
		today := out.now().Format(DateLayout)
		return d.Format(DateLayout) <= today
	})
	_ = v.RegisterValidation("documenttype", func(fl validator.FieldLevel) bool {
		return slices.Contains(complycube.DocumentTypes, fl.Field().String())
	})
	_ = v.RegisterValidation("personname", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return strings.TrimSpace(s) != "" && namePattern.MatchString(s)
	})

	out.v = v
	return out
}

// Struct runs every rule on req and returns Errors listing each failing field,
// or nil when req is valid.
func (v *Validator) Struct(req any) error {
	err := v.v.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return Errors{"invalid request body"}
	}

	out := make(Errors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, Message(fe))
	}
	return out
}

// Message renders one failed rule for the browser.
func Message(fe validator.FieldError) string {
	field := fe.Field()
	if field == "" {
		field = fe.StructField()
	}

	switch fe.ActualTag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "emailaddr":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "isodate":
		return fmt.Sprintf("%s must be a date in YYYY-MM-DD format", field)
	case "notfuture":
		return fmt.Sprintf("%s must not be in the future", field)
	case "personname":
		return fmt.Sprintf("%s may only contain letters, accents, hyphens, apostrophes and spaces", field)
	case "documenttype":
		return fmt.Sprintf("%s must be one of [%s]", field, strings.Join(complycube.DocumentTypes, " "))
	case "e164":
		return fmt.Sprintf("%s must be a phone number in E.164 format", field)
	case "iso3166_1_alpha2":
		return fmt.Sprintf("%s must be an ISO 3166-1 alpha-2 country code", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "base64":
		return fmt.Sprintf("%s must be base64 encoded", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}

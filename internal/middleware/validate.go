package middleware

import (
	"errors"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/bilgisen/geopulse/internal/logger"
	"github.com/bilgisen/geopulse/internal/service"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CountryNameLocal is the context key holding the validated,
// trimmed country name for downstream handlers.
const CountryNameLocal = "countryName"

var (
	digitPattern       = regexp.MustCompile(`[0-9]`)
	punctuationPattern = regexp.MustCompile(`[!@#$%^&*()_+={}\[\]:;"'<>,.?/|\\]`)
)

// Validator is a struct that holds the validator instance
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance with the custom
// country-name rule registered.
func NewValidator() *Validator {
	v := validator.New()
	// countryname rejects digits and blacklisted punctuation.
	_ = v.RegisterValidation("countryname", func(fl validator.FieldLevel) bool {
		name := fl.Field().String()
		return !digitPattern.MatchString(name) && !punctuationPattern.MatchString(name)
	})
	return &Validator{validate: v}
}

// Validate validates the given struct
func (v *Validator) Validate(s interface{}) error {
	return v.validate.Struct(s)
}

type countryNameParam struct {
	Name string `validate:"required,min=2,countryname"`
}

// countryNameMessages maps violated rules to the caller-facing text.
var countryNameMessages = map[string]string{
	"required":    "Country name cannot be empty",
	"min":         "Country name must be at least 2 characters long",
	"countryname": "Invalid country name format",
}

// ValidateCountryName validates the :countryName path parameter and
// stores the trimmed value in the request context. Violations return
// a 400 with a record-shaped error payload.
func ValidateCountryName() fiber.Handler {
	v := NewValidator()

	return func(c *fiber.Ctx) error {
		raw, err := url.PathUnescape(c.Params(CountryNameLocal))
		if err != nil {
			raw = c.Params(CountryNameLocal)
		}
		name := strings.TrimSpace(raw)

		if err := v.Validate(countryNameParam{Name: name}); err != nil {
			message := "Invalid country name format"
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) && len(verrs) > 0 {
				if m, ok := countryNameMessages[verrs[0].Tag()]; ok {
					message = m
				}
			}

			logger.Get().Warn().
				Str("country", name).
				Str("reason", message).
				Msg("Rejected country name")

			return c.Status(fiber.StatusBadRequest).JSON(service.ErrorRecord(name, message))
		}

		c.Locals(CountryNameLocal, name)
		return c.Next()
	}
}

// ErrorHandler is the fiber error handler mapping unhandled errors to
// a consistent JSON response.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	logger.Get().Error().
		Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Int("status", code).
		Msg("HTTP error")

	return c.Status(code).JSON(fiber.Map{
		"error": http.StatusText(code),
	})
}

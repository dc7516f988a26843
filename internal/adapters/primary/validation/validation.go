// Package validation checks console forms and dev backend request bodies,
// reporting problems per field.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/lorrc/restaurant-console/internal/core/domain"
	apperrors "github.com/lorrc/restaurant-console/internal/core/errors"
)

var (
	// Loose on purpose: anything@anything.anything
	emailRegex = regexp.MustCompile(`^\S+@\S+\.\S+$`)

	once     sync.Once
	instance *validator.Validate
)

// engine returns the shared validator with the console's custom tags.
func engine() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		// Report fields by their JSON names so errors line up with form keys.
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})

		mustRegister(v, "email_loose", func(fl validator.FieldLevel) bool {
			return emailRegex.MatchString(fl.Field().String())
		})
		mustRegister(v, "phone10", func(fl validator.FieldLevel) bool {
			return len(Digits(fl.Field().String())) == 10
		})
		mustRegister(v, "menu_category", func(fl validator.FieldLevel) bool {
			return contains(domain.MenuCategories, fl.Field().String())
		})
		mustRegister(v, "allergen", func(fl validator.FieldLevel) bool {
			return contains(domain.Allergens, fl.Field().String())
		})
		mustRegister(v, "order_status", func(fl validator.FieldLevel) bool {
			return domain.OrderStatus(fl.Field().String()).IsValid()
		})
		mustRegister(v, "ticket_status", func(fl validator.FieldLevel) bool {
			return domain.TicketStatus(fl.Field().String()).IsValid()
		})

		instance = v
	})
	return instance
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// Struct validates s and returns field errors, or nil when s is valid.
func Struct(s any) *apperrors.ValidationErrors {
	err := engine().Struct(s)
	if err == nil {
		return nil
	}

	errs := apperrors.NewValidationErrors()
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		errs.Add("_", err.Error())
		return errs
	}
	for _, fe := range ve {
		errs.Add(fe.Field(), fieldMessage(fe))
	}
	return errs
}

// messages overrides the generic message for a field and tag.
var messages = map[string]string{
	"name.required":            "Name is required",
	"name.min":                 "Name must be at least 2 characters",
	"email.required":           "Email is required",
	"email.email_loose":        "Please enter a valid email address",
	"phone.required":           "Phone number is required",
	"phone.phone10":            "Please enter a valid 10-digit phone number",
	"password.required":        "Password is required",
	"password.min":             "Password must be at least 6 characters",
	"confirmPassword.required": "Please confirm your password",
	"confirmPassword.eqfield":  "Passwords do not match",
	"description.required":     "Description is required",
	"price.gt":                 "Valid price is required",
	"category.required":        "Category is required",
	"category.menu_category":   "Category must be one of: " + strings.Join(domain.MenuCategories, ", "),
	"preparationTime.gt":       "Valid preparation time is required",
	"calories.gt":              "Valid calories are required",
	"protein.gte":              "Valid protein value is required",
	"carbs.gte":                "Valid carbs value is required",
	"fat.gte":                  "Valid fat value is required",
	"status.order_status":      "Invalid order status",
	"status.ticket_status":     "Invalid ticket status",
}

// fieldMessage converts a single FieldError into a human-readable message.
func fieldMessage(fe validator.FieldError) string {
	if msg, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}

	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "allergen":
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(domain.Allergens, ", "))
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

// Digits strips everything but ASCII digits from s.
func Digits(s string) string {
	return strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

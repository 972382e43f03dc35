// Package validation installs the request rules shared by every handler on gin's validator.
package validation

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"fbr-invoice-backend/internal/apperr"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	fieldNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_\s]+$`)
	passwordAllowed  = regexp.MustCompile(`^[A-Za-z\d@$!%*?&#]`)
	once             sync.Once
)

const passwordSpecials = "@$!%*?&#"

// Register wires JSON field names, decimal support and the custom tags. Safe to call repeatedly.
func Register() {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(jsonName)
		v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

		_ = v.RegisterValidation("fieldname", func(fl validator.FieldLevel) bool {
			return fieldNamePattern.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
			return StrongPassword(fl.Field().String())
		})
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})

		apperr.RegisterMessage("fieldname", "Field name can only contain letters, numbers, underscores, and spaces")
		apperr.RegisterMessage("password", "Password must contain at least one uppercase letter, one lowercase letter, one number, and one special character")
	})
}

// StrongPassword requires an upper, a lower, a digit and one of @$!%*?&#.
func StrongPassword(pw string) bool {
	if !passwordAllowed.MatchString(pw) {
		return false
	}
	var upper, lower, digit, special bool
	for _, r := range pw {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		}
	}
	return upper && lower && digit && special
}

func jsonName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}

func decimalValue(v reflect.Value) interface{} {
	d, ok := v.Interface().(decimal.Decimal)
	if !ok {
		return nil
	}
	f, _ := d.Float64()
	return f
}

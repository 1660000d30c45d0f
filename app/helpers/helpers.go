package helpers

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/leekchan/accounting"
	"github.com/rakhadenta/gokart/app/utils/token"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

type contextKey string

const ContextKeyPrincipal contextKey = "principal"

// PrincipalFromContext pulls the verified identity the auth middleware stored.
func PrincipalFromContext(ctx context.Context) (*token.Principal, bool) {
	principal, ok := ctx.Value(ContextKeyPrincipal).(*token.Principal)
	if !ok || principal == nil {
		return nil, false
	}
	return principal, true
}

func WithPrincipal(ctx context.Context, principal *token.Principal) context.Context {
	return context.WithValue(ctx, ContextKeyPrincipal, principal)
}

// HasRole is the explicit permission check consulted before mutating handlers run.
func HasRole(principal *token.Principal, role string) bool {
	return principal != nil && principal.Role == role
}

var moneyFormatter = accounting.Accounting{Symbol: "$", Precision: 2}

func FormatPrice(amount decimal.Decimal) string {
	return moneyFormatter.FormatMoney(amount)
}

func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	errorMessages := make(map[string]string)
	for _, err := range errs {
		field := strings.ToLower(err.Field())
		switch err.Tag() {
		case "required":
			errorMessages[field] = fmt.Sprintf("%s is required.", err.Field())
		case "email":
			errorMessages[field] = fmt.Sprintf("%s must be a valid email address.", err.Field())
		case "min":
			errorMessages[field] = fmt.Sprintf("%s must be at least %s.", err.Field(), err.Param())
		case "max":
			errorMessages[field] = fmt.Sprintf("%s must be at most %s.", err.Field(), err.Param())
		case "gte":
			errorMessages[field] = fmt.Sprintf("%s must be %s or greater.", err.Field(), err.Param())
		default:
			errorMessages[field] = fmt.Sprintf("%s failed on the %s rule.", err.Field(), err.Tag())
		}
	}
	return errorMessages
}

func PasswordCompare(hashPass string, password []byte) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashPass), password)
	if err != nil {
		log.Printf("PasswordCompare: password does not match or error: %v", err)
		return false
	}
	return true
}

func HashPassword(password string) string {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return ""
	}
	return string(bytes)
}

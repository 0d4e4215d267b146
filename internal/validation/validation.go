// Package validation holds the field rules every entity must satisfy before
// it reaches the store. Validators are pure: they never mutate their input
// and never touch the database.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	types "github.com/yungbote/companyinfo-backend/internal/domain"
)

// Violation is a single failed field rule.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Violations []Violation

func (v Violations) Error() string {
	if len(v) == 0 {
		return ""
	}
	parts := make([]string, 0, len(v))
	for _, x := range v {
		parts = append(parts, x.Field+": "+x.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Valid reports whether there are no violations.
func (v Violations) Valid() bool { return len(v) == 0 }

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(fmt.Sprintf("validation: register notblank: %v", err))
	}
	return v
}

var companyMessages = map[string]string{
	"name.notblank": "Company name is required.",
	"name.max":      "Company name cannot exceed 100 characters.",
}

var countryMessages = map[string]string{
	"name.notblank": "Country name is required.",
	"name.max":      "Country name cannot exceed 50 characters.",
}

var contactMessages = map[string]string{
	"name.notblank":  "Contact name is required.",
	"name.max":       "Contact name cannot exceed 50 characters.",
	"company_id.gte": "CompanyId is required.",
	"country_id.gte": "CountryId is required.",
}

func Company(c *types.Company) Violations {
	if c == nil {
		return Violations{{Field: "", Message: "Company is required."}}
	}
	return check(c, companyMessages)
}

func Country(c *types.Country) Violations {
	if c == nil {
		return Violations{{Field: "", Message: "Country is required."}}
	}
	return check(c, countryMessages)
}

func Contact(c *types.Contact) Violations {
	if c == nil {
		return Violations{{Field: "", Message: "Contact is required."}}
	}
	return check(c, contactMessages)
}

func check(entity any, messages map[string]string) Violations {
	err := validate.Struct(entity)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return Violations{{Field: "", Message: err.Error()}}
	}
	out := make(Violations, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msg, ok := messages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = fmt.Sprintf("%s failed the %q rule.", fe.Field(), fe.Tag())
		}
		out = append(out, Violation{Field: fe.Field(), Message: msg})
	}
	return out
}

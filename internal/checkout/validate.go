package checkout

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"shophub_back_end/internal/models"
)

var (
	// ZIP américain : 5 chiffres, ou 5+4
	zipRe = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	// International permissif : chiffres, espaces, tirets, parenthèses
	phoneRe = regexp.MustCompile(`^\+?[\d\s\-()]+$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Les erreurs sont rapportées sous le nom du champ JSON
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("uszip", func(fl validator.FieldLevel) bool {
		return zipRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})
	return v
}

var checkoutMessages = map[string]string{
	"email":     "Please enter a valid email address",
	"firstName": "First name must be at least 2 characters",
	"lastName":  "Last name must be at least 2 characters",
	"address":   "Please enter a valid address",
	"city":      "Please enter a valid city",
	"state":     "Please enter a valid state",
	"zipCode":   "Please enter a valid ZIP code",
	"country":   "Please select a country",
	"phone":     "Please enter a valid phone number",
}

var contactMessages = map[string]string{
	"name":    "Name must be at least 2 characters",
	"email":   "Please enter a valid email address",
	"subject": "Subject must be at least 5 characters",
	"message": "Message must be at least 20 characters",
}

// ValidateForm valide le formulaire de checkout et retourne les erreurs par
// champ. Une map vide signifie que la soumission peut continuer.
func ValidateForm(form models.CheckoutFormData) map[string]string {
	return fieldErrors(validate.Struct(form), checkoutMessages)
}

// ValidateContact valide le formulaire de contact
func ValidateContact(form models.ContactFormData) map[string]string {
	return fieldErrors(validate.Struct(form), contactMessages)
}

func fieldErrors(err error, messages map[string]string) map[string]string {
	if err == nil {
		return nil
	}
	out := make(map[string]string)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["form"] = "Invalid form data"
		return out
	}
	for _, fe := range verrs {
		if msg, ok := messages[fe.Field()]; ok {
			out[fe.Field()] = msg
		} else {
			out[fe.Field()] = "Invalid value"
		}
	}
	return out
}

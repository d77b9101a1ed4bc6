package models

// CheckoutFormData est éphémère : validé avant soumission, jamais persisté
type CheckoutFormData struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"firstName" validate:"required,min=2"`
	LastName  string `json:"lastName" validate:"required,min=2"`
	Address   string `json:"address" validate:"required,min=5"`
	City      string `json:"city" validate:"required,min=2"`
	State     string `json:"state" validate:"required,min=2"`
	ZipCode   string `json:"zipCode" validate:"required,uszip"`
	Country   string `json:"country" validate:"required,min=2"`
	Phone     string `json:"phone" validate:"required,phone"`
}

type ContactFormData struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,min=5"`
	Message string `json:"message" validate:"required,min=20"`
}

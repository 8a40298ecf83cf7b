package models

// ContactMessage is the public contact form.
type ContactMessage struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone,omitempty" validate:"max=40"`
	Company string `json:"company,omitempty" validate:"max=100"`
	Service string `json:"service,omitempty" validate:"max=100"`
	Message string `json:"message" validate:"required,max=5000"`
}

// Subscription is the newsletter sign-up form.
type Subscription struct {
	Email string `json:"email" validate:"required,email"`
}

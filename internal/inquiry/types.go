package inquiry

// Request is the contact form body.
type Request struct {
	CompanyName string `json:"companyName" validate:"required"`
	Industry    string `json:"industry"`
	ContactName string `json:"contactName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone,omitempty"`
	CompanySize string `json:"companySize"`
	Comments    string `json:"comments,omitempty"`
}

// Response is returned once both mails are sent.
type Response struct {
	Message string `json:"message"`
}

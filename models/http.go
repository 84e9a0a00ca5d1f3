package models

// Credentials is the request body of the signup and login endpoints.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SaveInvoiceRequest is the request body of POST /api/invoices. Field names
// follow the camelCase convention the web client sends.
type SaveInvoiceRequest struct {
	InvoiceNumber  string          `json:"invoiceNumber"`
	ContractorName string          `json:"contractorName"`
	Notes          string          `json:"notes"`
	Items          []SaveItemInput `json:"items"`
}

// SaveItemInput is one line item of a SaveInvoiceRequest.
type SaveItemInput struct {
	Client      string  `json:"client"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Hours       float64 `json:"hours"`
	HourlyRate  float64 `json:"hourlyRate"`
	Total       float64 `json:"total"`
}

// SaveInvoiceResponse is the success body of POST /api/invoices.
type SaveInvoiceResponse struct {
	Message   string `json:"message"`
	InvoiceID int64  `json:"invoiceId"`
}

// CurrentUserResponse is the body of GET /api/user/me.
type CurrentUserResponse struct {
	Email string `json:"email"`
}

// MessageResponse is a generic informational response body.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body returned for client-visible failures. Internal
// detail is logged server-side and never included here.
type ErrorResponse struct {
	Error string `json:"error"`
}

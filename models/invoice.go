package models

import "time"

// Invoice is the single current invoice of a user. Saving an invoice always
// replaces the previous one wholesale, so at most one live row exists per
// user even though the schema would allow more.
type Invoice struct {
	InvoiceID      int64     `json:"invoice_id"`
	UserID         int64     `json:"-"`
	InvoiceNumber  string    `json:"invoice_number"`
	ContractorName string    `json:"contractor_name"`
	Notes          string    `json:"notes"`
	CreatedAt      time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Invoice model.
func (i Invoice) TableName() string {
	return "invoices"
}

// InvoiceItem is a single line item belonging to an invoice.
// Total is supplied by the client and stored as-is; the server does not
// recompute hours * hourly_rate.
type InvoiceItem struct {
	ItemID      int64   `json:"-"`
	InvoiceID   int64   `json:"-"`
	Client      string  `json:"client"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Hours       float64 `json:"hours"`
	HourlyRate  float64 `json:"hourly_rate"`
	Total       float64 `json:"total"`
}

// TableName returns the name of the database table
// associated with the InvoiceItem model.
func (i InvoiceItem) TableName() string {
	return "invoice_items"
}

// InvoiceRow is one row of the invoice/items left-outer join returned to the
// client. The item fields are pointers so that an invoice without items
// serialises them as JSON null instead of zero values.
type InvoiceRow struct {
	InvoiceID      int64    `json:"invoice_id"`
	InvoiceNumber  string   `json:"invoice_number"`
	ContractorName string   `json:"contractor_name"`
	Notes          string   `json:"notes"`
	Client         *string  `json:"client"`
	Date           *string  `json:"date"`
	Description    *string  `json:"description"`
	Hours          *float64 `json:"hours"`
	HourlyRate     *float64 `json:"hourly_rate"`
	Total          *float64 `json:"total"`
}

// HasItem reports whether the row carries actual line item data or is the
// single padding row produced by the outer join for an item-less invoice.
func (r InvoiceRow) HasItem() bool {
	return r.Client != nil || r.Date != nil || r.Description != nil ||
		r.Hours != nil || r.HourlyRate != nil || r.Total != nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/Masterminds/squirrel"

	"github.com/invoicerd/invoicer/models"
)

// Query builders for the invoice repository. Queries are assembled with
// squirrel so the same builders produce valid SQL for both backends; the
// placeholder format comes from the [DB] the repository was created with.

// buildInvoiceRowsQuery builds the invoice/items left-outer join filtered by
// user, ordered by item id so the client sees line items in insertion order.
func buildInvoiceRowsQuery(db *DB, userID int64) (string, []any, error) {
	return db.sq.
		Select(
			"i.id",
			"i.invoice_number",
			"i.contractor_name",
			"i.notes",
			"ii.client",
			"ii.date",
			"ii.description",
			"ii.hours",
			"ii.hourly_rate",
			"ii.total",
		).
		From("invoices i").
		LeftJoin("invoice_items ii ON i.id = ii.invoice_id").
		Where(squirrel.Eq{"i.user_id": userID}).
		OrderBy("ii.id").
		ToSql()
}

// buildDeleteItemsQuery deletes every line item belonging to any invoice
// owned by the user.
func buildDeleteItemsQuery(db *DB, userID int64) (string, []any, error) {
	return db.sq.
		Delete("invoice_items").
		Where(squirrel.Expr(
			"invoice_id IN (SELECT id FROM invoices WHERE user_id = ?)", userID,
		)).
		ToSql()
}

// buildDeleteInvoicesQuery deletes every invoice owned by the user.
func buildDeleteInvoicesQuery(db *DB, userID int64) (string, []any, error) {
	return db.sq.
		Delete("invoices").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
}

// buildInsertInvoiceQuery inserts the new invoice and returns its id.
// created_at is left to the column default.
func buildInsertInvoiceQuery(db *DB, userID int64, invoice models.Invoice) (string, []any, error) {
	return db.sq.
		Insert("invoices").
		Columns("user_id", "invoice_number", "contractor_name", "notes").
		Values(userID, invoice.InvoiceNumber, invoice.ContractorName, invoice.Notes).
		Suffix("RETURNING id").
		ToSql()
}

// buildInsertItemsQuery inserts the whole item batch as a single multi-row
// INSERT, so the batch succeeds or fails as one statement.
func buildInsertItemsQuery(db *DB, invoiceID int64, items []models.InvoiceItem) (string, []any, error) {
	builder := db.sq.
		Insert("invoice_items").
		Columns("invoice_id", "client", "date", "description", "hours", "hourly_rate", "total")

	for _, item := range items {
		builder = builder.Values(
			invoiceID,
			item.Client,
			item.Date,
			item.Description,
			item.Hours,
			item.HourlyRate,
			item.Total,
		)
	}

	return builder.ToSql()
}

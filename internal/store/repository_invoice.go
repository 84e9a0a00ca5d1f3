package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/invoicerd/invoicer/internal/logger"
	"github.com/invoicerd/invoicer/models"
)

// invoiceRepository is the SQL-backed implementation of [InvoiceRepository].
//
// The replace operation runs as one database transaction: the previous
// invoice and its items are only gone once the new invoice and every one of
// its items are in. A failure at any step rolls the whole sequence back, so
// there is no window in which a user has lost the old invoice without
// gaining the new one.
type invoiceRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewInvoiceRepository constructs an [InvoiceRepository] backed by the
// provided database connection and logger.
func NewInvoiceRepository(db *DB, logger *logger.Logger) InvoiceRepository {
	logger.Debug().Msg("creating invoice repository")
	return &invoiceRepository{
		db:     db,
		logger: logger,
	}
}

// GetInvoiceRows reassembles the user's invoice view as the left-outer join
// of invoices with invoice_items.
//
// Result shape:
//   - no invoice → empty slice;
//   - invoice without items → exactly one row, item fields nil;
//   - otherwise one row per item, ordered by item id (insertion order).
func (r *invoiceRepository) GetInvoiceRows(ctx context.Context, userID int64) ([]models.InvoiceRow, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInvoiceRowsQuery(r.db, userID)
	if err != nil {
		log.Err(err).Str("func", "*invoiceRepository.GetInvoiceRows").Msg("error: building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*invoiceRepository.GetInvoiceRows").
			Int64("user_id", userID).
			Msg("failed to execute invoice join query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make([]models.InvoiceRow, 0, 8)

	for rows.Next() {
		var (
			row            models.InvoiceRow
			invoiceNumber  sql.NullString
			contractorName sql.NullString
			notes          sql.NullString
			client         sql.NullString
			date           sql.NullString
			description    sql.NullString
			hours          sql.NullFloat64
			hourlyRate     sql.NullFloat64
			total          sql.NullFloat64
		)

		if err := rows.Scan(
			&row.InvoiceID,
			&invoiceNumber,
			&contractorName,
			&notes,
			&client,
			&date,
			&description,
			&hours,
			&hourlyRate,
			&total,
		); err != nil {
			log.Err(err).
				Str("func", "*invoiceRepository.GetInvoiceRows").
				Int64("user_id", userID).
				Msg("failed to scan invoice row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		row.InvoiceNumber = invoiceNumber.String
		row.ContractorName = contractorName.String
		row.Notes = notes.String
		row.Client = nullStringPtr(client)
		row.Date = nullStringPtr(date)
		row.Description = nullStringPtr(description)
		row.Hours = nullFloatPtr(hours)
		row.HourlyRate = nullFloatPtr(hourlyRate)
		row.Total = nullFloatPtr(total)

		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).
			Str("func", "*invoiceRepository.GetInvoiceRows").
			Int64("user_id", userID).
			Msg("invoice row iteration ended with error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

// ReplaceInvoice replaces the user's invoice wholesale inside one
// transaction:
//
//  1. delete all items of any invoice owned by userID;
//  2. delete all invoices owned by userID;
//  3. insert the new invoice, obtaining its id;
//  4. insert the whole item batch bound to that id.
//
// The item batch is all-or-nothing: a failing item insert rolls back the
// entire replace, including the deletes.
func (r *invoiceRepository) ReplaceInvoice(ctx context.Context, userID int64, invoice models.Invoice, items []models.InvoiceItem) (int64, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*invoiceRepository.ReplaceInvoice").Msg("failed to begin transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	// 1. items of the previous invoice
	query, args, err := buildDeleteItemsQuery(r.db, userID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*invoiceRepository.ReplaceInvoice").
			Int64("user_id", userID).
			Msg("failed to delete previous invoice items")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	// 2. the previous invoice itself
	query, args, err = buildDeleteInvoicesQuery(r.db, userID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*invoiceRepository.ReplaceInvoice").
			Int64("user_id", userID).
			Msg("failed to delete previous invoice")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	// 3. the new invoice
	query, args, err = buildInsertInvoiceQuery(r.db, userID, invoice)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	var invoiceID int64
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&invoiceID); err != nil {
		log.Err(err).
			Str("func", "*invoiceRepository.ReplaceInvoice").
			Int64("user_id", userID).
			Msg("failed to insert new invoice")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if invoiceID == 0 {
		return 0, ErrInvoiceNotSaved
	}

	// 4. the whole item batch, one statement
	if len(items) > 0 {
		query, args, err = buildInsertItemsQuery(r.db, invoiceID, items)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "*invoiceRepository.ReplaceInvoice").
				Int64("user_id", userID).
				Int64("invoice_id", invoiceID).
				Int("items", len(items)).
				Msg("failed to insert invoice items")
			return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "*invoiceRepository.ReplaceInvoice").
			Int64("user_id", userID).
			Msg("failed to commit invoice replace")
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return invoiceID, nil
}

func nullStringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func nullFloatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/invoicerd/invoicer/internal/logger"
	"github.com/invoicerd/invoicer/internal/store"
	"github.com/invoicerd/invoicer/models"
)

// invoiceService is the concrete implementation of InvoiceService.
type invoiceService struct {
	invoiceRepository store.InvoiceRepository
	logger            *logger.Logger
}

func NewInvoiceService(invoiceRepository store.InvoiceRepository, logger *logger.Logger) InvoiceService {
	return &invoiceService{
		invoiceRepository: invoiceRepository,
		logger:            logger,
	}
}

// GetInvoice returns the user's invoice joined with its line items.
func (s *invoiceService) GetInvoice(ctx context.Context, userID int64) ([]models.InvoiceRow, error) {
	log := logger.FromContext(ctx)

	rows, err := s.invoiceRepository.GetInvoiceRows(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("invoice lookup ended with error")
		return nil, fmt.Errorf("invoice lookup ended with error: %w", err)
	}

	return rows, nil
}

// SaveInvoice validates the submitted invoice and replaces whatever invoice
// the user had before with it, in a single transaction.
//
// Returns the id of the stored invoice or:
//   - ErrInvalidDataProvided if InvoiceNumber or ContractorName is empty.
//   - A wrapped storage error if the transactional replace fails.
func (s *invoiceService) SaveInvoice(ctx context.Context, userID int64, request models.SaveInvoiceRequest) (int64, error) {
	log := logger.FromContext(ctx)

	if request.InvoiceNumber == "" || request.ContractorName == "" {
		log.Error().Int64("userID", userID).Msg("invalid invoice data provided")
		return 0, ErrInvalidDataProvided
	}

	invoice := models.Invoice{
		UserID:         userID,
		InvoiceNumber:  request.InvoiceNumber,
		ContractorName: request.ContractorName,
		Notes:          request.Notes,
		CreatedAt:      time.Now(),
	}

	items := make([]models.InvoiceItem, 0, len(request.Items))
	for _, item := range request.Items {
		items = append(items, models.InvoiceItem{
			Client:      item.Client,
			Date:        item.Date,
			Description: item.Description,
			Hours:       item.Hours,
			HourlyRate:  item.HourlyRate,
			Total:       item.Total,
		})
	}

	invoiceID, err := s.invoiceRepository.ReplaceInvoice(ctx, userID, invoice, items)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("invoice replace ended with error")
		return 0, fmt.Errorf("invoice replace ended with error: %w", err)
	}

	return invoiceID, nil
}

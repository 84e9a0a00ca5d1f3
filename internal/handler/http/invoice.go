// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/invoicerd/invoicer/internal/logger"
	"github.com/invoicerd/invoicer/internal/service"
	"github.com/invoicerd/invoicer/internal/utils"
	"github.com/invoicerd/invoicer/models"
)

func (h *Handler) getInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	rows, err := h.services.InvoiceService.GetInvoice(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("invoice lookup failed")
		writeError(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	// a user without an invoice gets an empty JSON array, not null
	if rows == nil {
		rows = []models.InvoiceRow{}
	}

	utils.WriteJSON(w, rows, http.StatusOK)
}

func (h *Handler) saveInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request models.SaveInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	invoiceID, err := h.services.InvoiceService.SaveInvoice(ctx, userID, request)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			log.Err(err).Msg("invalid invoice data provided")
			writeError(w, "invoice number and contractor name are required", http.StatusBadRequest)
			return
		}
		log.Err(err).Int64("userID", userID).Msg("invoice save failed")
		writeError(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	log.Debug().Int64("userID", userID).Int64("invoiceID", invoiceID).Msg("invoice saved")

	utils.WriteJSON(w, models.SaveInvoiceResponse{Message: "invoice saved", InvoiceID: invoiceID}, http.StatusCreated)
}

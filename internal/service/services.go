// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service contains the business logic layer sitting between the HTTP
// handlers and the storage repositories: account registration and login,
// session and token lifecycle, and invoice validation and persistence.
package service

import (
	"github.com/invoicerd/invoicer/internal/config"
	"github.com/invoicerd/invoicer/internal/logger"
	"github.com/invoicerd/invoicer/internal/store"
)

type Services struct {
	AuthService    AuthService
	InvoiceService InvoiceService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, storages.SessionRepository, cfg, logger),
		InvoiceService: NewInvoiceService(storages.InvoiceRepository, logger),
	}
}

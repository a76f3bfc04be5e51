// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-form-builder/internal/config"
	"github.com/MKhiriev/go-form-builder/internal/logger"
	"github.com/MKhiriev/go-form-builder/internal/store"
	"github.com/MKhiriev/go-form-builder/internal/utils"
	"github.com/MKhiriev/go-form-builder/internal/validators"
)

type ClientServices struct {
	FormService FormService
}

func NewClientServices(storages *store.ClientStorages, cfg config.ClientApp, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		FormService: NewFormService(
			storages.Forms,
			validators.NewFormValidator(),
			utils.NewUUIDGenerator(),
			cfg,
			logger,
		),
	}
}

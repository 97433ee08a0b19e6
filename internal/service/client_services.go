// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-locker/internal/adapter"
	"github.com/MKhiriev/go-locker/internal/crypto"
	"github.com/MKhiriev/go-locker/internal/logger"
)

type ClientServices struct {
	LockerService LockerClientService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, codec crypto.LockerCodec, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		LockerService: NewLockerClientService(serverAdapter, codec, logger),
	}
}

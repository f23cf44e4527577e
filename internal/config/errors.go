// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by the config build step. Matched with
// [errors.Is] by the binaries at startup.
var (
	// ErrInvalidStorageConfigs is returned when the database settings are
	// missing or unusable (empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configs")

	// ErrInvalidAppConfigs is returned when a required application secret
	// (token sign key) is absent.
	ErrInvalidAppConfigs = errors.New("invalid app configs")

	// ErrInvalidAdapterConfigs is returned when the client has no usable
	// backend address or timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configs")

	// ErrInvalidAgentConfigs is returned when the agent webhook URL does
	// not look like an HTTP endpoint.
	ErrInvalidAgentConfigs = errors.New("invalid agent configs")

	// ErrInvalidWorkerConfigs is returned when the autosave interval is
	// zero or negative.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configs")
)

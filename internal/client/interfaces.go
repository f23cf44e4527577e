// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client is the lifecycle contract of the chat client application.
type Client interface {
	// Run starts the interactive chat client and blocks until the user
	// quits or logs out for good.
	Run() error
}

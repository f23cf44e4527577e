// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive chat client runtime.
//
// It wires terminal UI flows, client services, and the background transcript
// autosave job into a single process lifecycle.
package client

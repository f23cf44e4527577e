// Package config loads and merges the configuration of both warm-whisper
// binaries.
//
// The server config is assembled by a builder that layers three sources
// (environment variables, command-line flags, and an optional JSON file)
// with earlier sources taking precedence, then validates the result.
// The client config is loaded from the environment and padded with
// defaults so the chat client runs with zero configuration against a
// local backend and agent.
package config

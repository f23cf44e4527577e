// Package utils provides general-purpose helper utilities used across
// different parts of the application: context keys, HTTP response writing,
// HTTP client initialization, JWT token generation and validation, and
// session id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// EmailCtxKey is the key used to store the authenticated account email in
// the context. Used together with GetEmailFromContext for type-safe
// retrieval of the email from context.Context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.EmailCtxKey, "nick@mail.com")
var EmailCtxKey = contextKey("email")

// GetEmailFromContext retrieves the authenticated account email from the
// context.
//
// Returns the email and an ok flag:
//   - ok == true : value is found and has the correct string type
//   - ok == false: value is missing or has an unexpected type
func GetEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(EmailCtxKey).(string)
	return email, ok
}

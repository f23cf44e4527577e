// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestEmailCtxKey(t *testing.T) {
	if EmailCtxKey.String() != "email" {
		t.Errorf("expected 'email', got '%s'", EmailCtxKey.String())
	}
}

func TestGetEmailFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), EmailCtxKey, "nick@mail.com")

	email, ok := GetEmailFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if email != "nick@mail.com" {
		t.Errorf("expected email='nick@mail.com', got %q", email)
	}
}

func TestGetEmailFromContext_Missing(t *testing.T) {
	ctx := context.Background()

	email, ok := GetEmailFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if email != "" {
		t.Errorf("expected empty email, got %q", email)
	}
}

func TestGetEmailFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), EmailCtxKey, 42)

	email, ok := GetEmailFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
	if email != "" {
		t.Errorf("expected empty email, got %q", email)
	}
}

func TestGetEmailFromContext_DifferentKey(t *testing.T) {
	otherKey := contextKey("otherKey")
	ctx := context.WithValue(context.Background(), otherKey, "nick@mail.com")

	email, ok := GetEmailFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false for different key, got true")
	}
	if email != "" {
		t.Errorf("expected empty email, got %q", email)
	}
}

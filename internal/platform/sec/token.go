// Copyright (c) 2026 Vatra. All rights reserved.
// Author: d.cebotari.dev@gmail.com

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (hashing, token generation,
// upload-token signing) from the domain logic. It is injected into the
// Application layer via narrow interfaces.
package sec

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Session represents an authenticated admin session attached to a request.
//
// The token is opaque: its only semantics are presence and expiry, both
// enforced by the Redis session store. No identity payload is embedded.
type Session struct {
	// Token is the opaque session credential from the auth cookie.
	Token string
}

// GenerateSecureToken returns a hex-encoded random token of byteLength bytes.
func GenerateSecureToken(byteLength int) (string, error) {
	buf := make([]byte, byteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("sec: failed to generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Copyright (c) 2026 Vatra. All rights reserved.
// Author: d.cebotari.dev@gmail.com

package sec

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// UploadClaims is the payload embedded inside a signed upload token.
//
// # Why a JWT?
//
// The dashboard asks the API to authorize an upload, then streams the file
// bytes in a second request. Binding the destination bucket and object path
// into a signed, short-lived token lets the upload endpoint verify the
// authorization statelessly, without a round trip to Redis.
type UploadClaims struct {
	jwt.RegisteredClaims

	Bucket string `json:"bkt"`
	Path   string `json:"pth"`
}

// UploadTokenService signs and verifies upload authorization tokens (HS256).
type UploadTokenService struct {
	secret []byte
	issuer string
}

// NewUploadTokenService creates an [UploadTokenService] keyed by the shared
// session secret.
func NewUploadTokenService(secret, issuer string) *UploadTokenService {
	return &UploadTokenService{secret: []byte(secret), issuer: issuer}
}

// Sign mints a token authorizing one upload to bucket/path, valid for ttl.
func (service *UploadTokenService) Sign(bucket, path string, ttl time.Duration) (string, error) {
	currentTime := time.Now()
	claims := UploadClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(ttl)),
		},
		Bucket: bucket,
		Path:   path,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign upload token: %w", err)
	}

	return signedToken, nil
}

// Verify checks the signature and expiry of an upload token and returns its claims.
func (service *UploadTokenService) Verify(tokenString string) (*UploadClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &UploadClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("sec: invalid upload token: %w", err)
	}

	claims, ok := token.Claims.(*UploadClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("sec: invalid upload token claims")
	}

	return claims, nil
}

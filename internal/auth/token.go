// Package auth resolves bearer tokens into caller identities.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"comment-threads/internal/domain"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")
)

// Claims are the identity claims carried by an access token.
type Claims struct {
	Name   string `json:"name"`
	Handle string `json:"handle"`
	Role   string `json:"role"`
	Avatar string `json:"avatar,omitempty"`
	jwt.RegisteredClaims
}

// TokenResolver validates HS256 access tokens.
type TokenResolver struct {
	secret []byte
}

// NewTokenResolver creates a resolver for tokens signed with secret.
func NewTokenResolver(secret string) *TokenResolver {
	return &TokenResolver{secret: []byte(secret)}
}

// Resolve validates token and returns the caller it identifies.
func (r *TokenResolver) Resolve(token string) (domain.Caller, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return r.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Anonymous(), ErrExpiredToken
		}
		return domain.Anonymous(), ErrInvalidToken
	}
	if claims.Subject == "" || claims.Name == "" {
		return domain.Anonymous(), ErrInvalidToken
	}

	profile := domain.AuthorProfile{
		DisplayName: claims.Name,
		Handle:      claims.Handle,
	}
	if claims.Avatar != "" {
		avatar := claims.Avatar
		profile.AvatarRef = &avatar
	}

	return domain.NewCaller(claims.Subject, domain.Role(claims.Role), profile), nil
}

// Issue signs a token for the given identity. Used by tests and local tooling.
func (r *TokenResolver) Issue(userID string, role domain.Role, profile domain.AuthorProfile, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Name:   profile.DisplayName,
		Handle: profile.Handle,
		Role:   string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	if profile.AvatarRef != nil {
		claims.Avatar = *profile.AvatarRef
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(r.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

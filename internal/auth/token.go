// Package auth implements the session token codec and the permission
// evaluator: the only two places where token claims, role flags and resource
// ownership interact to produce an allow/deny decision.
package auth

import (
	"time"

	"ecomarket/internal/apierror"
	"ecomarket/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the decoded identity bundle carried by every access token.
// Role flags are independent; a user may be admin and supplier at once.
type Claims struct {
	Username   string
	UserID     uint
	IsAdmin    bool
	IsSupplier bool
	IsCustomer bool
	ExpiresAt  time.Time
}

// Token decode failures. All map to 401 but each names a distinct cause so
// tests (and clients) can tell them apart.
var (
	ErrUnauthenticated     = apierror.Unauthenticated("Could not validate user")
	ErrMalformedToken      = apierror.Unauthenticated("Could not validate user: missing identity claims")
	ErrMissingExpiry       = apierror.Unauthenticated("Token has no expiration claim")
	ErrInvalidExpiryFormat = apierror.Unauthenticated("Token expiration claim is malformed")
	ErrTokenExpired        = apierror.Unauthenticated("Token expired!")
)

// TokenCodec signs and verifies HS256 access tokens with a shared secret.
type TokenCodec struct {
	secret []byte
	now    func() time.Time
}

func NewTokenCodec(secret string) *TokenCodec {
	return &TokenCodec{secret: []byte(secret), now: time.Now}
}

// Issue serializes the user's identity and role flags into a signed token
// expiring at now+ttl. Pure function of its inputs and the clock.
func (c *TokenCodec) Issue(user *model.User, ttl time.Duration) (string, error) {
	now := c.now().UTC()
	claims := jwt.MapClaims{
		"sub":         user.Username,
		"id":          user.ID,
		"is_admin":    user.IsAdmin,
		"is_supplier": user.IsSupplier,
		"is_customer": user.IsCustomer,
		"exp":         now.Add(ttl).Unix(),
		"iat":         now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Decode verifies the signature and re-derives Claims.
//
// The expiry check is performed explicitly against the decoded exp claim
// rather than relying on the library's validation, so that a missing exp, a
// malformed exp and an expired exp each surface as their own error. The
// comparison is strict: exp < now is expired, exp == now is still valid.
func (c *TokenCodec) Decode(tokenStr string) (*Claims, error) {
	parsed, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil || !parsed.Valid {
		return nil, ErrUnauthenticated
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrUnauthenticated
	}

	username, ok := mapClaims["sub"].(string)
	if !ok || username == "" {
		return nil, ErrMalformedToken
	}
	// JSON numbers decode as float64
	idFloat, ok := mapClaims["id"].(float64)
	if !ok {
		return nil, ErrMalformedToken
	}

	expRaw, present := mapClaims["exp"]
	if !present {
		return nil, ErrMissingExpiry
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		return nil, ErrInvalidExpiryFormat
	}
	expiresAt := time.Unix(int64(expFloat), 0)
	if expiresAt.Unix() < c.now().Unix() {
		return nil, ErrTokenExpired
	}

	boolClaim := func(key string) bool {
		v, _ := mapClaims[key].(bool)
		return v
	}

	return &Claims{
		Username:   username,
		UserID:     uint(idFloat),
		IsAdmin:    boolClaim("is_admin"),
		IsSupplier: boolClaim("is_supplier"),
		IsCustomer: boolClaim("is_customer"),
		ExpiresAt:  expiresAt,
	}, nil
}

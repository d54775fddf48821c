package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// RoleProfessional marks sessions allowed to moderate listings.
const RoleProfessional = "professional"

// Claims are the session token claims. Consumer/pharmacist sessions carry
// Phone; the professional session carries Name and Role instead.
type Claims struct {
	Phone string `json:"phone,omitempty"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// IsProfessional reports whether the session may act as a moderator. The
// check is on the role claim only; a user record's userType does not grant
// this role.
func (c *Claims) IsProfessional() bool {
	return c.Role == RoleProfessional
}

// GenerateUserToken creates a signed session token carrying the phone claim.
func GenerateUserToken(secret, phone string, ttl time.Duration) (string, error) {
	return signToken(secret, &Claims{Phone: phone}, ttl)
}

// GenerateProfessionalToken creates a signed session token carrying the
// professional role.
func GenerateProfessionalToken(secret, name string, ttl time.Duration) (string, error) {
	return signToken(secret, &Claims{Name: name, Role: RoleProfessional}, ttl)
}

func signToken(secret string, claims *Claims, ttl time.Duration) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates the token signature and expiry and returns the claims.
func ParseToken(secret, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrTokenInvalidClaims
}

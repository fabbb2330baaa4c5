package models

import "github.com/golang-jwt/jwt/v5"

// UserClaims is the JWT payload. The subject carries the user id; the rest is
// informational for clients and re-checked against the database on every
// request.
type UserClaims struct {
	jwt.RegisteredClaims
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
}

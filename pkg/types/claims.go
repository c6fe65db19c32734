package types

import "github.com/golang-jwt/jwt/v5"

// Claims is the JWT payload. RegisteredClaims.ID carries the token id used
// for revocation.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

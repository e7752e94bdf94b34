package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// RegisterRequest represents the registration request payload
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=50"`
	Role     Role   `json:"role"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=100"`
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest represents the refresh and logout request payload
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required,min=20"`
}

// TokenPair is the wire contract for successful login/register/refresh
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// RegisterResponse is the registration response body
type RegisterResponse struct {
	ID           uint   `json:"id"`
	Email        string `json:"email"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AccessClaims are the JWT claims carried by an access token
type AccessClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Identity is the authenticated identity attached to a request context
// after bearer token verification
type Identity struct {
	UserID uint   `json:"id"`
	Email  string `json:"email"`
}

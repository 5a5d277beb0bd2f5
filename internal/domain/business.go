package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Business struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	OwnerName    *string   `json:"owner_name"`
	Industry     *string   `json:"industry"`
	Location     *string   `json:"location"`
	CreatedAt    time.Time `json:"created_at"`
}

type SignupRequest struct {
	Name      string  `json:"name" validate:"required,max=120"`
	Username  string  `json:"username" validate:"required,min=3,max=64"`
	Password  string  `json:"password" validate:"required,min=8"`
	OwnerName *string `json:"owner_name,omitempty"`
	Industry  *string `json:"industry,omitempty"`
	Location  *string `json:"location,omitempty"`
}

type UpdateBusinessRequest struct {
	ID        int64   `json:"-"`
	Name      *string `json:"name,omitempty" validate:"omitempty,max=120"`
	OwnerName *string `json:"owner_name,omitempty"`
	Industry  *string `json:"industry,omitempty"`
	Location  *string `json:"location,omitempty"`
}

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type Claims struct {
	BusinessID   int64  `json:"business_id"`
	Username     string `json:"username"`
	BusinessName string `json:"business_name"`
	jwt.RegisteredClaims
}

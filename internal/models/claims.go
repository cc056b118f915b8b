package models

import "github.com/golang-jwt/jwt/v5"

// MerchantClaims are the JWT claims carried by POS access and refresh
// tokens. TokenVersion invalidates outstanding tokens on logout.
type MerchantClaims struct {
	jwt.RegisteredClaims
	MerchantID   uint   `json:"merchant_id"`
	Phone        string `json:"phone"`
	BranchID     uint   `json:"branch_id"`
	TokenVersion int    `json:"token_version"`
}

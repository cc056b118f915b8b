// Package auth implements OTP login for POS merchants. Codes are
// bcrypt-hashed at rest in redis and exchanged for JWT token pairs.
package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"time"

	"golang.org/x/crypto/bcrypt"

	"sanjab/internal/config"
	"sanjab/internal/models"
	"sanjab/internal/repositories"
	"sanjab/internal/repositories/cache"
	"sanjab/internal/utils"
)

// Service errors
var (
	ErrOTPNotFound = errors.New("no pending code for this phone")
	ErrOTPMismatch = errors.New("incorrect code")
)

type Service interface {
	RequestOTP(ctx context.Context, phone string) (time.Time, error)
	VerifyOTP(ctx context.Context, phone, code string) (*models.Merchant, string, string, error)
	RefreshTokens(refreshToken string) (string, string, error)
	Logout(merchantID uint) error
	GetMerchantTokenVersion(merchantID uint) (int, error)
	GetMerchantByID(merchantID uint) (*models.Merchant, error)
}

type service struct {
	merchants repositories.MerchantRepository
	cache     *cache.CacheService
	ttl       time.Duration
}

func NewService(merchants repositories.MerchantRepository, cacheService *cache.CacheService) Service {
	return &service{
		merchants: merchants,
		cache:     cacheService,
		ttl:       config.GetDurationEnv("OTP_TTL", 2*time.Minute),
	}
}

func (s *service) RequestOTP(ctx context.Context, phone string) (time.Time, error) {
	code, err := generateCode()
	if err != nil {
		return time.Time{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return time.Time{}, err
	}

	key := s.cache.GenerateKey("otp", "phone", phone)
	if err := s.cache.SetWithTTL(ctx, key, string(hash), s.ttl); err != nil {
		return time.Time{}, err
	}

	// SMS delivery is handled by the gateway; outside production the
	// code is logged so the flow can be exercised locally.
	if !config.IsProduction() {
		log.Printf("OTP for %s: %s", phone, code)
	}

	return time.Now().Add(s.ttl), nil
}

func (s *service) VerifyOTP(ctx context.Context, phone, code string) (*models.Merchant, string, string, error) {
	key := s.cache.GenerateKey("otp", "phone", phone)

	var hash string
	found, err := s.cache.Get(ctx, key, &hash)
	if err != nil {
		return nil, "", "", err
	}
	if !found {
		return nil, "", "", ErrOTPNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)); err != nil {
		return nil, "", "", ErrOTPMismatch
	}

	// single use
	if err := s.cache.Delete(ctx, key); err != nil {
		log.Printf("failed to delete used OTP for %s: %v", phone, err)
	}

	merchant, err := s.merchants.GetOrCreateByPhone(phone)
	if err != nil {
		return nil, "", "", err
	}

	accessToken, refreshToken, err := utils.GenerateTokens(&models.MerchantClaims{
		MerchantID:   merchant.ID,
		Phone:        merchant.Phone,
		BranchID:     merchant.BranchID,
		TokenVersion: merchant.TokenVersion,
	})
	if err != nil {
		return nil, "", "", err
	}

	return merchant, accessToken, refreshToken, nil
}

func (s *service) RefreshTokens(refreshToken string) (string, string, error) {
	_, claims, err := utils.ParseToken(refreshToken)
	if err != nil {
		return "", "", errors.New("invalid refresh token")
	}

	merchant, err := s.merchants.GetByID(claims.MerchantID)
	if err != nil {
		return "", "", errors.New("merchant not found")
	}
	if merchant.TokenVersion != claims.TokenVersion {
		return "", "", errors.New("token version mismatch")
	}

	return utils.GenerateTokens(&models.MerchantClaims{
		MerchantID:   merchant.ID,
		Phone:        merchant.Phone,
		BranchID:     merchant.BranchID,
		TokenVersion: merchant.TokenVersion,
	})
}

func (s *service) Logout(merchantID uint) error {
	return s.merchants.IncrementTokenVersion(merchantID)
}

func (s *service) GetMerchantTokenVersion(merchantID uint) (int, error) {
	return s.merchants.GetTokenVersion(merchantID)
}

func (s *service) GetMerchantByID(merchantID uint) (*models.Merchant, error) {
	return s.merchants.GetByID(merchantID)
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(100000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%05d", n.Int64()), nil
}

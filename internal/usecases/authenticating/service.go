package authenticating

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/verity-api/infrastructure/repository"
	"github.com/vfg2006/verity-api/internal/config"
	"github.com/vfg2006/verity-api/internal/domain"
	"github.com/vfg2006/verity-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

const tokenType = "bearer"

//go:generate mockgen -source=service.go -destination=mocks/authenticator_mock.go -package=mocks
type Authenticator interface {
	Signup(ctx context.Context, req *domain.SignupRequest) (*domain.Token, error)
	Login(ctx context.Context, username, password string) (*domain.Token, error)
	ValidateToken(ctx context.Context, tokenString string) (*domain.Claims, error)
	GetBusiness(ctx context.Context, businessID int64) (*domain.Business, error)
	UpdateBusiness(ctx context.Context, req *domain.UpdateBusinessRequest) (*domain.Business, error)
}

type Service struct {
	businessRepo repository.BusinessRepository
	cfg          *config.Config
	now          func() time.Time
}

func NewService(businessRepo repository.BusinessRepository, cfg *config.Config) *Service {
	return &Service{
		businessRepo: businessRepo,
		cfg:          cfg,
		now:          time.Now,
	}
}

func (s *Service) Signup(ctx context.Context, req *domain.SignupRequest) (*domain.Token, error) {
	username := handleUsername(req.Username)
	if username == "" || req.Password == "" || strings.TrimSpace(req.Name) == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "name, username and password are required")
	}

	existing, err := s.businessRepo.GetBusinessByUsername(ctx, username)
	if err != nil {
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if existing != nil {
		return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "username already registered")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "failed to hash password")
	}

	business, err := s.businessRepo.CreateBusiness(ctx, &domain.Business{
		Name:         strings.TrimSpace(req.Name),
		Username:     username,
		PasswordHash: string(hashedPassword),
		OwnerName:    req.OwnerName,
		Industry:     req.Industry,
		Location:     req.Location,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "username already registered")
		}
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	logrus.WithField("business_id", business.ID).Info("business registered")

	return s.issueToken(business)
}

func (s *Service) Login(ctx context.Context, username, password string) (*domain.Token, error) {
	username = handleUsername(username)
	if username == "" || password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "username and password are required")
	}

	business, err := s.businessRepo.GetBusinessByUsername(ctx, username)
	if err != nil {
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	// Unknown usernames and wrong passwords answer the same way.
	if business == nil {
		return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(business.PasswordHash), []byte(password)); err != nil {
		return nil, NewBusinessAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, business.ID, "")
	}

	return s.issueToken(business)
}

func (s *Service) ValidateToken(ctx context.Context, tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid || claims.BusinessID == 0 {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	return claims, nil
}

func (s *Service) GetBusiness(ctx context.Context, businessID int64) (*domain.Business, error) {
	business, err := s.businessRepo.GetBusinessByID(ctx, businessID)
	if err != nil {
		return nil, NewBusinessAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, businessID, err.Error())
	}
	if business == nil {
		return nil, NewBusinessAuthError(ErrBusinessNotFound, apiErrors.ErrBusinessNotFound, businessID, "")
	}

	business.PasswordHash = ""
	return business, nil
}

func (s *Service) UpdateBusiness(ctx context.Context, req *domain.UpdateBusinessRequest) (*domain.Business, error) {
	if req.ID == 0 {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "business id is required")
	}

	if err := s.businessRepo.UpdateBusiness(ctx, req); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NewBusinessAuthError(ErrBusinessNotFound, apiErrors.ErrBusinessNotFound, req.ID, "")
		}
		return nil, NewBusinessAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, req.ID, err.Error())
	}

	return s.GetBusiness(ctx, req.ID)
}

func (s *Service) issueToken(business *domain.Business) (*domain.Token, error) {
	signed, err := generateJWT(business, s.cfg.SecretKey, s.now().Add(s.tokenTTL()))
	if err != nil {
		return nil, NewBusinessAuthError(err, apiErrors.ErrInternalServer, business.ID, "failed to sign token")
	}

	return &domain.Token{AccessToken: signed, TokenType: tokenType}, nil
}

func (s *Service) tokenTTL() time.Duration {
	if s.cfg.Auth.TokenTTL <= 0 {
		return 24 * time.Hour
	}
	return s.cfg.Auth.TokenTTL
}

func generateJWT(business *domain.Business, secretKey string, expiresAt time.Time) (string, error) {
	claims := domain.Claims{
		BusinessID:   business.ID,
		Username:     business.Username,
		BusinessName: business.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(business.ID),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

func handleUsername(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

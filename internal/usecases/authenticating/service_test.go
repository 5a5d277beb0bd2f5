package authenticating

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/vfg2006/verity-api/infrastructure/repository"
	repomocks "github.com/vfg2006/verity-api/infrastructure/repository/mocks"
	"github.com/vfg2006/verity-api/internal/config"
	"github.com/vfg2006/verity-api/internal/domain"
	"github.com/vfg2006/verity-api/pkg/apiErrors"
)

func testConfig() *config.Config {
	return &config.Config{
		SecretKey: "test-secret",
		Auth:      config.Auth{TokenTTL: time.Hour},
	}
}

func hashed(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestSignup(t *testing.T) {
	tests := []struct {
		name     string
		req      *domain.SignupRequest
		setup    func(repo *repomocks.MockBusinessRepository)
		validate func(t *testing.T, s *Service, token *domain.Token, err error)
	}{
		{
			name: "creates business and returns a token for it",
			req:  &domain.SignupRequest{Name: "Sharma Traders", Username: " Sharma ", Password: "supersecret"},
			setup: func(repo *repomocks.MockBusinessRepository) {
				repo.EXPECT().GetBusinessByUsername(gomock.Any(), "sharma").Return(nil, nil)
				repo.EXPECT().CreateBusiness(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, b *domain.Business) (*domain.Business, error) {
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(b.PasswordHash), []byte("supersecret")))
						b.ID = 42
						return b, nil
					})
			},
			validate: func(t *testing.T, s *Service, token *domain.Token, err error) {
				require.NoError(t, err)
				assert.Equal(t, "bearer", token.TokenType)

				claims, err := s.ValidateToken(context.Background(), token.AccessToken)
				require.NoError(t, err)
				assert.Equal(t, int64(42), claims.BusinessID)
				assert.Equal(t, "sharma", claims.Username)
			},
		},
		{
			name: "duplicate username",
			req:  &domain.SignupRequest{Name: "Other", Username: "sharma", Password: "supersecret"},
			setup: func(repo *repomocks.MockBusinessRepository) {
				repo.EXPECT().GetBusinessByUsername(gomock.Any(), "sharma").Return(&domain.Business{ID: 1}, nil)
			},
			validate: func(t *testing.T, s *Service, token *domain.Token, err error) {
				assert.ErrorIs(t, err, ErrUserAlreadyExists)
				var authErr *AuthError
				require.ErrorAs(t, err, &authErr)
				assert.Equal(t, apiErrors.ErrUserAlreadyExists, authErr.Code)
			},
		},
		{
			name: "unique violation on insert is a duplicate",
			req:  &domain.SignupRequest{Name: "Other", Username: "sharma", Password: "supersecret"},
			setup: func(repo *repomocks.MockBusinessRepository) {
				repo.EXPECT().GetBusinessByUsername(gomock.Any(), "sharma").Return(nil, nil)
				repo.EXPECT().CreateBusiness(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("create business: %w", repository.ErrDuplicate))
			},
			validate: func(t *testing.T, s *Service, token *domain.Token, err error) {
				assert.ErrorIs(t, err, ErrUserAlreadyExists)
			},
		},
		{
			name:  "missing password",
			req:   &domain.SignupRequest{Name: "Other", Username: "sharma"},
			setup: func(repo *repomocks.MockBusinessRepository) {},
			validate: func(t *testing.T, s *Service, token *domain.Token, err error) {
				assert.ErrorIs(t, err, ErrMissingRequiredData)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := repomocks.NewMockBusinessRepository(gomock.NewController(t))
			tt.setup(repo)
			s := NewService(repo, testConfig())

			token, err := s.Signup(context.Background(), tt.req)

			tt.validate(t, s, token, err)
		})
	}
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name     string
		password string
		setup    func(t *testing.T, repo *repomocks.MockBusinessRepository)
		wantErr  error
	}{
		{
			name:     "valid credentials",
			password: "supersecret",
			setup: func(t *testing.T, repo *repomocks.MockBusinessRepository) {
				repo.EXPECT().GetBusinessByUsername(gomock.Any(), "sharma").
					Return(&domain.Business{ID: 1, Username: "sharma", PasswordHash: hashed(t, "supersecret")}, nil)
			},
		},
		{
			name:     "wrong password",
			password: "nope",
			setup: func(t *testing.T, repo *repomocks.MockBusinessRepository) {
				repo.EXPECT().GetBusinessByUsername(gomock.Any(), "sharma").
					Return(&domain.Business{ID: 1, PasswordHash: hashed(t, "supersecret")}, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:     "unknown username",
			password: "supersecret",
			setup: func(t *testing.T, repo *repomocks.MockBusinessRepository) {
				repo.EXPECT().GetBusinessByUsername(gomock.Any(), "sharma").Return(nil, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := repomocks.NewMockBusinessRepository(gomock.NewController(t))
			tt.setup(t, repo)

			token, err := NewService(repo, testConfig()).Login(context.Background(), "Sharma", tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, token)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, token.AccessToken)
		})
	}
}

func TestValidateToken(t *testing.T) {
	cfg := testConfig()
	business := &domain.Business{ID: 7, Username: "anita", Name: "Anita Stores"}
	issuedAt := time.Date(2024, 3, 20, 10, 0, 0, 0, time.UTC)

	signed, err := generateJWT(business, cfg.SecretKey, issuedAt.Add(time.Hour))
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		s := NewService(nil, cfg)
		s.now = func() time.Time { return issuedAt }

		claims, err := s.ValidateToken(context.Background(), signed)

		require.NoError(t, err)
		assert.Equal(t, int64(7), claims.BusinessID)
		assert.Equal(t, "Anita Stores", claims.BusinessName)
	})

	t.Run("expired", func(t *testing.T) {
		s := NewService(nil, cfg)
		s.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }

		_, err := s.ValidateToken(context.Background(), signed)

		assert.ErrorIs(t, err, ErrExpiredToken)
		assert.True(t, IsAuthorizationError(err))
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := testConfig()
		other.SecretKey = "another"
		s := NewService(nil, other)
		s.now = func() time.Time { return issuedAt }

		_, err := s.ValidateToken(context.Background(), signed)

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := NewService(nil, cfg).ValidateToken(context.Background(), "not-a-token")

		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestUpdateBusiness(t *testing.T) {
	industry := "retail"

	t.Run("updates and returns the profile without password", func(t *testing.T) {
		repo := repomocks.NewMockBusinessRepository(gomock.NewController(t))
		req := &domain.UpdateBusinessRequest{ID: 3, Industry: &industry}
		repo.EXPECT().UpdateBusiness(gomock.Any(), req).Return(nil)
		repo.EXPECT().GetBusinessByID(gomock.Any(), int64(3)).
			Return(&domain.Business{ID: 3, Industry: &industry, PasswordHash: "hash"}, nil)

		business, err := NewService(repo, testConfig()).UpdateBusiness(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "retail", *business.Industry)
		assert.Empty(t, business.PasswordHash)
	})

	t.Run("missing business", func(t *testing.T) {
		repo := repomocks.NewMockBusinessRepository(gomock.NewController(t))
		repo.EXPECT().UpdateBusiness(gomock.Any(), gomock.Any()).Return(sql.ErrNoRows)

		_, err := NewService(repo, testConfig()).UpdateBusiness(context.Background(), &domain.UpdateBusinessRequest{ID: 3})

		assert.ErrorIs(t, err, ErrBusinessNotFound)
	})
}

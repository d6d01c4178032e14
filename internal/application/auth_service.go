package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Vi-fly/vendor-elite-backend/internal/application/dto"
	"github.com/Vi-fly/vendor-elite-backend/internal/domain"
)

// AuthService is the session/identity provider: registration, login and
// token refresh over the profiles collection.
type AuthService struct {
	profiles domain.ProfileRepository
	tokens   domain.TokenService
	password domain.PasswordService
	log      zerolog.Logger
}

func NewAuthService(
	profiles domain.ProfileRepository,
	tokens domain.TokenService,
	password domain.PasswordService,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		profiles: profiles,
		tokens:   tokens,
		password: password,
		log:      log.With().Str("component", "auth-service").Logger(),
	}
}

func (s *AuthService) Register(ctx context.Context, req *dto.RegisterReq) (*dto.RegisterResp, error) {
	role := domain.Role(req.Role)
	if role != domain.RoleSchool && role != domain.RoleSupplier {
		// Admin accounts are provisioned out of band, never self-registered.
		return nil, domain.ErrValidation
	}

	existing, err := s.profiles.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUserAlreadyExists
	}

	hash, err := s.password.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	profile := &domain.Profile{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		Organization: req.Organization,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", profile.ID).Str("role", req.Role).Msg("profile registered")
	return &dto.RegisterResp{
		UserID: profile.ID,
		Name:   profile.Name,
		Email:  profile.Email,
		Role:   profile.Role.String(),
	}, nil
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginReq) (*dto.LoginResp, error) {
	profile, err := s.profiles.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrUserNotFound
	}
	if !s.password.Compare(profile.PasswordHash, req.Password) {
		return nil, domain.ErrInvalidPassword
	}

	accessToken, expiresAt, err := s.tokens.GenerateAccessToken(profile.ID, profile.Name, profile.Role)
	if err != nil {
		return nil, err
	}
	refreshToken, _, err := s.tokens.GenerateRefreshToken(profile.ID, profile.Name, profile.Role)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResp{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt.Unix(),
		UserID:       profile.ID,
		Name:         profile.Name,
		Role:         profile.Role.String(),
	}, nil
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.RefreshResp, error) {
	accessToken, expiresAt, err := s.tokens.RefreshToken(refreshToken)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	return &dto.RefreshResp{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt.Unix(),
	}, nil
}

// CurrentUser resolves the profile for a validated token claim set.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*domain.Profile, error) {
	profile, err := s.profiles.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrUserNotFound
	}
	return profile, nil
}

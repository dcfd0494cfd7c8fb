package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/domain"
	sessionRepo "github.com/SolomiaSydoryk/sportcenter-gateway/internal/infra/storage/session"
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/integrations/sportapi"
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/session/models"
	"github.com/SolomiaSydoryk/sportcenter-gateway/pkg/ptr"
)

// Service сервіс сесій: логін/реєстрація через основний API,
// видача токена сесії та його перевірка для захищених маршрутів
type Service struct {
	repo   SessionRepository
	client CoreAPIClient
	ttl    time.Duration
	logger Logger
}

// NewService створює новий екземпляр сервісу сесій
func NewService(repo SessionRepository, client CoreAPIClient, ttl time.Duration, logger Logger) *Service {
	return &Service{
		repo:   repo,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Login виконує вхід через основний API і створює сесію
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.SessionResponse, error) {
	s.logger.Info("Login: attempt for email=%s", req.Email)

	auth, err := s.client.Login(ctx, sportapi.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, sportapi.ErrUnauthorized) || errors.Is(err, sportapi.ErrBadRequest) {
			s.logger.Warn("Login: invalid credentials for email=%s", req.Email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: core api error for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return s.createSession(ctx, auth)
}

// Register реєструє користувача в основному API і одразу створює сесію
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.SessionResponse, error) {
	s.logger.Info("Register: attempt for email=%s", req.Email)

	auth, err := s.client.Register(ctx, sportapi.RegisterRequest{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  ptr.Ptr(req.Password),
	})
	if err != nil {
		if errors.Is(err, sportapi.ErrBadRequest) {
			s.logger.Warn("Register: rejected for email=%s: %v", req.Email, err)
			return nil, fmt.Errorf("%w: %v", ErrRegistrationRejected, err)
		}
		s.logger.Error("Register: core api error for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return s.createSession(ctx, auth)
}

// Logout видаляє сесію
func (s *Service) Logout(ctx context.Context, token string) error {
	if err := s.repo.Delete(ctx, token); err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return ErrSessionNotFound
		}
		s.logger.Error("Logout: repository error: %v", err)
		return fmt.Errorf("%w: Logout - repository error: %v", ErrInternal, err)
	}
	return nil
}

// Authenticate повертає сесію за токеном. Використовується middleware
// захищених маршрутів.
func (s *Service) Authenticate(ctx context.Context, token string) (*domain.Session, error) {
	sess, err := s.repo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("Authenticate: repository error: %v", err)
		return nil, fmt.Errorf("%w: Authenticate - repository error: %v", ErrInternal, err)
	}
	return sess, nil
}

// GetProfile повертає профіль користувача сесії
func (s *Service) GetProfile(ctx context.Context, sess *domain.Session) (*models.ProfileResponse, error) {
	profile, err := s.client.GetProfile(ctx, sess.AccessToken)
	if err != nil {
		if errors.Is(err, sportapi.ErrUnauthorized) {
			// Access-токен основного API протух раніше за сесію шлюзу
			s.logger.Warn("GetProfile: access token expired for user=%d", sess.UserID)
			return nil, ErrSessionNotFound
		}
		s.logger.Error("GetProfile: core api error for user=%d: %v", sess.UserID, err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	resp := models.FromWireProfile(profile)
	return &resp, nil
}

// UpdateProfile оновлює профіль користувача сесії
func (s *Service) UpdateProfile(ctx context.Context, sess *domain.Session, req *models.UpdateProfileRequest) (*models.ProfileResponse, error) {
	s.logger.Info("UpdateProfile: user=%d", sess.UserID)

	profile, err := s.client.UpdateProfile(ctx, sess.AccessToken, req.ToWireProfileUpdate())
	if err != nil {
		if errors.Is(err, sportapi.ErrUnauthorized) {
			return nil, ErrSessionNotFound
		}
		if errors.Is(err, sportapi.ErrBadRequest) {
			s.logger.Warn("UpdateProfile: rejected for user=%d: %v", sess.UserID, err)
			return nil, fmt.Errorf("%w: %v", ErrProfileRejected, err)
		}
		s.logger.Error("UpdateProfile: core api error for user=%d: %v", sess.UserID, err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	resp := models.FromWireProfile(profile)
	return &resp, nil
}

// CountActive повертає кількість активних сесій (для метрик)
func (s *Service) CountActive(ctx context.Context) (int64, error) {
	return s.repo.CountActive(ctx)
}

// CleanupExpired видаляє прострочені сесії. Викликається фоновою горутиною.
func (s *Service) CleanupExpired(ctx context.Context) {
	deleted, err := s.repo.DeleteExpired(ctx)
	if err != nil {
		s.logger.Error("CleanupExpired: %v", err)
		return
	}
	if deleted > 0 {
		s.logger.Info("CleanupExpired: removed %d expired sessions", deleted)
	}
}

// createSession генерує токен і зберігає сесію в БД
func (s *Service) createSession(ctx context.Context, auth *sportapi.AuthResponse) (*models.SessionResponse, error) {
	token, err := generateToken()
	if err != nil {
		s.logger.Error("createSession: token generation failed: %v", err)
		return nil, fmt.Errorf("%w: generate token: %v", ErrInternal, err)
	}

	now := time.Now()
	sess := &domain.Session{
		Token:        token,
		UserID:       auth.User.ID,
		IsStaff:      auth.User.IsStaff,
		AccessToken:  auth.Access,
		RefreshToken: auth.Refresh,
		CreatedAt:    now,
		ExpiresAt:    now.Add(s.ttl),
	}

	if err := s.repo.Create(ctx, sess); err != nil {
		s.logger.Error("createSession: repository error for user=%d: %v", auth.User.ID, err)
		return nil, fmt.Errorf("%w: save session: %v", ErrInternal, err)
	}

	s.logger.Info("createSession: session created for user=%d, staff=%t", auth.User.ID, auth.User.IsStaff)

	return &models.SessionResponse{
		Token:   token,
		Profile: models.FromWireProfile(&auth.User),
	}, nil
}

// generateToken повертає 32 випадкових байти в hex
func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

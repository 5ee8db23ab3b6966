package service

import (
	"errors"
	"time"

	"github.com/vibecommerce/vibecommerce-backend/config"
	"github.com/vibecommerce/vibecommerce-backend/internal/app/model"
	"github.com/vibecommerce/vibecommerce-backend/internal/app/repository"
	apperrors "github.com/vibecommerce/vibecommerce-backend/internal/errors"
	"github.com/vibecommerce/vibecommerce-backend/pkg/logger"
	"github.com/vibecommerce/vibecommerce-backend/pkg/util"
)

var (
	ErrEmailAlreadyExists = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

// PublicUser is the safe projection of a user returned by the API. The
// password never appears here, and the wishlist is flattened to product ids.
type PublicUser struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar"`
	Wishlist  []int     `json:"wishlist"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResult bundles the public user with freshly issued tokens
type AuthResult struct {
	User   PublicUser      `json:"user"`
	Tokens *util.TokenPair `json:"tokens"`
}

// AuthService handles registration, login and profile lookup
type AuthService interface {
	Register(name, email, password string) (*AuthResult, error)
	Login(email, password string) (*AuthResult, error)
	GetUserByID(id uint) (*PublicUser, error)
}

type authService struct {
	userRepo repository.UserRepository
	verifier CredentialVerifier
	jwtCfg   *config.JWTConfig
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, verifier CredentialVerifier, jwtCfg *config.JWTConfig) AuthService {
	return &authService{
		userRepo: userRepo,
		verifier: verifier,
		jwtCfg:   jwtCfg,
	}
}

// Register creates a new account. Email uniqueness is case-insensitive.
func (s *authService) Register(name, email, password string) (*AuthResult, error) {
	existing, err := s.userRepo.FindByEmail(email)
	if err != nil {
		logger.Error("Failed to check existing email", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	stored, err := s.verifier.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: stored,
		Avatar:   util.AvatarURL(name),
	}
	if err := s.userRepo.Create(user); err != nil {
		// Concurrent registration can slip past the lookup above.
		if apperrors.IsUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		logger.Error("Failed to create user", err)
		return nil, err
	}

	logger.Info("User registered", map[string]interface{}{
		"user_id": user.ID,
		"email":   user.Email,
	})
	return s.buildAuthResult(user)
}

// Login verifies credentials and issues a token pair. A missing account and
// a wrong password are indistinguishable to the caller.
func (s *authService) Login(email, password string) (*AuthResult, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		logger.Error("Failed to look up user", err)
		return nil, err
	}
	if user == nil || !s.verifier.Verify(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	logger.Info("User logged in", map[string]interface{}{
		"user_id": user.ID,
	})
	return s.buildAuthResult(user)
}

// GetUserByID returns the public profile for a user id
func (s *authService) GetUserByID(id uint) (*PublicUser, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	public := toPublicUser(user)
	return &public, nil
}

func (s *authService) buildAuthResult(user *model.User) (*AuthResult, error) {
	tokens, err := util.GenerateTokenPair(
		user.ID, user.Email,
		s.jwtCfg.Secret,
		s.jwtCfg.AccessTokenExpiry,
		s.jwtCfg.RefreshTokenExpiry,
	)
	if err != nil {
		logger.Error("Failed to generate tokens", err, map[string]interface{}{
			"user_id": user.ID,
		})
		return nil, err
	}
	return &AuthResult{User: toPublicUser(user), Tokens: tokens}, nil
}

func toPublicUser(user *model.User) PublicUser {
	wishlist := make([]int, 0, len(user.Wishlist))
	for _, item := range user.Wishlist {
		wishlist = append(wishlist, item.ProductID)
	}
	return PublicUser{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Avatar:    user.Avatar,
		Wishlist:  wishlist,
		CreatedAt: user.CreatedAt,
	}
}

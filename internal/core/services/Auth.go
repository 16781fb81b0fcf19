package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"devdirectory/internal/core/domain"
	"devdirectory/internal/core/ports"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

const userCacheTTL = 10 * time.Minute

type AuthService struct {
	userRepo     ports.UserRepository
	tokenService ports.TokenService
	logger       ports.LoggerPort
	validate     *validator.Validate
	cache        ports.CachePort
}

func NewAuthService(
	userRepo ports.UserRepository,
	tokenService ports.TokenService,
	logger ports.LoggerPort,
	validate *validator.Validate,
	cache ports.CachePort,
) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		tokenService: tokenService,
		logger:       logger,
		validate:     validate,
		cache:        cache,
	}
}

func (s *AuthService) Register(ctx context.Context, user *domain.User) (string, *domain.User, error) {
	if err := s.validate.Struct(user); err != nil {
		s.logger.Info("User validation failed", map[string]interface{}{
			"error":  err.Error(),
			"method": "Register",
		})
		return "", nil, &domain.ValidationError{Message: "Name, a valid email and a password of at least 8 characters are required"}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Error during hashing", map[string]interface{}{
			"error":  err.Error(),
			"method": "Register",
		})
		return "", nil, err
	}
	user.Password = string(hashedPassword)

	created, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		s.logger.Error("Failed to create user in storage", map[string]interface{}{
			"error":  err.Error(),
			"method": "Register",
		})
		return "", nil, err
	}

	token, err := s.tokenService.CreateToken(created)
	if err != nil {
		s.logger.Error("Failed to create token", map[string]interface{}{
			"error":   err.Error(),
			"user_id": created.ID,
		})
		return "", nil, err
	}

	response := *created
	response.Password = ""
	return token, &response, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	cacheKey := fmt.Sprintf("user_email:%s", email)
	cachedData, err := s.cache.Get(cacheKey)
	var user *domain.User

	if err == nil {
		var cachedUser domain.User
		if err := json.Unmarshal(cachedData, &cachedUser); err == nil {
			user = &cachedUser
			s.logger.Debug("User found in email cache", map[string]interface{}{
				"email": email,
			})
		}
	}

	if user == nil {
		user, err = s.userRepo.GetUserByEmail(ctx, email)
		if err != nil {
			s.logger.Info("Failed to get user by email", map[string]interface{}{
				"email": email,
				"error": err.Error(),
			})
			return "", nil, domain.ErrInvalidCredentials
		}

		userData, err := json.Marshal(user)
		if err != nil {
			s.logger.Warn("Failed to marshal user for email cache", map[string]interface{}{
				"error": err.Error(),
				"email": email,
			})
		} else {
			if err := s.cache.Set(cacheKey, userData, userCacheTTL); err != nil {
				s.logger.Warn("Failed to cache user by email", map[string]interface{}{
					"error": err.Error(),
					"email": email,
				})
			}
		}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		s.logger.Info("Invalid password attempt", map[string]interface{}{
			"email": email,
		})
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokenService.CreateToken(user)
	if err != nil {
		s.logger.Error("Failed to create token", map[string]interface{}{
			"error":   err.Error(),
			"user_id": user.ID,
		})
		return "", nil, err
	}

	response := *user
	response.Password = ""
	return token, &response, nil
}

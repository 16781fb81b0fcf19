package http

import (
	"errors"
	"time"

	"devdirectory/internal/core/domain"
	"devdirectory/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type JWTTokenService struct {
	secretKey  []byte
	expiration time.Duration
	logger     ports.LoggerPort
}

func NewJWTTokenService(secretKey string, durationStr string, logger ports.LoggerPort) *JWTTokenService {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		logger.Error("Invalid token duration, using default 24h", map[string]interface{}{
			"duration": durationStr,
			"error":    err.Error(),
		})
		duration = 24 * time.Hour
	}

	return &JWTTokenService{
		secretKey:  []byte(secretKey),
		expiration: duration,
		logger:     logger,
	}
}

func (j *JWTTokenService) CreateToken(user *domain.User) (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		j.logger.Error("Failed to generate uuid", map[string]interface{}{
			"error":   err.Error(),
			"user_id": user.ID,
			"method":  "CreateToken",
		})
		return "", err
	}

	issuedAt := time.Now()
	expiredAt := issuedAt.Add(j.expiration)

	claims := jwt.MapClaims{
		"id":      id.String(),
		"user_id": user.ID.String(),
		"iat":     issuedAt.Unix(),
		"exp":     expiredAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

func (j *JWTTokenService) VerifyToken(token string) (domain.TokenPayload, error) {
	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return j.secretKey, nil
	})
	if err != nil {
		j.logger.Debug("Failed to parse jwt", map[string]interface{}{
			"error":  err.Error(),
			"method": "VerifyToken",
		})
		return domain.TokenPayload{}, err
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok {
		return domain.TokenPayload{}, errors.New("invalid token claims")
	}

	idStr, ok := claims["id"].(string)
	if !ok {
		return domain.TokenPayload{}, errors.New("invalid id claim")
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return domain.TokenPayload{}, errors.New("invalid id claim")
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return domain.TokenPayload{}, errors.New("invalid user_id claim")
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return domain.TokenPayload{}, errors.New("invalid user_id claim")
	}

	payload := domain.TokenPayload{
		ID:     id,
		UserID: userID,
	}

	return payload, nil
}

var _ ports.TokenService = (*JWTTokenService)(nil)

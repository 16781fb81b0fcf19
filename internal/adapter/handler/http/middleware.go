package http

import (
	"net/http"
	"strings"

	"devdirectory/internal/core/ports"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	authorizationHeaderKey  = "authorization"
	authorizationType       = "bearer"
	authorizationPayloadKey = "authorization_payload"
)

// AuthMiddleware is the bearer gate. All three failure paths answer 401;
// only the message distinguishes a missing token, a bad/expired token and
// a token whose subject no longer exists.
func AuthMiddleware(token ports.TokenService, users ports.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authorizationHeader := c.GetHeader(authorizationHeaderKey)
		if authorizationHeader == "" {
			newErrorResponse(c, http.StatusUnauthorized, "Not authorized. Please login to access this resource")
			return
		}

		fields := strings.Fields(authorizationHeader)
		if len(fields) != 2 || strings.ToLower(fields[0]) != authorizationType {
			newErrorResponse(c, http.StatusUnauthorized, "Not authorized. Please login to access this resource")
			return
		}

		accessToken := fields[1]
		payload, err := token.VerifyToken(accessToken)
		if err != nil {
			newErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		if _, err := users.GetUserByID(c.Request.Context(), payload.UserID); err != nil {
			newErrorResponse(c, http.StatusUnauthorized, "User no longer exists")
			return
		}

		c.Set(authorizationPayloadKey, &payload)
		c.Next()
	}
}

// RateLimitMiddleware throttles the credential endpoints.
func RateLimitMiddleware(limiter *rate.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow() {
			newErrorResponse(c, http.StatusTooManyRequests, "Too many requests, please try again later")
			return
		}
		c.Next()
	}
}

package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"Error"`
	// Error carries the raw failure detail, only outside release mode.
	Error string `json:"error,omitempty"`
}

type successResponse struct {
	Success bool        `json:"success" example:"true"`
	Message string      `json:"message,omitempty" example:"Success message"`
	Data    interface{} `json:"data,omitempty" swaggertype:"object"`
}

// listResponse is the paginated envelope: count is the size of this page,
// total the unpaginated match count, pages = ceil(total/limit).
type listResponse struct {
	Success bool        `json:"success" example:"true"`
	Count   int         `json:"count" example:"10"`
	Total   int         `json:"total" example:"25"`
	Page    int         `json:"page" example:"1"`
	Pages   int         `json:"pages" example:"3"`
	Data    interface{} `json:"data" swaggertype:"object"`
}

func newErrorResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, errorResponse{
		Success: false,
		Message: message,
	})
}

// newInternalErrorResponse hides the raw error behind a generic message
// unless gin is in debug mode.
func newInternalErrorResponse(c *gin.Context, message string, err error) {
	resp := errorResponse{
		Success: false,
		Message: message,
	}
	if gin.IsDebugging() && err != nil {
		resp.Error = err.Error()
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
}

func newSuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, successResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

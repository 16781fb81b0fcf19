package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"devdirectory/internal/core/domain"
	"devdirectory/internal/core/ports"

	"github.com/gin-gonic/gin"
)

type DeveloperHandler struct {
	developerService ports.DeveloperService
	logger           ports.LoggerPort
	metrics          ports.MetricsPort
}

func NewDeveloperHandler(
	developerService ports.DeveloperService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *DeveloperHandler {
	return &DeveloperHandler{
		developerService: developerService,
		logger:           logger,
		metrics:          metrics,
	}
}

// DeveloperRequest is the create/update submission. TechStack accepts a
// JSON array or one comma-separated string; JoiningDate accepts
// YYYY-MM-DD or RFC 3339.
type DeveloperRequest struct {
	Name        string           `json:"name" example:"Jane Doe"`
	Role        string           `json:"role" example:"Backend"`
	TechStack   domain.TechStack `json:"techStack" swaggertype:"array,string" example:"Go,Postgres"`
	Experience  float64          `json:"experience" example:"4"`
	About       string           `json:"about,omitempty" example:"Distributed systems enthusiast"`
	PhotoURL    string           `json:"photoUrl,omitempty" example:"https://example.com/jane.png"`
	JoiningDate string           `json:"joiningDate,omitempty" example:"2024-02-01"`
}

func (req *DeveloperRequest) toDomain() (*domain.Developer, error) {
	dev := &domain.Developer{
		Name:       req.Name,
		Role:       domain.Role(req.Role),
		TechStack:  req.TechStack,
		Experience: req.Experience,
		About:      req.About,
		PhotoURL:   req.PhotoURL,
	}

	if req.JoiningDate != "" {
		date, err := time.Parse("2006-01-02", req.JoiningDate)
		if err != nil {
			date, err = time.Parse(time.RFC3339, req.JoiningDate)
		}
		if err != nil {
			return nil, &domain.ValidationError{Message: "Invalid date format"}
		}
		dev.JoiningDate = date
	}
	return dev, nil
}

func (h *DeveloperHandler) writeServiceError(c *gin.Context, err error) {
	var validationErr *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrDeveloperNotFound):
		newErrorResponse(c, http.StatusNotFound, "Developer not found")
	case errors.As(err, &validationErr):
		newErrorResponse(c, http.StatusBadRequest, validationErr.Message)
	default:
		h.logger.Error("Developer request failed", map[string]interface{}{
			"error":  err.Error(),
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
		newInternalErrorResponse(c, "Something went wrong", err)
	}
}

// @Summary List developers
// @Description Filter, search, sort and paginate developer profiles
// @Tags developers
// @Security BearerAuth
// @Produce json
// @Param role query string false "Role filter, 'All' disables it" Enums(All, Frontend, Backend, Full-Stack, DevOps, Mobile)
// @Param search query string false "Case-insensitive match on name, tech stack and about"
// @Param sort query string false "Sort order" Enums(newest, exp_asc, exp_desc, name_asc, name_desc)
// @Param page query int false "1-indexed page" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} listResponse "One page of developers"
// @Failure 401 {object} errorResponse "Not authorized"
// @Router /api/developers [get]
func (h *DeveloperHandler) ListDevelopers(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	query := domain.ListQuery{
		Role:   c.Query("role"),
		Search: c.Query("search"),
		Sort:   c.Query("sort"),
		Page:   page,
		Limit:  limit,
	}

	result, err := h.developerService.ListDevelopers(c.Request.Context(), query)
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, "Failed to fetch developers")
		return
	}

	c.JSON(http.StatusOK, listResponse{
		Success: true,
		Count:   result.Count,
		Total:   result.Total,
		Page:    result.Page,
		Pages:   result.Pages,
		Data:    result.Developers,
	})
}

// @Summary Get a developer
// @Tags developers
// @Security BearerAuth
// @Produce json
// @Param id path string true "Developer ID"
// @Success 200 {object} successResponse{data=domain.Developer} "Developer found"
// @Failure 401 {object} errorResponse "Not authorized"
// @Failure 404 {object} errorResponse "Developer not found"
// @Router /api/developers/{id} [get]
func (h *DeveloperHandler) GetDeveloper(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	dev, err := h.developerService.GetDeveloper(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	newSuccessResponse(c, http.StatusOK, "", dev)
}

// @Summary Add a developer
// @Tags developers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body DeveloperRequest true "Developer profile"
// @Success 201 {object} successResponse{data=domain.Developer} "Developer added"
// @Failure 400 {object} errorResponse "Validation failed"
// @Failure 401 {object} errorResponse "Not authorized"
// @Router /api/developers [post]
func (h *DeveloperHandler) CreateDeveloper(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Not authorized. Please login to access this resource")
		return
	}

	var req DeveloperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Info("Failed JSON parse in create developer", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	dev, err := req.toDomain()
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	dev.CreatedBy = payload.UserID

	created, err := h.developerService.CreateDeveloper(c.Request.Context(), dev)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.logger.Info("Developer added", map[string]interface{}{
		"id":   created.ID,
		"name": created.Name,
	})

	newSuccessResponse(c, http.StatusCreated, "Developer added successfully", created)
}

// @Summary Update a developer
// @Description Full replace of the mutable profile fields
// @Tags developers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Developer ID"
// @Param request body DeveloperRequest true "Developer profile"
// @Success 200 {object} successResponse{data=domain.Developer} "Developer updated"
// @Failure 400 {object} errorResponse "Validation failed"
// @Failure 401 {object} errorResponse "Not authorized"
// @Failure 404 {object} errorResponse "Developer not found"
// @Router /api/developers/{id} [put]
func (h *DeveloperHandler) UpdateDeveloper(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req DeveloperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Info("Failed JSON parse in update developer", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	dev, err := req.toDomain()
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	updated, err := h.developerService.UpdateDeveloper(c.Request.Context(), c.Param("id"), dev)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.logger.Info("Developer updated", map[string]interface{}{
		"id": updated.ID,
	})

	newSuccessResponse(c, http.StatusOK, "Developer updated successfully", updated)
}

// @Summary Delete a developer
// @Tags developers
// @Security BearerAuth
// @Produce json
// @Param id path string true "Developer ID"
// @Success 200 {object} successResponse "Developer deleted"
// @Failure 401 {object} errorResponse "Not authorized"
// @Failure 404 {object} errorResponse "Developer not found"
// @Router /api/developers/{id} [delete]
func (h *DeveloperHandler) DeleteDeveloper(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	id := c.Param("id")
	if err := h.developerService.DeleteDeveloper(c.Request.Context(), id); err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.logger.Info("Developer deleted", map[string]interface{}{
		"id": id,
	})

	newSuccessResponse(c, http.StatusOK, "Developer deleted successfully", nil)
}

package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"devdirectory/internal/core/domain"
	"devdirectory/internal/core/ports"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const developerCacheTTL = 15 * time.Minute

type DeveloperService struct {
	repo     ports.DeveloperRepository
	logger   ports.LoggerPort
	validate *validator.Validate
	cache    ports.CachePort
}

func NewDeveloperService(
	repo ports.DeveloperRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
	cache ports.CachePort,
) *DeveloperService {
	return &DeveloperService{
		repo:     repo,
		logger:   logger,
		validate: validate,
		cache:    cache,
	}
}

func (ds *DeveloperService) CreateDeveloper(ctx context.Context, dev *domain.Developer) (*domain.Developer, error) {
	if err := ds.validateDeveloper(dev); err != nil {
		ds.logger.Info("Developer validation failed", map[string]interface{}{
			"error":  err.Error(),
			"method": "CreateDeveloper",
		})
		return nil, err
	}

	if dev.JoiningDate.IsZero() {
		dev.JoiningDate = time.Now()
	}

	created, err := ds.repo.CreateDeveloper(ctx, dev)
	if err != nil {
		ds.logger.Error("Failed to create developer in storage", map[string]interface{}{
			"error":  err.Error(),
			"method": "CreateDeveloper",
		})
		return nil, err
	}
	return created, nil
}

func (ds *DeveloperService) GetDeveloper(ctx context.Context, id string) (*domain.Developer, error) {
	devID, err := uuid.Parse(id)
	if err != nil {
		// Malformed ids read the same as unknown ones.
		return nil, domain.ErrDeveloperNotFound
	}

	cacheKey := fmt.Sprintf("developer:%s", id)
	cachedData, err := ds.cache.Get(cacheKey)
	if err == nil {
		var cached domain.Developer
		if err := json.Unmarshal(cachedData, &cached); err == nil {
			ds.logger.Debug("Developer found in cache", map[string]interface{}{
				"id": id,
			})
			return &cached, nil
		}
	}

	dev, err := ds.repo.GetDeveloperByID(ctx, devID)
	if err != nil {
		return nil, err
	}

	devData, err := json.Marshal(dev)
	if err != nil {
		ds.logger.Warn("Failed to marshal developer for cache", map[string]interface{}{
			"error": err.Error(),
			"id":    id,
		})
	} else {
		if err := ds.cache.Set(cacheKey, devData, developerCacheTTL); err != nil {
			ds.logger.Warn("Failed to cache developer", map[string]interface{}{
				"error": err.Error(),
				"id":    id,
			})
		}
	}

	return dev, nil
}

func (ds *DeveloperService) ListDevelopers(ctx context.Context, q domain.ListQuery) (*domain.DeveloperPage, error) {
	q = q.Normalized()

	developers, total, err := ds.repo.ListDevelopers(ctx, q)
	if err != nil {
		ds.logger.Error("Failed to list developers", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	return domain.NewDeveloperPage(developers, total, q), nil
}

// UpdateDeveloper replaces every mutable field of an existing record.
// ID, CreatedBy and CreatedAt are always taken from the stored record.
func (ds *DeveloperService) UpdateDeveloper(ctx context.Context, id string, dev *domain.Developer) (*domain.Developer, error) {
	devID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrDeveloperNotFound
	}

	existing, err := ds.repo.GetDeveloperByID(ctx, devID)
	if err != nil {
		return nil, err
	}

	if err := ds.validateDeveloper(dev); err != nil {
		ds.logger.Info("Developer validation failed", map[string]interface{}{
			"error":  err.Error(),
			"method": "UpdateDeveloper",
		})
		return nil, err
	}

	dev.ID = existing.ID
	dev.CreatedBy = existing.CreatedBy
	dev.CreatedAt = existing.CreatedAt
	if dev.JoiningDate.IsZero() {
		dev.JoiningDate = existing.JoiningDate
	}

	updated, err := ds.repo.UpdateDeveloper(ctx, dev)
	if err != nil {
		ds.logger.Error("Failed to update developer", map[string]interface{}{
			"id":    id,
			"error": err.Error(),
		})
		return nil, err
	}

	ds.invalidate(id)
	return updated, nil
}

func (ds *DeveloperService) DeleteDeveloper(ctx context.Context, id string) error {
	devID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrDeveloperNotFound
	}

	if err := ds.repo.DeleteDeveloper(ctx, devID); err != nil {
		return err
	}

	ds.invalidate(id)

	ds.logger.Info("Developer deleted", map[string]interface{}{
		"id": id,
	})
	return nil
}

func (ds *DeveloperService) invalidate(id string) {
	cacheKey := fmt.Sprintf("developer:%s", id)
	if err := ds.cache.Delete(cacheKey); err != nil {
		ds.logger.Warn("Failed to invalidate developer cache", map[string]interface{}{
			"error": err.Error(),
			"id":    id,
		})
	}
}

// validateDeveloper normalizes the submission in place and collects every
// field error into a single joined message.
func (ds *DeveloperService) validateDeveloper(dev *domain.Developer) error {
	dev.Name = strings.TrimSpace(dev.Name)
	dev.About = strings.TrimSpace(dev.About)
	dev.PhotoURL = strings.TrimSpace(dev.PhotoURL)
	dev.TechStack = dev.TechStack.Normalize()

	err := ds.validate.Struct(dev)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		messages = append(messages, developerFieldMessage(fieldErr))
	}
	return &domain.ValidationError{Message: strings.Join(messages, ", ")}
}

func developerFieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "Name":
		if fe.Tag() == "required" {
			return "Name is required"
		}
		return "Name must be at least 2 characters"
	case "Role":
		if fe.Tag() == "required" {
			return "Role is required"
		}
		return "Invalid role selected"
	case "TechStack":
		return "At least one technology is required"
	case "Experience":
		if fe.Tag() == "max" {
			return "Experience seems too high"
		}
		return "Experience cannot be negative"
	case "About":
		return "About section cannot exceed 1000 characters"
	case "PhotoURL":
		return "Please enter a valid URL"
	}
	return fmt.Sprintf("Invalid value for %s", fe.Field())
}

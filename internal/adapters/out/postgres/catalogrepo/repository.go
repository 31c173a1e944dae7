package catalogrepo

import (
	"context"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormMealRepository implements ports.MealRepository using GORM. The catalog
// is read-only from the application's point of view, so there is no aggregate
// tracking here.
type GormMealRepository struct {
	db *gorm.DB
}

// NewGormMealRepository creates a new GORM meal repository.
func NewGormMealRepository(db *gorm.DB) *GormMealRepository {
	return &GormMealRepository{db: db}
}

// GetByIDs loads the meals with the given IDs, restricted to one restaurant.
// A requested ID that does not exist (or belongs to another restaurant) is
// simply absent from the result; callers decide whether that is an error.
func (r *GormMealRepository) GetByIDs(
	ctx context.Context, restaurantID kernel.UUID, ids []kernel.UUID,
) ([]catalog.Meal, error) {
	if err := restaurantID.Validate(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	rawIDs := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		rawIDs = append(rawIDs, id.Bytes())
	}

	var dtos []MealDTO
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND id IN ?", restaurantID.Bytes(), rawIDs).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	meals := make([]catalog.Meal, 0, len(dtos))
	for _, dto := range dtos {
		meal, convErr := mealToDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		meals = append(meals, meal)
	}
	return meals, nil
}

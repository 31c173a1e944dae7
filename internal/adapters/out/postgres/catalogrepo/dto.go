package catalogrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// RestaurantDTO represents a restaurant row.
type RestaurantDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	CreatedAt time.Time
}

// TableName overrides the default table name.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// MealDTO represents a meal row.
type MealDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid"`
	Name         string
	PriceCents   int64
	CreatedAt    time.Time
}

// TableName overrides the default table name.
func (MealDTO) TableName() string {
	return "meals"
}

func mealToDomain(dto MealDTO) (catalog.Meal, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return catalog.Meal{}, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return catalog.Meal{}, err
	}

	price, err := kernel.NewMoneyFromCents(dto.PriceCents)
	if err != nil {
		return catalog.Meal{}, err
	}

	return catalog.Meal{
		ID:           id,
		RestaurantID: restaurantID,
		Name:         dto.Name,
		Price:        price,
	}, nil
}

package queries

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetWeeklyRevenueQueryHandler aggregates a driver's delivered-order revenue
// per calendar day over the current ISO week.
type GetWeeklyRevenueQueryHandler struct {
	db *gorm.DB
}

// NewGetWeeklyRevenueQueryHandler creates a handler for revenue aggregation.
func NewGetWeeklyRevenueQueryHandler(db *gorm.DB) GetWeeklyRevenueQueryHandler {
	return GetWeeklyRevenueQueryHandler{db: db}
}

// Handle returns a map keyed by weekday abbreviation ("Mon".."Sun") for every
// day of the Monday-to-Sunday week containing the reference time. All seven
// keys are always present; days without deliveries report zero.
func (h GetWeeklyRevenueQueryHandler) Handle(
	ctx context.Context,
	query GetWeeklyRevenueQuery,
) (map[string]int64, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	reference := query.ReferenceTime()
	weekStart := startOfISOWeek(reference)
	weekEnd := weekStart.AddDate(0, 0, 7)

	revenue := make(map[string]int64, 7)
	for i := 0; i < 7; i++ {
		revenue[weekStart.AddDate(0, 0, i).Format("Mon")] = 0
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			created_at,
			total_cents
		FROM orders
		WHERE driver_id = ?
		  AND status = ?
		  AND created_at >= ?
		  AND created_at < ?
	`, query.DriverID().Bytes(), order.Delivered, weekStart, weekEnd).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Bucketing happens here rather than in SQL: a DATE() in the database
	// would use the session time zone, which may disagree with the
	// reference time's zone on days that straddle midnight.
	for rows.Next() {
		var createdAt time.Time
		var cents int64

		if err = rows.Scan(&createdAt, &cents); err != nil {
			return nil, err
		}

		revenue[createdAt.In(reference.Location()).Format("Mon")] += cents
	}

	return revenue, rows.Err()
}

// startOfISOWeek truncates t to midnight of the Monday of its week.
func startOfISOWeek(t time.Time) time.Time {
	// time.Weekday counts Sunday as 0; shift so Monday is 0.
	offset := (int(t.Weekday()) + 6) % 7
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -offset)
}

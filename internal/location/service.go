package location

import (
	"context"

	"backend-pathpal/internal/db"
)

// Location is the user's single last-known position. Timestamp is epoch
// milliseconds as reported by the client.
type Location struct {
	UserID    string  `json:"user_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp int64   `json:"timestamp"`
}

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

// SaveLocation upserts the caller's location by deleting any prior record
// and inserting the new one. One row per user.
func (s *Service) SaveLocation(ctx context.Context, input Location) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM locations WHERE user_id=$1`, input.UserID); err != nil {
		return err
	}
	_, err := s.db.Exec(ctx, `
		INSERT INTO locations (user_id, latitude, longitude, timestamp)
		VALUES ($1,$2,$3,$4)
	`, input.UserID, input.Latitude, input.Longitude, input.Timestamp)
	return err
}

// GetLocation returns the caller's stored location, or an error when no
// record exists.
func (s *Service) GetLocation(ctx context.Context, userID string) (Location, error) {
	row := s.db.QueryRow(ctx, `
		SELECT user_id, latitude, longitude, timestamp
		FROM locations WHERE user_id=$1
	`, userID)
	var loc Location
	if err := row.Scan(&loc.UserID, &loc.Latitude, &loc.Longitude, &loc.Timestamp); err != nil {
		return Location{}, err
	}
	return loc, nil
}

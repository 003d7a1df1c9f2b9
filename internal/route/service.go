package route

import (
	"context"
	"errors"

	"backend-pathpal/internal/db"
	"backend-pathpal/internal/poi"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("route not found")

// Service persists user-authored routes as first-class owned records.
type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

func (s *Service) CreateRoute(ctx context.Context, input Route) (Route, error) {
	if !input.Valid() {
		return Route{}, errors.New("route must have a valid mode and in-range stops")
	}

	input.ID = uuid.NewString()
	row := s.db.QueryRow(ctx, `
		INSERT INTO user_routes (id, name, description, mode, stops, bonus_points, created_by)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING created_at
	`, input.ID, input.Name, input.Description, string(input.Mode), stopsToInt32(input.Stops), input.BonusPoints, input.CreatedBy)
	if err := row.Scan(&input.CreatedAt); err != nil {
		return Route{}, err
	}
	return input, nil
}

func (s *Service) GetRoute(ctx context.Context, id string) (Route, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, name, description, mode, stops, bonus_points, created_by, created_at
		FROM user_routes WHERE id=$1
	`, id)
	return scanRoute(row)
}

func (s *Service) ListRoutes(ctx context.Context, userID string) ([]Route, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, description, mode, stops, bonus_points, created_by, created_at
		FROM user_routes WHERE created_by=$1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var routes []Route
	for rows.Next() {
		r, err := scanRoute(rows)
		if err != nil {
			return nil, err
		}
		routes = append(routes, r)
	}
	return routes, nil
}

func (s *Service) DeleteRoute(ctx context.Context, id, userID string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM user_routes WHERE id=$1 AND created_by=$2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoute(row rowScanner) (Route, error) {
	var r Route
	var mode string
	var stops []int32
	if err := row.Scan(&r.ID, &r.Name, &r.Description, &mode, &stops, &r.BonusPoints, &r.CreatedBy, &r.CreatedAt); err != nil {
		return Route{}, err
	}
	r.Mode = poi.Mode(mode)
	r.Stops = stopsToInt(stops)
	return r, nil
}

func stopsToInt32(stops []int) []int32 {
	out := make([]int32, len(stops))
	for i, v := range stops {
		out[i] = int32(v)
	}
	return out
}

func stopsToInt(stops []int32) []int {
	out := make([]int, len(stops))
	for i, v := range stops {
		out[i] = int(v)
	}
	return out
}

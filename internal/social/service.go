package social

import (
	"context"

	"backend-pathpal/internal/db"

	"github.com/google/uuid"
)

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

func (s *Service) Follow(ctx context.Context, followerID, followingID string) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO user_follows (follower_id, following_id)
		VALUES ($1,$2)
		ON CONFLICT DO NOTHING
	`, followerID, followingID)
	return err
}

func (s *Service) Unfollow(ctx context.Context, followerID, followingID string) error {
	_, err := s.db.Exec(ctx, `
		DELETE FROM user_follows WHERE follower_id=$1 AND following_id=$2
	`, followerID, followingID)
	return err
}

func (s *Service) ShareRoute(ctx context.Context, userID, routeID, note string) (SharedRoute, error) {
	shared := SharedRoute{
		ID:      uuid.NewString(),
		RouteID: routeID,
		UserID:  userID,
		Note:    note,
	}
	row := s.db.QueryRow(ctx, `
		INSERT INTO shared_routes (id, route_id, user_id, note)
		VALUES ($1,$2,$3,$4)
		RETURNING created_at
	`, shared.ID, shared.RouteID, shared.UserID, shared.Note)
	if err := row.Scan(&shared.CreatedAt); err != nil {
		return SharedRoute{}, err
	}
	return shared, nil
}

// Feed lists routes shared by the user and everyone they follow, newest
// first.
func (s *Service) Feed(ctx context.Context, userID string) ([]FeedEntry, error) {
	rows, err := s.db.Query(ctx, `
		SELECT sr.id, sr.route_id, sr.user_id, sr.note, sr.created_at, ur.name, ur.mode
		FROM shared_routes sr
		JOIN user_routes ur ON ur.id = sr.route_id
		WHERE sr.user_id=$1
		   OR sr.user_id IN (SELECT following_id FROM user_follows WHERE follower_id=$1)
		ORDER BY sr.created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var feed []FeedEntry
	for rows.Next() {
		var e FeedEntry
		if err := rows.Scan(&e.ID, &e.RouteID, &e.UserID, &e.Note, &e.CreatedAt, &e.RouteName, &e.Mode); err != nil {
			return nil, err
		}
		feed = append(feed, e)
	}
	return feed, nil
}

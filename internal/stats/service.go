package stats

import (
	"context"
	"fmt"

	"backend-pathpal/internal/db"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const leaderboardKey = "leaderboard:points"

// Completion is the durable record of one finished route traversal.
type Completion struct {
	UserID          string  `json:"user_id"`
	RouteID         string  `json:"route_id,omitempty"`
	RouteName       string  `json:"route_name,omitempty"`
	Mode            string  `json:"mode"`
	DistanceMiles   float64 `json:"distance_miles"`
	DurationMinutes int     `json:"duration_minutes"`
	Points          int     `json:"points"`
	BonusPoints     int     `json:"bonus_points"`
}

type Totals struct {
	CompletedRoutes int     `json:"completed_routes"`
	TotalMiles      float64 `json:"total_miles"`
	TotalMinutes    int     `json:"total_minutes"`
	TotalPoints     int     `json:"total_points"`
}

type BusinessVisits struct {
	Name   string `json:"name"`
	Visits int    `json:"visits"`
}

type LeaderboardEntry struct {
	UserID string `json:"user_id"`
	Points int    `json:"points"`
}

type Service struct {
	db    db.Querier
	redis *redis.Client
}

func NewService(db db.Querier, redisClient *redis.Client) *Service {
	return &Service{db: db, redis: redisClient}
}

func (s *Service) RecordCheckIn(ctx context.Context, userID, poiName string, points int) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO poi_checkins (id, user_id, poi_name, points)
		VALUES ($1,$2,$3,$4)
	`, uuid.NewString(), userID, poiName, points)
	if err != nil {
		return err
	}
	return s.bumpLeaderboard(ctx, userID, points)
}

func (s *Service) RecordCompletion(ctx context.Context, c Completion) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO route_completions (id, user_id, route_id, route_name, mode, distance_miles, duration_minutes, points)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`, uuid.NewString(), c.UserID, c.RouteID, c.RouteName, c.Mode, c.DistanceMiles, c.DurationMinutes, c.Points)
	if err != nil {
		return err
	}
	return s.bumpLeaderboard(ctx, c.UserID, c.BonusPoints)
}

func (s *Service) bumpLeaderboard(ctx context.Context, userID string, points int) error {
	if s.redis == nil || points == 0 {
		return nil
	}
	return s.redis.ZIncrBy(ctx, leaderboardKey, float64(points), userID).Err()
}

func (s *Service) UserTotals(ctx context.Context, userID string) (Totals, error) {
	row := s.db.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(distance_miles),0), COALESCE(SUM(duration_minutes),0), COALESCE(SUM(points),0)
		FROM route_completions WHERE user_id=$1
	`, userID)
	var t Totals
	if err := row.Scan(&t.CompletedRoutes, &t.TotalMiles, &t.TotalMinutes, &t.TotalPoints); err != nil {
		return Totals{}, err
	}
	return t, nil
}

func (s *Service) FavoriteBusinesses(ctx context.Context, userID string, limit int) ([]BusinessVisits, error) {
	if limit <= 0 {
		limit = 5
	}
	rows, err := s.db.Query(ctx, `
		SELECT poi_name, COUNT(*) AS visits
		FROM poi_checkins WHERE user_id=$1
		GROUP BY poi_name
		ORDER BY visits DESC, poi_name
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var favorites []BusinessVisits
	for rows.Next() {
		var b BusinessVisits
		if err := rows.Scan(&b.Name, &b.Visits); err != nil {
			return nil, err
		}
		favorites = append(favorites, b)
	}
	return favorites, nil
}

func (s *Service) Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if s.redis == nil {
		return []LeaderboardEntry{}, nil
	}
	if limit <= 0 {
		limit = 10
	}

	scores, err := s.redis.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(scores))
	for _, z := range scores {
		member, _ := z.Member.(string)
		entries = append(entries, LeaderboardEntry{UserID: member, Points: int(z.Score)})
	}
	return entries, nil
}

// FunFacts restates total mileage as familiar comparisons.
func FunFacts(t Totals) []string {
	return []string{
		fmt.Sprintf("That's like climbing %.2fx Mount Everest!", t.TotalMiles/5.5),
		fmt.Sprintf("Or walking the length of the Golden Gate Bridge %.1fx times!", t.TotalMiles/1.7),
		fmt.Sprintf("Or walking from LA to San Diego %.2fx times!", t.TotalMiles/120),
		fmt.Sprintf("Or walking the length of Central Park %.1fx times!", t.TotalMiles/2.5),
		fmt.Sprintf("Estimated calories burned: %d kcal", int(t.TotalMiles*100)),
	}
}

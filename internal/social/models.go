package social

import "time"

type SharedRoute struct {
	ID        string    `json:"id"`
	RouteID   string    `json:"route_id"`
	UserID    string    `json:"user_id"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

// FeedEntry is a shared route enriched with its route's display fields.
type FeedEntry struct {
	SharedRoute
	RouteName string `json:"route_name"`
	Mode      string `json:"mode"`
}

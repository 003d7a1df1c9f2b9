package route

import (
	"time"

	"backend-pathpal/internal/poi"
)

// Route is an ordered list of catalog indices plus a travel mode. Stops
// index into the catalog selected by Mode.
type Route struct {
	ID          string    `json:"id,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Mode        poi.Mode  `json:"mode"`
	Stops       []int     `json:"stops"`
	BonusPoints int       `json:"bonus_points,omitempty"`
	CreatedBy   string    `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

// Metrics is the displayed trip estimate for a route. Derived on demand,
// never stored.
type Metrics struct {
	DistanceMiles float64 `json:"distance_miles"`
	TimeMinutes   int     `json:"time_minutes"`
}

// Valid reports whether the route has at least one stop and every stop
// index falls inside its mode's catalog.
func (r Route) Valid() bool {
	if !r.Mode.Valid() || len(r.Stops) == 0 {
		return false
	}
	size := poi.Size(r.Mode)
	for _, i := range r.Stops {
		if i < 0 || i >= size {
			return false
		}
	}
	return true
}

// Resolve maps the route's stop indices onto the catalog for its mode.
// Invalid indices are skipped.
func (r Route) Resolve() []poi.POI {
	catalog := poi.Catalog(r.Mode)
	stops := make([]poi.POI, 0, len(r.Stops))
	for _, i := range r.Stops {
		if i < 0 || i >= len(catalog) {
			continue
		}
		stops = append(stops, catalog[i])
	}
	return stops
}

package route

import "backend-pathpal/internal/poi"

// Curated path options. Stop sequences are fixed editorial picks over the
// catalogs, spatially diverse within each mode.
var curatedPool = []Route{
	{ID: "option1", Mode: poi.ModeWalk, Stops: []int{0, 5, 6}, BonusPoints: 25},
	{ID: "option2", Mode: poi.ModeWalk, Stops: []int{1, 4, 8}, BonusPoints: 25},
	{ID: "option3", Mode: poi.ModeWalk, Stops: []int{2, 6, 9, 3}, BonusPoints: 25},
	{ID: "option7", Mode: poi.ModeWalk, Stops: []int{3, 6}, BonusPoints: 25},
	{ID: "option8", Mode: poi.ModeWalk, Stops: []int{4, 1, 6}, BonusPoints: 25},
	{ID: "option9", Mode: poi.ModeWalk, Stops: []int{5, 8, 2, 0}, BonusPoints: 25},
	{ID: "option13", Mode: poi.ModeWalk, Stops: []int{6, 2, 7, 1}, BonusPoints: 25},
	{ID: "option14", Mode: poi.ModeWalk, Stops: []int{8, 3, 0, 5}, BonusPoints: 25},
	{ID: "option4", Mode: poi.ModeWheels, Stops: []int{0, 3, 6, 8, 10, 11}, BonusPoints: 50},
	{ID: "option5", Mode: poi.ModeWheels, Stops: []int{1, 4, 7, 9, 2, 5}, BonusPoints: 50},
	{ID: "option6", Mode: poi.ModeWheels, Stops: []int{2, 5, 8, 11, 0, 7}, BonusPoints: 50},
	{ID: "option10", Mode: poi.ModeWheels, Stops: []int{3, 6, 9, 1, 4, 7}, BonusPoints: 50},
	{ID: "option11", Mode: poi.ModeWheels, Stops: []int{4, 8, 0, 2, 5, 10}, BonusPoints: 50},
	{ID: "option12", Mode: poi.ModeWheels, Stops: []int{5, 9, 1, 3, 7, 11}, BonusPoints: 50},
	{ID: "option15", Mode: poi.ModeWheels, Stops: []int{6, 1, 8, 3, 10, 5}, BonusPoints: 50},
	{ID: "option16", Mode: poi.ModeWheels, Stops: []int{7, 2, 9, 4, 11, 0}, BonusPoints: 50},
}

// CuratedPool returns the curated routes for a mode.
func CuratedPool(mode poi.Mode) []Route {
	var out []Route
	for _, r := range curatedPool {
		if r.Mode == mode {
			out = append(out, r)
		}
	}
	return out
}

// CuratedByID looks up a curated route by its pool key.
func CuratedByID(id string) (Route, bool) {
	for _, r := range curatedPool {
		if r.ID == id {
			return r, true
		}
	}
	return Route{}, false
}

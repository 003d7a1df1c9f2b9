package poi

// Mode selects which catalog and which speed/clamp constants apply.
type Mode string

const (
	ModeWalk   Mode = "walk"
	ModeWheels Mode = "wheels"
)

func (m Mode) Valid() bool {
	return m == ModeWalk || m == ModeWheels
}

// POI is a named business a path can visit. Catalogs are defined once at
// startup and never mutated.
type POI struct {
	Name     string  `json:"name"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Category string  `json:"category"`
	Points   int     `json:"points"`
}

var walkCatalog = []POI{
	{Name: "Sunset Coffee", Lat: 34.0522, Lng: -118.2437, Category: "Coffee Shop", Points: 10},
	{Name: "Book Nook", Lat: 34.0622, Lng: -118.2537, Category: "Bookstore", Points: 10},
	{Name: "Taco Haven", Lat: 34.0422, Lng: -118.2337, Category: "Restaurant", Points: 10},
	{Name: "Art Gallery", Lat: 34.0622, Lng: -118.2337, Category: "Gallery", Points: 10},
	{Name: "Park Plaza", Lat: 34.0422, Lng: -118.2537, Category: "Park", Points: 10},
	{Name: "Tech Hub", Lat: 34.0572, Lng: -118.2637, Category: "Coworking", Points: 10},
	{Name: "Music Store", Lat: 34.0572, Lng: -118.2237, Category: "Music", Points: 10},
	{Name: "Fitness Center", Lat: 34.0472, Lng: -118.2637, Category: "Fitness", Points: 10},
	{Name: "Bakery Corner", Lat: 34.0472, Lng: -118.2237, Category: "Bakery", Points: 10},
	{Name: "Library", Lat: 34.0522, Lng: -118.2637, Category: "Library", Points: 10},
}

var wheelsCatalog = []POI{
	{Name: "Drive Thru Diner", Lat: 34.1000, Lng: -118.3000, Category: "Diner", Points: 20},
	{Name: "Mega Mall", Lat: 34.2000, Lng: -118.4000, Category: "Mall", Points: 20},
	{Name: "MoviePlex", Lat: 34.3000, Lng: -118.5000, Category: "Cinema", Points: 20},
	{Name: "Car Wash", Lat: 34.1000, Lng: -118.6000, Category: "Service", Points: 20},
	{Name: "Big Park", Lat: 34.2000, Lng: -118.7000, Category: "Park", Points: 20},
	{Name: "Supermarket", Lat: 34.3000, Lng: -118.8000, Category: "Grocery", Points: 20},
	{Name: "Outlet Center", Lat: 34.4000, Lng: -118.7000, Category: "Outlet", Points: 20},
	{Name: "Bowling Alley", Lat: 34.5000, Lng: -118.6000, Category: "Bowling", Points: 20},
	{Name: "Electronics Hub", Lat: 34.4000, Lng: -118.5000, Category: "Electronics", Points: 20},
	{Name: "Mega Gym", Lat: 34.5000, Lng: -118.4000, Category: "Fitness", Points: 20},
	{Name: "Ice Rink", Lat: 34.4000, Lng: -118.3000, Category: "Recreation", Points: 20},
	{Name: "Drive-In Theater", Lat: 34.3000, Lng: -118.3000, Category: "Theater", Points: 20},
}

// Catalog returns a copy of the catalog for the given mode. Unknown modes
// return an empty catalog.
func Catalog(m Mode) []POI {
	switch m {
	case ModeWalk:
		return append([]POI(nil), walkCatalog...)
	case ModeWheels:
		return append([]POI(nil), wheelsCatalog...)
	default:
		return nil
	}
}

// Size returns the number of POIs in the catalog for the given mode.
func Size(m Mode) int {
	switch m {
	case ModeWalk:
		return len(walkCatalog)
	case ModeWheels:
		return len(wheelsCatalog)
	default:
		return 0
	}
}

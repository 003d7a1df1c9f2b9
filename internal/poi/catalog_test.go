package poi

import "testing"

func TestCatalogSizes(t *testing.T) {
	if got := Size(ModeWalk); got != 10 {
		t.Fatalf("walk catalog size: %d", got)
	}
	if got := Size(ModeWheels); got != 12 {
		t.Fatalf("wheels catalog size: %d", got)
	}
	if got := Size(Mode("boat")); got != 0 {
		t.Fatalf("unknown mode size: %d", got)
	}
}

func TestCatalogCoordinatesInRange(t *testing.T) {
	for _, m := range []Mode{ModeWalk, ModeWheels} {
		for _, p := range Catalog(m) {
			if p.Lat < -90 || p.Lat > 90 {
				t.Fatalf("%s: latitude out of range: %v", p.Name, p.Lat)
			}
			if p.Lng < -180 || p.Lng > 180 {
				t.Fatalf("%s: longitude out of range: %v", p.Name, p.Lng)
			}
		}
	}
}

func TestCatalogNamesUnique(t *testing.T) {
	for _, m := range []Mode{ModeWalk, ModeWheels} {
		seen := map[string]bool{}
		for _, p := range Catalog(m) {
			if seen[p.Name] {
				t.Fatalf("duplicate name %q in %s catalog", p.Name, m)
			}
			seen[p.Name] = true
		}
	}
}

func TestCatalogReturnsCopy(t *testing.T) {
	first := Catalog(ModeWalk)
	first[0].Name = "mutated"
	if Catalog(ModeWalk)[0].Name == "mutated" {
		t.Fatalf("catalog exposed internal slice")
	}
}

func TestModeValid(t *testing.T) {
	if !ModeWalk.Valid() || !ModeWheels.Valid() {
		t.Fatalf("expected builtin modes to be valid")
	}
	if Mode("boat").Valid() {
		t.Fatalf("expected unknown mode to be invalid")
	}
}

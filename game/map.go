package game

import (
	"fmt"

	"war/utils"
)

// Catalog holds the candidate pools a session draws its territories from.
type Catalog struct {
	Names  []string // Territory names
	Colors []string // Faction colors, indexed by Faction
}

// NewCatalog validates the pools and returns a Catalog.
func NewCatalog(names, colors []string) (*Catalog, error) {
	if err := checkUnique("name", names); err != nil {
		return nil, err
	}
	if err := checkUnique("color", colors); err != nil {
		return nil, err
	}
	return &Catalog{Names: names, Colors: colors}, nil
}

// DefaultCatalog returns the built-in pools.
func DefaultCatalog() *Catalog {
	return &Catalog{Names: countryNames, Colors: colorNames}
}

// Size is the largest number of territories the catalog can produce.
func (c *Catalog) Size() int {
	return min(len(c.Names), len(c.Colors))
}

// Color returns the display name of a faction.
func (c *Catalog) Color(f Faction) string {
	if int(f) < 0 || int(f) >= len(c.Colors) {
		return fmt.Sprintf("Faction%d", int(f))
	}
	return c.Colors[f]
}

// checkUnique rejects pools with duplicated or empty entries.
func checkUnique(kind string, pool []string) error {
	for i, v := range pool {
		if v == "" {
			return fmt.Errorf("invalid catalog: empty %s at %d", kind, i)
		}
		if j := utils.FindIndex(pool[:i], v); j >= 0 {
			return fmt.Errorf("invalid catalog: duplicate %s %q at %d and %d", kind, v, j, i)
		}
	}
	return nil
}

// GLOBAL DATA. Both pools must keep the same length so that every generated
// territory gets its own color.

var countryNames = []string{
	"Argentina", "Australia", "Brazil", "Canada", "Chile",
	"China", "Côte d'Ivoire", "Egypt", "Ethiopia", "France",
	"Germany", "Iceland", "India", "Indonesia", "Japan",
	"Kenya", "Madagascar", "Mexico", "Mongolia", "Morocco",
	"New Zealand", "Nigeria", "Norway", "Peru", "Poland",
	"São Tomé and Príncipe", "South Africa", "Spain", "Türkiye", "Vietnam",
}

var colorNames = []string{
	"Red", "Blue", "Green", "Yellow", "Orange",
	"Purple", "Pink", "Brown", "Black", "White",
	"Gray", "Cyan", "Magenta", "Lime", "Maroon",
	"Navy", "Olive", "Teal", "Silver", "Gold",
	"Indigo", "Violet", "Turquoise", "Coral", "Crimson",
	"Beige", "Lavender", "Salmon", "Khaki", "Amber",
}

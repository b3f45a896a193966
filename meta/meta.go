// meta/meta.go
package meta

// MIN_ARMIES is the lowest starting army count of a generated territory.
const MIN_ARMIES = 100

// MAX_ARMIES is the highest starting army count of a generated territory.
const MAX_ARMIES = 200

// DICE_SIDES is the number of faces on a luck die.
const DICE_SIDES = 6

// MIN_TERRITORIES is the smallest territory count drawn for a session.
const MIN_TERRITORIES = 10

// GENERATION_FLOOR is the count generation must strictly exceed.
const GENERATION_FLOOR = 5

// MIN_REQUIRED_COUNT is the lower bound of the conquer count threshold.
const MIN_REQUIRED_COUNT = 3

// MIN_REQUIRED_SEQUENCE is the lower bound of the conquer sequence threshold.
const MIN_REQUIRED_SEQUENCE = 2

// Column widths of the territory roster.
const (
	INDEX_WIDTH  = 6
	NAME_WIDTH   = 35
	COLOR_WIDTH  = 20
	ARMIES_WIDTH = 6
)

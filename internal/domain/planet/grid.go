package planet

// GridType classifies a cell of the planet surface
type GridType int

const (
	// GridTypePlain accepts every player-constructible building except miners
	GridTypePlain GridType = iota

	// GridTypeResource bears a resource deposit and only accepts miners
	GridTypeResource

	// GridTypeCentral holds the pre-built central building and can never be
	// demolished below it
	GridTypeCentral
)

// Grid is one cell of a planet surface. Cells are permanent; only their
// occupancy changes. A cell holds at most one building and at most one
// pending operation per kind, construction being exclusive with the rest.
type Grid struct {
	id       int
	planetID int
	x        int
	y        int
	gtype    GridType

	buildingID *int
	level      *int
	enabled    bool
}

func NewGrid(id, planetID, x, y int, gtype GridType) *Grid {
	return &Grid{id: id, planetID: planetID, x: x, y: y, gtype: gtype, enabled: true}
}

// ReconstructGrid restores a grid cell from persisted state
func ReconstructGrid(id, planetID, x, y int, gtype GridType, buildingID, level *int, enabled bool) *Grid {
	return &Grid{
		id:         id,
		planetID:   planetID,
		x:          x,
		y:          y,
		gtype:      gtype,
		buildingID: buildingID,
		level:      level,
		enabled:    enabled,
	}
}

func (g *Grid) ID() int {
	return g.id
}

func (g *Grid) PlanetID() int {
	return g.planetID
}

func (g *Grid) X() int {
	return g.x
}

func (g *Grid) Y() int {
	return g.y
}

func (g *Grid) Type() GridType {
	return g.gtype
}

// BuildingID returns the held building's catalog id, or nil when empty
func (g *Grid) BuildingID() *int {
	return g.buildingID
}

// Level returns the building level, or nil when the cell is empty
func (g *Grid) Level() *int {
	return g.level
}

func (g *Grid) IsEnabled() bool {
	return g.enabled
}

// HasBuilding reports whether the cell currently holds a building
func (g *Grid) HasBuilding() bool {
	return g.buildingID != nil
}

// CurrentLevel returns the level, zero when the cell is empty
func (g *Grid) CurrentLevel() int {
	if g.level == nil {
		return 0
	}
	return *g.level
}

// AssignBuilding places a finished construction's building on the cell
func (g *Grid) AssignBuilding(buildingID, level int) {
	g.buildingID = &buildingID
	g.level = &level
}

// IncreaseLevel applies a finished upgrade
func (g *Grid) IncreaseLevel() {
	if g.level == nil {
		return
	}
	next := *g.level + 1
	g.level = &next
}

// SetEnabled toggles whether the cell's building is active
func (g *Grid) SetEnabled(enabled bool) {
	g.enabled = enabled
}

// ReduceLevel lowers the level by the given amount but never below floor.
// When the result is zero the cell is cleared: level nil, building
// detached, re-enabled. Returns the resulting level.
func (g *Grid) ReduceLevel(levels, floor int) int {
	current := g.CurrentLevel()

	next := current - levels
	if next < floor {
		next = floor
	}

	if next <= 0 {
		g.level = nil
		g.buildingID = nil
		g.enabled = true
		return 0
	}

	g.level = &next
	return next
}

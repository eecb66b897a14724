package catalog

// BuildingType categorizes what a building does on the planet surface
type BuildingType string

const (
	// BuildingTypeCentral is the pre-built command building at the planet's
	// central cell. Never player-constructible, never fully demolishable.
	BuildingTypeCentral BuildingType = "CENTRAL"

	// BuildingTypeMiner extracts a resource and is only constructible on
	// resource-bearing cells.
	BuildingTypeMiner BuildingType = "MINER"

	// BuildingTypeProducer converts stocked resources into energy through
	// the producer exchange.
	BuildingTypeProducer BuildingType = "PRODUCER"

	// BuildingTypeContainer raises the planet's storage capacity.
	BuildingTypeContainer BuildingType = "CONTAINER"

	// BuildingTypeTrainer trains units.
	BuildingTypeTrainer BuildingType = "TRAINER"

	// BuildingTypeDefensive contributes defense to the planet.
	BuildingTypeDefensive BuildingType = "DEFENSIVE"
)

// Building is an immutable catalog entry: a node in the construction
// dependency forest plus the base stats modifiers are applied to.
//
// A building with no parent is a root requirement: one instance of every
// root building must exist on a planet before repeats become eligible.
type Building struct {
	id       int
	parentID *int
	name     string
	btype    BuildingType

	// Per-planet instance cap. Zero means unlimited.
	limit int

	// Base stats at level 1 with no bonuses.
	constructionCost      int64
	constructionTime      int // seconds
	defense               int64
	defenseBonus          float64 // contributed to the planet, percent points
	constructionTimeBonus float64 // contributed to the planet, percent points
	capacity              int64
	production            int64 // units per hour of the mined/produced resource
}

// NewBuilding creates a catalog building. parentID may be nil for roots.
func NewBuilding(id int, parentID *int, name string, btype BuildingType, limit int, base BaseStats) *Building {
	return &Building{
		id:                    id,
		parentID:              parentID,
		name:                  name,
		btype:                 btype,
		limit:                 limit,
		constructionCost:      base.ConstructionCost,
		constructionTime:      base.ConstructionTime,
		defense:               base.Defense,
		defenseBonus:          base.DefenseBonus,
		constructionTimeBonus: base.ConstructionTimeBonus,
		capacity:              base.Capacity,
		production:            base.Production,
	}
}

// BaseStats groups the level-1 stats of a catalog building
type BaseStats struct {
	ConstructionCost      int64
	ConstructionTime      int
	Defense               int64
	DefenseBonus          float64
	ConstructionTimeBonus float64
	Capacity              int64
	Production            int64
}

func (b *Building) ID() int {
	return b.id
}

// ParentID returns the prerequisite building id, or nil for a root
func (b *Building) ParentID() *int {
	return b.parentID
}

func (b *Building) Name() string {
	return b.name
}

func (b *Building) Type() BuildingType {
	return b.btype
}

// Limit returns the per-planet instance cap, zero meaning unlimited
func (b *Building) Limit() int {
	return b.limit
}

// HasLimit reports whether the building carries a per-planet instance cap
func (b *Building) HasLimit() bool {
	return b.limit > 0
}

// IsRoot reports whether the building is a root requirement
func (b *Building) IsRoot() bool {
	return b.parentID == nil
}

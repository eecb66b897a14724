package planet

// Planet owns a fixed grid of cells, per-resource stocks and the derived
// aggregates the state synchronizer maintains. Derived fields are only
// ever written by the synchronizer; everything else reads them.
type Planet struct {
	id     int
	name   string
	userID int

	// The planet's native resource, mined by miner buildings.
	resourceID int

	// Derived aggregates, recomputed from constructed buildings.
	capacity              int64
	defenseBonus          float64
	constructionTimeBonus float64
}

func NewPlanet(id int, name string, userID, resourceID int) *Planet {
	return &Planet{id: id, name: name, userID: userID, resourceID: resourceID}
}

// ReconstructPlanet restores a planet from persisted state
func ReconstructPlanet(id int, name string, userID, resourceID int, capacity int64, defenseBonus, constructionTimeBonus float64) *Planet {
	return &Planet{
		id:                    id,
		name:                  name,
		userID:                userID,
		resourceID:            resourceID,
		capacity:              capacity,
		defenseBonus:          defenseBonus,
		constructionTimeBonus: constructionTimeBonus,
	}
}

func (p *Planet) ID() int {
	return p.id
}

func (p *Planet) Name() string {
	return p.name
}

func (p *Planet) UserID() int {
	return p.userID
}

// ResourceID returns the planet's native resource type
func (p *Planet) ResourceID() int {
	return p.resourceID
}

func (p *Planet) Capacity() int64 {
	return p.capacity
}

func (p *Planet) DefenseBonus() float64 {
	return p.defenseBonus
}

func (p *Planet) ConstructionTimeBonus() float64 {
	return p.constructionTimeBonus
}

// ApplyAggregates replaces the derived state. Called by the state
// synchronizer only.
func (p *Planet) ApplyAggregates(capacity int64, defenseBonus, constructionTimeBonus float64) {
	p.capacity = capacity
	p.defenseBonus = defenseBonus
	p.constructionTimeBonus = constructionTimeBonus
}

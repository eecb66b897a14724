package catalog

// Resource is an immutable catalog entry for a stockable resource.
// Efficiency is the ratio the producer exchange converts stock into
// energy at.
type Resource struct {
	id         int
	name       string
	efficiency float64
}

func NewResource(id int, name string, efficiency float64) *Resource {
	return &Resource{id: id, name: name, efficiency: efficiency}
}

func (r *Resource) ID() int {
	return r.id
}

func (r *Resource) Name() string {
	return r.name
}

func (r *Resource) Efficiency() float64 {
	return r.efficiency
}

// Unit is an immutable catalog entry for a trainable unit
type Unit struct {
	id        int
	name      string
	supply    int
	trainTime int // seconds per unit
	cost      int64
}

func NewUnit(id int, name string, supply, trainTime int, cost int64) *Unit {
	return &Unit{id: id, name: name, supply: supply, trainTime: trainTime, cost: cost}
}

func (u *Unit) ID() int {
	return u.id
}

func (u *Unit) Name() string {
	return u.name
}

func (u *Unit) Supply() int {
	return u.supply
}

func (u *Unit) TrainTime() int {
	return u.trainTime
}

func (u *Unit) Cost() int64 {
	return u.cost
}

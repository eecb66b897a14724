package planet

import "github.com/cryptixcoder/galaxyofdrones-online/internal/domain/shared"

// Stock is the quantity of one resource type held by a planet.
//
// Invariant: the quantity never goes negative. Decrements are checked
// here and the surrounding transaction makes the check-and-subtract
// atomic against concurrent writers.
type Stock struct {
	planetID   int
	resourceID int
	quantity   int64

	// Per-hour production rate, maintained by the state synchronizer.
	production int64
}

func NewStock(planetID, resourceID int) *Stock {
	return &Stock{planetID: planetID, resourceID: resourceID}
}

// ReconstructStock restores a stock from persisted state
func ReconstructStock(planetID, resourceID int, quantity, production int64) *Stock {
	return &Stock{planetID: planetID, resourceID: resourceID, quantity: quantity, production: production}
}

func (s *Stock) PlanetID() int {
	return s.planetID
}

func (s *Stock) ResourceID() int {
	return s.resourceID
}

func (s *Stock) Quantity() int64 {
	return s.quantity
}

func (s *Stock) Production() int64 {
	return s.production
}

// HasQuantity reports whether at least amount is held
func (s *Stock) HasQuantity(amount int64) bool {
	return s.quantity >= amount
}

// Decrement subtracts amount, failing with InsufficientStockError when
// amount exceeds the held quantity. Nothing is mutated on failure.
func (s *Stock) Decrement(amount int64) error {
	if amount < 0 {
		return shared.NewInvalidAmountError(amount)
	}
	if amount > s.quantity {
		return shared.NewInsufficientStockError(amount, s.quantity)
	}
	s.quantity -= amount
	return nil
}

// Increment adds amount. A negative amount is a caller error.
func (s *Stock) Increment(amount int64) error {
	if amount < 0 {
		return shared.NewInvalidAmountError(amount)
	}
	s.quantity += amount
	return nil
}

// SetProduction replaces the production rate. Called by the state
// synchronizer only.
func (s *Stock) SetProduction(production int64) {
	s.production = production
}

// Population is the count of one trained unit type held by a planet.
// It follows the same ledger contract as Stock.
type Population struct {
	planetID int
	unitID   int
	quantity int64
}

func NewPopulation(planetID, unitID int) *Population {
	return &Population{planetID: planetID, unitID: unitID}
}

// ReconstructPopulation restores a population from persisted state
func ReconstructPopulation(planetID, unitID int, quantity int64) *Population {
	return &Population{planetID: planetID, unitID: unitID, quantity: quantity}
}

func (p *Population) PlanetID() int {
	return p.planetID
}

func (p *Population) UnitID() int {
	return p.unitID
}

func (p *Population) Quantity() int64 {
	return p.quantity
}

func (p *Population) HasQuantity(amount int64) bool {
	return p.quantity >= amount
}

func (p *Population) Decrement(amount int64) error {
	if amount < 0 {
		return shared.NewInvalidAmountError(amount)
	}
	if amount > p.quantity {
		return shared.NewInsufficientStockError(amount, p.quantity)
	}
	p.quantity -= amount
	return nil
}

func (p *Population) Increment(amount int64) error {
	if amount < 0 {
		return shared.NewInvalidAmountError(amount)
	}
	p.quantity += amount
	return nil
}

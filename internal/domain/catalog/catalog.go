package catalog

// Catalog is the immutable set of building definitions, indexed for the
// eligibility engine: adjacency by parent id and the precomputed root set.
// Built once at load time; safe for concurrent reads.
type Catalog struct {
	ordered  []*Building
	byID     map[int]*Building
	children map[int][]*Building
	roots    []*Building
}

// NewCatalog builds the catalog indexes from buildings in canonical
// (default) order. The slice order is preserved and is the order the
// eligibility engine returns candidates in.
func NewCatalog(buildings []*Building) *Catalog {
	c := &Catalog{
		ordered:  buildings,
		byID:     make(map[int]*Building, len(buildings)),
		children: make(map[int][]*Building),
	}

	for _, b := range buildings {
		c.byID[b.id] = b
		if b.parentID == nil {
			c.roots = append(c.roots, b)
		} else {
			c.children[*b.parentID] = append(c.children[*b.parentID], b)
		}
	}

	return c
}

// Find returns the building with the given id, or nil
func (c *Catalog) Find(id int) *Building {
	return c.byID[id]
}

// Buildings returns all buildings in canonical order
func (c *Catalog) Buildings() []*Building {
	return c.ordered
}

// ChildrenOf returns the buildings whose prerequisite is the given id,
// in canonical order
func (c *Catalog) ChildrenOf(parentID int) []*Building {
	return c.children[parentID]
}

// Roots returns the root-required buildings
func (c *Catalog) Roots() []*Building {
	return c.roots
}

// RequiredCount returns the number of root-required buildings. A planet
// must hold this many distinct constructed building types before repeat
// construction becomes eligible.
func (c *Catalog) RequiredCount() int {
	return len(c.roots)
}

package persistence

import (
	"time"
)

// PlanetModel represents the planets table.
// The derived columns (capacity, bonuses) are written only through the
// state synchronizer.
type PlanetModel struct {
	ID                    int       `gorm:"column:id;primaryKey;autoIncrement"`
	Name                  string    `gorm:"column:name;not null"`
	UserID                int       `gorm:"column:user_id;index;not null"`
	User                  *UserModel `gorm:"foreignKey:UserID;references:ID"`
	ResourceID            int       `gorm:"column:resource_id;not null"`
	Capacity              int64     `gorm:"column:capacity;not null;default:0"`
	DefenseBonus          float64   `gorm:"column:defense_bonus;not null;default:0"`
	ConstructionTimeBonus float64   `gorm:"column:construction_time_bonus;not null;default:0"`
	CreatedAt             time.Time `gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt             time.Time `gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (PlanetModel) TableName() string {
	return "planets"
}

// GridModel represents the grids table: one row per surface cell,
// permanent, unique per (planet, x, y).
type GridModel struct {
	ID         int         `gorm:"column:id;primaryKey;autoIncrement"`
	PlanetID   int         `gorm:"column:planet_id;uniqueIndex:idx_grids_planet_x_y;not null"`
	Planet     *PlanetModel `gorm:"foreignKey:PlanetID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	X          int         `gorm:"column:x;uniqueIndex:idx_grids_planet_x_y;not null"`
	Y          int         `gorm:"column:y;uniqueIndex:idx_grids_planet_x_y;not null"`
	Type       int         `gorm:"column:type;not null;default:0"`
	BuildingID *int        `gorm:"column:building_id;index"`
	Level      *int        `gorm:"column:level"`
	IsEnabled  bool        `gorm:"column:is_enabled;not null;default:true"`
	CreatedAt  time.Time   `gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt  time.Time   `gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (GridModel) TableName() string {
	return "grids"
}

// BuildingModel represents the buildings catalog table. Rows are
// immutable at runtime; SortOrder is the catalog's canonical order.
type BuildingModel struct {
	ID                    int     `gorm:"column:id;primaryKey"`
	ParentID              *int    `gorm:"column:parent_id;index"`
	Name                  string  `gorm:"column:name;not null"`
	Type                  string  `gorm:"column:type;not null"`
	Limit                 int     `gorm:"column:instance_limit;not null;default:0"`
	SortOrder             int     `gorm:"column:sort_order;index;not null;default:0"`
	ConstructionCost      int64   `gorm:"column:construction_cost;not null;default:0"`
	ConstructionTime      int     `gorm:"column:construction_time;not null;default:0"`
	Defense               int64   `gorm:"column:defense;not null;default:0"`
	DefenseBonus          float64 `gorm:"column:defense_bonus;not null;default:0"`
	ConstructionTimeBonus float64 `gorm:"column:construction_time_bonus;not null;default:0"`
	Capacity              int64   `gorm:"column:capacity;not null;default:0"`
	Production            int64   `gorm:"column:production;not null;default:0"`
}

func (BuildingModel) TableName() string {
	return "buildings"
}

// ResourceModel represents the resources catalog table
type ResourceModel struct {
	ID         int     `gorm:"column:id;primaryKey"`
	Name       string  `gorm:"column:name;not null"`
	Efficiency float64 `gorm:"column:efficiency;not null;default:1"`
}

func (ResourceModel) TableName() string {
	return "resources"
}

// UnitModel represents the units catalog table
type UnitModel struct {
	ID        int    `gorm:"column:id;primaryKey"`
	Name      string `gorm:"column:name;not null"`
	Supply    int    `gorm:"column:supply;not null;default:0"`
	TrainTime int    `gorm:"column:train_time;not null;default:0"`
	Cost      int64  `gorm:"column:cost;not null;default:0"`
}

func (UnitModel) TableName() string {
	return "units"
}

// StockModel represents the stocks table: one row per (planet, resource)
type StockModel struct {
	PlanetID   int   `gorm:"column:planet_id;primaryKey;not null"`
	Planet     *PlanetModel `gorm:"foreignKey:PlanetID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	ResourceID int   `gorm:"column:resource_id;primaryKey;not null"`
	Quantity   int64 `gorm:"column:quantity;not null;default:0"`
	Production int64 `gorm:"column:production;not null;default:0"`
}

func (StockModel) TableName() string {
	return "stocks"
}

// PopulationModel represents the populations table: trained units per planet
type PopulationModel struct {
	PlanetID int   `gorm:"column:planet_id;primaryKey;not null"`
	Planet   *PlanetModel `gorm:"foreignKey:PlanetID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	UnitID   int   `gorm:"column:unit_id;primaryKey;not null"`
	Quantity int64 `gorm:"column:quantity;not null;default:0"`
}

func (PopulationModel) TableName() string {
	return "populations"
}

// PendingOperationModel represents the pending_operations table. One row
// per in-flight construction, upgrade or training; rows are deleted on
// finish or cancel. The unique (grid_id, kind) index backs the per-cell
// exclusivity invariant at the storage level.
type PendingOperationModel struct {
	ID          string     `gorm:"column:id;primaryKey"`
	GridID      int        `gorm:"column:grid_id;uniqueIndex:idx_pending_grid_kind;not null"`
	Grid        *GridModel `gorm:"foreignKey:GridID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	PlanetID    int        `gorm:"column:planet_id;index;not null"`
	Kind        string     `gorm:"column:kind;uniqueIndex:idx_pending_grid_kind;not null"`
	BuildingID  *int       `gorm:"column:building_id"`
	TargetLevel *int       `gorm:"column:target_level"`
	UnitID      *int       `gorm:"column:unit_id"`
	Quantity    int64      `gorm:"column:quantity;not null;default:0"`
	StartedAt   time.Time  `gorm:"column:started_at;not null"`
	EndedAt     time.Time  `gorm:"column:ended_at;index;not null"`
}

func (PendingOperationModel) TableName() string {
	return "pending_operations"
}

// UserModel represents the users table. Resources holds the unlocked
// resource ids as a JSON array.
type UserModel struct {
	ID        int       `gorm:"column:id;primaryKey;autoIncrement"`
	Username  string    `gorm:"column:username;unique;not null"`
	Energy    int64     `gorm:"column:energy;not null;default:0"`
	Resources string    `gorm:"column:resources;type:text"`
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"`
}

func (UserModel) TableName() string {
	return "users"
}

package models

import "time"

// OrderTable is a physical dining table. NumberOfGuests and Empty are
// occupancy metadata carried through untouched.
type OrderTable struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	TableGroupID   *uint     `json:"table_group_id" gorm:"index"`
	NumberOfGuests int       `json:"number_of_guests" gorm:"not null"`
	Empty          bool      `json:"empty" gorm:"not null"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableGroup joins two or more order tables for shared order handling.
// The group references its tables; it does not own them.
type TableGroup struct {
	ID          uint         `json:"id" gorm:"primaryKey"`
	CreatedAt   time.Time    `json:"created_at" gorm:"not null"`
	OrderTables []OrderTable `json:"order_tables" gorm:"-"`
}

// TableIDs returns the distinct table identities referenced by the group,
// in first-seen order.
func (g *TableGroup) TableIDs() []uint {
	seen := make(map[uint]bool, len(g.OrderTables))
	ids := make([]uint, 0, len(g.OrderTables))
	for _, t := range g.OrderTables {
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		ids = append(ids, t.ID)
	}
	return ids
}

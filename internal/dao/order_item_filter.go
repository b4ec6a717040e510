package dao

import (
	"time"

	"github.com/venkatesh141/Ecom/internal/model"

	"gorm.io/gorm"
)

// OrderItemFilter is a conjunction of independent optional predicates over
// order items. A nil field contributes no constraint.
type OrderItemFilter struct {
	Status    *model.OrderStatus
	StartDate *time.Time
	EndDate   *time.Time
	ItemID    *int64
}

// Scopes builds the gorm scopes for the populated predicates. Each scope is a
// typed query fragment; composing them yields one WHERE conjunction.
func (f OrderItemFilter) Scopes() []func(*gorm.DB) *gorm.DB {
	return []func(*gorm.DB) *gorm.DB{
		itemStatusIs(f.Status),
		itemCreatedBetween(f.StartDate, f.EndDate),
		itemIDIs(f.ItemID),
	}
}

func itemStatusIs(status *model.OrderStatus) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if status == nil {
			return db
		}
		return db.Where("status = ?", *status)
	}
}

// itemCreatedBetween is inclusive on both bounds; a single bound degrades to
// "on or after" / "on or before".
func itemCreatedBetween(start, end *time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch {
		case start != nil && end != nil:
			return db.Where("created_at BETWEEN ? AND ?", *start, *end)
		case start != nil:
			return db.Where("created_at >= ?", *start)
		case end != nil:
			return db.Where("created_at <= ?", *end)
		default:
			return db
		}
	}
}

func itemIDIs(itemID *int64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if itemID == nil {
			return db
		}
		return db.Where("id = ?", *itemID)
	}
}

// Package sqlite persists engine snapshots in the on-device store. Engines
// never see gorm; they hand over plain snapshots and get them back.
package sqlite

import (
	"context"

	"gorm.io/gorm"

	"github.com/phenrril/modashop/internal/domain"
)

type cartItem struct {
	ProductID   string  `gorm:"primaryKey;size:64"`
	Variant     string  `gorm:"primaryKey;size:60"`
	Title       string  `gorm:"size:180"`
	Description string  `gorm:"type:text"`
	UnitPrice   float64 `gorm:"type:decimal(12,2)"`
	Qty         int     `gorm:"not null"`
	ImageRef    string  `gorm:"size:255"`
	Position    int     `gorm:"index"`
}

type CartRepo struct{ db *gorm.DB }

func NewCartRepo(db *gorm.DB) *CartRepo { return &CartRepo{db: db} }

func (r *CartRepo) Load(ctx context.Context) ([]domain.CartLine, error) {
	var rows []cartItem
	if err := r.db.WithContext(ctx).Order("position asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	lines := make([]domain.CartLine, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, domain.CartLine{
			ProductID:   row.ProductID,
			Variant:     row.Variant,
			Title:       row.Title,
			Description: row.Description,
			UnitPrice:   row.UnitPrice,
			Qty:         row.Qty,
			ImageRef:    row.ImageRef,
		})
	}
	return lines, nil
}

// Save replaces the stored cart with the snapshot, keeping line order.
func (r *CartRepo) Save(ctx context.Context, lines []domain.CartLine) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&cartItem{}).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return nil
		}
		rows := make([]cartItem, 0, len(lines))
		for i, l := range lines {
			rows = append(rows, cartItem{
				ProductID:   l.ProductID,
				Variant:     l.Variant,
				Title:       l.Title,
				Description: l.Description,
				UnitPrice:   l.UnitPrice,
				Qty:         l.Qty,
				ImageRef:    l.ImageRef,
				Position:    i,
			})
		}
		return tx.Create(&rows).Error
	})
}

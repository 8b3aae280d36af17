package sqlite

import (
	"context"

	"gorm.io/gorm"

	"github.com/phenrril/modashop/internal/domain"
)

type favoriteRow struct {
	UserID      string  `gorm:"primaryKey;size:64"`
	ProductID   string  `gorm:"primaryKey;size:64"`
	Name        string  `gorm:"size:180"`
	Description string  `gorm:"type:text"`
	Price       float64 `gorm:"type:decimal(12,2)"`
	ImageRef    string  `gorm:"size:255"`
	Position    int     `gorm:"index"`
}

func (favoriteRow) TableName() string { return "favorites" }

type FavoritesRepo struct{ db *gorm.DB }

func NewFavoritesRepo(db *gorm.DB) *FavoritesRepo { return &FavoritesRepo{db: db} }

func (r *FavoritesRepo) Load(ctx context.Context, userID string) ([]domain.FavoriteEntry, error) {
	var rows []favoriteRow
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("position asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	entries := make([]domain.FavoriteEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, domain.FavoriteEntry{
			ProductID:   row.ProductID,
			Name:        row.Name,
			Description: row.Description,
			Price:       row.Price,
			ImageRef:    row.ImageRef,
		})
	}
	return entries, nil
}

// Save replaces the stored favorites of one user, leaving other users alone.
func (r *FavoritesRepo) Save(ctx context.Context, userID string, entries []domain.FavoriteEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&favoriteRow{}).Error; err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		rows := make([]favoriteRow, 0, len(entries))
		for i, e := range entries {
			rows = append(rows, favoriteRow{
				UserID:      userID,
				ProductID:   e.ProductID,
				Name:        e.Name,
				Description: e.Description,
				Price:       e.Price,
				ImageRef:    e.ImageRef,
				Position:    i,
			})
		}
		return tx.Create(&rows).Error
	})
}

// Migrate creates the snapshot tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&cartItem{}, &favoriteRow{})
}

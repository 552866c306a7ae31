package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNGONotFound = errors.New("ngo not found")

type NGO struct {
	ID uint `gorm:"primaryKey"`

	Name string `gorm:"not null"`
	// Expected unique by registry convention, not enforced by the store.
	RegistrationID string `gorm:"not null"`
	Category       string `gorm:"not null"` // "Air", "Water", "Waste" or "Multi"
	City           string
	State          string
	Verified       bool `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type NGODAO struct {
	db *gorm.DB
}

func NewNGODAO(db *gorm.DB) *NGODAO {
	return &NGODAO{
		db: db,
	}
}

func (d *NGODAO) Insert(ctx context.Context, ngo NGO) (NGO, error) {
	result := d.db.WithContext(ctx).Create(&ngo)
	if result.Error != nil {
		return NGO{}, result.Error
	}

	return ngo, nil
}

func (d *NGODAO) FindByID(ctx context.Context, id uint) (NGO, error) {
	var ngo NGO
	result := d.db.WithContext(ctx).First(&ngo, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return NGO{}, ErrNGONotFound
		}

		return NGO{}, result.Error
	}

	return ngo, nil
}

func (d *NGODAO) List(ctx context.Context) ([]NGO, error) {
	var ngos []NGO
	result := d.db.WithContext(ctx).Order("id").Find(&ngos)
	if result.Error != nil {
		return nil, result.Error
	}

	return ngos, nil
}

func (d *NGODAO) Count(ctx context.Context) (int64, error) {
	var count int64
	result := d.db.WithContext(ctx).Model(&NGO{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

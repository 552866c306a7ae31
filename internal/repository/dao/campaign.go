package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrCampaignNotFound = errors.New("campaign not found")

type Campaign struct {
	ID uint `gorm:"primaryKey"`

	Title string `gorm:"not null"`
	// Reference into the ngos table. Checked at creation time only,
	// no foreign key at the store level.
	NGOID       uint   `gorm:"not null;index"`
	Domain      string `gorm:"not null"` // "Air", "Water" or "Waste"
	GoalINR     int64  `gorm:"not null;check:goal_inr >= 1"`
	RaisedINR   int64  `gorm:"not null;default:0;check:raised_inr >= 0"`
	Description string
	City        string
	State       string
	Milestones  []string `gorm:"serializer:json"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type CampaignDAO struct {
	db *gorm.DB
}

func NewCampaignDAO(db *gorm.DB) *CampaignDAO {
	return &CampaignDAO{
		db: db,
	}
}

func (d *CampaignDAO) Insert(ctx context.Context, campaign Campaign) (Campaign, error) {
	result := d.db.WithContext(ctx).Create(&campaign)
	if result.Error != nil {
		return Campaign{}, result.Error
	}

	return campaign, nil
}

func (d *CampaignDAO) FindByID(ctx context.Context, id uint) (Campaign, error) {
	var campaign Campaign
	result := d.db.WithContext(ctx).First(&campaign, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Campaign{}, ErrCampaignNotFound
		}

		return Campaign{}, result.Error
	}

	return campaign, nil
}

// List returns campaigns in insertion order, optionally filtered by domain.
func (d *CampaignDAO) List(ctx context.Context, domain string) ([]Campaign, error) {
	query := d.db.WithContext(ctx).Order("id")
	if domain != "" {
		query = query.Where("domain = ?", domain)
	}

	var campaigns []Campaign
	result := query.Find(&campaigns)
	if result.Error != nil {
		return nil, result.Error
	}

	return campaigns, nil
}

// IncrementRaised adds amount to the campaign's raised total in a single
// UPDATE statement, so two concurrent donations never lose an increment.
func (d *CampaignDAO) IncrementRaised(ctx context.Context, id uint, amount int64) error {
	result := d.db.WithContext(ctx).Model(&Campaign{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"raised_inr": gorm.Expr("raised_inr + ?", amount),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCampaignNotFound
	}

	return nil
}

// Package seed bootstraps a fresh database with an owner user and a
// small starter catalog, so the app is usable right after first start.
// Every function here is idempotent.
package seed

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	itemdomain "github.com/servostack/garagedesk/internal/item/domain"
	userdomain "github.com/servostack/garagedesk/internal/user/domain"
)

const defaultOwnerName = "Workshop Owner"

func EnsureDefaults(db *gorm.DB, node *snowflake.Node) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureOwner(tx, node); err != nil {
			return err
		}
		return ensureStarterItems(tx, node)
	})
}

func ensureOwner(tx *gorm.DB, node *snowflake.Node) error {
	var count int64
	if err := tx.Model(&userdomain.User{}).
		Where("role = ?", userdomain.RoleOwner).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return tx.Create(&userdomain.User{
		ID:   node.Generate(),
		Name: defaultOwnerName,
		Role: userdomain.RoleOwner,
	}).Error
}

func ensureStarterItems(tx *gorm.DB, node *snowflake.Node) error {
	starters := []itemdomain.Item{
		{
			Name:       "General Service Labour",
			Slug:       "general-service-labour",
			Kind:       itemdomain.ItemKindService,
			Rate:       decimal.NewFromInt(500),
			GSTPercent: 18,
		},
		{
			Name:       "Engine Oil 1L",
			Slug:       "engine-oil-1l",
			Kind:       itemdomain.ItemKindPart,
			HSNCode:    "2710",
			Rate:       decimal.NewFromInt(550),
			GSTPercent: 18,
		},
		{
			Name:       "Washing & Cleaning",
			Slug:       "washing-cleaning",
			Kind:       itemdomain.ItemKindService,
			Rate:       decimal.NewFromInt(250),
			GSTPercent: 18,
		},
	}

	for _, starter := range starters {
		var count int64
		if err := tx.Model(&itemdomain.Item{}).
			Where("slug = ?", starter.Slug).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		starter.ID = node.Generate()
		if err := tx.Create(&starter).Error; err != nil {
			return err
		}
	}

	return nil
}

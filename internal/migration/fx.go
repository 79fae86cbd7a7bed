package migration

import (
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/servostack/garagedesk/internal/config"
	"github.com/servostack/garagedesk/internal/seed"

	customerdomain "github.com/servostack/garagedesk/internal/customer/domain"
	expensedomain "github.com/servostack/garagedesk/internal/expense/domain"
	invoicedomain "github.com/servostack/garagedesk/internal/invoice/domain"
	itemdomain "github.com/servostack/garagedesk/internal/item/domain"
	jobcarddomain "github.com/servostack/garagedesk/internal/jobcard/domain"
	userdomain "github.com/servostack/garagedesk/internal/user/domain"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config, node *snowflake.Node) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else {
			err := conn.AutoMigrate(
				&customerdomain.Customer{},
				&customerdomain.Vehicle{},
				&itemdomain.Item{},
				&userdomain.User{},
				&jobcarddomain.JobCard{},
				&invoicedomain.Invoice{},
				&invoicedomain.LineItem{},
				&expensedomain.Expense{},
			)
			if err != nil {
				return err
			}
		}

		return seed.EnsureDefaults(conn, node)
	}),
)

package main

import (
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"

	"github.com/servostack/garagedesk/internal/clock"
	"github.com/servostack/garagedesk/internal/config"
	"github.com/servostack/garagedesk/internal/lock"
	"github.com/servostack/garagedesk/internal/migration"
	"github.com/servostack/garagedesk/internal/scheduler"
	"github.com/servostack/garagedesk/internal/server"
	"github.com/servostack/garagedesk/pkg/db"
	pkglog "github.com/servostack/garagedesk/pkg/log"
)

func main() {
	app := fx.New(
		config.Module,
		pkglog.Module,
		fx.Provide(newSnowflakeNode),
		db.Module,
		clock.Module,
		lock.Module,

		migration.Module,
		server.Module,
		scheduler.Module,
	)
	app.Run()
}

func newSnowflakeNode() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}

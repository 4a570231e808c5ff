//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"tweeter/config"
	"tweeter/dao"
	"tweeter/handler"
	"tweeter/pkg/database"
	"tweeter/server"
	"tweeter/service"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		server.NewGinEngine,

		wire.Struct(new(handler.Tweet), "*"),
		wire.Struct(new(handler.Media), "*"),
		wire.Struct(new(handler.Like), "*"),
		wire.Struct(new(handler.User), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,

		service.ProviderSet,
		database.NewDB,
	)
	return nil
}

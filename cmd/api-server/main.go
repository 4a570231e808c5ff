package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"tweeter/config"
	"tweeter/models"
	"tweeter/pkg/log"
	"tweeter/pkg/snowflake"
	"tweeter/server"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)
	cfg := config.New(path)
	appProvider := InitServer(cfg)
	cliApp := &cli.App{
		Name: "api-server",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					return server.Run(ctx, appProvider)
				},
			},
			{
				Name:  "migrate",
				Usage: "create database tables",
				Action: func(ctx *cli.Context) error {
					return migrate(appProvider)
				},
			},
			{
				Name:  "seed",
				Usage: "create demo users",
				Action: func(ctx *cli.Context) error {
					return seed(appProvider)
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to start server", zap.Error(err))
	}
}

func migrate(app *server.AppProvider) error {
	return app.DB.AutoMigrate(
		&models.User{},
		&models.Tweet{},
		&models.Media{},
		&models.Like{},
		&models.Follow{},
	)
}

// seed 创建演示用户，重复执行不产生重复记录
func seed(app *server.AppProvider) error {
	demo := []models.User{
		{ID: snowflake.GenID(), Name: "hello", ApiKey: "test"},
		{ID: snowflake.GenID(), Name: "world", ApiKey: "test2"},
	}
	for i := range demo {
		u := demo[i]
		if err := app.DB.Where("api_key = ?", u.ApiKey).FirstOrCreate(&u).Error; err != nil {
			return err
		}
		log.L.Info("seed user", zap.Int64("id", u.ID), zap.String("name", u.Name))
	}
	return nil
}

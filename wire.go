//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/unicsmcr/activity_board/config"
	"github.com/unicsmcr/activity_board/environment"
	"github.com/unicsmcr/activity_board/routers"
	"github.com/unicsmcr/activity_board/routers/frontend"
	"github.com/unicsmcr/activity_board/services/backend"
	"github.com/unicsmcr/activity_board/utils"
)

func InitializeServer() (Server, error) {
	wire.Build(
		NewServer,
		routers.NewMainRouter,
		frontend.NewRouter,
		backend.NewActivityService,
		utils.NewRESTClient,
		utils.NewTimeProvider,
		environment.NewEnv,
		utils.NewLogger,
		config.NewAppConfig,
	)
	return Server{}, nil
}

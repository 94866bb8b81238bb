package main

import (
	"github.com/gin-gonic/gin"
	"github.com/unicsmcr/activity_board/environment"
	"github.com/unicsmcr/activity_board/routers"
)

const (
	defaultPort  = "8080"
	templateGlob = "templates/*/*.gohtml"
)

type Server struct {
	*gin.Engine
	Port string
}

func NewServer(mainRouter routers.MainRouter, env *environment.Env) Server {
	server := gin.Default()
	server.LoadHTMLGlob(templateGlob)

	mainRouter.RegisterRoutes(server.Group("/"))

	port := env.Get(environment.Port)
	if len(port) == 0 {
		port = defaultPort
	}

	return Server{
		Engine: server,
		Port:   port,
	}
}

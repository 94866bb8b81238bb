package routers

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/unicsmcr/activity_board/routers/api/models"
	"github.com/unicsmcr/activity_board/routers/frontend"
	"go.uber.org/zap"
)

// MainRouter is the router for the whole app
type MainRouter struct {
	models.BaseRouter
	logger         *zap.Logger
	frontendRouter frontend.Router
}

// NewMainRouter creates a new MainRouter
func NewMainRouter(logger *zap.Logger, frontendRouter frontend.Router) MainRouter {
	return MainRouter{
		logger:         logger,
		frontendRouter: frontendRouter,
	}
}

// RegisterRoutes registers all of the app's routes to the given router group
func (r *MainRouter) RegisterRoutes(routerGroup *gin.RouterGroup) {
	routerGroup.GET("heartbeat", r.Heartbeat)
	routerGroup.GET("metrics", gin.WrapH(promhttp.Handler()))

	r.frontendRouter.RegisterRoutes(routerGroup)
}

package frontend

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/unicsmcr/activity_board/board"
	"github.com/unicsmcr/activity_board/config"
	"github.com/unicsmcr/activity_board/routers/api/models"
	"github.com/unicsmcr/activity_board/services"
	"github.com/unicsmcr/activity_board/utils"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=../../mocks/routers/frontend/mock_router.go -package=mock_frontend github.com/unicsmcr/activity_board/routers/frontend Router

const (
	boardTemplate          = "board.gohtml"
	confirmRemovalTemplate = "confirmRemoval.gohtml"

	boardPath = "/"
)

// Router serves the activity board page and turns its requests into board events
type Router interface {
	models.Router
	BoardPage(*gin.Context)
	SignUp(*gin.Context)
	RemoveParticipant(*gin.Context)
	Events(*gin.Context)
}

type templateDataModel struct {
	Cfg  *config.AppConfig
	Err  string
	Data interface{}
}

type frontendRouter struct {
	models.BaseRouter
	logger   *zap.Logger
	cfg      *config.AppConfig
	sessions *sessionStore
}

func NewRouter(logger *zap.Logger, cfg *config.AppConfig, activityService services.ActivityService, timeProvider utils.TimeProvider) Router {
	return &frontendRouter{
		logger: logger,
		cfg:    cfg,
		sessions: newSessionStore(cfg.Sessions.IdleTimeout, timeProvider, func() *session {
			controller := board.NewController(logger, cfg, activityService, timeProvider)
			return &session{
				controller: controller,
				dispatcher: board.NewDispatcher(logger, controller),
			}
		}),
	}
}

func (r *frontendRouter) RegisterRoutes(routerGroup *gin.RouterGroup) {
	routerGroup.GET("", r.BoardPage)
	routerGroup.POST("signup", r.SignUp)
	routerGroup.POST(strings.TrimPrefix(board.RemovalActionPath, "/"), r.RemoveParticipant)
	routerGroup.GET("events", r.Events)
}

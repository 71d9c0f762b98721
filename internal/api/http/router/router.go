package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/doctorshouse/backend/config"
	"github.com/doctorshouse/backend/internal/api/http/handler"
	"github.com/doctorshouse/backend/internal/api/http/middleware"
	"github.com/doctorshouse/backend/internal/service/appointment"
	"github.com/doctorshouse/backend/internal/service/doctor"
	"github.com/doctorshouse/backend/internal/service/review"
	"github.com/doctorshouse/backend/internal/service/user"
	"github.com/doctorshouse/backend/internal/store"
	"github.com/doctorshouse/backend/pkg/token"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg            *config.Config
	Store          *store.Manager
	UserSvc        user.Service
	DoctorSvc      doctor.Service
	ReviewSvc      review.Service
	AppointmentSvc appointment.Service
	TokenMgr       *token.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	tokenRequired := middleware.TokenRequired(r.p.TokenMgr)
	adminRequired := middleware.AdminRequired(r.p.UserSvc)

	// 3. Initialize Handlers
	authH := handler.NewAuthHandler(r.p.TokenMgr)
	userH := handler.NewUserHandler(r.p.UserSvc)
	doctorH := handler.NewDoctorHandler(r.p.DoctorSvc)
	reviewH := handler.NewReviewHandler(r.p.ReviewSvc)
	appointmentH := handler.NewAppointmentHandler(r.p.AppointmentSvc)

	// 4. Delegate to sub-files. Paths are served at the root; the upstream
	// clients were built against unprefixed routes.
	r.registerAuthRoutes(app, authH)
	r.registerUserRoutes(app, userH, tokenRequired, adminRequired)
	r.registerDoctorRoutes(app, doctorH, tokenRequired, adminRequired)
	r.registerReviewRoutes(app, reviewH, tokenRequired)
	r.registerAppointmentRoutes(app, appointmentH)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get("/", func(c fiber.Ctx) error {
		return c.SendString("Doctors House server is running")
	})

	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return r.p.Store.Ping(c.Context()) == nil },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}

package app

import (
	"go.uber.org/fx"

	"github.com/doctorshouse/backend/config"
	"github.com/doctorshouse/backend/internal/service/appointment"
	"github.com/doctorshouse/backend/internal/service/doctor"
	"github.com/doctorshouse/backend/internal/service/review"
	"github.com/doctorshouse/backend/internal/service/user"
	"github.com/doctorshouse/backend/internal/store"
	"github.com/doctorshouse/backend/pkg/email"
	"github.com/doctorshouse/backend/pkg/token"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideUserService,
		ProvideDoctorService,
		ProvideReviewService,
		ProvideAppointmentService,
		ProvideTokenManager,
	),
)

func ProvideUserService(mgr *store.Manager) user.Service {
	return user.New(mgr.Users())
}

func ProvideDoctorService(mgr *store.Manager) doctor.Service {
	return doctor.New(mgr.Doctors())
}

func ProvideReviewService(mgr *store.Manager) review.Service {
	return review.New(mgr.Reviews())
}

func ProvideAppointmentService(mgr *store.Manager, mailer *email.Client, cfg *config.Config) appointment.Service {
	return appointment.New(mgr.Appointments(), mailer, cfg.Email.AppName)
}

func ProvideTokenManager(cfg *config.Config) (*token.Manager, error) {
	return token.NewManagerFromConfig(cfg)
}

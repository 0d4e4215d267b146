package app

import (
	"gorm.io/gorm"

	httpH "github.com/yungbote/companyinfo-backend/internal/http/handlers"
	"github.com/yungbote/companyinfo-backend/internal/platform/logger"
	"github.com/yungbote/companyinfo-backend/internal/platform/throttle"
)

type Handlers struct {
	Health  *httpH.HealthHandler
	Auth    *httpH.AuthHandler
	Company *httpH.CompanyHandler
	Country *httpH.CountryHandler
	Contact *httpH.ContactHandler
}

func wireHandlers(db *gorm.DB, log *logger.Logger, svcs Services, attempts throttle.Limiter) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:  httpH.NewHealthHandler(db),
		Auth:    httpH.NewAuthHandler(log, svcs.Auth, attempts),
		Company: httpH.NewCompanyHandler(log, svcs.Company),
		Country: httpH.NewCountryHandler(log, svcs.Country),
		Contact: httpH.NewContactHandler(log, svcs.Contact),
	}
}

func wireLoginThrottle(log *logger.Logger, cfg Config) (throttle.Limiter, error) {
	if cfg.LoginMaxAttempts <= 0 {
		return nil, nil
	}
	if cfg.RedisAddr == "" {
		return throttle.NewMemory(cfg.LoginMaxAttempts, cfg.LoginWindow), nil
	}
	return throttle.NewRedis(log, cfg.RedisAddr, cfg.LoginMaxAttempts, cfg.LoginWindow)
}

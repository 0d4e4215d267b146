package app

import (
	apphttp "github.com/yungbote/companyinfo-backend/internal/http"
	"github.com/yungbote/companyinfo-backend/internal/observability"
	"github.com/yungbote/companyinfo-backend/internal/platform/logger"
)

func wireServer(log *logger.Logger, cfg Config, h Handlers, mw Middleware, metrics *observability.Metrics) *apphttp.Server {
	return apphttp.NewServer(apphttp.RouterConfig{
		Log:            log,
		ServiceName:    cfg.Otel.ServiceName,
		CORSOrigins:    cfg.CORSOrigins,
		Metrics:        metrics,
		AuthHandler:    h.Auth,
		AuthMiddleware: mw.Auth,
		CompanyHandler: h.Company,
		CountryHandler: h.Country,
		ContactHandler: h.Contact,
		HealthHandler:  h.Health,
	})
}

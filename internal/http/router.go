package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/companyinfo-backend/internal/http/handlers"
	httpMW "github.com/yungbote/companyinfo-backend/internal/http/middleware"
	"github.com/yungbote/companyinfo-backend/internal/observability"
	"github.com/yungbote/companyinfo-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	ServiceName string
	CORSOrigins []string
	Metrics     *observability.Metrics

	AuthHandler    *httpH.AuthHandler
	AuthMiddleware *httpMW.AuthMiddleware
	CompanyHandler *httpH.CompanyHandler
	CountryHandler *httpH.CountryHandler
	ContactHandler *httpH.ContactHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "companyinfo"
	}
	r := gin.New()
	r.Use(httpMW.Recovery(cfg.Log))
	r.Use(otelgin.Middleware(serviceName))
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	// Auth (public)
	if cfg.AuthHandler != nil {
		r.POST("/login", cfg.AuthHandler.Login)
	}

	protected := r.Group("/")
	if cfg.AuthMiddleware != nil {
		protected.Use(cfg.AuthMiddleware.RequireAuth())
	}

	// Companies
	if cfg.CompanyHandler != nil {
		protected.GET("/companies", cfg.CompanyHandler.List)
		protected.POST("/companies", cfg.CompanyHandler.Create)
		protected.GET("/companies/:id", cfg.CompanyHandler.Get)
		protected.PUT("/companies/:id", cfg.CompanyHandler.Update)
		protected.DELETE("/companies/:id", cfg.CompanyHandler.Delete)
	}

	// Countries
	if cfg.CountryHandler != nil {
		protected.GET("/countries", cfg.CountryHandler.List)
		protected.POST("/countries", cfg.CountryHandler.Create)
		protected.GET("/countries/:id", cfg.CountryHandler.Get)
		protected.PUT("/countries/:id", cfg.CountryHandler.Update)
		protected.DELETE("/countries/:id", cfg.CountryHandler.Delete)
		protected.GET("/countries/:id/company-statistics", cfg.CountryHandler.CompanyStatistics)
	}

	// Contacts
	if cfg.ContactHandler != nil {
		protected.GET("/contacts", cfg.ContactHandler.List)
		protected.POST("/contacts", cfg.ContactHandler.Create)
		protected.GET("/contacts/contacts-with-company-and-country", cfg.ContactHandler.ListWithRelations)
		protected.GET("/contacts/:id", cfg.ContactHandler.Get)
		protected.PUT("/contacts/:id", cfg.ContactHandler.Update)
		protected.DELETE("/contacts/:id", cfg.ContactHandler.Delete)
		// :id is the country id here; gin needs one wildcard name per segment.
		protected.GET("/contacts/:id/:companyId/filter-contacts", cfg.ContactHandler.Filter)
	}

	return r
}

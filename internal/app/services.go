package app

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/companyinfo-backend/internal/data/repos"
	"github.com/yungbote/companyinfo-backend/internal/platform/logger"
	"github.com/yungbote/companyinfo-backend/internal/services"
)

type Services struct {
	Auth    services.AuthService
	Company services.CompanyService
	Country services.CountryService
	Contact services.ContactService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, rs repos.Set) (Services, error) {
	log.Info("Wiring services...")
	auth, err := services.NewAuthService(log, cfg.Auth)
	if err != nil {
		return Services{}, fmt.Errorf("init auth service: %w", err)
	}
	return Services{
		Auth:    auth,
		Company: services.NewCompanyService(db, log, rs.Company),
		Country: services.NewCountryService(db, log, rs.Country, rs.Contact),
		Contact: services.NewContactService(db, log, rs.Contact),
	}, nil
}

package repos

import (
	"github.com/yungbote/companyinfo-backend/internal/data/repos/directory"
	"github.com/yungbote/companyinfo-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type CompanyRepo = directory.CompanyRepo
type CountryRepo = directory.CountryRepo
type ContactRepo = directory.ContactRepo

// Set is every repo the service layer needs, built over one handle.
type Set struct {
	Company CompanyRepo
	Country CountryRepo
	Contact ContactRepo
}

func NewSet(db *gorm.DB, log *logger.Logger) Set {
	return Set{
		Company: directory.NewCompanyRepo(db, log),
		Country: directory.NewCountryRepo(db, log),
		Contact: directory.NewContactRepo(db, log),
	}
}

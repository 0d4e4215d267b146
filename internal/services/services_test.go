package services

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/yungbote/companyinfo-backend/internal/data/repos"
	"github.com/yungbote/companyinfo-backend/internal/data/repos/testutil"
)

type testServices struct {
	db      *gorm.DB
	repos   repos.Set
	Company CompanyService
	Country CountryService
	Contact ContactService
}

func newTestServices(t *testing.T) testServices {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	rs := repos.NewSet(db, log)
	return testServices{
		db:      db,
		repos:   rs,
		Company: NewCompanyService(db, log, rs.Company),
		Country: NewCountryService(db, log, rs.Country, rs.Contact),
		Contact: NewContactService(db, log, rs.Contact),
	}
}

// closeDB makes every later store call fail.
func closeDB(t *testing.T, db *gorm.DB) {
	t.Helper()
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

var bg = context.Background()

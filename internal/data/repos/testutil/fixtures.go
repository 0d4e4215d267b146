package testutil

import (
	"context"
	"testing"

	"gorm.io/gorm"

	types "github.com/yungbote/companyinfo-backend/internal/domain"
)

func SeedCompany(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Company {
	tb.Helper()
	c := &types.Company{Name: name}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed company: %v", err)
	}
	return c
}

func SeedCountry(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Country {
	tb.Helper()
	c := &types.Country{Name: name}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed country: %v", err)
	}
	return c
}

func SeedContact(tb testing.TB, ctx context.Context, tx *gorm.DB, name string, companyID, countryID int) *types.Contact {
	tb.Helper()
	c := &types.Contact{Name: name, CompanyID: companyID, CountryID: countryID}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed contact: %v", err)
	}
	return c
}

func CountRows(tb testing.TB, tx *gorm.DB, model interface{}) int64 {
	tb.Helper()
	var n int64
	if err := tx.Model(model).Count(&n).Error; err != nil {
		tb.Fatalf("count rows: %v", err)
	}
	return n
}

package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/companyinfo-backend/internal/data/repos"
	types "github.com/yungbote/companyinfo-backend/internal/domain"
	"github.com/yungbote/companyinfo-backend/internal/platform/logger"
)

type CountryService interface {
	List(ctx context.Context) ([]*types.Country, error)
	// GetByID returns nil, nil when no country has that id.
	GetByID(ctx context.Context, id int) (*types.Country, error)
	Create(ctx context.Context, country *types.Country) (*types.Country, error)
	Update(ctx context.Context, country *types.Country) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
	// CompanyStatistics maps company name to the number of that company's
	// contacts located in the country. Companies without contacts there are
	// absent; distinct companies sharing a name are counted together.
	CompanyStatistics(ctx context.Context, countryID int) (map[string]int, error)
}

type countryService struct {
	db          *gorm.DB
	log         *logger.Logger
	countryRepo repos.CountryRepo
	contactRepo repos.ContactRepo
}

func NewCountryService(db *gorm.DB, log *logger.Logger, countryRepo repos.CountryRepo, contactRepo repos.ContactRepo) CountryService {
	serviceLog := log.With("service", "CountryService")
	return &countryService{
		db:          db,
		log:         serviceLog,
		countryRepo: countryRepo,
		contactRepo: contactRepo,
	}
}

func (cs *countryService) List(ctx context.Context) ([]*types.Country, error) {
	countries, err := cs.countryRepo.GetAll(ctx, nil)
	if err != nil {
		cs.log.Error("Error fetching all countries", errFields(err)...)
		return nil, fmt.Errorf("list countries: %w", err)
	}
	return countries, nil
}

func (cs *countryService) GetByID(ctx context.Context, id int) (*types.Country, error) {
	rows, err := cs.countryRepo.GetByIDs(ctx, nil, []int{id})
	if err != nil {
		cs.log.Error("Error fetching country", errFields(err, "country_id", id)...)
		return nil, fmt.Errorf("get country %d: %w", id, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (cs *countryService) Create(ctx context.Context, country *types.Country) (*types.Country, error) {
	if country == nil {
		return nil, fmt.Errorf("create country: nil country")
	}
	row := &types.Country{Name: country.Name}
	if _, err := cs.countryRepo.Create(ctx, nil, []*types.Country{row}); err != nil {
		cs.log.Error("Error creating country", errFields(err, "country_name", country.Name)...)
		return nil, fmt.Errorf("create country: %w", err)
	}
	cs.log.Info("Country created", "country_id", row.ID, "country_name", row.Name)
	return row, nil
}

func (cs *countryService) Update(ctx context.Context, country *types.Country) (bool, error) {
	if country == nil {
		return false, fmt.Errorf("update country: nil country")
	}
	n, err := cs.countryRepo.UpdateByID(ctx, nil, country)
	if err != nil {
		cs.log.Error("Error updating country", errFields(err, "country_id", country.ID, "country_name", country.Name)...)
		return false, fmt.Errorf("update country %d: %w", country.ID, err)
	}
	if n == 0 {
		cs.log.Warn("Country not found for update", "country_id", country.ID)
		return false, nil
	}
	cs.log.Info("Country updated", "country_id", country.ID, "country_name", country.Name)
	return true, nil
}

func (cs *countryService) Delete(ctx context.Context, id int) (bool, error) {
	var deleted *types.Country
	err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rows, err := cs.countryRepo.GetByIDs(ctx, tx, []int{id})
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		n, err := cs.countryRepo.DeleteByIDs(ctx, tx, []int{id})
		if err != nil {
			return err
		}
		if n > 0 {
			deleted = rows[0]
		}
		return nil
	})
	if err != nil {
		cs.log.Error("Error deleting country", errFields(err, "country_id", id)...)
		return false, fmt.Errorf("delete country %d: %w", id, err)
	}
	if deleted == nil {
		cs.log.Warn("Country not found for delete", "country_id", id)
		return false, nil
	}
	cs.log.Info("Country deleted", "country_id", id, "country_name", deleted.Name)
	return true, nil
}

func (cs *countryService) CompanyStatistics(ctx context.Context, countryID int) (map[string]int, error) {
	rows, err := cs.contactRepo.CountByCompanyName(ctx, nil, countryID)
	if err != nil {
		cs.log.Error("Error fetching company statistics", errFields(err, "country_id", countryID)...)
		return nil, fmt.Errorf("company statistics for country %d: %w", countryID, err)
	}
	stats := make(map[string]int, len(rows))
	for _, r := range rows {
		if r == nil || r.ContactCount <= 0 {
			continue
		}
		stats[r.CompanyName] += r.ContactCount
	}
	if len(stats) == 0 {
		cs.log.Warn("No companies found for country", "country_id", countryID)
	} else {
		cs.log.Info("Fetched company statistics", "country_id", countryID, "companies", len(stats))
	}
	return stats, nil
}

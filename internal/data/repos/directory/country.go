package directory

import (
	"context"

	"gorm.io/gorm"

	types "github.com/yungbote/companyinfo-backend/internal/domain"
	"github.com/yungbote/companyinfo-backend/internal/platform/logger"
)

type CountryRepo interface {
	Create(ctx context.Context, tx *gorm.DB, countries []*types.Country) ([]*types.Country, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Country, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, countryIDs []int) ([]*types.Country, error)
	UpdateByID(ctx context.Context, tx *gorm.DB, country *types.Country) (int64, error)
	DeleteByIDs(ctx context.Context, tx *gorm.DB, countryIDs []int) (int64, error)
}

type countryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCountryRepo(db *gorm.DB, baseLog *logger.Logger) CountryRepo {
	repoLog := baseLog.With("repo", "CountryRepo")
	return &countryRepo{db: db, log: repoLog}
}

func (r *countryRepo) Create(ctx context.Context, tx *gorm.DB, countries []*types.Country) ([]*types.Country, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(countries) == 0 {
		return []*types.Country{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&countries).Error; err != nil {
		return nil, err
	}
	return countries, nil
}

func (r *countryRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Country, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	results := []*types.Country{}
	if err := transaction.WithContext(ctx).
		Order("id").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *countryRepo) GetByIDs(ctx context.Context, tx *gorm.DB, countryIDs []int) ([]*types.Country, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Country
	if len(countryIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", countryIDs).
		Order("id").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// UpdateByID overwrites every mutable column of the row with country.ID and
// returns how many rows matched.
func (r *countryRepo) UpdateByID(ctx context.Context, tx *gorm.DB, country *types.Country) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if country == nil {
		return 0, nil
	}

	res := transaction.WithContext(ctx).
		Model(&types.Country{}).
		Where("id = ?", country.ID).
		Updates(map[string]interface{}{"name": country.Name})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *countryRepo) DeleteByIDs(ctx context.Context, tx *gorm.DB, countryIDs []int) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(countryIDs) == 0 {
		return 0, nil
	}

	res := transaction.WithContext(ctx).
		Where("id IN ?", countryIDs).
		Delete(&types.Country{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

package directory

import (
	"context"

	"gorm.io/gorm"

	types "github.com/yungbote/companyinfo-backend/internal/domain"
	"github.com/yungbote/companyinfo-backend/internal/platform/logger"
)

type CompanyRepo interface {
	Create(ctx context.Context, tx *gorm.DB, companies []*types.Company) ([]*types.Company, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Company, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, companyIDs []int) ([]*types.Company, error)
	UpdateByID(ctx context.Context, tx *gorm.DB, company *types.Company) (int64, error)
	DeleteByIDs(ctx context.Context, tx *gorm.DB, companyIDs []int) (int64, error)
}

type companyRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCompanyRepo(db *gorm.DB, baseLog *logger.Logger) CompanyRepo {
	repoLog := baseLog.With("repo", "CompanyRepo")
	return &companyRepo{db: db, log: repoLog}
}

func (r *companyRepo) Create(ctx context.Context, tx *gorm.DB, companies []*types.Company) ([]*types.Company, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(companies) == 0 {
		return []*types.Company{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

func (r *companyRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Company, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	results := []*types.Company{}
	if err := transaction.WithContext(ctx).
		Order("id").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *companyRepo) GetByIDs(ctx context.Context, tx *gorm.DB, companyIDs []int) ([]*types.Company, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Company
	if len(companyIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", companyIDs).
		Order("id").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// UpdateByID overwrites every mutable column of the row with company.ID and
// returns how many rows matched.
func (r *companyRepo) UpdateByID(ctx context.Context, tx *gorm.DB, company *types.Company) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if company == nil {
		return 0, nil
	}

	res := transaction.WithContext(ctx).
		Model(&types.Company{}).
		Where("id = ?", company.ID).
		Updates(map[string]interface{}{"name": company.Name})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *companyRepo) DeleteByIDs(ctx context.Context, tx *gorm.DB, companyIDs []int) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(companyIDs) == 0 {
		return 0, nil
	}

	res := transaction.WithContext(ctx).
		Where("id IN ?", companyIDs).
		Delete(&types.Company{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

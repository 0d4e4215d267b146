package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/companyinfo-backend/internal/data/repos"
	types "github.com/yungbote/companyinfo-backend/internal/domain"
	"github.com/yungbote/companyinfo-backend/internal/platform/logger"
)

type CompanyService interface {
	List(ctx context.Context) ([]*types.Company, error)
	// GetByID returns nil, nil when no company has that id.
	GetByID(ctx context.Context, id int) (*types.Company, error)
	Create(ctx context.Context, company *types.Company) (*types.Company, error)
	Update(ctx context.Context, company *types.Company) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type companyService struct {
	db          *gorm.DB
	log         *logger.Logger
	companyRepo repos.CompanyRepo
}

func NewCompanyService(db *gorm.DB, log *logger.Logger, companyRepo repos.CompanyRepo) CompanyService {
	serviceLog := log.With("service", "CompanyService")
	return &companyService{
		db:          db,
		log:         serviceLog,
		companyRepo: companyRepo,
	}
}

func (cs *companyService) List(ctx context.Context) ([]*types.Company, error) {
	companies, err := cs.companyRepo.GetAll(ctx, nil)
	if err != nil {
		cs.log.Error("Error fetching all companies", errFields(err)...)
		return nil, fmt.Errorf("list companies: %w", err)
	}
	return companies, nil
}

func (cs *companyService) GetByID(ctx context.Context, id int) (*types.Company, error) {
	rows, err := cs.companyRepo.GetByIDs(ctx, nil, []int{id})
	if err != nil {
		cs.log.Error("Error fetching company", errFields(err, "company_id", id)...)
		return nil, fmt.Errorf("get company %d: %w", id, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// Create always lets the store assign the id.
func (cs *companyService) Create(ctx context.Context, company *types.Company) (*types.Company, error) {
	if company == nil {
		return nil, fmt.Errorf("create company: nil company")
	}
	row := &types.Company{Name: company.Name}
	if _, err := cs.companyRepo.Create(ctx, nil, []*types.Company{row}); err != nil {
		cs.log.Error("Error creating company", errFields(err, "company_name", company.Name)...)
		return nil, fmt.Errorf("create company: %w", err)
	}
	cs.log.Info("Company created", "company_id", row.ID, "company_name", row.Name)
	return row, nil
}

func (cs *companyService) Update(ctx context.Context, company *types.Company) (bool, error) {
	if company == nil {
		return false, fmt.Errorf("update company: nil company")
	}
	n, err := cs.companyRepo.UpdateByID(ctx, nil, company)
	if err != nil {
		cs.log.Error("Error updating company", errFields(err, "company_id", company.ID, "company_name", company.Name)...)
		return false, fmt.Errorf("update company %d: %w", company.ID, err)
	}
	if n == 0 {
		cs.log.Warn("Company not found for update", "company_id", company.ID)
		return false, nil
	}
	cs.log.Info("Company updated", "company_id", company.ID, "company_name", company.Name)
	return true, nil
}

// Delete removes the company; its contacts go with it through the foreign key.
func (cs *companyService) Delete(ctx context.Context, id int) (bool, error) {
	var deleted *types.Company
	err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rows, err := cs.companyRepo.GetByIDs(ctx, tx, []int{id})
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		n, err := cs.companyRepo.DeleteByIDs(ctx, tx, []int{id})
		if err != nil {
			return err
		}
		if n > 0 {
			deleted = rows[0]
		}
		return nil
	})
	if err != nil {
		cs.log.Error("Error deleting company", errFields(err, "company_id", id)...)
		return false, fmt.Errorf("delete company %d: %w", id, err)
	}
	if deleted == nil {
		cs.log.Warn("Company not found for delete", "company_id", id)
		return false, nil
	}
	cs.log.Info("Company deleted", "company_id", id, "company_name", deleted.Name)
	return true, nil
}

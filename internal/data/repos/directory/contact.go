package directory

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/companyinfo-backend/internal/domain"
	"github.com/yungbote/companyinfo-backend/internal/platform/logger"
)

type ContactRepo interface {
	Create(ctx context.Context, tx *gorm.DB, contacts []*types.Contact) ([]*types.Contact, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Contact, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, contactIDs []int) ([]*types.Contact, error)
	GetAllWithRelations(ctx context.Context, tx *gorm.DB) ([]*types.Contact, error)
	GetByCountryAndCompany(ctx context.Context, tx *gorm.DB, countryID, companyID int) ([]*types.Contact, error)
	CountByCompanyName(ctx context.Context, tx *gorm.DB, countryID int) ([]*types.CompanyContactCount, error)
	UpdateByID(ctx context.Context, tx *gorm.DB, contact *types.Contact) (int64, error)
	DeleteByIDs(ctx context.Context, tx *gorm.DB, contactIDs []int) (int64, error)
}

type contactRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewContactRepo(db *gorm.DB, baseLog *logger.Logger) ContactRepo {
	repoLog := baseLog.With("repo", "ContactRepo")
	return &contactRepo{db: db, log: repoLog}
}

// Create never writes through to the inlined Company/Country; the references
// are the foreign key columns only.
func (r *contactRepo) Create(ctx context.Context, tx *gorm.DB, contacts []*types.Contact) ([]*types.Contact, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(contacts) == 0 {
		return []*types.Contact{}, nil
	}

	if err := transaction.WithContext(ctx).
		Omit(clause.Associations).
		Create(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *contactRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Contact, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	results := []*types.Contact{}
	if err := transaction.WithContext(ctx).
		Order("id").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *contactRepo) GetByIDs(ctx context.Context, tx *gorm.DB, contactIDs []int) ([]*types.Contact, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Contact
	if len(contactIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", contactIDs).
		Order("id").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// GetAllWithRelations loads every contact with its company and country in a
// single joined query.
func (r *contactRepo) GetAllWithRelations(ctx context.Context, tx *gorm.DB) ([]*types.Contact, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	results := []*types.Contact{}
	if err := transaction.WithContext(ctx).
		Joins("Company").
		Joins("Country").
		Order("contact.id").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *contactRepo) GetByCountryAndCompany(ctx context.Context, tx *gorm.DB, countryID, companyID int) ([]*types.Contact, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	results := []*types.Contact{}
	if err := transaction.WithContext(ctx).
		Joins("Company").
		Joins("Country").
		Where("contact.country_id = ? AND contact.company_id = ?", countryID, companyID).
		Order("contact.id").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// CountByCompanyName groups the contacts of one country by the display name of
// their company. Companies that share a name share a row.
func (r *contactRepo) CountByCompanyName(ctx context.Context, tx *gorm.DB, countryID int) ([]*types.CompanyContactCount, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	results := []*types.CompanyContactCount{}
	if err := transaction.WithContext(ctx).
		Table("contact").
		Select("company.name AS company_name, COUNT(contact.id) AS contact_count").
		Joins("JOIN company ON company.id = contact.company_id").
		Where("contact.country_id = ?", countryID).
		Group("company.name").
		Order("company.name").
		Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *contactRepo) UpdateByID(ctx context.Context, tx *gorm.DB, contact *types.Contact) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if contact == nil {
		return 0, nil
	}

	res := transaction.WithContext(ctx).
		Model(&types.Contact{}).
		Where("id = ?", contact.ID).
		Updates(map[string]interface{}{
			"name":       contact.Name,
			"company_id": contact.CompanyID,
			"country_id": contact.CountryID,
		})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *contactRepo) DeleteByIDs(ctx context.Context, tx *gorm.DB, contactIDs []int) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(contactIDs) == 0 {
		return 0, nil
	}

	res := transaction.WithContext(ctx).
		Where("id IN ?", contactIDs).
		Delete(&types.Contact{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

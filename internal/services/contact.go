package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/companyinfo-backend/internal/data/repos"
	types "github.com/yungbote/companyinfo-backend/internal/domain"
	"github.com/yungbote/companyinfo-backend/internal/platform/logger"
)

type ContactService interface {
	List(ctx context.Context) ([]*types.Contact, error)
	// GetByID returns nil, nil when no contact has that id.
	GetByID(ctx context.Context, id int) (*types.Contact, error)
	Create(ctx context.Context, contact *types.Contact) (*types.Contact, error)
	Update(ctx context.Context, contact *types.Contact) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
	ListWithRelations(ctx context.Context) ([]*types.Contact, error)
	// Filter returns the contacts in countryID that also work for companyID.
	Filter(ctx context.Context, countryID, companyID int) ([]*types.Contact, error)
}

type contactService struct {
	db          *gorm.DB
	log         *logger.Logger
	contactRepo repos.ContactRepo
}

func NewContactService(db *gorm.DB, log *logger.Logger, contactRepo repos.ContactRepo) ContactService {
	serviceLog := log.With("service", "ContactService")
	return &contactService{
		db:          db,
		log:         serviceLog,
		contactRepo: contactRepo,
	}
}

func (cs *contactService) List(ctx context.Context) ([]*types.Contact, error) {
	contacts, err := cs.contactRepo.GetAll(ctx, nil)
	if err != nil {
		cs.log.Error("Error fetching all contacts", errFields(err)...)
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}

func (cs *contactService) GetByID(ctx context.Context, id int) (*types.Contact, error) {
	rows, err := cs.contactRepo.GetByIDs(ctx, nil, []int{id})
	if err != nil {
		cs.log.Error("Error fetching contact", errFields(err, "contact_id", id)...)
		return nil, fmt.Errorf("get contact %d: %w", id, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (cs *contactService) Create(ctx context.Context, contact *types.Contact) (*types.Contact, error) {
	if contact == nil {
		return nil, fmt.Errorf("create contact: nil contact")
	}
	row := &types.Contact{
		Name:      contact.Name,
		CompanyID: contact.CompanyID,
		CountryID: contact.CountryID,
	}
	if _, err := cs.contactRepo.Create(ctx, nil, []*types.Contact{row}); err != nil {
		cs.log.Error("Error creating contact", errFields(err,
			"contact_name", contact.Name,
			"company_id", contact.CompanyID,
			"country_id", contact.CountryID,
		)...)
		return nil, fmt.Errorf("create contact: %w", err)
	}
	cs.log.Info("Contact created", "contact_id", row.ID, "contact_name", row.Name)
	return row, nil
}

func (cs *contactService) Update(ctx context.Context, contact *types.Contact) (bool, error) {
	if contact == nil {
		return false, fmt.Errorf("update contact: nil contact")
	}
	n, err := cs.contactRepo.UpdateByID(ctx, nil, contact)
	if err != nil {
		cs.log.Error("Error updating contact", errFields(err,
			"contact_id", contact.ID,
			"company_id", contact.CompanyID,
			"country_id", contact.CountryID,
		)...)
		return false, fmt.Errorf("update contact %d: %w", contact.ID, err)
	}
	if n == 0 {
		cs.log.Warn("Contact not found for update", "contact_id", contact.ID)
		return false, nil
	}
	cs.log.Info("Contact updated", "contact_id", contact.ID, "contact_name", contact.Name)
	return true, nil
}

func (cs *contactService) Delete(ctx context.Context, id int) (bool, error) {
	var deleted *types.Contact
	err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rows, err := cs.contactRepo.GetByIDs(ctx, tx, []int{id})
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		n, err := cs.contactRepo.DeleteByIDs(ctx, tx, []int{id})
		if err != nil {
			return err
		}
		if n > 0 {
			deleted = rows[0]
		}
		return nil
	})
	if err != nil {
		cs.log.Error("Error deleting contact", errFields(err, "contact_id", id)...)
		return false, fmt.Errorf("delete contact %d: %w", id, err)
	}
	if deleted == nil {
		cs.log.Warn("Contact not found for delete", "contact_id", id)
		return false, nil
	}
	cs.log.Info("Contact deleted", "contact_id", id, "contact_name", deleted.Name)
	return true, nil
}

func (cs *contactService) ListWithRelations(ctx context.Context) ([]*types.Contact, error) {
	contacts, err := cs.contactRepo.GetAllWithRelations(ctx, nil)
	if err != nil {
		cs.log.Error("Error fetching contacts with company and country", errFields(err)...)
		return nil, fmt.Errorf("list contacts with relations: %w", err)
	}
	return contacts, nil
}

func (cs *contactService) Filter(ctx context.Context, countryID, companyID int) ([]*types.Contact, error) {
	contacts, err := cs.contactRepo.GetByCountryAndCompany(ctx, nil, countryID, companyID)
	if err != nil {
		cs.log.Error("Error filtering contacts", errFields(err, "country_id", countryID, "company_id", companyID)...)
		return nil, fmt.Errorf("filter contacts by country %d and company %d: %w", countryID, companyID, err)
	}
	return contacts, nil
}

package db

import (
	"context"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	types "github.com/yungbote/companyinfo-backend/internal/domain"
	"github.com/yungbote/companyinfo-backend/internal/platform/logger"
)

//go:embed seed.yaml
var defaultSeed []byte

type SeedDocument struct {
	Name      string        `yaml:"name"`
	Countries []seedNamed   `yaml:"countries"`
	Companies []seedNamed   `yaml:"companies"`
	Contacts  []seedContact `yaml:"contacts"`
}

type seedNamed struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
}

type seedContact struct {
	ID        int    `yaml:"id"`
	Name      string `yaml:"name"`
	CompanyID int    `yaml:"company_id"`
	CountryID int    `yaml:"country_id"`
}

// ParseSeed decodes a seed document. A document without a name cannot be
// tracked and is rejected.
func ParseSeed(raw []byte) (*SeedDocument, error) {
	var doc SeedDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	doc.Name = strings.TrimSpace(doc.Name)
	if doc.Name == "" {
		return nil, fmt.Errorf("seed document has no name")
	}
	return &doc, nil
}

// DefaultSeed is the embedded starter data.
func DefaultSeed() (*SeedDocument, error) {
	return ParseSeed(defaultSeed)
}

// Seed applies doc once. The document name is recorded in seed_history inside
// the same transaction as the rows, so a later call with the same name is a
// no-op. It reports whether anything was written.
func Seed(ctx context.Context, db *gorm.DB, log *logger.Logger, doc *SeedDocument) (bool, error) {
	if doc == nil {
		return false, fmt.Errorf("nil seed document")
	}
	if log == nil {
		log = logger.Nop()
	}
	log = log.With("seed", doc.Name)

	applied := false
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&types.SeedHistory{}).Where("name = ?", doc.Name).Count(&count).Error; err != nil {
			return fmt.Errorf("check seed history: %w", err)
		}
		if count > 0 {
			return nil
		}

		countries := make([]*types.Country, 0, len(doc.Countries))
		for _, c := range doc.Countries {
			countries = append(countries, &types.Country{ID: c.ID, Name: c.Name})
		}
		companies := make([]*types.Company, 0, len(doc.Companies))
		for _, c := range doc.Companies {
			companies = append(companies, &types.Company{ID: c.ID, Name: c.Name})
		}
		contacts := make([]*types.Contact, 0, len(doc.Contacts))
		for _, c := range doc.Contacts {
			contacts = append(contacts, &types.Contact{ID: c.ID, Name: c.Name, CompanyID: c.CompanyID, CountryID: c.CountryID})
		}

		if len(countries) > 0 {
			if err := tx.Create(&countries).Error; err != nil {
				return fmt.Errorf("seed countries: %w", err)
			}
		}
		if len(companies) > 0 {
			if err := tx.Create(&companies).Error; err != nil {
				return fmt.Errorf("seed companies: %w", err)
			}
		}
		if len(contacts) > 0 {
			if err := tx.Omit("Company", "Country").Create(&contacts).Error; err != nil {
				return fmt.Errorf("seed contacts: %w", err)
			}
		}

		if tx.Dialector.Name() == DriverPostgres {
			for _, table := range []string{"country", "company", "contact"} {
				if err := resetSequence(tx, table); err != nil {
					return err
				}
			}
		}

		history := &types.SeedHistory{
			Name:      doc.Name,
			AppliedAt: time.Now().UTC(),
			Summary: datatypes.NewJSONType(types.SeedSummary{
				Countries: len(countries),
				Companies: len(companies),
				Contacts:  len(contacts),
			}),
		}
		if err := tx.Create(history).Error; err != nil {
			return fmt.Errorf("record seed history: %w", err)
		}
		applied = true
		return nil
	})
	if err != nil {
		log.Error("Seeding failed", ErrorFields(err)...)
		return false, err
	}
	if applied {
		log.Info("Seed applied", "countries", len(doc.Countries), "companies", len(doc.Companies), "contacts", len(doc.Contacts))
	} else {
		log.Debug("Seed already applied, skipping")
	}
	return applied, nil
}

// Explicit ids bypass the serial sequence; move it past them so generated ids
// never collide with seeded rows.
func resetSequence(tx *gorm.DB, table string) error {
	stmt := fmt.Sprintf(
		"SELECT setval(pg_get_serial_sequence('%s', 'id'), COALESCE((SELECT MAX(id) FROM %s), 0) + 1, false)",
		table, table,
	)
	if err := tx.Exec(stmt).Error; err != nil {
		return fmt.Errorf("reset %s id sequence: %w", table, err)
	}
	return nil
}

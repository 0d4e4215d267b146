package directory

// Contact belongs to exactly one Company and one Country. Removing either
// parent removes the contact with it.
type Contact struct {
	ID        int      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string   `gorm:"column:name;type:varchar(50);not null" json:"name" validate:"notblank,max=50"`
	CompanyID int      `gorm:"column:company_id;not null;index" json:"company_id" validate:"gte=1"`
	Company   *Company `gorm:"constraint:OnDelete:CASCADE;foreignKey:CompanyID;references:ID" json:"company,omitempty" validate:"-"`
	CountryID int      `gorm:"column:country_id;not null;index" json:"country_id" validate:"gte=1"`
	Country   *Country `gorm:"constraint:OnDelete:CASCADE;foreignKey:CountryID;references:ID" json:"country,omitempty" validate:"-"`
}

func (Contact) TableName() string { return "contact" }

// CompanyContactCount is one row of the per-country statistics query.
type CompanyContactCount struct {
	CompanyName  string `gorm:"column:company_name" json:"company_name"`
	ContactCount int    `gorm:"column:contact_count" json:"contact_count"`
}

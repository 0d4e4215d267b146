package directory

type Company struct {
	ID   int    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"column:name;type:varchar(100);not null" json:"name" validate:"notblank,max=100"`
}

func (Company) TableName() string { return "company" }

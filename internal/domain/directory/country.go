package directory

type Country struct {
	ID   int    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"column:name;type:varchar(50);not null" json:"name" validate:"notblank,max=50"`
}

func (Country) TableName() string { return "country" }

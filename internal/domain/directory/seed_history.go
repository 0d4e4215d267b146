package directory

import (
	"time"

	"gorm.io/datatypes"
)

// SeedHistory records which seed documents have already been applied.
type SeedHistory struct {
	Name      string                          `gorm:"column:name;primaryKey;type:varchar(100)"`
	AppliedAt time.Time                       `gorm:"column:applied_at;not null"`
	Summary   datatypes.JSONType[SeedSummary] `gorm:"column:summary"`
}

func (SeedHistory) TableName() string { return "seed_history" }

// SeedSummary counts the rows a seed inserted.
type SeedSummary struct {
	Countries int `json:"countries"`
	Companies int `json:"companies"`
	Contacts  int `json:"contacts"`
}

package entity

import "time"

// Prescription is a scanned medical prescription attached to orders.
type Prescription struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	IssueDate time.Time `gorm:"type:date;not null" json:"issueDate"`

	Picture `gorm:"embedded"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}

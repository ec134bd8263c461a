package models

import (
	"time"
)

// ShipmentModel represents the database model for equipment shipments
type ShipmentModel struct {
	ID              string     `gorm:"type:varchar(12);primary_key"`
	Model           string     `gorm:"type:varchar(200);not null"`
	SN              string     `gorm:"column:sn;type:varchar(100)"`
	Ref             string     `gorm:"type:varchar(100);index"`
	Provider        string     `gorm:"type:varchar(200);not null;index"`
	ProviderContact string     `gorm:"type:text"`
	Service         string     `gorm:"type:varchar(100);index"`
	Status          string     `gorm:"type:varchar(50);not null;index"`
	Priority        string     `gorm:"type:varchar(20);not null;default:'NORMAL'"`
	ShipmentDate    time.Time  `gorm:"type:date;not null;index"`
	DeliveryDate    *time.Time `gorm:"type:date;index"`
	Loan            bool       `gorm:"not null;default:false"`
	LoanSN          string     `gorm:"column:loan_sn;type:varchar(100)"`
	Observations    string     `gorm:"type:text"`
	ImageURL        string     `gorm:"type:text"`
	CreatedAt       time.Time  `gorm:"not null;index"`
	UpdatedAt       time.Time  `gorm:"not null"`
}

func (ShipmentModel) TableName() string {
	return "shipments"
}

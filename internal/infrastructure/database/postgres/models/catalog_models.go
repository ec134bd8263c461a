package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// StringList stores an ordered string set as a JSONB column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (l *StringList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
}

// ServiceModel represents the database model for the service catalog
type ServiceModel struct {
	Name     string `gorm:"type:varchar(100);primary_key"`
	Position int    `gorm:"not null"`
}

func (ServiceModel) TableName() string {
	return "services"
}

// ReferenceModel represents the database model for canonical equipment references
type ReferenceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Ref       string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Model     string    `gorm:"type:varchar(200);not null"`
	Service   string    `gorm:"type:varchar(100)"`
	Provider  string    `gorm:"type:varchar(200)"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (ReferenceModel) TableName() string {
	return "master_references"
}

// ProviderModel represents the database model for canonical providers
type ProviderModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string     `gorm:"type:varchar(200);not null;uniqueIndex"`
	Emails    StringList `gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt time.Time  `gorm:"not null"`
	UpdatedAt time.Time  `gorm:"not null"`
}

func (ProviderModel) TableName() string {
	return "master_providers"
}

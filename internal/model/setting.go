package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// SettingsData is the per-store detector configuration.
type SettingsData struct {
	EmployeeDetectionURL     string `json:"employeeDetectionUrl" validate:"required,url"`
	FaceDetectionURL         string `json:"faceDetectionUrl" validate:"required,url"`
	CashDrawerURL            string `json:"cashDrawerUrl" validate:"required,url"`
	CustomerFootfallURL      string `json:"customerFootfallUrl" validate:"required,url"`
	EmployeeDetectionEnabled bool   `json:"employeeDetectionEnabled"`
	FaceDetectionEnabled     bool   `json:"faceDetectionEnabled"`
	CashDrawerEnabled        bool   `json:"cashDrawerEnabled"`
	CustomerFootfallEnabled  bool   `json:"customerFootfallEnabled"`
}

// Value stores the settings as a JSON document.
func (s SettingsData) Value() (driver.Value, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan reads the JSON document back.
func (s *SettingsData) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*s = SettingsData{}
		return nil
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("scan settings_data: unsupported type %T", src)
	}
}

// StoreSettings holds one settings document per store.
type StoreSettings struct {
	StoreID      uint         `json:"store_id" gorm:"primaryKey;autoIncrement:false"`
	SettingsData SettingsData `json:"settings_data" gorm:"type:text"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// TableName pins the table to the original schema.
func (StoreSettings) TableName() string {
	return "settings"
}

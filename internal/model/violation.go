package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Violation event names raised by the in-store detectors.
const (
	EventCashboxOffence = "CASHBOX_OFFENCE_DETECTED"
	EventDoorState      = "DOOR_STATE_DETECTED"
	EventNoEmployee     = "NO_EMPLOYEE_DETECTED"
)

// CriticalViolation is a flagged security or compliance event.
type CriticalViolation struct {
	ID           uuid.UUID           `json:"id" gorm:"type:char(36);primaryKey"`
	EventName    string              `json:"event_name" gorm:"size:64;not null;index"`
	ResourceName string              `json:"resource_name" gorm:"size:255"`
	EventTime    time.Time           `json:"event_time" gorm:"not null;index:idx_cv_store_time,priority:2"`
	StoreID      uint                `json:"store_id" gorm:"not null;index:idx_cv_store_time,priority:1"`
	Score        decimal.NullDecimal `json:"score" gorm:"type:decimal(6,4)"`
}

// TableName pins the table to the original schema.
func (CriticalViolation) TableName() string {
	return "critical_violations"
}

// BeforeCreate sets UUID before creating the record.
func (v *CriticalViolation) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

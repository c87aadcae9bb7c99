package model

import "time"

// Genders recorded by the customer counter.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

// Employee event types.
const (
	EventLogin  = "login"
	EventLogout = "logout"
)

// CustomerFootfall is a daily customer entry count for one gender.
type CustomerFootfall struct {
	ID      uint      `json:"id" gorm:"primaryKey"`
	StoreID uint      `json:"store_id" gorm:"not null;index:idx_cf_store_date,priority:1"`
	Date    time.Time `json:"date" gorm:"not null;index:idx_cf_store_date,priority:2"`
	Gender  string    `json:"gender" gorm:"size:16"`
	Entries int       `json:"entries" gorm:"not null;default:0"`
}

// TableName pins the table to the original schema.
func (CustomerFootfall) TableName() string {
	return "customer_footfall"
}

// Employee works at a single store.
type Employee struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	StoreID   uint      `json:"store_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
}

// EmployeeFootfall is an employee entry event (login, logout, ...).
type EmployeeFootfall struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	StoreID    uint      `json:"store_id" gorm:"not null;index:idx_ef_store_date,priority:1"`
	EmployeeID *uint     `json:"employee_id"`
	Date       time.Time `json:"date" gorm:"not null;index:idx_ef_store_date,priority:2"`
	Entries    int       `json:"entries" gorm:"not null;default:0"`
	EventType  string    `json:"event_type" gorm:"size:32"`
	CreatedAt  time.Time `json:"created_at"`

	Employee *Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
}

// TableName pins the table to the original schema.
func (EmployeeFootfall) TableName() string {
	return "employee_footfall"
}

// EmployeeName returns the joined employee name or a placeholder.
func (e EmployeeFootfall) EmployeeName() string {
	if e.Employee == nil || e.Employee.Name == "" {
		return "Unknown Employee"
	}
	return e.Employee.Name
}

// EmployeeTimeLog holds the average login/logout time for a day.
type EmployeeTimeLog struct {
	Date          time.Time `json:"date" gorm:"primaryKey"`
	AvgLoginTime  string    `json:"avg_login_time" gorm:"size:16"`
	AvgLogoutTime string    `json:"avg_logout_time" gorm:"size:16"`
}

// TableName pins the table to the original schema.
func (EmployeeTimeLog) TableName() string {
	return "employee_time_log"
}

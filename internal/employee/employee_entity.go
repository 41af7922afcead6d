package employee

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Employee struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID `gorm:"type:uuid;index"`

	PersonnelID string `gorm:"size:50;index"`
	FirstName   string `gorm:"size:50"`
	FatherName  string `gorm:"size:50"`
	LastName    string `gorm:"size:50"`
	FullName    string `gorm:"size:90"`

	Gender         string `gorm:"size:30"`
	EmploymentType string `gorm:"size:80"`
	EmailAddress   string `gorm:"size:70"`
	PhoneNumber    string `gorm:"size:30"`
	City           string `gorm:"size:90"`
	Section        string `gorm:"size:50"`
	PositionName   string `gorm:"size:90"`

	// WorkingArea selects the per diem exemption class; WorkingEnvironment
	// decides hardship allowance eligibility.
	WorkingArea        string `gorm:"size:90"`
	WorkingEnvironment string `gorm:"size:70"`

	PensionNumber string `gorm:"size:30"`
	PersonnelTIN  string `gorm:"size:90"`

	BasicSalary               decimal.Decimal `gorm:"type:numeric(12,2)"`
	DailyPerDiem              decimal.Decimal `gorm:"type:numeric(10,2)"`
	UniversityCostSharingDebt decimal.Decimal `gorm:"type:numeric(15,2)"`

	BankName        string `gorm:"size:70"`
	BankAccountID   string `gorm:"size:70"`
	BankAccountType string `gorm:"size:70"`

	EmploymentDate time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HardshipEligible reports whether the employee's working environment
// carries a non-taxable hardship limit.
func (e *Employee) HardshipEligible() bool {
	switch e.WorkingEnvironment {
	case "adverse", "very_adverse", "extremely_adverse":
		return true
	default:
		return false
	}
}

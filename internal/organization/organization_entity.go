package organization

import (
	"time"

	"github.com/google/uuid"
)

type Organization struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name             string    `gorm:"uniqueIndex;size:80"`
	Address          string    `gorm:"size:80"`
	EmployerTIN      string    `gorm:"size:90"`
	OrganizationType string    `gorm:"size:70"`
	ContactPersonnel string    `gorm:"size:90"`
	IsActive         bool      `gorm:"default:true"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// CompanyStatus defines the lifecycle status of a company record
type CompanyStatus string

const (
	CompanyStatusActive   CompanyStatus = "active"
	CompanyStatusInactive CompanyStatus = "inactive"
)

// AdminCompanyName is the bootstrap company ensured at startup
const AdminCompanyName = "Admin"

// Company represents one organization using the intranet.
// Industry, Location, Website, Phone and Description are optional columns:
// an externally managed schema may not carry them, so listings read them
// through the column catalog and null-pad what is missing.
type Company struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"companyId"`
	Name        string        `gorm:"uniqueIndex;not null" json:"name"`
	Industry    *string       `json:"industry"`
	Location    *string       `json:"location"`
	Website     *string       `json:"website"`
	Email       string        `gorm:"not null" json:"email"`
	Phone       *string       `json:"phone"`
	Status      CompanyStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	Description *string       `json:"description"`
	CreatedAt   time.Time     `gorm:"not null" json:"createdAt"`
	UpdatedAt   time.Time     `gorm:"not null" json:"updatedAt"`

	// Relations
	Users []User `gorm:"foreignKey:CompanyID" json:"users,omitempty"`
	Posts []Post `gorm:"foreignKey:CompanyID" json:"posts,omitempty"`
}

func (Company) TableName() string {
	return "companies"
}

// PairedUserRequest is the optional account created alongside a company
type PairedUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name,omitempty"`
}

// CreateCompanyRequest represents an admin company creation request
type CreateCompanyRequest struct {
	Name        string             `json:"name" binding:"required,max=100"`
	Email       string             `json:"email" binding:"required,email"`
	Industry    *string            `json:"industry,omitempty"`
	Location    *string            `json:"location,omitempty"`
	Website     *string            `json:"website,omitempty"`
	Phone       *string            `json:"phone,omitempty"`
	Description *string            `json:"description,omitempty"`
	User        *PairedUserRequest `json:"user,omitempty"`
}

// UpdateCompanyRequest represents an admin company update request
type UpdateCompanyRequest struct {
	Name        *string        `json:"name,omitempty" binding:"omitempty,max=100"`
	Email       *string        `json:"email,omitempty" binding:"omitempty,email"`
	Industry    *string        `json:"industry,omitempty"`
	Location    *string        `json:"location,omitempty"`
	Website     *string        `json:"website,omitempty"`
	Phone       *string        `json:"phone,omitempty"`
	Status      *CompanyStatus `json:"status,omitempty"`
	Description *string        `json:"description,omitempty"`
}

// CompanyResponse represents the company response. Optional columns that the
// live schema does not have come back as null.
type CompanyResponse struct {
	CompanyID   uuid.UUID     `json:"companyId"`
	Name        string        `json:"name"`
	Industry    *string       `json:"industry"`
	Location    *string       `json:"location"`
	Website     *string       `json:"website"`
	Email       string        `json:"email"`
	Phone       *string       `json:"phone"`
	Status      CompanyStatus `json:"status"`
	Description *string       `json:"description"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// ToResponse converts Company to CompanyResponse
func (co *Company) ToResponse() CompanyResponse {
	return CompanyResponse{
		CompanyID:   co.ID,
		Name:        co.Name,
		Industry:    co.Industry,
		Location:    co.Location,
		Website:     co.Website,
		Email:       co.Email,
		Phone:       co.Phone,
		Status:      co.Status,
		Description: co.Description,
		CreatedAt:   co.CreatedAt,
		UpdatedAt:   co.UpdatedAt,
	}
}

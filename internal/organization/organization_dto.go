package organization

type CreateOrganizationRequest struct {
	Name             string `json:"name" binding:"required"`
	Address          string `json:"address" binding:"required"`
	EmployerTIN      string `json:"employer_tin" binding:"required"`
	OrganizationType string `json:"organization_type" binding:"required"`
	ContactPersonnel string `json:"contact_personnel" binding:"required"`
}

type UpdateOrganizationRequest struct {
	Name             string `json:"name"`
	Address          string `json:"address"`
	EmployerTIN      string `json:"employer_tin"`
	OrganizationType string `json:"organization_type"`
	ContactPersonnel string `json:"contact_personnel"`
}

type OrganizationResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Address          string `json:"address"`
	EmployerTIN      string `json:"employer_tin"`
	OrganizationType string `json:"organization_type"`
	ContactPersonnel string `json:"contact_personnel"`
	IsActive         bool   `json:"is_active"`
}

func mapToResponse(org Organization) OrganizationResponse {
	return OrganizationResponse{
		ID:               org.ID.String(),
		Name:             org.Name,
		Address:          org.Address,
		EmployerTIN:      org.EmployerTIN,
		OrganizationType: org.OrganizationType,
		ContactPersonnel: org.ContactPersonnel,
		IsActive:         org.IsActive,
	}
}

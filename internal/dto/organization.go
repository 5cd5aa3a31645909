package dto

// ContactInfo is the organization contact block.
type ContactInfo struct {
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Website string `json:"website,omitempty"`
}

// OrganizationResponse represents an organization in the API response
// @Description Organization information
type OrganizationResponse struct {
	ID                string      `json:"id"`
	OrganizationCode  string      `json:"organizationCode"`
	Name              string      `json:"name"`
	Description       *string     `json:"description"`
	ContactInfo       ContactInfo `json:"contactInfo"`
	Region            *string     `json:"region"`
	EstablishmentDate *string     `json:"establishmentDate"`
	LogoURL           *string     `json:"logoUrl"`
	Status            string      `json:"status"`
	CreatedAt         string      `json:"createdAt"`
	UpdatedAt         string      `json:"updatedAt"`
}

// OrganizationRequest is the validated shape of create and full update bodies.
// @Description Request body for creating or replacing an organization
type OrganizationRequest struct {
	OrganizationCode  string                 `json:"organizationCode" validate:"required,min=3"`
	Name              string                 `json:"name" validate:"required,min=2"`
	Description       *string                `json:"description"`
	ContactInfo       map[string]interface{} `json:"contactInfo"`
	Region            *string                `json:"region"`
	EstablishmentDate *string                `json:"establishmentDate" validate:"omitempty,datetime=2006-01-02"`
	LogoURL           *string                `json:"logoUrl"`
	Status            string                 `json:"status" validate:"omitempty,oneof=active inactive suspended"`
}

// OrganizationListResponse is a page of organizations.
type OrganizationListResponse struct {
	Items      []OrganizationResponse `json:"items"`
	Pagination PaginationResponse     `json:"pagination"`
}

package mapper

import (
	"exam-admin/internal/domain"
	"exam-admin/internal/dto"
	"exam-admin/internal/repository/models"
	"exam-admin/internal/util"
)

// Organizations is the organization allow-list.
var Organizations = NewTable(
	Field{"organizationCode", "organization_code", RequiredText},
	Field{"name", "name", RequiredText},
	Field{"description", "description", Text},
	Field{"contactInfo", "contact_info", Object},
	Field{"region", "region", Text},
	Field{"establishmentDate", "establishment_date", Date},
	Field{"logoUrl", "logo_url", Text},
	Field{"status", "status", RequiredText},
)

// OrganizationDefaults are stored when a create body omits the column.
func OrganizationDefaults() domain.Columns {
	return domain.Columns{
		"status":       domain.StatusActive,
		"contact_info": "{}",
	}
}

func OrganizationToResponse(o models.Organization) dto.OrganizationResponse {
	return dto.OrganizationResponse{
		ID:                o.ID,
		OrganizationCode:  o.OrganizationCode,
		Name:              o.Name,
		Description:       util.NullStringPtr(o.Description),
		ContactInfo:       dto.ContactInfo(o.ContactInfo),
		Region:            util.NullStringPtr(o.Region),
		EstablishmentDate: datePtr(o.EstablishmentDate),
		LogoURL:           util.NullStringPtr(o.LogoURL),
		Status:            o.Status,
		CreatedAt:         dto.FormatTime(o.CreatedAt),
		UpdatedAt:         dto.FormatTime(o.UpdatedAt),
	}
}

func OrganizationFromResponse(r dto.OrganizationResponse) (models.Organization, error) {
	createdAt, err := dto.ParseTime(r.CreatedAt)
	if err != nil {
		return models.Organization{}, err
	}
	updatedAt, err := dto.ParseTime(r.UpdatedAt)
	if err != nil {
		return models.Organization{}, err
	}
	return models.Organization{
		ID:                r.ID,
		OrganizationCode:  r.OrganizationCode,
		Name:              r.Name,
		Description:       util.PtrToNullString(r.Description),
		ContactInfo:       models.ContactInfo(r.ContactInfo),
		Region:            util.PtrToNullString(r.Region),
		EstablishmentDate: ptrDate(r.EstablishmentDate),
		LogoURL:           util.PtrToNullString(r.LogoURL),
		Status:            r.Status,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}, nil
}

func datePtr(d models.NullDate) *string {
	return d.Ptr()
}

func ptrDate(s *string) models.NullDate {
	if s == nil {
		return models.NullDate{}
	}
	return models.NullDate{String: *s, Valid: true}
}

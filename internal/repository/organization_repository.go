package repository

import (
	"context"
	"errors"
	"fmt"

	"exam-admin/internal/domain"
	"exam-admin/internal/repository/models"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var organizationColumns = []string{
	"id", "organization_code", "name", "description", "contact_info", "region",
	"establishment_date", "logo_url", "status", "created_at", "updated_at",
}

// OrganizationRepositoryImpl implements domain.OrganizationRepository using sqlx.DB
type OrganizationRepositoryImpl struct {
	db *sqlx.DB
}

func NewOrganizationRepository(db *sqlx.DB) domain.OrganizationRepository {
	return &OrganizationRepositoryImpl{db: db}
}

func organizationWhere(f domain.OrganizationFilter) sq.And {
	where := sq.And{}
	if f.Search != "" {
		where = append(where, ilikeAny(f.Search, "name", "description", "organization_code"))
	}
	where = eqIfSet(where, "region", f.Region)
	where = eqIfSet(where, "status", f.Status)
	return where
}

func (r *OrganizationRepositoryImpl) List(ctx context.Context, f domain.OrganizationFilter, p domain.PageRequest) ([]models.Organization, *int64, error) {
	where := organizationWhere(f)
	query := psql.Select(organizationColumns...).From("organizations").Where(where).OrderBy(orderBy("", f.Sort))
	count := psql.Select("COUNT(*)").From("organizations").Where(where)

	orgs := []models.Organization{}
	total, err := fetchPage(ctx, GetExecutor(ctx, r.db), &orgs, query, count, p)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	return orgs, total, nil
}

func (r *OrganizationRepositoryImpl) GetByID(ctx context.Context, id string) (*models.Organization, error) {
	var org models.Organization
	query := psql.Select(organizationColumns...).From("organizations").Where(sq.Eq{"id": id})
	found, err := getOne(ctx, GetExecutor(ctx, r.db), &org, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get organization by ID %s: %w", id, err)
	}
	if !found {
		return nil, nil
	}
	return &org, nil
}

func (r *OrganizationRepositoryImpl) Create(ctx context.Context, columns domain.Columns) error {
	if err := insert(ctx, GetExecutor(ctx, r.db), "organizations", columns); err != nil {
		return fmt.Errorf("failed to create organization: %w", err)
	}
	return nil
}

func (r *OrganizationRepositoryImpl) Update(ctx context.Context, id string, columns domain.Columns) (bool, error) {
	found, err := update(ctx, GetExecutor(ctx, r.db), "organizations", id, columns)
	if err != nil {
		return false, fmt.Errorf("failed to update organization %s: %w", id, err)
	}
	return found, nil
}

func (r *OrganizationRepositoryImpl) Delete(ctx context.Context, id string) error {
	err := deleteUnreferenced(ctx, GetExecutor(ctx, r.db), "organizations", id, "exams", "organization_id")
	if err != nil && !errors.Is(err, domain.ErrReferenced) {
		return fmt.Errorf("failed to delete organization %s: %w", id, err)
	}
	return err
}

func (r *OrganizationRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &total, "SELECT COUNT(*) FROM organizations"); err != nil {
		return 0, fmt.Errorf("failed to count organizations: %w", err)
	}
	return total, nil
}

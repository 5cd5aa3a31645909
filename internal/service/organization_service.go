package service

import (
	"context"
	"encoding/json"
	"errors"

	"exam-admin/internal/domain"
	"exam-admin/internal/dto"
	"exam-admin/internal/logger"
	"exam-admin/internal/mapper"
	"exam-admin/internal/util"
	"exam-admin/internal/validation"

	"go.uber.org/zap"
)

// OrganizationService defines the organization use cases.
type OrganizationService interface {
	ListOrganizations(ctx context.Context, filter domain.OrganizationFilter, page domain.PageRequest) (*dto.OrganizationListResponse, error)
	GetOrganization(ctx context.Context, id string) (*dto.OrganizationResponse, error)
	CreateOrganization(ctx context.Context, body map[string]json.RawMessage) (*dto.OrganizationResponse, error)
	// UpdateOrganization validates body like a create when full is true (PUT) and applies it as is otherwise (PATCH).
	UpdateOrganization(ctx context.Context, id string, body map[string]json.RawMessage, full bool) (*dto.OrganizationResponse, error)
	DeleteOrganization(ctx context.Context, id string) error
}

type organizationService struct {
	repo      domain.OrganizationRepository
	txManager domain.TransactionManager
	validator *validation.Validator
	cache     *ResponseCache
}

func NewOrganizationService(
	repo domain.OrganizationRepository,
	txManager domain.TransactionManager,
	validator *validation.Validator,
	cache *ResponseCache,
) OrganizationService {
	return &organizationService{
		repo:      repo,
		txManager: txManager,
		validator: validator,
		cache:     cache,
	}
}

func (s *organizationService) ListOrganizations(ctx context.Context, filter domain.OrganizationFilter, page domain.PageRequest) (*dto.OrganizationListResponse, error) {
	rows, total, err := s.repo.List(ctx, filter, page)
	if err != nil {
		logger.Get().Error("Failed to list organizations", zap.Error(err))
		return nil, storageError("查询组织失败", err)
	}

	items := make([]dto.OrganizationResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, mapper.OrganizationToResponse(row))
	}
	return &dto.OrganizationListResponse{
		Items:      items,
		Pagination: domain.NewPagination(page, total, len(rows)),
	}, nil
}

func (s *organizationService) GetOrganization(ctx context.Context, id string) (*dto.OrganizationResponse, error) {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		logger.Get().Error("Failed to get organization", zap.String("id", id), zap.Error(err))
		return nil, storageError("查询组织失败", err)
	}
	if row == nil {
		return nil, domain.NewNotFoundError("组织不存在")
	}
	resp := mapper.OrganizationToResponse(*row)
	return &resp, nil
}

func (s *organizationService) CreateOrganization(ctx context.Context, body map[string]json.RawMessage) (*dto.OrganizationResponse, error) {
	if err := s.validator.ValidateOrganization(body); err != nil {
		return nil, err
	}
	columns, err := mapper.Organizations.Apply(body)
	if err != nil {
		return nil, err
	}
	columns = mapper.WithDefaults(columns, mapper.OrganizationDefaults())
	id := util.NewULID()
	columns["id"] = id

	if err := s.repo.Create(ctx, columns); err != nil {
		logger.Get().Error("Failed to create organization", zap.Error(err))
		return nil, storageError("创建组织失败", err)
	}
	s.cache.Invalidate(ctx)
	logger.Get().Info("Organization created", zap.String("id", id))
	return s.GetOrganization(ctx, id)
}

func (s *organizationService) UpdateOrganization(ctx context.Context, id string, body map[string]json.RawMessage, full bool) (*dto.OrganizationResponse, error) {
	if full {
		if err := s.validator.ValidateOrganization(body); err != nil {
			return nil, err
		}
	}
	columns, err := mapper.Organizations.Apply(body)
	if err != nil {
		return nil, err
	}

	found, err := s.repo.Update(ctx, id, columns)
	if err != nil {
		logger.Get().Error("Failed to update organization", zap.String("id", id), zap.Error(err))
		return nil, storageError("更新组织失败", err)
	}
	if !found {
		return nil, domain.NewNotFoundError("组织不存在")
	}
	s.cache.Invalidate(ctx)
	return s.GetOrganization(ctx, id)
}

func (s *organizationService) DeleteOrganization(ctx context.Context, id string) error {
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.repo.Delete(txCtx, id)
	})
	if errors.Is(err, domain.ErrReferenced) {
		return domain.NewConflictError("无法删除组织，存在关联的考试")
	}
	if err != nil {
		logger.Get().Error("Failed to delete organization", zap.String("id", id), zap.Error(err))
		return storageError("删除组织失败", err)
	}
	s.cache.Invalidate(ctx)
	logger.Get().Info("Organization deleted", zap.String("id", id))
	return nil
}

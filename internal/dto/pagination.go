package dto

import "exam-admin/internal/domain"

// PaginationResponse mirrors domain.Pagination for the API docs.
type PaginationResponse = domain.Pagination

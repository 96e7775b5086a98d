package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/docflow_backend/internal/apperrors"
	"github.com/SscSPs/docflow_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/docflow_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/docflow_backend/internal/core/ports/services"
)

type referenceService struct {
	BaseService
	repo portsrepo.ReferenceRepositoryFacade
}

// NewReferenceService exposes the master reference lists read-only.
func NewReferenceService(repo portsrepo.ReferenceRepositoryFacade) portssvc.ReferenceSvcFacade {
	return &referenceService{BaseService: newBaseService("reference"), repo: repo}
}

func (s *referenceService) FindSupplierByPO(ctx context.Context, poNumber string) (*domain.Supplier, error) {
	if strings.TrimSpace(poNumber) == "" {
		return nil, apperrors.NewValidationError("poNumber", "is required")
	}
	supplier, err := s.repo.FindSupplierByPO(ctx, poNumber)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find supplier by purchase order", slog.String("po_number", poNumber))
		}
		return nil, err
	}
	return supplier, nil
}

func (s *referenceService) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	suppliers, err := s.repo.ListSuppliers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list suppliers")
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	if suppliers == nil {
		return []domain.Supplier{}, nil
	}
	return suppliers, nil
}

func (s *referenceService) FindEmployee(ctx context.Context, idOrName string) (*domain.Employee, error) {
	if strings.TrimSpace(idOrName) == "" {
		return nil, apperrors.NewValidationError("employee", "is required")
	}
	employee, err := s.repo.FindEmployee(ctx, idOrName)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find employee", slog.String("employee", idOrName))
		}
		return nil, err
	}
	return employee, nil
}

func (s *referenceService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	employees, err := s.repo.ListEmployees(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list employees")
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	if employees == nil {
		return []domain.Employee{}, nil
	}
	return employees, nil
}

func (s *referenceService) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	departments, err := s.repo.ListDepartments(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list departments")
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	if departments == nil {
		return []domain.Department{}, nil
	}
	return departments, nil
}

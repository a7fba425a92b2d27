package services

import (
	"context"
	"fmt"

	"clinic-inventory-service/models"
	"clinic-inventory-service/repository"

	"go.uber.org/zap"
)

// OrgService exposes the organizational directory: roles, departments and
// the admin/staff accounts.
type OrgService struct {
	repo   repository.StateRepository
	logger *zap.Logger
}

// NewOrgService creates a new OrgService.
func NewOrgService(repo repository.StateRepository, logger *zap.Logger) *OrgService {
	return &OrgService{repo: repo, logger: logger}
}

// Roles returns all role names.
func (s *OrgService) Roles(ctx context.Context) ([]string, error) {
	state, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	return state.Roles, nil
}

// Departments returns all department names.
func (s *OrgService) Departments(ctx context.Context) ([]string, error) {
	state, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	return state.Departments, nil
}

// AddRole adds a role name. Adding an existing name is a no-op.
func (s *OrgService) AddRole(ctx context.Context, name string) ([]string, error) {
	return s.addName(ctx, name, true)
}

// AddDepartment adds a department name. Adding an existing name is a no-op.
func (s *OrgService) AddDepartment(ctx context.Context, name string) ([]string, error) {
	return s.addName(ctx, name, false)
}

func (s *OrgService) addName(ctx context.Context, name string, role bool) ([]string, error) {
	state, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}

	list := state.Departments
	if role {
		list = state.Roles
	}
	for _, n := range list {
		if n == name {
			return list, nil
		}
	}
	list = append(list, name)
	if role {
		state.Roles = list
	} else {
		state.Departments = list
	}

	if err := s.repo.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("save state: %w", err)
	}
	s.logger.Info("directory entry added", zap.String("name", name), zap.Bool("role", role))
	return list, nil
}

// Staff returns the staff directory.
func (s *OrgService) Staff(ctx context.Context) (map[string]models.User, error) {
	state, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	return state.Staff, nil
}

// Admins returns the admin directory.
func (s *OrgService) Admins(ctx context.Context) (map[string]models.User, error) {
	state, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	return state.Admins, nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"clinic-inventory-service/models"
	"clinic-inventory-service/repository"

	"go.uber.org/zap"
)

var (
	ErrStaffNotFound = errors.New("staff member not found")
	ErrNoDepartment  = errors.New("staff member has no department set")
)

// ItemService manages the item catalog and usage recording.
type ItemService struct {
	repo         repository.StateRepository
	notifier     *Notifier
	reservations *ReservationService
	logger       *zap.Logger
}

// NewItemService creates a new ItemService.
func NewItemService(repo repository.StateRepository, notifier *Notifier, reservations *ReservationService, logger *zap.Logger) *ItemService {
	return &ItemService{repo: repo, notifier: notifier, reservations: reservations, logger: logger}
}

// List returns all items, optionally filtered by department.
func (s *ItemService) List(ctx context.Context, department string) ([]models.Item, error) {
	state, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	out := make([]models.Item, 0, len(state.Items))
	for _, it := range state.Items {
		if department != "" && it.Department != department {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

// Get returns the item with the given id.
func (s *ItemService) Get(ctx context.Context, id int) (*models.Item, error) {
	state, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	item := state.FindItem(id)
	if item == nil {
		return nil, fmt.Errorf("%w: id %d", ErrItemNotFound, id)
	}
	return item, nil
}

// Create registers a new item with the next free id.
func (s *ItemService) Create(ctx context.Context, req *models.CreateItemRequest) (*models.Item, error) {
	state, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}

	item := models.Item{
		ID:            state.NextItemID(),
		Name:          req.Name,
		Department:    req.Department,
		AmountNeeded:  req.AmountNeeded,
		CurrentAmount: req.CurrentAmount,
	}
	state.Items = append(state.Items, item)

	if err := s.repo.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("save state: %w", err)
	}

	s.logger.Info("item created", zap.Int("item_id", item.ID), zap.String("name", item.Name))
	return &item, nil
}

// Update partially updates an item.
func (s *ItemService) Update(ctx context.Context, id int, req *models.UpdateItemRequest) (*models.Item, error) {
	state, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}

	item := state.FindItem(id)
	if item == nil {
		return nil, fmt.Errorf("%w: id %d", ErrItemNotFound, id)
	}
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Department != nil {
		item.Department = *req.Department
	}
	if req.AmountNeeded != nil {
		item.AmountNeeded = *req.AmountNeeded
	}
	if req.CurrentAmount != nil {
		item.CurrentAmount = *req.CurrentAmount
	}

	if err := s.repo.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("save state: %w", err)
	}
	return item, nil
}

// Delete removes an item from the catalog.
func (s *ItemService) Delete(ctx context.Context, id int) error {
	state, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}

	idx := -1
	for i, it := range state.Items {
		if it.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: id %d", ErrItemNotFound, id)
	}
	state.Items = append(state.Items[:idx], state.Items[idx+1:]...)

	if err := s.repo.Save(ctx, state); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	s.logger.Info("item deleted", zap.Int("item_id", id))
	return nil
}

// Use records consumption of an item by a staff member. The item is matched
// by name within the staff member's own department. When the usage drains
// the stock, the remaining amount clamps at zero, admins get a depletion
// email and a restock reservation is created on the user's behalf; both
// side effects are best-effort and the usage itself stays recorded.
func (s *ItemService) Use(ctx context.Context, req *models.UseItemRequest) (*models.UseItemResult, error) {
	state, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}

	staff, ok := state.Staff[req.UserEmail]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrStaffNotFound, req.UserEmail)
	}
	if staff.Department == "" {
		return nil, fmt.Errorf("%w: %s", ErrNoDepartment, req.UserEmail)
	}

	var item *models.Item
	for i := range state.Items {
		it := &state.Items[i]
		if it.Department == staff.Department && strings.EqualFold(it.Name, req.ItemName) {
			item = it
			break
		}
	}
	if item == nil {
		return nil, fmt.Errorf("%w: %q in department %s", ErrItemNotFound, req.ItemName, staff.Department)
	}

	if req.Amount >= item.CurrentAmount {
		item.CurrentAmount = 0
	} else {
		item.CurrentAmount -= req.Amount
	}

	if err := s.repo.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("save state: %w", err)
	}

	result := &models.UseItemResult{Item: *item}
	if item.CurrentAmount == 0 {
		result.Depleted = true
		s.logger.Info("item stock depleted",
			zap.Int("item_id", item.ID), zap.String("name", item.Name))

		s.notifier.ItemDepleted(ctx, *item, state)

		res, err := s.reservations.Create(ctx, &models.CreateReservationRequest{
			ItemID:    item.ID,
			UserEmail: req.UserEmail,
		})
		if err != nil {
			s.logger.Warn("automatic reservation after depletion failed",
				zap.Int("item_id", item.ID), zap.Error(err))
		} else {
			result.Reservation = res
		}
	}
	return result, nil
}

package services

import (
	"context"
	"errors"
	"fmt"

	"clinic-inventory-service/models"
	"clinic-inventory-service/repository"

	"go.uber.org/zap"
)

var (
	ErrItemNotFound          = errors.New("item not found")
	ErrReservationNotFound   = errors.New("reservation not found")
	ErrReservationNotPending = errors.New("reservation not pending")
)

// ReservationService handles the restock-reservation lifecycle.
type ReservationService struct {
	repo     repository.StateRepository
	notifier *Notifier
	logger   *zap.Logger
}

// NewReservationService creates a new ReservationService.
func NewReservationService(repo repository.StateRepository, notifier *Notifier, logger *zap.Logger) *ReservationService {
	return &ReservationService{repo: repo, notifier: notifier, logger: logger}
}

// Create records a restock reservation for an item. The expected restock
// date comes from the depletion estimate and the refill amount from the
// shortfall against the target (the item's needed amount unless
// overridden). The reservation is persisted before admins are notified;
// the notification is best-effort and cannot fail the call.
func (s *ReservationService) Create(ctx context.Context, req *models.CreateReservationRequest) (*models.Reservation, error) {
	state, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}

	item := state.FindItem(req.ItemID)
	if item == nil {
		return nil, fmt.Errorf("%w: id %d", ErrItemNotFound, req.ItemID)
	}

	depletion := EstimateDepletionDate(*item, req.DailyUsage)

	target := item.AmountNeeded
	if req.TargetAmount != nil {
		target = *req.TargetAmount
	}
	amountToRefill := target - item.CurrentAmount
	if amountToRefill < 0 {
		amountToRefill = 0
	}

	res := models.Reservation{
		ID:                  state.NextReservationID(),
		ItemID:              item.ID,
		ItemName:            item.Name,
		Department:          item.Department,
		UserEmail:           req.UserEmail,
		CreatedOn:           FormatDate(Today()),
		ExpectedRestockDate: FormatDate(depletion),
		AmountToRefill:      amountToRefill,
		Status:              models.StatusPending,
	}

	state.Reservations = append(state.Reservations, res)
	if err := s.repo.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("save state: %w", err)
	}

	s.logger.Info("reservation created",
		zap.Int("reservation_id", res.ID),
		zap.Int("item_id", res.ItemID),
		zap.String("user_email", res.UserEmail))

	s.notifier.ReservationCreated(ctx, res, state)

	return &res, nil
}

// List returns reservations, optionally filtered by status and department.
func (s *ReservationService) List(ctx context.Context, status, department string) ([]models.Reservation, error) {
	state, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	out := make([]models.Reservation, 0, len(state.Reservations))
	for _, r := range state.Reservations {
		if status != "" && r.Status != status {
			continue
		}
		if department != "" && r.Department != department {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// Get returns the reservation with the given id.
func (s *ReservationService) Get(ctx context.Context, id int) (*models.Reservation, error) {
	state, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	res := state.FindReservation(id)
	if res == nil {
		return nil, fmt.Errorf("%w: id %d", ErrReservationNotFound, id)
	}
	return res, nil
}

// Fulfill marks a pending reservation fulfilled and tops the associated
// item's stock back up to its needed amount. The top-up is deliberately
// independent of the reservation's own refill amount.
func (s *ReservationService) Fulfill(ctx context.Context, id int) (*models.Reservation, error) {
	state, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}

	res := state.FindReservation(id)
	if res == nil {
		return nil, fmt.Errorf("%w: id %d", ErrReservationNotFound, id)
	}
	if res.Status != models.StatusPending {
		return nil, fmt.Errorf("%w: id %d is %s", ErrReservationNotPending, id, res.Status)
	}

	if item := state.FindItem(res.ItemID); item != nil {
		item.CurrentAmount = item.AmountNeeded
	}
	res.Status = models.StatusFulfilled
	res.FulfilledOn = FormatDate(Today())

	if err := s.repo.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("save state: %w", err)
	}

	s.logger.Info("reservation fulfilled", zap.Int("reservation_id", id))
	return res, nil
}

// Delete cancels a reservation by removing it from the collection. The
// removal only commits once the save succeeds; on a save failure the
// record is restored at its original position before the error surfaces.
func (s *ReservationService) Delete(ctx context.Context, id int) (*models.Reservation, error) {
	state, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}

	idx := -1
	for i, r := range state.Reservations {
		if r.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: id %d", ErrReservationNotFound, id)
	}

	removed := state.Reservations[idx]
	state.Reservations = append(state.Reservations[:idx], state.Reservations[idx+1:]...)

	if err := s.repo.Save(ctx, state); err != nil {
		state.Reservations = append(state.Reservations[:idx],
			append([]models.Reservation{removed}, state.Reservations[idx:]...)...)
		return nil, fmt.Errorf("save state: %w", err)
	}

	s.logger.Info("reservation deleted", zap.Int("reservation_id", id))
	return &removed, nil
}

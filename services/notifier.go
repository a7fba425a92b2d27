package services

import (
	"context"
	"fmt"
	"time"

	"clinic-inventory-service/models"
	"clinic-inventory-service/sender"

	"go.uber.org/zap"
)

// Notifier fans notification emails out to every admin account. Every path
// through it is best-effort: missing configuration and delivery failures
// are logged and never surfaced to the caller.
type Notifier struct {
	sender sender.EmailSender
	logger *zap.Logger
}

// NewNotifier creates a notifier. A nil sender disables delivery (a
// configuration gap, not an error); the notifier then only logs.
func NewNotifier(s sender.EmailSender, logger *zap.Logger) *Notifier {
	return &Notifier{sender: s, logger: logger}
}

// ReservationCreated notifies all admins that a reservation was created.
// The staff name resolves from the staff directory by email, falling back
// to the raw email, then to a generic placeholder.
func (n *Notifier) ReservationCreated(ctx context.Context, res models.Reservation, state *models.State) {
	staffName := res.UserEmail
	if u, ok := state.Staff[res.UserEmail]; ok && u.Name != "" {
		staffName = u.Name
	}
	if staffName == "" {
		staffName = "Unknown staff"
	}

	subject := "Item Reservation"
	body := fmt.Sprintf(
		"This is to inform you that %s has been reserved by %s from %s during the time period of %d days",
		res.ItemName, staffName, res.Department, reservationDays(res),
	)

	n.fanOut(ctx, state, func(email string, _ models.User) (string, string) {
		return subject, body
	})
}

// ItemDepleted notifies all admins that an item's stock hit zero.
func (n *Notifier) ItemDepleted(ctx context.Context, item models.Item, state *models.State) {
	n.fanOut(ctx, state, func(_ string, admin models.User) (string, string) {
		adminName := admin.Name
		if adminName == "" {
			adminName = "Admin"
		}
		body := fmt.Sprintf(
			"%s, An item require refilling:\nItem: %s\nDepartment: %s\nAmount Require: %d\n",
			adminName, item.Name, item.Department, item.AmountNeeded,
		)
		return "URGENT - ITEM STOCK DEPLETED", body
	})
}

// fanOut delivers one message per admin, continuing past individual
// failures.
func (n *Notifier) fanOut(ctx context.Context, state *models.State, compose func(email string, admin models.User) (subject, body string)) {
	if len(state.Admins) == 0 {
		n.logger.Info("no admin accounts configured, skipping notification")
		return
	}
	if n.sender == nil {
		n.logger.Info("email credentials not configured, skipping notification")
		return
	}
	for email, admin := range state.Admins {
		subject, body := compose(email, admin)
		if _, err := n.sender.SendEmail(ctx, email, subject, body); err != nil {
			n.logger.Warn("failed to send notification email",
				zap.String("recipient", email), zap.Error(err))
			continue
		}
		n.logger.Info("notification email sent", zap.String("recipient", email))
	}
}

// reservationDays is the whole-day span between creation and the expected
// restock date, clamped at zero. Unparseable dates count as zero.
func reservationDays(res models.Reservation) int {
	created, err := time.Parse(DateLayout, res.CreatedOn)
	if err != nil {
		return 0
	}
	expected, err := time.Parse(DateLayout, res.ExpectedRestockDate)
	if err != nil {
		return 0
	}
	days := int(expected.Sub(created).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

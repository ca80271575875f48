package model

import (
	"fmt"

	domainErrors "github.com/polkiloo/cafeorders/internal/domain/errors"
)

// Transition is a validated change request against a specific order version.
// A transition with From == To only replaces notes.
type Transition struct {
	OrderID         int64
	From            OrderStatus
	To              OrderStatus
	Notes           *string
	ExpectedVersion int64
}

// ChangesStatus reports whether the transition moves the order to another status.
func (t Transition) ChangesStatus() bool {
	return t.From != t.To
}

// Validate re-checks the transition rules for t.
func (t Transition) Validate() error {
	if !t.ChangesStatus() {
		if t.Notes == nil {
			return fmt.Errorf("%w: nothing to update", domainErrors.ErrValidation)
		}
		return nil
	}
	if !CanTransition(t.From, t.To) {
		return fmt.Errorf("%w: %s -> %s", domainErrors.ErrInvalidTransition, t.From, t.To)
	}
	return nil
}

// PlanTransition builds a transition for order. A nil target keeps the current
// status and only updates notes. Targets equal to the current status are rejected.
func PlanTransition(order *Order, target *OrderStatus, notes *string) (Transition, error) {
	t := Transition{
		OrderID:         order.ID,
		From:            order.Status,
		To:              order.Status,
		Notes:           notes,
		ExpectedVersion: order.Version,
	}
	if target != nil {
		if !target.Valid() {
			return Transition{}, fmt.Errorf("%w: unknown status %q", domainErrors.ErrValidation, *target)
		}
		if *target == order.Status {
			return Transition{}, fmt.Errorf("%w: order already %s", domainErrors.ErrInvalidTransition, order.Status)
		}
		t.To = *target
	}
	if err := t.Validate(); err != nil {
		return Transition{}, err
	}
	return t, nil
}

package model

import (
	"errors"
	"testing"

	domainErrors "github.com/polkiloo/cafeorders/internal/domain/errors"
)

func TestOrderStatusValues(t *testing.T) {
	cases := []struct {
		got   OrderStatus
		value string
	}{
		{OrderStatusPending, "pending"},
		{OrderStatusConfirmed, "confirmed"},
		{OrderStatusPreparing, "preparing"},
		{OrderStatusReady, "ready"},
		{OrderStatusDelivered, "delivered"},
		{OrderStatusCancelled, "cancelled"},
	}

	for _, tc := range cases {
		t.Run(tc.value, func(t *testing.T) {
			if string(tc.got) != tc.value {
				t.Fatalf("expected %s, got %s", tc.value, tc.got)
			}
			parsed, err := ParseStatus(tc.value)
			if err != nil || parsed != tc.got {
				t.Fatalf("parse %s: got %s err=%v", tc.value, parsed, err)
			}
		})
	}
}

func TestParseStatusIsCaseSensitive(t *testing.T) {
	for _, raw := range []string{"Pending", "DELIVERED", "", "shipped"} {
		if _, err := ParseStatus(raw); !errors.Is(err, domainErrors.ErrValidation) {
			t.Fatalf("expected validation error for %q, got %v", raw, err)
		}
	}
}

func TestCanTransitionForwardFlow(t *testing.T) {
	flow := []OrderStatus{OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing, OrderStatusReady, OrderStatusDelivered}
	for i := 0; i < len(flow)-1; i++ {
		if !CanTransition(flow[i], flow[i+1]) {
			t.Fatalf("expected %s -> %s to be allowed", flow[i], flow[i+1])
		}
	}
}

func TestCanTransitionMatrix(t *testing.T) {
	allowed := map[[2]OrderStatus]bool{
		{OrderStatusPending, OrderStatusConfirmed}:   true,
		{OrderStatusConfirmed, OrderStatusPreparing}: true,
		{OrderStatusPreparing, OrderStatusReady}:     true,
		{OrderStatusReady, OrderStatusDelivered}:     true,
		{OrderStatusPending, OrderStatusCancelled}:   true,
		{OrderStatusConfirmed, OrderStatusCancelled}: true,
		{OrderStatusPreparing, OrderStatusCancelled}: true,
		{OrderStatusReady, OrderStatusCancelled}:     true,
	}

	for _, from := range Statuses {
		for _, to := range Statuses {
			want := allowed[[2]OrderStatus{from, to}]
			if got := CanTransition(from, to); got != want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestCanTransitionRejectsUnknown(t *testing.T) {
	if CanTransition("bogus", OrderStatusCancelled) {
		t.Fatal("expected unknown source to be rejected")
	}
	if CanTransition(OrderStatusPending, "bogus") {
		t.Fatal("expected unknown target to be rejected")
	}
}

func TestTerminalStatuses(t *testing.T) {
	for _, s := range Statuses {
		want := s == OrderStatusDelivered || s == OrderStatusCancelled
		if s.IsTerminal() != want {
			t.Fatalf("IsTerminal(%s) = %v", s, s.IsTerminal())
		}
		if want && len(AllowedTargets(s)) != 0 {
			t.Fatalf("expected no targets from terminal %s", s)
		}
	}
}

func TestAllowedTargets(t *testing.T) {
	got := AllowedTargets(OrderStatusReady)
	if len(got) != 2 || got[0] != OrderStatusDelivered || got[1] != OrderStatusCancelled {
		t.Fatalf("unexpected targets from ready: %v", got)
	}
	if AllowedTargets("bogus") != nil {
		t.Fatal("expected nil targets for unknown status")
	}
}

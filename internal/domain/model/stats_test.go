package model

import (
	"math/rand"
	"testing"
)

func TestComputeStats(t *testing.T) {
	orders := []Order{
		{Status: OrderStatusPending},
		{Status: OrderStatusPending},
		{Status: OrderStatusConfirmed},
		{Status: OrderStatusPreparing},
		{Status: OrderStatusReady},
		{Status: OrderStatusDelivered},
		{Status: OrderStatusCancelled},
	}
	got := ComputeStats(orders)
	want := Stats{Pending: 2, InProgress: 3, Completed: 2, Total: 7}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestComputeStatsSkipsUnknownStatus(t *testing.T) {
	var stats Stats
	if stats.Add("shipped") {
		t.Fatal("unknown status must not be counted")
	}
	if stats != (Stats{}) {
		t.Fatalf("unknown status changed buckets: %+v", stats)
	}

	got := ComputeStats([]Order{{Status: OrderStatusPending}, {Status: "Pending"}, {Status: OrderStatusReady}})
	want := Stats{Pending: 1, InProgress: 1, Total: 2}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	if got := ComputeStats(nil); got != (Stats{}) {
		t.Fatalf("expected zero stats, got %+v", got)
	}
}

func TestComputeStatsInvariantAndOrderIndependence(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 50; round++ {
		orders := make([]Order, rng.Intn(40))
		for i := range orders {
			orders[i].Status = Statuses[rng.Intn(len(Statuses))]
		}
		stats := ComputeStats(orders)
		if stats.Pending+stats.InProgress+stats.Completed != stats.Total || stats.Total != len(orders) {
			t.Fatalf("bucket invariant violated: %+v for %d orders", stats, len(orders))
		}

		shuffled := append([]Order(nil), orders...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		if ComputeStats(shuffled) != stats {
			t.Fatalf("stats depend on order: %+v vs %+v", ComputeStats(shuffled), stats)
		}
	}
}

func TestBadgeFor(t *testing.T) {
	seen := make(map[string]bool)
	for _, s := range Statuses {
		b := BadgeFor(s)
		if b.Icon == "" || b.Color == "" || b.Label == "" {
			t.Fatalf("incomplete badge for %s: %+v", s, b)
		}
		seen[b.Icon+b.Color] = true
	}
	if len(seen) != len(Statuses) {
		t.Fatalf("expected %d distinct badges, got %d", len(Statuses), len(seen))
	}
	if b := BadgeFor("bogus"); b.Color != "gray" {
		t.Fatalf("expected fallback badge, got %+v", b)
	}
}

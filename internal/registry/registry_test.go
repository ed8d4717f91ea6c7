package registry

import (
	"errors"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"predictionMarket/internal/market"
	"predictionMarket/internal/model"
)

func liquidity(v float64) *float64 {
	return &v
}

func TestCreateAndGet(t *testing.T) {
	r := New(zap.NewNop())

	created, err := r.Create("Market 1", 5000, liquidity(1000))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := r.Get("Market 1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != created {
		t.Fatalf("get returned a different instance")
	}
	if got.Name() != "Market 1" || got.Threshold() != 5000 {
		t.Fatalf("market mismatch: %s %v", got.Name(), got.Threshold())
	}
}

func TestCreateDuplicateKeepsExisting(t *testing.T) {
	r := New(nil)

	m, err := r.Create("M", 10, liquidity(1000))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := m.BuyShares(model.SideOver, 100); err != nil {
		t.Fatalf("buy: %v", err)
	}
	before := m.Snapshot()

	if _, err := r.Create("M", 99, liquidity(1)); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}

	got, err := r.Get("M")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	after := got.Snapshot()
	if after.Threshold != 10 || *after.OverPool != *before.OverPool || *after.InitialLiquidity != 1000 {
		t.Fatalf("existing market altered: %+v", after)
	}
}

func TestGetNotFound(t *testing.T) {
	r := New(nil)
	if _, err := r.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateInvalid(t *testing.T) {
	r := New(nil)
	if _, err := r.Create("  ", 1, nil); !errors.Is(err, ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}
	if _, err := r.Create("neg", 1, liquidity(-1)); !errors.Is(err, market.ErrInvalidLiquidity) {
		t.Fatalf("expected ErrInvalidLiquidity, got %v", err)
	}
	if _, err := r.Get("neg"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("failed create should not register a market")
	}
}

func TestListAndNames(t *testing.T) {
	r := New(nil)
	for name, threshold := range map[string]float64{"b": 2, "a": 1, "c": 3} {
		if _, err := r.Create(name, threshold, nil); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	want := map[string]float64{"a": 1, "b": 2, "c": 3}
	if got := r.List(); !reflect.DeepEqual(got, want) {
		t.Fatalf("list mismatch: %+v != %+v", got, want)
	}
	if got := r.Names(); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("names mismatch: %v", got)
	}

	listed := r.List()
	listed["d"] = 4
	if _, err := r.Get("d"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("list should return a copy")
	}
}

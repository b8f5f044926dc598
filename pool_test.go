package picowire

import (
	"errors"
	"testing"
)

func TestPortPoolAllocateUnique(t *testing.T) {
	pool := NewPortPool(PortRange{Start: 40000, End: 40009})
	pool.Seed(1)

	seen := make(map[int]struct{})
	for i := 0; i < 10; i++ {
		port, err := pool.Allocate()
		if err != nil {
			t.Fatalf("allocate %d: %v", i, err)
		}
		if port < 40000 || port > 40009 {
			t.Fatalf("allocated port %d outside the pool range", port)
		}
		if _, dup := seen[port]; dup {
			t.Fatalf("port %d allocated twice", port)
		}
		seen[port] = struct{}{}
	}

	// One draw past the pool size must fail
	_, err := pool.Allocate()
	var exhausted *ExhaustedPoolError
	if !errors.As(err, &exhausted) {
		t.Fatalf("expected ExhaustedPoolError after draining the pool, got %v", err)
	}
}

func TestPortPoolSeedDeterministic(t *testing.T) {
	a := NewPortPool(PortRange{Start: 50000, End: 50099})
	b := NewPortPool(PortRange{Start: 50000, End: 50099})
	a.Seed(42)
	b.Seed(42)

	for i := 0; i < 20; i++ {
		pa, err := a.Allocate()
		if err != nil {
			t.Fatalf("allocate a: %v", err)
		}
		pb, err := b.Allocate()
		if err != nil {
			t.Fatalf("allocate b: %v", err)
		}
		if pa != pb {
			t.Fatalf("draw %d differs between equally seeded pools: %d vs %d", i, pa, pb)
		}
	}
}

func TestPortPoolRelease(t *testing.T) {
	pool := NewPortPool(PortRange{Start: 40000, End: 40002})
	var drawn []int
	for i := 0; i < 3; i++ {
		port, err := pool.Allocate()
		if err != nil {
			t.Fatalf("allocate: %v", err)
		}
		drawn = append(drawn, port)
	}
	if pool.Remaining() != 0 {
		t.Fatalf("expected empty pool, %d remaining", pool.Remaining())
	}

	pool.Release(drawn[1])
	if pool.Remaining() != 1 {
		t.Fatalf("expected 1 port after release, got %d", pool.Remaining())
	}
	port, err := pool.Allocate()
	if err != nil {
		t.Fatalf("allocate after release: %v", err)
	}
	if port != drawn[1] {
		t.Fatalf("expected released port %d back, got %d", drawn[1], port)
	}

	// Out-of-range and double releases are ignored
	pool.Release(9999)
	pool.Release(drawn[0])
	pool.Release(drawn[0])
	if pool.Remaining() != 1 {
		t.Fatalf("expected 1 port, got %d", pool.Remaining())
	}
}

func TestPortPoolReset(t *testing.T) {
	pool := NewPortPool(PortRange{Start: 40000, End: 40004})
	for i := 0; i < 3; i++ {
		if _, err := pool.Allocate(); err != nil {
			t.Fatalf("allocate: %v", err)
		}
	}
	pool.Reset()
	if pool.Remaining() != 5 {
		t.Fatalf("expected full pool after reset, got %d", pool.Remaining())
	}
}

func TestParsePort(t *testing.T) {
	valid := PortRange{Start: 1024, End: 65535}

	port, err := ParsePort("8080", valid)
	if err != nil {
		t.Fatalf("ParsePort(8080): %v", err)
	}
	if port != 8080 {
		t.Fatalf("expected 8080, got %d", port)
	}

	port, err = ParsePort(" 2048 ", valid)
	if err != nil {
		t.Fatalf("ParsePort with padding: %v", err)
	}
	if port != 2048 {
		t.Fatalf("expected 2048, got %d", port)
	}

	var invalid *InvalidAddressError
	if _, err := ParsePort("abc", valid); !errors.As(err, &invalid) {
		t.Errorf("expected InvalidAddressError for non-numeric port, got %v", err)
	}
	if _, err := ParsePort("80", valid); !errors.As(err, &invalid) {
		t.Errorf("expected InvalidAddressError for port below the valid range, got %v", err)
	}
	if _, err := ParsePort("70000", valid); !errors.As(err, &invalid) {
		t.Errorf("expected InvalidAddressError for port above the valid range, got %v", err)
	}
}

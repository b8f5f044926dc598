package picowire

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// PortPool hands out ports from a configured dynamic range (in-memory).
// Every draw removes a uniformly random element from the remaining set,
// so no port repeats within the pool's lifetime. The pool never
// replenishes itself: closing a socket does not return its port, which
// is a known exhaustion risk for long-running processes. Release exists
// for callers that want to give a port back explicitly.
type PortPool struct {
	portRange PortRange
	free      []int
	used      map[int]struct{}
	rng       *rand.Rand
}

// NewPortPool builds a full pool over the inclusive range r.
func NewPortPool(r PortRange) *PortPool {
	p := &PortPool{
		portRange: r,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	p.Reset()
	return p
}

// Seed makes subsequent draws deterministic.
func (p *PortPool) Seed(seed int64) {
	p.rng = rand.New(rand.NewSource(seed))
}

// Allocate draws one port from the remaining set and removes it.
// Fails with ExhaustedPoolError once the pool is empty.
func (p *PortPool) Allocate() (int, error) {
	if len(p.free) == 0 {
		return 0, &ExhaustedPoolError{Range: p.portRange}
	}
	i := p.rng.Intn(len(p.free))
	port := p.free[i]
	p.free[i] = p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]
	p.used[port] = struct{}{}
	return port, nil
}

// Release returns an allocated port to the pool. Ports outside the range
// or not currently allocated are ignored. Nothing in the resolution path
// calls this; giving ports back is strictly the caller's choice.
func (p *PortPool) Release(port int) {
	if !p.portRange.Contains(port) {
		return
	}
	if _, ok := p.used[port]; !ok {
		return
	}
	delete(p.used, port)
	p.free = append(p.free, port)
}

// Remaining returns the number of ports still available for allocation.
func (p *PortPool) Remaining() int {
	return len(p.free)
}

// Reset restores the pool to the full range.
func (p *PortPool) Reset() {
	p.free = make([]int, 0, p.portRange.Size())
	for port := p.portRange.Start; port <= p.portRange.End; port++ {
		p.free = append(p.free, port)
	}
	p.used = make(map[int]struct{})
}

// ParsePort parses an explicitly supplied port string and checks it
// against the valid range, which is narrower than the full 0-65535 so
// reserved low ports are rejected. Surrounding whitespace is ignored.
func ParsePort(port string, valid PortRange) (int, error) {
	port = strings.TrimSpace(port)
	n, err := strconv.Atoi(port)
	if err != nil {
		return 0, &InvalidAddressError{Reason: fmt.Sprintf("port '%s' must be a number", port)}
	}
	if !valid.Contains(n) {
		return 0, &InvalidAddressError{Reason: fmt.Sprintf("port %d must be in range %d - %d", n, valid.Start, valid.End)}
	}
	return n, nil
}

package picowire

import (
	"fmt"
	"time"
)

// InvalidAddressError reports input that cannot be resolved into a usable
// endpoint: a malformed port, a port outside the configured valid range, or
// a host with no discoverable local IPv4 address.
type InvalidAddressError struct {
	Reason string
}

func (e *InvalidAddressError) Error() string { return e.Reason }

// ExhaustedPoolError reports that the dynamic port pool has no remaining
// elements. Allocated ports are not returned to the pool, so long-running
// processes that resolve many anonymous endpoints will eventually see this.
type ExhaustedPoolError struct {
	Range PortRange
}

func (e *ExhaustedPoolError) Error() string {
	return fmt.Sprintf("no available ports in range %d-%d", e.Range.Start, e.Range.End)
}

// SocketExistsError reports an attempt to bind a second socket to an
// endpoint that already has one. Raised by the socket layer, not by
// address resolution.
type SocketExistsError struct {
	Addr string
}

func (e *SocketExistsError) Error() string {
	return fmt.Sprintf("a socket already exists for %s", e.Addr)
}

// TimedOutError reports that a blocking wait on a connection gave up.
// The connection is not usable afterwards.
type TimedOutError struct {
	After time.Duration
}

func (e *TimedOutError) Error() string {
	return fmt.Sprintf("gave up waiting after %s; this connection is now unusable", e.After)
}

// InterruptedError reports that a blocking wait on a connection was
// interrupted before completion. The connection is not usable afterwards.
type InterruptedError struct {
	After time.Duration
}

func (e *InterruptedError) Error() string {
	return fmt.Sprintf("interrupted after %s; this connection is now unusable", e.After)
}

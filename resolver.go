package picowire

import (
	"fmt"
	"log"
	"net"
	"strconv"
	"strings"
	"sync"

	"picowire/internal/logging"
)

var addressLog = logging.Named("address")

// Resolver turns partially specified endpoints into bindable "ip:port"
// strings. It owns the dynamic port pool and the discovered-IP cache.
//
// A Resolver does no internal locking. Callers that resolve from
// multiple goroutines must serialize access externally, e.g. a single
// mutex guarding the whole Resolver.
type Resolver struct {
	cfg       *Config
	pool      *PortPool
	cachedIP  string
	listAddrs func() ([]net.Addr, error)
}

// ResolverOption is a function that configures a Resolver.
type ResolverOption func(*Resolver)

// WithSeed makes the resolver's port draws deterministic.
func WithSeed(seed int64) ResolverOption {
	return func(r *Resolver) {
		r.pool.Seed(seed)
	}
}

// WithAddrLister replaces the interface address query, mainly for tests.
func WithAddrLister(list func() ([]net.Addr, error)) ResolverOption {
	return func(r *Resolver) {
		r.listAddrs = list
	}
}

// NewResolver creates a Resolver over cfg. A nil cfg means defaults.
func NewResolver(cfg *Config, opts ...ResolverOption) *Resolver {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	r := &Resolver{
		cfg:       cfg,
		pool:      NewPortPool(cfg.DynamicPorts),
		listAddrs: net.InterfaceAddrs,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve turns input into a fully specified "ip:port" endpoint.
//
// The input may be empty, a bare IP, a bare port, or "ip:port". The port
// part is handled first: an explicit port is validated against the
// configured valid range, a missing one is drawn from the dynamic pool.
// The IP part is then taken as supplied, without validation; a missing
// one comes from the discovery cache or, on the first call, from ranked
// interface discovery using prefer (or the configured preference list
// when no patterns are given).
func (r *Resolver) Resolve(input string, prefer ...string) (string, error) {
	input = strings.TrimSpace(input)
	ip, port := SplitAddress(input)

	var n int
	var err error
	if port != "" {
		n, err = ParsePort(port, r.cfg.ValidPorts)
		if err != nil {
			return "", err
		}
	} else {
		n, err = r.pool.Allocate()
		if err != nil {
			return "", err
		}
		addressLog.Debugf("allocated port %d", n)
	}

	if ip == "" {
		ip, err = r.LocalIP(prefer...)
		if err != nil {
			return "", err
		}
	}

	resolved := fmt.Sprintf("%s:%d", ip, n)
	addressLog.Debugf("resolved '%s' to %s", input, resolved)
	return resolved, nil
}

// ResolvePort resolves a bare numeric port, filling in the local IP.
func (r *Resolver) ResolvePort(port int, prefer ...string) (string, error) {
	return r.Resolve(strconv.Itoa(port), prefer...)
}

// Pool exposes the resolver's port pool, e.g. to release ports or to
// check remaining capacity.
func (r *Resolver) Pool() *PortPool {
	return r.pool
}

// Reset clears the discovered-IP cache and restores the port pool to the
// full dynamic range. Intended for tests.
func (r *Resolver) Reset() {
	r.cachedIP = ""
	r.pool.Reset()
}

var (
	defaultResolver *Resolver
	defaultOnce     sync.Once
)

// Default returns the process-wide resolver, built on first use from
// defaults plus environment overrides.
func Default() *Resolver {
	defaultOnce.Do(func() {
		cfg, err := LoadConfig("")
		if err != nil {
			log.Printf("WARN: Invalid environment overrides, using built-in defaults: %v", err)
			cfg = DefaultConfig()
		}
		defaultResolver = NewResolver(cfg)
	})
	return defaultResolver
}

// Resolve resolves input against the process-wide resolver.
func Resolve(input string, prefer ...string) (string, error) {
	return Default().Resolve(input, prefer...)
}

// ResolvePort resolves a bare numeric port against the process-wide
// resolver.
func ResolvePort(port int, prefer ...string) (string, error) {
	return Default().ResolvePort(port, prefer...)
}

// LocalIP returns the preferred local IPv4 address of the process-wide
// resolver.
func LocalIP(prefer ...string) (string, error) {
	return Default().LocalIP(prefer...)
}

// ResetDefault discards the process-wide resolver so the next use builds
// a fresh one. Intended for tests.
func ResetDefault() {
	defaultResolver = nil
	defaultOnce = sync.Once{}
}

// Package picowire resolves partially specified network endpoints into
// fully specified "ip:port" strings usable for binding local sockets.
//
// An input may be empty, a bare IP, a bare port, or "ip:port". Whatever
// is missing gets filled in: an absent port is drawn from a pool over
// the dynamic range, an absent IP comes from local interface discovery
// ranked by glob preference patterns and cached for the process
// lifetime.
//
//	addr, err := picowire.Resolve("")        // "192.168.1.12:54231"
//	addr, err = picowire.Resolve(":8080")    // "192.168.1.12:8080"
//	addr, err = picowire.Resolve("10.0.0.3") // "10.0.0.3:52114"
//
// The package-level functions share one process-wide Resolver. Build
// resolvers with NewResolver for isolated pools and caches; a Resolver
// does no internal locking, so concurrent callers must serialize access
// themselves.
package picowire

package picowire

import (
	"fmt"
	"net"
	"path"
	"sort"
	"strconv"
	"strings"

	"picowire/internal/logging"
)

var interfaceLog = logging.Named("interfaces")

// LocalIP returns the preferred local IPv4 address. The operating system
// is queried on first use; afterwards the cached winner is returned
// without re-querying, for the resolver's whole lifetime.
func (r *Resolver) LocalIP(prefer ...string) (string, error) {
	if r.cachedIP != "" {
		return r.cachedIP, nil
	}
	ranked, err := r.LocalIPs(prefer...)
	if err != nil {
		return "", err
	}
	r.cachedIP = ranked[0]
	interfaceLog.Debugf("selected local address %s", r.cachedIP)
	return r.cachedIP, nil
}

// LocalIPs enumerates the IPv4 addresses bound to local interfaces and
// returns them in preference order, best candidate first. The cache is
// neither consulted nor updated. Passing no patterns applies the
// configured preference list.
func (r *Resolver) LocalIPs(prefer ...string) ([]string, error) {
	if prefer == nil {
		prefer = r.cfg.PreferredNetworks
	}

	addrs, err := r.listAddrs()
	if err != nil {
		return nil, fmt.Errorf("failed to list interface addresses: %w", err)
	}

	// Collect IPv4 candidates. Loopback and link-local stay in; the
	// ranking demotes them whenever anything better is available.
	var candidates []string
	for _, addr := range addrs {
		var ip net.IP
		switch a := addr.(type) {
		case *net.IPNet:
			ip = a.IP
		case *net.IPAddr:
			ip = a.IP
		}
		if ip4 := ip.To4(); ip4 != nil {
			candidates = append(candidates, ip4.String())
		}
	}
	if len(candidates) == 0 {
		return nil, &InvalidAddressError{Reason: "no valid local IPv4 address was found"}
	}

	rankCandidates(candidates, prefer)
	return candidates, nil
}

// rankCandidates sorts candidates by the index of the first pattern each
// one glob-matches, ties broken by the octets compared numerically.
// Candidates matching no pattern rank after all that match one.
func rankCandidates(candidates, prefer []string) {
	sort.SliceStable(candidates, func(i, j int) bool {
		pi, oi := rankKey(candidates[i], prefer)
		pj, oj := rankKey(candidates[j], prefer)
		if pi != pj {
			return pi < pj
		}
		for k := 0; k < 4; k++ {
			if oi[k] != oj[k] {
				return oi[k] < oj[k]
			}
		}
		return false
	})
}

func rankKey(ip string, prefer []string) (int, [4]int) {
	rank := len(prefer)
	for i, pattern := range prefer {
		if ok, err := path.Match(pattern, ip); err == nil && ok {
			rank = i
			break
		}
	}
	var octets [4]int
	for i, part := range strings.SplitN(ip, ".", 4) {
		n, _ := strconv.Atoi(part)
		octets[i] = n
	}
	return rank, octets
}

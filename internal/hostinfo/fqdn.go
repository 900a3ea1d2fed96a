package hostinfo

import (
	"net"
	"os"
	"strings"

	"github.com/friendsofgo/errors"
)

// Resolver is the subset of net.Resolver used to expand a short hostname
type Resolver interface {
	LookupHost(host string) ([]string, error)
	LookupAddr(addr string) ([]string, error)
}

type netResolver struct{}

func (netResolver) LookupHost(host string) ([]string, error) { return net.LookupHost(host) }
func (netResolver) LookupAddr(addr string) ([]string, error) { return net.LookupAddr(addr) }

// FQDN returns the fully qualified name of the local machine
func FQDN() (string, error) {
	return Lookup(os.Hostname, netResolver{})
}

// Lookup resolves the name returned by hostname through r and picks the first
// dotted name its addresses reverse-resolve to. The name itself is returned
// when no dotted name can be found.
func Lookup(hostname func() (string, error), r Resolver) (string, error) {
	name, err := hostname()
	if err != nil {
		return "", errors.Wrap(err, "failed to read hostname")
	}

	addrs, err := r.LookupHost(name)
	if err != nil {
		return name, nil
	}

	for _, addr := range addrs {
		names, err := r.LookupAddr(addr)
		if err != nil {
			continue
		}
		for _, n := range names {
			n = strings.TrimSuffix(n, ".")
			if strings.Contains(n, ".") {
				return n, nil
			}
		}
	}

	return name, nil
}

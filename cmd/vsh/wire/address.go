package wire

import (
	"fmt"
	"net"
	"strings"
)

// splitAddress translates a Varlink-style address string
// ("unix:/path/to.socket", "tcp:host:port") into the network/address pair
// net.Dial and net.Listen expect. A bare "host:port" with no scheme
// defaults to tcp, matching the common shorthand for local testing.
func splitAddress(address string) (network, addr string, err error) {
	switch {
	case strings.HasPrefix(address, "unix:"):
		return "unix", strings.TrimPrefix(address, "unix:"), nil
	case strings.HasPrefix(address, "tcp:"):
		return "tcp", strings.TrimPrefix(address, "tcp:"), nil
	case strings.Contains(address, ":"):
		return "tcp", address, nil
	default:
		return "", "", fmt.Errorf("address %q: missing unix:/tcp: scheme", address)
	}
}

func dial(address string) (net.Conn, error) {
	network, addr, err := splitAddress(address)
	if err != nil {
		return nil, err
	}
	return net.Dial(network, addr)
}

func listen(address string) (net.Listener, error) {
	network, addr, err := splitAddress(address)
	if err != nil {
		return nil, err
	}
	return net.Listen(network, addr)
}

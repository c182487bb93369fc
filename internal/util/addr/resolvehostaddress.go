package addr

import (
	"github.com/pkg/errors"
	"net"
)

// ResolveHostAddress parses a "host:port" listen address into a net.TCPAddr
func ResolveHostAddress(addr string) (*net.TCPAddr, error) {
	address, err := net.ResolveTCPAddr("tcp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not deduct host and port from %v", addr)
	}
	return address, nil
}

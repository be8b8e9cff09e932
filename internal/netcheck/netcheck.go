// Package netcheck reports whether the network is reachable.
package netcheck

import (
	"context"
	"fmt"
	"net"
	"time"
)

// Prober checks connectivity once.
type Prober interface {
	Probe(ctx context.Context) error
}

// DefaultAddress is a public DNS resolver reachable from most networks.
const DefaultAddress = "1.1.1.1:53"

const defaultTimeout = 3 * time.Second

// Dialer probes connectivity by opening a TCP connection to Address.
type Dialer struct {
	Address string
	Timeout time.Duration
}

var _ Prober = Dialer{}

// Probe implements Prober.
func (d Dialer) Probe(ctx context.Context) error {
	addr := d.Address
	if addr == "" {
		addr = DefaultAddress
	}
	timeout := d.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	dialer := net.Dialer{Timeout: timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("probe %s: %w", addr, err)
	}
	_ = conn.Close()
	return nil
}

package netcheck

import (
	"context"
	"net"
	"testing"
	"time"
)

func TestDialer_ProbeReachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	t.Cleanup(func() { _ = ln.Close() })
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			_ = conn.Close()
		}
	}()

	d := Dialer{Address: ln.Addr().String(), Timeout: time.Second}
	if err := d.Probe(context.Background()); err != nil {
		t.Fatalf("Probe returned error: %v", err)
	}
}

func TestDialer_ProbeUnreachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	addr := ln.Addr().String()
	_ = ln.Close()

	d := Dialer{Address: addr, Timeout: time.Second}
	if err := d.Probe(context.Background()); err == nil {
		t.Fatalf("Probe returned nil error for closed port")
	}
}

func TestDialer_ProbeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := (Dialer{Address: "127.0.0.1:9"}).Probe(ctx); err == nil {
		t.Fatalf("Probe returned nil error for cancelled context")
	}
}

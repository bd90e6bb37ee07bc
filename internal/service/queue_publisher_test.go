package service

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/iliyamo/festival-manager/internal/logging"
)

// silentBroker accepts TCP connections and never answers the AMQP handshake.
func silentBroker(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	var (
		mu    sync.Mutex
		conns []net.Conn
	)
	go func() {
		for {
			c, err := ln.Accept()
			if err != nil {
				return
			}
			mu.Lock()
			conns = append(conns, c)
			mu.Unlock()
		}
	}()
	t.Cleanup(func() {
		ln.Close()
		mu.Lock()
		defer mu.Unlock()
		for _, c := range conns {
			c.Close()
		}
	})
	return "amqp://guest:guest@" + ln.Addr().String() + "/"
}

func TestAMQPPublisherSilentBroker(t *testing.T) {
	url := silentBroker(t)

	t.Run("DialTimeout", func(t *testing.T) {
		p := NewAMQPPublisher(url, logging.Discard())
		p.DialTimeout = 300 * time.Millisecond

		start := time.Now()
		err := p.PublishRecordCreated(context.Background(), NewRecordCreated("test", 1, nil))
		if err == nil {
			t.Fatal("expected an error from a broker that never answers")
		}
		if elapsed := time.Since(start); elapsed > 2*time.Second {
			t.Errorf("publish took %s, want it bounded by the dial timeout", elapsed)
		}
	})

	t.Run("ContextDeadline", func(t *testing.T) {
		p := NewAMQPPublisher(url, logging.Discard())

		ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
		defer cancel()
		start := time.Now()
		if err := p.PublishRecordCreated(ctx, NewRecordCreated("test", 1, nil)); err == nil {
			t.Fatal("expected an error from a broker that never answers")
		}
		if elapsed := time.Since(start); elapsed > DefaultDialTimeout {
			t.Errorf("publish took %s, want it bounded by the context deadline", elapsed)
		}
	})

	t.Run("ExpiredContext", func(t *testing.T) {
		p := NewAMQPPublisher(url, logging.Discard())
		ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
		defer cancel()
		if err := p.PublishRecordCreated(ctx, NewRecordCreated("test", 1, nil)); err == nil {
			t.Error("expected the expired deadline to be reported")
		}
	})
}

package maps

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"chimney_site_backend/platform/logger"
)

func waitForState(t *testing.T, p *ClientProvider, want InitState) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if p.State() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("provider did not reach state %s (current: %s)", want, p.State())
}

func TestProviderResolvesToReady(t *testing.T) {
	log := logger.New("development")
	client := NewClient("key", "us", log)

	p := NewClientProvider(func() (*Client, error) { return client, nil }, log)
	p.Resolve(context.Background())

	waitForState(t, p, StateReady)
	got, ok := p.Get()
	if !ok || got != client {
		t.Fatal("expected resolved client")
	}
}

func TestProviderWithoutConfigurationFails(t *testing.T) {
	log := logger.New("development")

	p := NewClientProvider(func() (*Client, error) { return nil, nil }, log)
	p.Resolve(context.Background())

	waitForState(t, p, StateFailed)
	if _, ok := p.Get(); ok {
		t.Fatal("expected no client from a failed provider")
	}
}

func TestProviderRetriesTransientErrors(t *testing.T) {
	log := logger.New("development")
	client := NewClient("key", "us", log)

	var attempts atomic.Int64
	p := NewClientProvider(func() (*Client, error) {
		if attempts.Add(1) < 3 {
			return nil, errors.New("not loaded yet")
		}
		return client, nil
	}, log)
	p.baseDelay = time.Millisecond
	p.Resolve(context.Background())

	waitForState(t, p, StateReady)
	if attempts.Load() != 3 {
		t.Fatalf("expected 3 resolution attempts, got %d", attempts.Load())
	}
}

func TestProviderGivesUpAfterMaxAttempts(t *testing.T) {
	log := logger.New("development")

	p := NewClientProvider(func() (*Client, error) {
		return nil, errors.New("permanently broken")
	}, log)
	p.baseDelay = time.Millisecond
	p.Resolve(context.Background())

	waitForState(t, p, StateFailed)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
)

// pingTimeout bounds a single health ping.
const pingTimeout = 5 * time.Second

// StoreHealthChecker pings the user store on a fixed interval and keeps the
// latest result. Subscribers are notified whenever the health flips.
type StoreHealthChecker struct {
	store    Store
	interval time.Duration

	mu          sync.RWMutex
	healthy     bool
	checked     bool
	subscribers []func(healthy bool)

	logger *logger.Logger
}

// NewStoreHealthChecker returns a checker for s. It reports unhealthy until
// the first check completes.
func NewStoreHealthChecker(s Store, interval time.Duration, logger *logger.Logger) *StoreHealthChecker {
	return &StoreHealthChecker{
		store:    s,
		interval: interval,
		logger:   logger,
	}
}

// Subscribe registers fn to be called with the new state on every health
// transition, including the first check. fn runs on the checker goroutine.
func (c *StoreHealthChecker) Subscribe(fn func(healthy bool)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subscribers = append(c.subscribers, fn)
}

// Healthy reports the result of the most recent check.
func (c *StoreHealthChecker) Healthy() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.healthy
}

// Run checks immediately and then every interval until ctx is cancelled.
func (c *StoreHealthChecker) Run(ctx context.Context) {
	c.logger.Info().Dur("interval", c.interval).Msg("store health checker started")

	c.Check(ctx)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.logger.Info().Msg("store health checker stopped")
			return
		case <-ticker.C:
			c.Check(ctx)
		}
	}
}

// Check pings the store once, records the result, and notifies subscribers
// if the state changed. It returns the new state.
func (c *StoreHealthChecker) Check(ctx context.Context) bool {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	err := c.store.Ping(pingCtx)
	healthy := err == nil

	c.mu.Lock()
	changed := !c.checked || c.healthy != healthy
	c.healthy = healthy
	c.checked = true
	subscribers := append([]func(bool){}, c.subscribers...)
	c.mu.Unlock()

	if !changed {
		return healthy
	}

	if healthy {
		c.logger.Info().Msg("store is reachable")
	} else {
		c.logger.Err(err).Str("class", c.store.Classify(err).String()).Msg("store is unreachable")
	}

	for _, notify := range subscribers {
		notify(healthy)
	}

	return healthy
}

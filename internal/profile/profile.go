package profile

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// Profile is the configuration to start the main server.
type Profile struct {
	// Mode can be "prod" or "dev"
	Mode string
	// Addr is the binding address for the server
	Addr string
	// Port is the binding port for the server
	Port int
	// Timezone is the IANA location used to anchor relative dates
	Timezone string
	// Version is the current version of the server
	Version string

	// MaxConcurrentParses bounds parse requests running at once
	MaxConcurrentParses int64
	// RateLimitPerSecond is the per-client request budget
	RateLimitPerSecond float64
	// RateLimitBurst is the per-client burst allowance
	RateLimitBurst int
	// ShutdownTimeout bounds graceful shutdown
	ShutdownTimeout time.Duration
}

func (p *Profile) IsDev() bool {
	return p.Mode != "prod"
}

// ListenAddr returns the host:port the server binds to.
func (p *Profile) ListenAddr() string {
	return fmt.Sprintf("%s:%d", p.Addr, p.Port)
}

// Validate normalizes the profile and rejects unusable values. The
// profile is populated by the flag/env binding in cmd; Validate only
// fills the defaults a zero value needs to be servable.
func (p *Profile) Validate() error {
	if p.Mode != "dev" && p.Mode != "prod" {
		p.Mode = "dev"
	}
	if p.Timezone == "" {
		p.Timezone = "Local"
	}

	if p.Port < 0 || p.Port > 65535 {
		return errors.Errorf("invalid port %d", p.Port)
	}

	if _, err := time.LoadLocation(p.Timezone); err != nil {
		return errors.Wrapf(err, "unknown timezone %q", p.Timezone)
	}

	if p.MaxConcurrentParses <= 0 {
		p.MaxConcurrentParses = 16
	}
	if p.RateLimitPerSecond <= 0 {
		p.RateLimitPerSecond = 10
	}
	if p.RateLimitBurst <= 0 {
		p.RateLimitBurst = 20
	}
	if p.ShutdownTimeout <= 0 {
		p.ShutdownTimeout = 10 * time.Second
	}

	return nil
}

// Location resolves the configured timezone. Validate must have accepted
// the profile first.
func (p *Profile) Location() *time.Location {
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/teuslab/publishing-api/internal/core/domain"
)

// loginThrottle wraps an optional LoginLimiter. A nil limiter disables
// throttling. A limiter outage fails open, an unavailable Redis must never
// lock out logins.
type loginThrottle struct {
	limiter LoginLimiter
	log     zerolog.Logger
}

func (t loginThrottle) check(ctx context.Context, email string) error {
	if t.limiter == nil {
		return nil
	}
	ok, err := t.limiter.Allow(ctx, email)
	if err != nil {
		t.log.Warn().Err(err).Msg("login limiter unavailable, allowing attempt")
		return nil
	}
	if !ok {
		return domain.ErrTooManyAttempts
	}
	return nil
}

func (t loginThrottle) fail(ctx context.Context, email string) {
	if t.limiter == nil {
		return
	}
	if err := t.limiter.RecordFailure(ctx, email); err != nil {
		t.log.Warn().Err(err).Msg("failed to record login failure")
	}
}

func (t loginThrottle) reset(ctx context.Context, email string) {
	if t.limiter == nil {
		return
	}
	if err := t.limiter.Reset(ctx, email); err != nil {
		t.log.Warn().Err(err).Msg("failed to reset login counter")
	}
}

package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"elhamas/internal/adapters/observability"
)

// SafeFetch runs fn for a public read. When the datastore is not configured,
// fn fails, or fn panics, the failure is logged and fallback is returned; the
// caller never sees an error.
func SafeFetch[T any](ctx context.Context, configured bool, op string, fn func(context.Context) (T, error), fallback T) (out T) {
	if !configured {
		observability.ObserveFallback(op, "unconfigured")
		log.Debug().Str("op", op).Str("reason", "unconfigured").Msg("safe fetch fallback")
		return fallback
	}
	defer func() {
		if r := recover(); r != nil {
			observability.ObserveFallback(op, "panic")
			log.Error().Str("op", op).Str("reason", "panic").Str("panic", fmt.Sprint(r)).Msg("safe fetch fallback")
			out = fallback
		}
	}()
	v, err := fn(ctx)
	if err != nil {
		observability.ObserveFallback(op, "error")
		log.Error().Err(err).Str("op", op).Str("reason", "error").Msg("safe fetch fallback")
		return fallback
	}
	return v
}

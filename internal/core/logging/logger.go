package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Install makes l the global logger, with ContextHook attached so events
// logged with .Ctx(ctx) carry the operation and flow id.
func Install(l zerolog.Logger) {
	log.Logger = l.Hook(ContextHook{})
}

// Component creates a new logger with a component identifier.
// Uses the "cmp" key for consistency with zerolog conventions.
func Component(name string) zerolog.Logger {
	return log.With().Str("cmp", name).Logger()
}

// Package api provides interfaces for dependency injection
package api

import (
	"context"
	"log/slog"

	"github.com/ssargent/mavcodec/pkg/codec"
)

// DialectFactory resolves the configured dialect
type DialectFactory interface {
	// CreateDialect returns the named dialect extended with the messages of
	// the given XML definition files
	CreateDialect(name string, definitions []string) (*codec.Dialect, error)
}

// ServerStarter defines the interface for starting the API server
type ServerStarter interface {
	// StartServer serves the API until ctx is cancelled
	StartServer(ctx context.Context, dialect *codec.Dialect, config ServerConfig, logger *slog.Logger) error
}

// ServerFactory creates server instances
type ServerFactory interface {
	// CreateServerStarter creates a server starter
	CreateServerStarter() ServerStarter
}

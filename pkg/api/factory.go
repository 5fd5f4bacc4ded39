// Package api provides factory implementations for dependency injection
package api

import (
	"context"
	"log/slog"

	"github.com/ssargent/mavcodec/pkg/codec"
	"github.com/ssargent/mavcodec/pkg/dialect"
)

// DefaultDialectFactory is the default implementation of DialectFactory
type DefaultDialectFactory struct{}

// NewDialectFactory creates a new dialect factory
func NewDialectFactory() DialectFactory {
	return &DefaultDialectFactory{}
}

// CreateDialect loads a built-in dialect and merges extra definitions
func (f *DefaultDialectFactory) CreateDialect(name string, definitions []string) (*codec.Dialect, error) {
	return dialect.Load(name, definitions)
}

// DefaultServerFactory is the default implementation of ServerFactory
type DefaultServerFactory struct{}

// NewServerFactory creates a new server factory
func NewServerFactory() ServerFactory {
	return &DefaultServerFactory{}
}

// CreateServerStarter creates a server starter
func (f *DefaultServerFactory) CreateServerStarter() ServerStarter {
	return &DefaultServerStarter{}
}

// DefaultServerStarter is the default implementation of ServerStarter
type DefaultServerStarter struct{}

// StartServer starts the API server with the given configuration
func (s *DefaultServerStarter) StartServer(ctx context.Context, dialect *codec.Dialect, config ServerConfig, logger *slog.Logger) error {
	return StartServer(ctx, dialect, config, logger)
}

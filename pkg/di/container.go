// Package di provides dependency injection container
package di

import (
	"github.com/ssargent/mavcodec/pkg/api" //nolint:depguard
)

// Container holds all the dependencies for the application
type Container struct {
	dialectFactory api.DialectFactory
	serverFactory  api.ServerFactory
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	return &Container{
		dialectFactory: api.NewDialectFactory(),
		serverFactory:  api.NewServerFactory(),
	}
}

// GetDialectFactory returns the dialect factory
func (c *Container) GetDialectFactory() api.DialectFactory {
	return c.dialectFactory
}

// GetServerFactory returns the server factory
func (c *Container) GetServerFactory() api.ServerFactory {
	return c.serverFactory
}

// SetDialectFactory allows overriding the dialect factory (for testing)
func (c *Container) SetDialectFactory(factory api.DialectFactory) {
	c.dialectFactory = factory
}

// SetServerFactory allows overriding the server factory (for testing)
func (c *Container) SetServerFactory(factory api.ServerFactory) {
	c.serverFactory = factory
}

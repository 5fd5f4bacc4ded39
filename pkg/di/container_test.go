package di

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ssargent/mavcodec/pkg/api"
)

type stubServerFactory struct{}

func (stubServerFactory) CreateServerStarter() api.ServerStarter { return nil }

func TestContainer(t *testing.T) {
	c := NewContainer()
	assert.IsType(t, &api.DefaultDialectFactory{}, c.GetDialectFactory())
	assert.IsType(t, &api.DefaultServerFactory{}, c.GetServerFactory())

	c.SetServerFactory(stubServerFactory{})
	assert.Equal(t, stubServerFactory{}, c.GetServerFactory())

	c.SetDialectFactory(nil)
	assert.Nil(t, c.GetDialectFactory())
}

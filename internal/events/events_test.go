package events

import (
	"context"
	"errors"
	"testing"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tastyhub/dashboard-manager/internal/dependency/mocks"
	"github.com/tastyhub/dashboard-manager/internal/entity"
)

func TestHandleInvalidatesCache(t *testing.T) {
	c := mocks.NewCache(t)
	c.On("Invalidate", mock.Anything).Return(nil).Once()

	s := NewSubscriber(nil, &Config{}, c)
	s.handle(context.Background(), &nats.Msg{Data: []byte(`{"kind":"order","entity_id":"42","at":1710500000}`)})
}

func TestHandleInvalidJSON(t *testing.T) {
	c := mocks.NewCache(t)

	s := NewSubscriber(nil, &Config{}, c)
	s.handle(context.Background(), &nats.Msg{Data: []byte(`not json`)})
	c.AssertNotCalled(t, "Invalidate", mock.Anything)
}

func TestHandleCacheError(t *testing.T) {
	c := mocks.NewCache(t)
	c.On("Invalidate", mock.Anything).Return(errors.New("redis down")).Once()

	s := NewSubscriber(nil, &Config{}, c)
	s.handle(context.Background(), &nats.Msg{Data: []byte(`{"kind":"seed"}`)})
}

func TestHandleWithoutCache(t *testing.T) {
	s := NewSubscriber(nil, &Config{}, nil)
	assert.NotPanics(t, func() {
		s.handle(context.Background(), &nats.Msg{Data: []byte(`{"kind":"order"}`)})
	})
	assert.NoError(t, s.Start(context.Background()))
	assert.Nil(t, s.sub)
}

func TestDisabled(t *testing.T) {
	nc, err := Connect(&Config{})
	assert.NoError(t, err)
	assert.Nil(t, nc)

	p := NewPublisher(nil, &Config{})
	assert.Equal(t, DefaultSubject, p.subject)
	assert.NoError(t, p.Publish(context.Background(), entity.ChangeEvent{Kind: "seed"}))

	s := NewSubscriber(nil, &Config{Subject: "custom.changes"}, mocks.NewCache(t))
	assert.Equal(t, "custom.changes", s.subject)
	assert.NoError(t, s.Start(context.Background()))
	s.Stop()
}

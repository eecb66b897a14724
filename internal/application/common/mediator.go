package common

import (
	"context"
	"fmt"
	"reflect"
	"sync"
)

// Request is a command or query dispatched through the mediator.
type Request interface{}

// Response is the result of handling a request.
type Response interface{}

// RequestHandler handles one request type.
type RequestHandler interface {
	Handle(ctx context.Context, request Request) (Response, error)
}

// Mediator routes each request to the single handler registered for its
// concrete type. Registration happens once at wiring time; Send is safe
// for concurrent use.
type Mediator interface {
	Send(ctx context.Context, request Request) (Response, error)
	Register(requestType reflect.Type, handler RequestHandler) error
}

// RegisterHandler registers handler for the request type T.
func RegisterHandler[T Request](m Mediator, handler RequestHandler) error {
	var zero T
	return m.Register(reflect.TypeOf(zero), handler)
}

func NewMediator() Mediator {
	return &mediator{handlers: make(map[reflect.Type]RequestHandler)}
}

type mediator struct {
	mu       sync.RWMutex
	handlers map[reflect.Type]RequestHandler
}

func (m *mediator) Register(requestType reflect.Type, handler RequestHandler) error {
	if requestType == nil || handler == nil {
		return fmt.Errorf("mediator registration requires a request type and a handler")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, taken := m.handlers[requestType]; taken {
		return fmt.Errorf("duplicate handler registration for %s", requestType)
	}
	m.handlers[requestType] = handler
	return nil
}

func (m *mediator) Send(ctx context.Context, request Request) (Response, error) {
	if request == nil {
		return nil, fmt.Errorf("cannot dispatch a nil request")
	}

	m.mu.RLock()
	handler, ok := m.handlers[reflect.TypeOf(request)]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no handler registered for %s", reflect.TypeOf(request))
	}

	return handler.Handle(ctx, request)
}

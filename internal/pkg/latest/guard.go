// Package latest implements latest-request-wins bookkeeping for asynchronous loads.
package latest

import (
	"sync"

	"github.com/rs/xid"
)

// Guard hands out tokens for in-flight requests. Only the result of the request
// holding the most recently issued token is meant to be kept; results of older
// requests are discarded by their callers once IsLatest reports false.
type Guard struct {
	mu      sync.Mutex
	current xid.ID
}

func NewGuard() *Guard {
	return &Guard{}
}

// Begin issues a new token, superseding every token issued before it.
func (g *Guard) Begin() xid.ID {
	token := xid.New()

	g.mu.Lock()
	g.current = token
	g.mu.Unlock()

	return token
}

// IsLatest reports whether token is still the most recently issued one.
func (g *Guard) IsLatest(token xid.ID) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return !token.IsNil() && g.current == token
}

// Do runs fn under a fresh token and reports whether its result is still
// current when fn returns. Callers keep the result only when current is true.
func Do[T any](g *Guard, fn func() (T, error)) (result T, current bool, err error) {
	token := g.Begin()
	result, err = fn()
	return result, g.IsLatest(token), err
}

package query

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/hypershape/hypershape/errs"
	"github.com/hypershape/hypershape/shape"
)

// Session is a private, single-writer store mapping auto-generated names
// (shape1, shape2, ...) to shapes created by `create` requests (spec
// section 3, "Session store"). Session.ID is a random UUID so a hosting
// façade can key session storage without risking collisions across
// restarts or processes.
//
// Every method takes the session's mutex, so concurrent calls on one
// Session do not race on its map. The mutex does not order requests: which
// of two concurrent creates receives the lower name is not defined.
type Session struct {
	ID      string
	mu      sync.Mutex
	shapes  map[string]shape.Shape
	order   []string
	counter int
}

// NewSession allocates a fresh, empty session with a random UUID identity.
func NewSession() *Session {
	return &Session{
		ID:     uuid.NewString(),
		shapes: make(map[string]shape.Shape),
	}
}

// create inserts s under a fresh auto-generated name and returns it; side
// effect is the only state mutation the dispatcher performs (spec section
// 4.4: "create inserts into the session store and increments the counter").
func (sess *Session) create(s shape.Shape) string {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.counter++
	name := fmt.Sprintf("shape%d", sess.counter)
	sess.shapes[name] = s
	sess.order = append(sess.order, name)
	return name
}

// Get looks up a previously created shape by its auto-generated name.
func (sess *Session) Get(name string) (shape.Shape, error) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	s, ok := sess.shapes[name]
	if !ok {
		return nil, errs.NewQueryError("name", name, "no shape named %q in this session", name)
	}
	return s, nil
}

// Names returns every created shape's name in creation order (the total
// order `create` establishes for later `list` calls, per spec section 5).
func (sess *Session) Names() []string {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	out := make([]string, len(sess.order))
	copy(out, sess.order)
	return out
}

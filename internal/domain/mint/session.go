package mint

import (
	"context"

	"github.com/nootlab/nootmint/pkg/xcontext"
	"github.com/puzpuzpuz/xsync"
)

type ControllerFactory func(ctx context.Context, account Account) Controller

// SessionTable keeps one controller per connected account.
type SessionTable struct {
	rootCtx  context.Context
	factory  ControllerFactory
	sessions *xsync.MapOf[string, Controller]
}

func NewSessionTable(ctx context.Context, factory ControllerFactory) *SessionTable {
	return &SessionTable{
		rootCtx:  ctx,
		factory:  factory,
		sessions: xsync.NewMapOf[Controller](),
	}
}

// Get returns the controller of account, creating and loading it on first use. Sessions without
// an account are not kept.
func (t *SessionTable) Get(ctx context.Context, account Account) Controller {
	if !account.IsPresent() {
		c := t.factory(t.rootCtx, account)
		_ = c.Load(ctx)
		c.Close()
		return c
	}

	key := account.String()
	if c, ok := t.sessions.Load(key); ok {
		return c
	}

	c := t.factory(t.rootCtx, account)
	actual, loaded := t.sessions.LoadOrStore(key, c)
	if loaded {
		c.Close()
		return actual
	}

	// Read failures leave the session unloaded, they are already logged by the controller.
	_ = actual.Load(ctx)
	return actual
}

// Reload drops the session of account and starts a fresh one. Transactions submitted by the old
// session are no longer observed.
func (t *SessionTable) Reload(ctx context.Context, account Account) Controller {
	if old, ok := t.sessions.LoadAndDelete(account.String()); ok {
		xcontext.Logger(ctx).Debugf("Discarding mint session of %s", account)
		old.Close()
	}

	return t.Get(ctx, account)
}

func (t *SessionTable) Len() int {
	return t.sessions.Size()
}

func (t *SessionTable) Close() {
	t.sessions.Range(func(key string, c Controller) bool {
		t.sessions.Delete(key)
		c.Close()
		return true
	})
}

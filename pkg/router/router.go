package router

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// MiddlewareFunc runs before the handler. Returning an error skips the handler.
type MiddlewareFunc func(ctx context.Context) (context.Context, error)

// CloserFunc runs after the response is written, with the handler error available through
// xcontext.Error.
type CloserFunc func(ctx context.Context)

type Router struct {
	rootCtx context.Context
	inner   chi.Router

	befores []MiddlewareFunc
	closers []CloserFunc
}

// New creates a router whose handlers inherit the logger and configs of ctx.
func New(ctx context.Context) *Router {
	return &Router{
		rootCtx: ctx,
		inner:   chi.NewRouter(),
	}
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.inner.Get(pattern, wrapHandler(r, http.MethodGet, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.inner.Post(pattern, wrapHandler(r, http.MethodPost, handler))
}

func (r *Router) Before(middleware MiddlewareFunc) {
	r.befores = append(r.befores, middleware)
}

func (r *Router) AddCloser(closer CloserFunc) {
	r.closers = append(r.closers, closer)
}

// Branch returns a router sharing the routes of r. Middlewares added to the branch do not
// affect r.
func (r *Router) Branch() *Router {
	return &Router{
		rootCtx: r.rootCtx,
		inner:   r.inner.With(),
		befores: append([]MiddlewareFunc{}, r.befores...),
		closers: append([]CloserFunc{}, r.closers...),
	}
}

// Use adds a plain net/http middleware, e.g. CORS.
func (r *Router) Use(middlewares ...func(http.Handler) http.Handler) {
	r.inner.Use(middlewares...)
}

func (r *Router) Handle(pattern string, handler http.Handler) {
	r.inner.Handle(pattern, handler)
}

func (r *Router) Handler() http.Handler {
	return r.inner
}

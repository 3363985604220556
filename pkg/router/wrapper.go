package router

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mitchellh/mapstructure"
	"github.com/nootlab/nootmint/pkg/errorx"
	"github.com/nootlab/nootmint/pkg/xcontext"
)

func wrapHandler[Request, Response any](
	router *Router,
	method string,
	handler HandlerFunc[Request, Response],
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := xcontext.WithLogger(r.Context(), xcontext.Logger(router.rootCtx))
		ctx = xcontext.WithConfigs(ctx, xcontext.Configs(router.rootCtx))
		ctx = xcontext.WithHTTPRequest(ctx, r)

		var err error
		for _, before := range router.befores {
			next, berr := before(ctx)
			if berr != nil {
				err = berr
				break
			}
			ctx = next
		}

		var resp *Response
		if err == nil {
			var req Request
			if err = bindRequest(r, method, &req); err == nil {
				resp, err = handler(ctx, &req)
			}
		}

		if err != nil {
			ctx = xcontext.WithError(ctx, err)
			if werr := WriteJson(w, newErrorResponse(err)); werr != nil {
				xcontext.Logger(ctx).Errorf("Cannot write the response: %v", werr)
			}
		} else if werr := WriteJson(w, newResponse(resp)); werr != nil {
			xcontext.Logger(ctx).Errorf("Cannot write the response: %v", werr)
		}

		for _, closer := range router.closers {
			closer(ctx)
		}
	}
}

// bindRequest fills req from the query string and path parameters for GET, or from the JSON body
// for POST. Fields are matched by their json tag.
func bindRequest(r *http.Request, method string, req any) error {
	switch method {
	case http.MethodGet:
		params := map[string]any{}
		for key, values := range r.URL.Query() {
			if len(values) == 1 {
				params[key] = values[0]
			} else {
				params[key] = values
			}
		}

		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			for i, key := range rctx.URLParams.Keys {
				params[key] = rctx.URLParams.Values[i]
			}
		}

		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			TagName:          "json",
			WeaklyTypedInput: true,
			Result:           req,
		})
		if err != nil {
			return err
		}

		if err := decoder.Decode(params); err != nil {
			return errorx.New(errorx.BadRequest, "Invalid query: %v", err)
		}

	case http.MethodPost:
		err := json.NewDecoder(r.Body).Decode(req)
		if err != nil && !errors.Is(err, io.EOF) {
			return errorx.New(errorx.BadRequest, "Invalid body: %v", err)
		}

	default:
		return errorx.New(errorx.BadRequest, "Unsupported method %s", method)
	}

	return nil
}

// Param returns a path parameter of the current request.
func Param(ctx context.Context, key string) string {
	r := xcontext.HTTPRequest(ctx)
	if r == nil {
		return ""
	}

	return chi.URLParam(r, key)
}

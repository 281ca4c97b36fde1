package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-recipe-atlas/internal/middlewares"
	"github.com/sbilibin2017/gw-recipe-atlas/internal/models"
	"github.com/stretchr/testify/require"
)

var (
	adminSession = models.LoggedIn(models.User{ID: "1", Username: "admin", Role: models.RoleAdmin})
	userSession  = models.LoggedIn(models.User{ID: "2", Username: "user", Role: models.RoleUser})
)

type requestOpts struct {
	body    string
	session models.AuthState
	params  map[string]string
}

func newRequest(method, target string, opts requestOpts) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(opts.body))
	req.Header.Set("Content-Type", "application/json")

	rctx := chi.NewRouteContext()
	for k, v := range opts.params {
		rctx.URLParams.Add(k, v)
	}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = middlewares.WithSession(ctx, opts.session)
	return req.WithContext(ctx)
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp.Error
}

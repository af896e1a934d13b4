package requestid_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justerika/signup-gateway/pkg/requestid"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	serve := func(inbound string) (*httptest.ResponseRecorder, string) {
		var fromCtx string
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fromCtx = requestid.FromContext(r.Context())
		})

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		if inbound != "" {
			r.Header.Set(requestid.Header, inbound)
		}
		w := httptest.NewRecorder()
		requestid.Middleware(next).ServeHTTP(w, r)
		return w, fromCtx
	}

	t.Run("generates uuid when absent", func(t *testing.T) {
		t.Parallel()

		w, fromCtx := serve("")
		echoed := w.Header().Get(requestid.Header)
		require.NotEmpty(t, echoed)
		assert.Equal(t, echoed, fromCtx)
		_, err := uuid.Parse(echoed)
		assert.NoError(t, err)
	})

	t.Run("reuses valid inbound id", func(t *testing.T) {
		t.Parallel()

		w, fromCtx := serve("client-supplied_42")
		assert.Equal(t, "client-supplied_42", w.Header().Get(requestid.Header))
		assert.Equal(t, "client-supplied_42", fromCtx)
	})

	t.Run("replaces malformed inbound id", func(t *testing.T) {
		t.Parallel()

		w, _ := serve("bad id with spaces!")
		echoed := w.Header().Get(requestid.Header)
		assert.NotEqual(t, "bad id with spaces!", echoed)
		_, err := uuid.Parse(echoed)
		assert.NoError(t, err)
	})

	t.Run("replaces oversized inbound id", func(t *testing.T) {
		t.Parallel()

		w, _ := serve(strings.Repeat("a", 200))
		_, err := uuid.Parse(w.Header().Get(requestid.Header))
		assert.NoError(t, err)
	})
}

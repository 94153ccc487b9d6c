package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func newEngine(mw gin.HandlerFunc, h gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw)
	r.Any("/x", h)
	return r
}

func ok(c *gin.Context) { c.String(http.StatusOK, "ok") }

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLimits(t *testing.T) {
	cases := []struct {
		name  string
		mw    gin.HandlerFunc
		reqs  []*http.Request
		codes []int
	}{
		{
			name: "global bucket",
			mw:   RateLimit(0.001, 1),
			reqs: []*http.Request{
				httptest.NewRequest(http.MethodGet, "/x", nil),
				httptest.NewRequest(http.MethodGet, "/x", nil),
			},
			codes: []int{200, 429},
		},
		{
			name: "per ip bucket",
			mw:   RateLimitPerIP(0.001, 1, time.Minute),
			reqs: []*http.Request{
				fromIP("10.0.0.1"),
				fromIP("10.0.0.1"),
				fromIP("10.0.0.2"),
			},
			codes: []int{200, 429, 200},
		},
		{
			name: "declared body too large",
			mw:   MaxBodyBytes(8),
			reqs: []*http.Request{
				httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{"a":1}`)),
				httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{"name":"far too long"}`)),
			},
			codes: []int{200, 413},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newEngine(tc.mw, ok)
			for i, req := range tc.reqs {
				w := serve(r, req)
				require.Equal(t, tc.codes[i], w.Code, "request %d", i)
				if tc.codes[i] != 200 {
					require.Equal(t, int64(tc.codes[i]), gjson.Get(w.Body.String(), "code").Int())
				}
			}
		})
	}
}

func fromIP(ip string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.RemoteAddr = ip + ":4000"
	return req
}

func TestMaxBodyBytesStreamed(t *testing.T) {
	var readErr error
	r := newEngine(MaxBodyBytes(8), func(c *gin.Context) {
		_, readErr = io.ReadAll(c.Request.Body)
		c.Status(http.StatusNoContent)
	})
	req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{"name":"far too long"}`))
	req.ContentLength = -1

	serve(r, req)
	var tooLarge *http.MaxBytesError
	require.ErrorAs(t, readErr, &tooLarge)
	require.Equal(t, int64(8), tooLarge.Limit)
}

func TestTimeout(t *testing.T) {
	r := newEngine(Timeout(10*time.Millisecond), func(c *gin.Context) {
		<-c.Request.Context().Done()
	})
	w := serve(r, httptest.NewRequest(http.MethodGet, "/x", nil))
	require.Equal(t, 504, w.Code)
	require.Equal(t, "timeout", gjson.Get(w.Body.String(), "msg").String())

	r = newEngine(Timeout(time.Second), ok)
	w = serve(r, httptest.NewRequest(http.MethodGet, "/x", nil))
	require.Equal(t, 200, w.Code)
}

func TestConcurrencyLimit(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	r := newEngine(ConcurrencyLimit(1), func(c *gin.Context) {
		if c.Query("hold") != "" {
			close(entered)
			<-release
		}
		c.Status(http.StatusOK)
	})

	done := make(chan int)
	go func() {
		done <- serve(r, httptest.NewRequest(http.MethodGet, "/x?hold=1", nil)).Code
	}()
	<-entered

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	w := serve(r, httptest.NewRequest(http.MethodGet, "/x", nil).WithContext(ctx))
	require.Equal(t, 429, w.Code)
	require.Equal(t, "server busy", gjson.Get(w.Body.String(), "msg").String())

	close(release)
	require.Equal(t, 200, <-done)
	w = serve(r, httptest.NewRequest(http.MethodGet, "/x", nil))
	require.Equal(t, 200, w.Code)
}

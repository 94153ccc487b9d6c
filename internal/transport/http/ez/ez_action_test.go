package ez

import (
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"myplanetplan-api/internal/core/auth"
	"myplanetplan-api/internal/domain"
)

func TestCode(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: item id", domain.ErrInvalidInput), 400},
		{fmt.Errorf("%w: %q", domain.ErrUnknownDifficulty, "Legendary"), 400},
		{auth.ErrInvalidToken, 401},
		{domain.ErrForbidden, 403},
		{fmt.Errorf("add points: %w", domain.ErrNotFound), 404},
		{errors.Join(domain.ErrConflict, errors.New("UNIQUE constraint failed")), 409},
		{BadRequest("bad"), 400},
		{errors.New("connection reset"), 500},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Code(tc.err), tc.err.Error())
	}
}

func TestFailMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		err  error
		code int
		msg  string
	}{
		{fmt.Errorf("create domain: %w", errors.Join(domain.ErrConflict, errors.New("UNIQUE constraint failed: domains.name"))), 409, "Conflict"},
		{fmt.Errorf("%w: item id", domain.ErrInvalidInput), 400, "Bad Request"},
		{fmt.Errorf("find user: %w", domain.ErrNotFound), 404, "Not Found"},
		{Unauthorized("missing token"), 401, "missing token"},
		{errors.New("dial tcp 10.0.0.5:5432: connection refused"), 500, "Internal Server Error"},
	}
	for _, tc := range cases {
		core, logs := observer.New(zap.DebugLevel)
		e := New(nil, zap.New(core))
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/x", nil)

		e.fail(c, tc.err)

		require.Equal(t, tc.code, w.Code)
		body := gjson.ParseBytes(w.Body.Bytes())
		require.Equal(t, int64(tc.code), body.Get("code").Int())
		require.Equal(t, tc.msg, body.Get("msg").String())
		require.Equal(t, 1, logs.Len())
		require.Equal(t, tc.err.Error(), logs.All()[0].ContextMap()["error"])
	}
}

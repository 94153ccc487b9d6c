// Package ez registers typed request actions on a gin group and maps their
// errors onto the response envelope.
package ez

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"myplanetplan-api/internal/core/auth"
	"myplanetplan-api/internal/domain"
	mdw "myplanetplan-api/internal/transport/http/middleware"
	resp "myplanetplan-api/internal/transport/http/response"
)

type EZ struct {
	g   *gin.RouterGroup
	log *zap.Logger
}

func New(g *gin.RouterGroup, l *zap.Logger) EZ {
	if l == nil {
		l = zap.NewNop()
	}
	return EZ{g: g, log: l}
}

// Binder selects where the input struct is filled from.
type Binder string

const (
	BindJSON    Binder = "json"     // request body
	BindQuery   Binder = "query"    // ?a=b
	BindURI     Binder = "uri"      // :params
	BindURIJSON Binder = "uri+json" // :params, then the body
	BindNone    Binder = "none"
)

// AErr carries an explicit response code past the kind mapping.
type AErr struct {
	Code int
	Msg  string
	Err  error
}

func (e *AErr) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "action error"
}

func (e *AErr) Unwrap() error { return e.Err }

func BadRequest(msg string) error   { return &AErr{Code: resp.CodeBadRequest, Msg: msg} }
func Unauthorized(msg string) error { return &AErr{Code: resp.CodeUnauthorized, Msg: msg} }

// Action is one endpoint: I is bound from the request, O is the data payload.
type Action[I any, O any] struct {
	Method string
	Path   string
	Binder Binder
	// Auth rejects anonymous callers on groups that only run OptionalAuth.
	Auth bool
	// Roles, when set, requires at least one of them.
	Roles   []string
	Handler func(c *gin.Context, a domain.Actor, in *I) (O, error)
}

func RegisterAction[I any, O any](e EZ, a Action[I, O]) {
	h := func(c *gin.Context) {
		actor := mdw.ActorFrom(c)
		if (a.Auth || len(a.Roles) > 0) && actor.Anonymous() {
			resp.Abort(c, resp.CodeUnauthorized, "missing token")
			return
		}
		if len(a.Roles) > 0 && !anyRole(actor, a.Roles) {
			resp.Abort(c, resp.CodeForbidden, "")
			return
		}

		var in I
		if err := bind(c, a.Binder, &in); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				resp.Abort(c, resp.CodePayloadTooLarge, "")
				return
			}
			resp.Abort(c, resp.CodeBadRequest, "invalid request: "+err.Error())
			return
		}

		out, err := a.Handler(c, actor, &in)
		if err != nil {
			e.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, resp.OK(out))
	}

	switch strings.ToUpper(a.Method) {
	case http.MethodGet:
		e.g.GET(a.Path, h)
	case http.MethodPut:
		e.g.PUT(a.Path, h)
	case http.MethodDelete:
		e.g.DELETE(a.Path, h)
	default:
		e.g.POST(a.Path, h)
	}
}

func bind(c *gin.Context, b Binder, in any) error {
	switch b {
	case BindJSON:
		return c.ShouldBindJSON(in)
	case BindQuery:
		return c.ShouldBindQuery(in)
	case BindURI:
		return c.ShouldBindUri(in)
	case BindURIJSON:
		if err := c.ShouldBindUri(in); err != nil {
			return err
		}
		return c.ShouldBindJSON(in)
	}
	return nil
}

func anyRole(a domain.Actor, roles []string) bool {
	for _, r := range roles {
		if a.HasRole(r) {
			return true
		}
	}
	return false
}

// Code maps an error kind to its response code.
func Code(err error) int {
	var ae *AErr
	switch {
	case errors.As(err, &ae):
		return ae.Code
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrUnknownDifficulty):
		return resp.CodeBadRequest
	case errors.Is(err, auth.ErrInvalidToken):
		return resp.CodeUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return resp.CodeForbidden
	case errors.Is(err, domain.ErrNotFound):
		return resp.CodeNotFound
	case errors.Is(err, domain.ErrConflict):
		return resp.CodeConflict
	}
	return resp.CodeServerError
}

// fail writes the code's fixed text; only an AErr message reaches the client.
func (e EZ) fail(c *gin.Context, err error) {
	code := Code(err)
	fields := []zap.Field{
		zap.String("rid", mdw.RequestIDFrom(c)),
		zap.String("path", c.FullPath()),
		zap.Int("code", code),
		zap.Error(err),
	}
	if code >= resp.CodeServerError {
		e.log.Error("request failed", fields...)
		resp.Abort(c, code, "")
		return
	}
	e.log.Debug("request rejected", fields...)
	msg := ""
	var ae *AErr
	if errors.As(err, &ae) {
		msg = ae.Msg
	}
	resp.Abort(c, code, msg)
}

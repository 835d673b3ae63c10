package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/spacehub/booking-portal/internal/core/domain"
	"github.com/spacehub/booking-portal/internal/core/ports"
	"github.com/spacehub/booking-portal/internal/pkg/token"
)

// SessionIdentity is a per-connection identity source the stream signs in to.
type SessionIdentity interface {
	ports.IdentitySource
	SignInWithToken(secret, raw string) error
}

// Session is the lifecycle of one coordinated history session.
type Session interface {
	Start(ctx context.Context)
	Close()
}

// SessionFactory builds a session that reads identities from src and reports
// to view.
type SessionFactory func(src ports.IdentitySource, view ports.HistoryView) Session

// HistoryStreamHandler serves the history page as a server-sent event. Each
// connection gets its own identity source and session.
type HistoryStreamHandler struct {
	newIdentity func() SessionIdentity
	newSession  SessionFactory
	jwtSecret   string
	loginURL    string
	log         zerolog.Logger
}

func NewHistoryStreamHandler(
	newIdentity func() SessionIdentity,
	newSession SessionFactory,
	jwtSecret, loginURL string,
	log zerolog.Logger,
) *HistoryStreamHandler {
	return &HistoryStreamHandler{
		newIdentity: newIdentity,
		newSession:  newSession,
		jwtSecret:   jwtSecret,
		loginURL:    loginURL,
		log:         log,
	}
}

// Stream handles GET /v1/history/stream.
//
// Browsers cannot set headers on EventSource, so the token may also travel in
// the access_token query parameter. The stream carries exactly one event:
// "history" with the caller's records, or "redirect" when no identity could be
// resolved.
//
// @Summary      Stream the caller's booking history
// @Tags         history
// @Produce      text/event-stream
// @Param        access_token  query  string  false  "Bearer token when no Authorization header is sent"
// @Success      200
// @Router       /v1/history/stream [get]
func (h *HistoryStreamHandler) Stream(c echo.Context) error {
	raw, ok := token.FromHeader(c.Request().Header.Get(echo.HeaderAuthorization))
	if !ok {
		raw = c.QueryParam("access_token")
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	view := newSSEView(res, h.loginURL)
	src := h.newIdentity()
	sess := h.newSession(src, view)

	ctx := c.Request().Context()
	sess.Start(ctx)
	defer sess.Close()

	if err := src.SignInWithToken(h.jwtSecret, raw); err != nil {
		h.log.Debug().Err(err).Msg("history stream: sign-in failed")
	}

	select {
	case <-view.done:
	case <-ctx.Done():
	}
	return nil
}

// sseView writes the first result it receives as an event and ignores the
// rest.
type sseView struct {
	res      *echo.Response
	loginURL string
	once     sync.Once
	done     chan struct{}
}

func newSSEView(res *echo.Response, loginURL string) *sseView {
	return &sseView{res: res, loginURL: loginURL, done: make(chan struct{})}
}

func (v *sseView) ShowHistory(h domain.AggregatedHistory) {
	v.emit("history", toHistoryResponse(h))
}

func (v *sseView) RedirectToLogin() {
	v.emit("redirect", errorResponse{Error: "Please sign in to continue.", LoginURL: v.loginURL})
}

func (v *sseView) emit(event string, payload any) {
	v.once.Do(func() {
		defer close(v.done)
		body, err := json.Marshal(payload)
		if err != nil {
			return
		}
		fmt.Fprintf(v.res, "event: %s\ndata: %s\n\n", event, body)
		v.res.Flush()
	})
}

package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/spacehub/booking-portal/internal/core/domain"
	"github.com/spacehub/booking-portal/internal/core/ports"
	"github.com/spacehub/booking-portal/internal/core/service"
	"github.com/spacehub/booking-portal/internal/infrastructure/identity"
	"github.com/spacehub/booking-portal/internal/pkg/token"
)

const streamSecret = "stream-secret"

func newStreamHandler(hist ports.HistoryService) *HistoryStreamHandler {
	return NewHistoryStreamHandler(
		func() SessionIdentity { return identity.NewBroadcaster() },
		func(src ports.IdentitySource, view ports.HistoryView) Session {
			return service.NewSessionCoordinator(src, hist, &stubBookingService{}, view, zerolog.Nop())
		},
		streamSecret,
		"/login",
		zerolog.Nop(),
	)
}

func TestHistoryStreamHandler_EmitsHistory(t *testing.T) {
	e := newEcho()
	h := newStreamHandler(&stubHistoryService{
		loadFn: func(_ context.Context, id domain.Identity) (domain.AggregatedHistory, error) {
			hist := domain.NewAggregatedHistory()
			hist.Rooms = []domain.RoomBooking{{ID: "r1", RoomID: "Everest", Owner: id.Owner()}}
			return hist, nil
		},
	})

	raw, err := token.Issue(streamSecret, &domain.User{Email: "ana@example.com", Role: domain.RoleMember}, time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/history/stream?access_token="+raw, nil)
	rec := httptest.NewRecorder()
	if err := h.Stream(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	body := rec.Body.String()
	if !strings.HasPrefix(body, "event: history\n") {
		t.Fatalf("expected history event, got %q", body)
	}
	if !strings.Contains(body, `"roomId":"Everest"`) {
		t.Fatalf("expected room in payload, got %q", body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("unexpected content type %q", ct)
	}
}

func TestHistoryStreamHandler_InvalidTokenRedirects(t *testing.T) {
	e := newEcho()
	h := newStreamHandler(&stubHistoryService{
		loadFn: func(context.Context, domain.Identity) (domain.AggregatedHistory, error) {
			t.Fatalf("history must not load without identity")
			return domain.AggregatedHistory{}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/history/stream", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec := httptest.NewRecorder()
	if err := h.Stream(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	body := rec.Body.String()
	if !strings.HasPrefix(body, "event: redirect\n") || !strings.Contains(body, `"login_url":"/login"`) {
		t.Fatalf("expected redirect event, got %q", body)
	}
}

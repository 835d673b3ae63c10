package notify

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacehub/booking-portal/internal/core/domain"
)

func relay(t *testing.T, status int, body string, got *domain.Notification) *EmailClient {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, pathSendEmail, r.URL.Path)
		if got != nil {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(got))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return NewEmailClient(srv.URL, time.Second)
}

func TestEmailClient_Send(t *testing.T) {
	var got domain.Notification
	c := relay(t, http.StatusOK, `{"success":true}`, &got)

	n := domain.Notification{To: "ana@example.com", Subject: "Booking Confirmation for PC 02", Message: "hi"}
	require.NoError(t, c.Send(context.Background(), n))
	assert.Equal(t, n, got)
}

func TestEmailClient_Send_RelayReportsFailure(t *testing.T) {
	c := relay(t, http.StatusOK, `{"success":false,"message":"mailbox full"}`, nil)

	err := c.Send(context.Background(), domain.Notification{To: "ana@example.com"})
	require.ErrorIs(t, err, ErrDeliveryFailed)
	assert.Contains(t, err.Error(), "mailbox full")
}

func TestEmailClient_Send_ErrorStatus(t *testing.T) {
	c := relay(t, http.StatusInternalServerError, `{"success":false,"message":"smtp down"}`, nil)

	err := c.Send(context.Background(), domain.Notification{To: "ana@example.com"})
	require.ErrorIs(t, err, ErrDeliveryFailed)
}

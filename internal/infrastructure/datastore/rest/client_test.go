package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacehub/booking-portal/internal/core/domain"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL, Timeout: time.Second}, zerolog.Nop())
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestClient_CreateWorkstationBooking_Acknowledged(t *testing.T) {
	var got map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, pathWorkstations, r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeJSON(w, http.StatusOK, `{"acknowledged":true,"insertedId":"665f1c"}`)
	})

	ack, err := c.CreateWorkstationBooking(context.Background(), domain.WorkstationBooking{
		PCID: 2, Title: "PC 02", Date: "2024-06-01", Time: "10:00", Duration: 3, TotalCost: 45, Owner: "ana@example.com",
	})
	require.NoError(t, err)
	assert.True(t, ack.Acknowledged)
	assert.Equal(t, "665f1c", ack.InsertedID)

	assert.Equal(t, map[string]any{
		"pcId": float64(2), "title": "PC 02", "date": "2024-06-01", "time": "10:00",
		"duration": float64(3), "totalCost": float64(45), "userEmail": "ana@example.com",
	}, got)
}

func TestClient_CreateWorkstationBooking_NotAcknowledged(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"acknowledged":false}`)
	})

	ack, err := c.CreateWorkstationBooking(context.Background(), domain.WorkstationBooking{PCID: 1})
	require.NoError(t, err)
	assert.False(t, ack.Acknowledged)
}

func TestClient_CreateWorkstationBooking_ErrorStatusIsRefusal(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, `{"message":"boom"}`)
	})

	ack, err := c.CreateWorkstationBooking(context.Background(), domain.WorkstationBooking{PCID: 1})
	require.NoError(t, err)
	assert.False(t, ack.Acknowledged)
}

func TestClient_CreateWorkstationBooking_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(Config{BaseURL: url, Timeout: time.Second}, zerolog.Nop())
	_, err := c.CreateWorkstationBooking(context.Background(), domain.WorkstationBooking{PCID: 1})
	assert.Error(t, err)
}

func TestClient_ListRoomBookings_MapsFlexibleRoomID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, pathRoomBookings, r.URL.Path)
		writeJSON(w, http.StatusOK, `[
			{"_id":"r1","roomId":"A-1","date":"2024-06-01","time":"09:00","status":"Confirmed","userEmail":"ana@example.com"},
			{"_id":"r2","roomId":7,"date":"2024-06-02","time":"10:00","status":"Pending","userEmail":"bo@example.com"}
		]`)
	})

	rooms, err := c.ListRoomBookings(context.Background())
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "A-1", rooms[0].RoomID)
	assert.Equal(t, "7", rooms[1].RoomID)
	assert.Equal(t, domain.OwnerKey("bo@example.com"), rooms[1].Owner)
}

func TestClient_ListFoodOrders_UsesEmailField(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, pathFoodOrders, r.URL.Path)
		writeJSON(w, http.StatusOK, `[{"_id":"f1","date":"2024-06-01","totalPrice":12.5,"email":"ana@example.com"}]`)
	})

	orders, err := c.ListFoodOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, domain.OwnerKey("ana@example.com"), orders[0].Owner)
	assert.InDelta(t, 12.5, orders[0].TotalPrice, 0.0001)
}

func TestClient_ListWorkstationBookings_PreservesOrder(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[
			{"_id":"w2","pcId":2,"userEmail":"ana@example.com"},
			{"_id":"w1","pcId":1,"userEmail":"ana@example.com"}
		]`)
	})

	list, err := c.ListWorkstationBookings(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "w2", list[0].ID)
	assert.Equal(t, "w1", list[1].ID)
}

func TestClient_ListWorkstationBookings_SkipsMalformedRecords(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[
			{"_id":"w1","pcId":1,"duration":3,"totalCost":30,"userEmail":"ana@example.com"},
			{"_id":"w2","pcId":2,"duration":1.5,"totalCost":22.5,"userEmail":"ana@example.com"},
			{"_id":"w3","pcId":3,"duration":"abc","userEmail":"ana@example.com"},
			"not-a-record",
			{"_id":"w4","pcId":"4","duration":"2","totalCost":40,"userEmail":"ana@example.com"}
		]`)
	})

	list, err := c.ListWorkstationBookings(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)

	assert.Equal(t, "w1", list[0].ID)
	assert.Equal(t, 3, list[0].Duration)

	assert.Equal(t, "w2", list[1].ID)
	assert.Equal(t, 1, list[1].Duration)
	assert.Equal(t, int64(22), list[1].TotalCost)

	assert.Equal(t, "w4", list[2].ID)
	assert.Equal(t, 4, list[2].PCID)
	assert.Equal(t, 2, list[2].Duration)
}

func TestClient_ListFoodOrders_SkipsMalformedRecords(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[
			{"_id":"f1","totalPrice":"free","email":"ana@example.com"},
			{"_id":"f2","totalPrice":9.5,"email":"ana@example.com"}
		]`)
	})

	orders, err := c.ListFoodOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "f2", orders[0].ID)
}

func TestClient_List_ErrorStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadGateway, `{}`)
	})

	_, err := c.ListRoomBookings(context.Background())
	assert.Error(t, err)
}

func TestClient_Ping(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	assert.NoError(t, c.Ping(context.Background()))

	down := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	assert.Error(t, down.Ping(context.Background()))
}

func TestFlexString(t *testing.T) {
	var v struct {
		A flexString `json:"a"`
		B flexString `json:"b"`
		C flexString `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"x","b":12,"c":null}`), &v))
	assert.Equal(t, flexString("x"), v.A)
	assert.Equal(t, flexString("12"), v.B)
	assert.Equal(t, flexString(""), v.C)
}

func TestFlexInt(t *testing.T) {
	cases := map[string]struct {
		in      string
		want    flexInt
		wantErr bool
	}{
		"integer":        {in: `7`, want: 7},
		"fraction":       {in: `22.5`, want: 22},
		"negative frac":  {in: `-1.9`, want: -1},
		"numeric string": {in: `"12"`, want: 12},
		"null":           {in: `null`, want: 0},
		"word":           {in: `"abc"`, wantErr: true},
		"object":         {in: `{}`, wantErr: true},
		"too large":      {in: `1e30`, wantErr: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var got flexInt
			err := json.Unmarshal([]byte(tc.in), &got)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// Package rest talks to the record store over its HTTP collection API.
package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/spacehub/booking-portal/internal/core/domain"
	"github.com/spacehub/booking-portal/internal/core/ports"
)

const (
	pathWorkstations = "/pcbookinghistory"
	pathRoomBookings = "/bookings"
	pathFoodOrders   = "/orderDetails"

	defaultTimeout = 10 * time.Second
)

type Config struct {
	BaseURL string
	Timeout time.Duration
	// ReadRetries applies to list requests only; writes are never retried.
	ReadRetries int
}

// Client implements ports.Datastore against the HTTP record store.
type Client struct {
	reads  *resty.Client
	writes *resty.Client
	log    zerolog.Logger
}

var _ ports.Datastore = (*Client)(nil)

func NewClient(cfg Config, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	base := func() *resty.Client {
		return resty.New().
			SetBaseURL(cfg.BaseURL).
			SetTimeout(timeout).
			SetHeader("Content-Type", "application/json").
			SetHeader("Accept", "application/json")
	}

	reads := base()
	if cfg.ReadRetries > 0 {
		reads.SetRetryCount(cfg.ReadRetries).
			SetRetryWaitTime(200 * time.Millisecond).
			SetRetryMaxWaitTime(2 * time.Second)
	}

	return &Client{reads: reads, writes: base(), log: log}
}

// CreateWorkstationBooking posts b. The store's own acknowledgement decides
// the outcome; a non-2xx answer counts as a refusal, not a transport failure.
func (c *Client) CreateWorkstationBooking(ctx context.Context, b domain.WorkstationBooking) (ports.StoreAck, error) {
	var result createResult
	resp, err := c.writes.R().
		SetContext(ctx).
		SetBody(workstationRecordFrom(b)).
		SetResult(&result).
		Post(pathWorkstations)
	if err != nil {
		return ports.StoreAck{}, fmt.Errorf("post %s: %w", pathWorkstations, err)
	}
	if !resp.IsSuccess() {
		c.log.Warn().Int("status", resp.StatusCode()).Str("path", pathWorkstations).Msg("datastore refused booking")
		return ports.StoreAck{Acknowledged: false}, nil
	}
	return ports.StoreAck{Acknowledged: result.Acknowledged, InsertedID: result.InsertedID}, nil
}

func (c *Client) ListWorkstationBookings(ctx context.Context) ([]domain.WorkstationBooking, error) {
	return listDecoded(ctx, c, pathWorkstations, workstationRecord.toDomain)
}

func (c *Client) ListRoomBookings(ctx context.Context) ([]domain.RoomBooking, error) {
	return listDecoded(ctx, c, pathRoomBookings, roomRecord.toDomain)
}

func (c *Client) ListFoodOrders(ctx context.Context) ([]domain.FoodOrder, error) {
	return listDecoded(ctx, c, pathFoodOrders, foodRecord.toDomain)
}

// Ping succeeds when the store answers at all below 500.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.writes.R().SetContext(ctx).Head("/")
	if err != nil {
		return fmt.Errorf("datastore ping: %w", err)
	}
	if resp.StatusCode() >= http.StatusInternalServerError {
		return fmt.Errorf("datastore ping: status %d", resp.StatusCode())
	}
	return nil
}

// listDecoded fetches path and decodes each element on its own. An element
// that does not fit R is logged and skipped so one bad record cannot hide the
// rest of the collection.
func listDecoded[R any, D any](ctx context.Context, c *Client, path string, conv func(R) D) ([]D, error) {
	var raw []json.RawMessage
	if err := c.list(ctx, path, &raw); err != nil {
		return nil, err
	}
	out := make([]D, 0, len(raw))
	for i, elem := range raw {
		var r R
		if err := json.Unmarshal(elem, &r); err != nil {
			c.log.Warn().Err(err).Str("path", path).Int("index", i).Msg("skipping undecodable record")
			continue
		}
		out = append(out, conv(r))
	}
	return out, nil
}

func (c *Client) list(ctx context.Context, path string, out any) error {
	resp, err := c.reads.R().
		SetContext(ctx).
		SetResult(out).
		Get(path)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("get %s: status %d", path, resp.StatusCode())
	}
	return nil
}

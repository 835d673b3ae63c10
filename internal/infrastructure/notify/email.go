// Package notify delivers confirmation emails through the mail relay.
package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/spacehub/booking-portal/internal/core/domain"
)

const (
	pathSendEmail  = "/sendEmail"
	defaultTimeout = 10 * time.Second
)

var ErrDeliveryFailed = errors.New("email delivery failed")

type sendResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// EmailClient implements ports.Notifier over the relay's HTTP API.
type EmailClient struct {
	http *resty.Client
}

func NewEmailClient(baseURL string, timeout time.Duration) *EmailClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	return &EmailClient{http: client}
}

// Send posts n and requires the relay to report success.
func (c *EmailClient) Send(ctx context.Context, n domain.Notification) error {
	var result sendResult
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(n).
		SetResult(&result).
		SetError(&result).
		Post(pathSendEmail)
	if err != nil {
		return fmt.Errorf("post %s: %w", pathSendEmail, err)
	}
	if !resp.IsSuccess() || !result.Success {
		return fmt.Errorf("%w: status %d: %s", ErrDeliveryFailed, resp.StatusCode(), result.Message)
	}
	return nil
}

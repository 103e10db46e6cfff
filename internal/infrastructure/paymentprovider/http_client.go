package paymentprovider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"palantir/internal/config"
	"palantir/internal/domain"
	"palantir/internal/errors"
)

const httpPlatform = "mercadopago"

// HTTPClient talks to the provider's REST API behind a circuit breaker.
// 4xx answers are the caller's fault and do not count as failures.
type HTTPClient struct {
	baseURL      string
	accessToken  string
	httpClient   *http.Client
	qrBreaker    *gobreaker.CircuitBreaker[*QrCode]
	totemBreaker *gobreaker.CircuitBreaker[*domain.Totem]
	logger       *zap.Logger
}

type clientError struct {
	status int
	body   string
}

func (e *clientError) Error() string {
	return fmt.Sprintf("provider answered %d: %s", e.status, e.body)
}

func NewHTTPClient(cfg config.PaymentConfig, logger *zap.Logger) *HTTPClient {
	c := &HTTPClient{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		accessToken: cfg.AccessToken,
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		logger:      logger,
	}
	c.qrBreaker = gobreaker.NewCircuitBreaker[*QrCode](c.settings("payment-provider-qr", cfg))
	c.totemBreaker = gobreaker.NewCircuitBreaker[*domain.Totem](c.settings("payment-provider-totem", cfg))
	return c
}

func (c *HTTPClient) settings(name string, cfg config.PaymentConfig) gobreaker.Settings {
	maxFailures := cfg.MaxFailures
	if maxFailures == 0 {
		maxFailures = 5
	}
	return gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			_, isClientErr := err.(*clientError)
			return isClientErr
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.logger.Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	}
}

type createQrRequest struct {
	ExternalReference string          `json:"external_reference"`
	Title             string          `json:"title"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
}

type createQrResponse struct {
	ID     string `json:"id"`
	QrData string `json:"qr_data"`
}

type totemResponse struct {
	ID      string `json:"id"`
	StoreID string `json:"store_id"`
	Name    string `json:"name"`
}

func (c *HTTPClient) CreateQrCode(ctx context.Context, orderID string, total decimal.Decimal, title string) (*QrCode, error) {
	qr, err := c.qrBreaker.Execute(func() (*QrCode, error) {
		body := createQrRequest{ExternalReference: orderID, Title: title, TotalAmount: total}
		var resp createQrResponse
		if err := c.do(ctx, http.MethodPost, "/instore/qr/orders", body, &resp); err != nil {
			return nil, err
		}
		return &QrCode{ID: resp.ID, QrCode: resp.QrData}, nil
	})
	if err != nil {
		return nil, c.translate("creating qr code", err)
	}
	if strings.TrimSpace(qr.ID) == "" {
		return nil, errors.NewInternalError(
			fmt.Sprintf("payment provider %s returned a qr code without id for order %s", httpPlatform, orderID), nil)
	}
	return qr, nil
}

func (c *HTTPClient) FindTotemByID(ctx context.Context, totemID string) (*domain.Totem, error) {
	totem, err := c.totemBreaker.Execute(func() (*domain.Totem, error) {
		var resp totemResponse
		if err := c.do(ctx, http.MethodGet, "/pos/"+url.PathEscape(totemID), nil, &resp); err != nil {
			return nil, err
		}
		return &domain.Totem{ID: resp.ID, StoreID: resp.StoreID, Name: resp.Name}, nil
	})
	if ce, ok := err.(*clientError); ok && ce.status == http.StatusNotFound {
		return nil, errors.NewNotFoundError(fmt.Sprintf("totem with id %s not found", totemID))
	}
	if err != nil {
		return nil, c.translate("finding totem", err)
	}
	if totem.ID != totemID {
		return nil, errors.NewInternalError(
			fmt.Sprintf("payment provider %s answered totem %q for requested totem %q", httpPlatform, totem.ID, totemID), nil)
	}
	return totem, nil
}

func (c *HTTPClient) Platform() string {
	return httpPlatform
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding provider request: %w", err)
		}
		payload = data
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building provider request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		if resp.StatusCode < 500 {
			return &clientError{status: resp.StatusCode, body: string(msg)}
		}
		return fmt.Errorf("provider answered %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding provider response: %w", err)
	}
	return nil
}

// translate reports every provider failure, 4xx answers included, as an
// InternalError naming the provider. The client never sees provider detail.
func (c *HTTPClient) translate(op string, err error) error {
	if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
		c.logger.Warn("payment provider unavailable", zap.String("op", op), zap.Error(err))
	}
	return errors.NewInternalError(fmt.Sprintf("payment provider %s %s failed", httpPlatform, op), err)
}

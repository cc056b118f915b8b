// Package terminal talks to the card-present payment terminal agent.
package terminal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// Sepehr devices report approval as result code "00".
const approvalCode = "00"

var ErrTerminalUnavailable = errors.New("payment terminal unavailable")

// SepehrConfig configures the HTTP bridge to the Sepehr terminal agent.
type SepehrConfig struct {
	BaseURL string
	Timeout time.Duration
	Retries int
}

// SepehrDriver implements Driver against the terminal agent's local
// HTTP endpoint.
type SepehrDriver struct {
	client *retryablehttp.Client
	base   string
}

func NewSepehrDriver(cfg SepehrConfig) *SepehrDriver {
	client := retryablehttp.NewClient()
	client.RetryMax = cfg.Retries
	client.Logger = nil
	if cfg.Timeout > 0 {
		client.HTTPClient.Timeout = cfg.Timeout
	}
	return &SepehrDriver{
		client: client,
		base:   strings.TrimRight(cfg.BaseURL, "/"),
	}
}

func (d *SepehrDriver) Purchase(ctx context.Context, req PurchaseRequest) (*Result, error) {
	payload := map[string]interface{}{
		"amount": req.Amount,
		"id":     req.Reference,
		"type":   "1",
	}
	return d.send(ctx, "/purchase", payload)
}

func (d *SepehrDriver) PurchaseSplit(ctx context.Context, req SplitPurchaseRequest) (*Result, error) {
	accounts := make([]map[string]interface{}, 0, 2)
	if req.Percent1 > 0 && req.Sheba1 != "" {
		accounts = append(accounts, map[string]interface{}{"sheba": req.Sheba1, "percent": req.Percent1})
	}
	if req.Percent2 > 0 && req.Sheba2 != "" {
		accounts = append(accounts, map[string]interface{}{"sheba": req.Sheba2, "percent": req.Percent2})
	}
	payload := map[string]interface{}{
		"amount":   req.Amount,
		"id":       req.Reference,
		"accounts": accounts,
	}
	return d.send(ctx, "/tashim", payload)
}

func (d *SepehrDriver) send(ctx context.Context, path string, payload interface{}) (*Result, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal terminal request: %w", err)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, d.base+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTerminalUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read terminal response: %w", err)
	}

	var out struct {
		ResultCode string `json:"resultCode"`
		Message    string `json:"message"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode terminal response: %w", err)
	}

	return &Result{
		Succeeded: out.ResultCode == approvalCode,
		Code:      out.ResultCode,
		Raw:       string(raw),
	}, nil
}

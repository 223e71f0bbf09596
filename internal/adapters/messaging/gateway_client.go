// Package messaging delivers templated alerts through the SMS/WhatsApp provider, either
// directly or through the relay endpoint.
package messaging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	"github.com/SscSPs/erp_backoffice/internal/core/ports"
)

// maxResponseBytes caps how much of a provider reply is read.
const maxResponseBytes = 64 << 10

// ErrRejected is returned when the provider answered but did not accept the message.
var ErrRejected = errors.New("messaging: provider rejected message")

// GatewayConfig holds the provider account and template settings.
type GatewayConfig struct {
	Endpoint      string
	User          string
	Pass          string
	SenderID      string
	Template      string
	Priority      string
	MessageType   string
	SuccessMarker string
}

// GatewayClient calls the provider's GET endpoint.
type GatewayClient struct {
	cfg    GatewayConfig
	client *http.Client
}

// NewGatewayClient creates a client for the provider. A nil httpClient uses http.DefaultClient;
// deadlines come from the request context.
func NewGatewayClient(cfg GatewayConfig, httpClient *http.Client) *GatewayClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if cfg.SuccessMarker == "" {
		cfg.SuccessMarker = "success"
	}
	return &GatewayClient{cfg: cfg, client: httpClient}
}

var _ ports.MessageSender = (*GatewayClient)(nil)

// Send delivers msg and succeeds only on a 2xx reply whose body contains the success marker.
func (g *GatewayClient) Send(ctx context.Context, msg domain.Message) (string, error) {
	body, err := g.Deliver(ctx, msg)
	if err != nil {
		return body, err
	}
	if !strings.Contains(body, g.cfg.SuccessMarker) {
		return body, fmt.Errorf("%w: %s", ErrRejected, strings.TrimSpace(body))
	}
	return body, nil
}

// Deliver performs the provider call and returns the raw body of any 2xx reply. It does not
// look for the success marker.
func (g *GatewayClient) Deliver(ctx context.Context, msg domain.Message) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.requestURL(msg), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build gateway request: %w", err)
	}
	req.Header.Set("Accept", "*/*")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read gateway response: %w", err)
	}
	body := string(raw)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return body, fmt.Errorf("%w: HTTP status code %d", ErrRejected, resp.StatusCode)
	}
	return body, nil
}

func (g *GatewayClient) requestURL(msg domain.Message) string {
	q := url.Values{}
	q.Set("user", g.cfg.User)
	q.Set("pass", g.cfg.Pass)
	q.Set("sender", g.cfg.SenderID)
	q.Set("phone", msg.Phone)
	q.Set("text", g.cfg.Template)
	q.Set("params", RenderParams(msg))
	q.Set("priority", g.cfg.Priority)
	q.Set("stype", g.cfg.MessageType)

	sep := "?"
	if strings.Contains(g.cfg.Endpoint, "?") {
		sep = "&"
	}
	return g.cfg.Endpoint + sep + q.Encode()
}

// RenderParams fills the {name},{amount},{date} template placeholders. Commas inside the
// name would shift the provider's positional parameters, so they become spaces.
func RenderParams(msg domain.Message) string {
	name := strings.TrimSpace(strings.ReplaceAll(msg.Name, ",", " "))
	return strings.Join([]string{name, msg.Amount.String(), msg.Date}, ",")
}

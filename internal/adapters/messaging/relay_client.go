package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	"github.com/SscSPs/erp_backoffice/internal/core/ports"
	"github.com/SscSPs/erp_backoffice/internal/dto"
)

// RelayClient sends through a relay that speaks the /relay/sms contract:
// GET phone,name,amount,date answered by {success, message|error, data}.
type RelayClient struct {
	endpoint string
	client   *http.Client
}

// NewRelayClient creates a relay client. A nil httpClient uses http.DefaultClient.
func NewRelayClient(endpoint string, httpClient *http.Client) *RelayClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &RelayClient{endpoint: endpoint, client: httpClient}
}

var _ ports.MessageSender = (*RelayClient)(nil)

// Send succeeds when the relay answered 2xx with success=true.
func (r *RelayClient) Send(ctx context.Context, msg domain.Message) (string, error) {
	q := url.Values{}
	q.Set("phone", msg.Phone)
	q.Set("name", msg.Name)
	q.Set("amount", msg.Amount.String())
	q.Set("date", msg.Date)

	sep := "?"
	if strings.Contains(r.endpoint, "?") {
		sep = "&"
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.endpoint+sep+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build relay request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("relay request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read relay response: %w", err)
	}

	var body dto.RelayResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		return string(raw), fmt.Errorf("%w: relay answered HTTP %d with a non-JSON body", ErrRejected, resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !body.Success {
		reason := body.Error
		if reason == "" {
			reason = fmt.Sprintf("HTTP status code %d", resp.StatusCode)
		}
		return body.Data, fmt.Errorf("%w: %s", ErrRejected, reason)
	}
	return body.Data, nil
}

// NewSender picks the relay when relayURL is set and the direct gateway otherwise.
func NewSender(relayURL string, gateway GatewayConfig, httpClient *http.Client) ports.MessageSender {
	if strings.TrimSpace(relayURL) != "" {
		return NewRelayClient(relayURL, httpClient)
	}
	return NewGatewayClient(gateway, httpClient)
}

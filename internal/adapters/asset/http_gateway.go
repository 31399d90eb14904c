package asset

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"eventticketing/internal/domain"
)

type httpGateway struct {
	client  *http.Client
	baseURL string
	asset   domain.AssetID
	spender domain.Address
}

// NewHTTPGateway returns an AssetGateway backed by a remote token service.
// Spendable balances are queried as seen by spender, the ledger's custody
// address.
func NewHTTPGateway(client *http.Client, baseURL string, asset domain.AssetID, spender domain.Address) domain.AssetGateway {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpGateway{
		client:  client,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		asset:   asset,
		spender: spender,
	}
}

type spendableResponse struct {
	Amount uint64 `json:"amount,string"`
}

type transferRequest struct {
	From   domain.Address `json:"from"`
	To     domain.Address `json:"to"`
	Amount uint64         `json:"amount,string"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (g *httpGateway) SpendableBalance(ctx context.Context, addr domain.Address) (uint64, error) {
	u := fmt.Sprintf("%s/assets/%s/accounts/%s/spendable?spender=%s",
		g.baseURL, url.PathEscape(string(g.asset)), url.PathEscape(string(addr)), url.QueryEscape(string(g.spender)))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := g.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to query spendable balance: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, statusError(resp)
	}
	var data spendableResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return 0, fmt.Errorf("failed to decode spendable balance: %w", err)
	}
	return data.Amount, nil
}

func (g *httpGateway) MoveFunds(ctx context.Context, from, to domain.Address, amount uint64) error {
	body, err := json.Marshal(transferRequest{From: from, To: to, Amount: amount})
	if err != nil {
		return fmt.Errorf("failed to encode transfer: %w", err)
	}
	u := fmt.Sprintf("%s/assets/%s/transfers", g.baseURL, url.PathEscape(string(g.asset)))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to move funds: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return statusError(resp)
	}
	return nil
}

func statusError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var e errorResponse
	if json.Unmarshal(raw, &e) == nil && e.Error != "" {
		return fmt.Errorf("asset service returned status %d: %s", resp.StatusCode, e.Error)
	}
	return fmt.Errorf("asset service returned status: %d", resp.StatusCode)
}

package chapa

import (
	"context"
	"net/http"
	"strings"

	json "github.com/json-iterator/go"
)

// SubaccountRequest carries the details needed to create a settlement split
// target. BusinessName is optional; everything else is required by Chapa.
type SubaccountRequest struct {
	AccountName   string
	BankCode      int
	AccountNumber string
	SplitValue    float64
	SplitType     SplitType
	BusinessName  string
}

// CreateSubaccount registers a subaccount for payment splitting.
func (c *Client) CreateSubaccount(ctx context.Context, req SubaccountRequest) (*Subaccount, error) {
	payload := map[string]any{
		"account_name":   req.AccountName,
		"bank_code":      req.BankCode,
		"account_number": req.AccountNumber,
		"split_value":    req.SplitValue,
		"split_type":     req.SplitType,
	}
	if req.BusinessName != "" {
		payload["business_name"] = req.BusinessName
	}

	env, err := c.call(ctx, http.MethodPost, epSubaccount, requestOptions{body: payload})
	if err != nil {
		return nil, err
	}
	if err := env.requireData("subaccount_id"); err != nil {
		return nil, err
	}

	var out Subaccount
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return nil, &DecodeError{Response: env.raw, Err: err}
	}
	return &out, nil
}

// Banks lists the banks Chapa can settle to. The reply is returned verbatim,
// envelope included, matching the upstream contract for this endpoint.
func (c *Client) Banks(ctx context.Context) (map[string]any, error) {
	env, err := c.call(ctx, http.MethodGet, epBanks, requestOptions{})
	if err != nil {
		return nil, err
	}

	var out map[string]any
	if err := json.Unmarshal(env.raw.Body, &out); err != nil {
		return nil, &DecodeError{Response: env.raw, Err: err}
	}
	return out, nil
}

var balanceFields = []string{"currency", "available_balance", "ledger_balance"}

// Balances reports the merchant balance per currency. An empty currency
// requests every balance; a specific one is lower-cased into the path and
// filtered server-side, returning the same list shape.
func (c *Client) Balances(ctx context.Context, currency Currency) ([]Balance, error) {
	path := epBalances
	if currency != "" {
		path += "/" + strings.ToLower(string(currency))
	}

	env, err := c.call(ctx, http.MethodGet, path, requestOptions{})
	if err != nil {
		return nil, err
	}

	var entries []json.RawMessage
	if env.hasData() {
		if err := json.Unmarshal(env.Data, &entries); err != nil {
			return nil, &DecodeError{Response: env.raw, Err: err}
		}
	}

	out := make([]Balance, 0, len(entries))
	for _, entry := range entries {
		var fields map[string]any
		if err := json.Unmarshal(entry, &fields); err != nil {
			return nil, &DecodeError{Response: env.raw, Err: err}
		}
		if err := requireFields(fields, balanceFields...); err != nil {
			return nil, err
		}
		var b Balance
		if err := json.Unmarshal(entry, &b); err != nil {
			return nil, &DecodeError{Response: env.raw, Err: err}
		}
		out = append(out, b)
	}
	return out, nil
}

// Swap converts an amount between two supported currencies and returns the
// raw swap result.
func (c *Client) Swap(ctx context.Context, amount float64, from, to Currency) (map[string]any, error) {
	payload := map[string]any{
		"amount": amount,
		"from":   from,
		"to":     to,
	}

	env, err := c.call(ctx, http.MethodPost, epSwap, requestOptions{body: payload})
	if err != nil {
		return nil, err
	}
	return env.dataMap()
}

package chapa

import (
	"context"
	"net/http"

	json "github.com/json-iterator/go"
)

// TransferOptions are the optional fields accepted by InitTransfer.
type TransferOptions struct {
	Currency    Currency
	AccountName string
	Reference   string
}

// InitTransfer queues a single bank transfer. The amount wires as a JSON
// number, unlike InitPayment.
//
// Chapa returns the queued transfer's raw data, usually a bare reference
// string; it is surfaced as-is, nil when the server sends nothing back.
func (c *Client) InitTransfer(ctx context.Context, amount float64, accountNumber string, bankCode int, opts *TransferOptions) (json.RawMessage, error) {
	payload := map[string]any{
		"account_number": accountNumber,
		"amount":         amount,
		"bank_code":      bankCode,
	}
	if opts != nil {
		if opts.Currency != "" {
			payload["currency"] = opts.Currency
		}
		if opts.AccountName != "" {
			payload["account_name"] = opts.AccountName
		}
		if opts.Reference != "" {
			payload["reference"] = opts.Reference
		}
	}

	env, err := c.call(ctx, http.MethodPost, epTransfers, requestOptions{body: payload})
	if err != nil {
		return nil, err
	}
	if !env.hasData() {
		return nil, nil
	}
	return env.Data, nil
}

// BulkTransferOptions are the optional fields accepted by BulkTransfer.
type BulkTransferOptions struct {
	Title    string
	Currency Currency
}

// BulkTransfer queues a batch of transfers and returns the queue ticket used
// to track the asynchronous processing.
func (c *Client) BulkTransfer(ctx context.Context, entries []BulkTransferEntry, opts *BulkTransferOptions) (*BulkTransferQueue, error) {
	if len(entries) == 0 {
		return nil, &ConfigError{Reason: "bulk_data must not be empty"}
	}

	payload := map[string]any{}
	if opts != nil {
		if opts.Title != "" {
			payload["title"] = opts.Title
		}
		if opts.Currency != "" {
			payload["currency"] = opts.Currency
		}
	}
	payload["bulk_data"] = entries

	env, err := c.call(ctx, http.MethodPost, epBulkTransfers, requestOptions{body: payload})
	if err != nil {
		return nil, err
	}
	if err := env.requireData("id", "created_at"); err != nil {
		return nil, err
	}

	var out BulkTransferQueue
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return nil, &DecodeError{Response: env.raw, Err: err}
	}
	return &out, nil
}

// transferDetailFields must all be present on a verified transfer.
var transferDetailFields = []string{
	"account_name", "account_number", "amount", "charge", "currency",
	"mode", "status", "bank_code", "bank_name", "transfer_method",
	"tx_ref", "chapa_transfer_id", "created_at", "updated_at",
}

// VerifyTransfer fetches the detail of a transfer by its reference.
func (c *Client) VerifyTransfer(ctx context.Context, txRef string) (*TransferDetail, error) {
	if txRef == "" {
		return nil, &ConfigError{Reason: "tx_ref is required"}
	}

	env, err := c.call(ctx, http.MethodGet, epTransfersVerify+"/"+txRef, requestOptions{})
	if err != nil {
		return nil, err
	}
	if err := env.requireData(transferDetailFields...); err != nil {
		return nil, err
	}

	var out TransferDetail
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return nil, &DecodeError{Response: env.raw, Err: err}
	}
	return &out, nil
}

// GetTransfers returns one page of the transfer listing as the raw mapping
// Chapa replies with. This is the one endpoint whose envelope carries a
// top-level meta key next to data.
func (c *Client) GetTransfers(ctx context.Context, opts *ListOptions) (map[string]any, error) {
	env, err := c.call(ctx, http.MethodGet, epTransfers, requestOptions{query: opts.query()})
	if err != nil {
		return nil, err
	}
	return env.dataMap()
}

package chapa

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitTransferAmountIsNumber(t *testing.T) {
	var body []byte
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		require.Equal(t, "/transfers", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		jsonHandler(http.StatusOK, `{"message":"ok","status":"success","data":"ref-transfer-1"}`)(w, r)
	})

	data, err := c.InitTransfer(context.Background(), 100, "1000123456789", 656, nil)
	require.NoError(t, err)
	require.Equal(t, `"ref-transfer-1"`, string(data))

	// Same numeric input as InitPayment, but wired as a JSON number.
	require.JSONEq(t, `{"account_number":"1000123456789","amount":100,"bank_code":656}`, string(body))
}

func TestInitTransferOptionalFields(t *testing.T) {
	var body []byte
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		jsonHandler(http.StatusOK, `{"message":"ok","status":"success","data":"ref-transfer-2"}`)(w, r)
	})

	_, err := c.InitTransfer(context.Background(), 250.75, "1000123456789", 656, &TransferOptions{
		Currency:    CurrencyETB,
		AccountName: "Abebe Bikila",
		Reference:   "my-ref",
	})
	require.NoError(t, err)

	require.JSONEq(t, `{
		"account_number": "1000123456789",
		"amount": 250.75,
		"bank_code": 656,
		"currency": "ETB",
		"account_name": "Abebe Bikila",
		"reference": "my-ref"
	}`, string(body))
}

func TestInitTransferAbsentData(t *testing.T) {
	c := newTestClient(t, jsonHandler(http.StatusOK, `{"message":"queued","status":"success","data":null}`))

	data, err := c.InitTransfer(context.Background(), 100, "1000123456789", 656, nil)
	require.NoError(t, err)
	require.Nil(t, data)
}

func TestBulkTransfer(t *testing.T) {
	var body []byte
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		require.Equal(t, "/bulk-transfers", r.URL.Path)
		jsonHandler(http.StatusOK, `{"message":"queued","status":"success","data":{"id":431,"created_at":"2023-02-03T03:45:46Z"}}`)(w, r)
	})

	queue, err := c.BulkTransfer(context.Background(), []BulkTransferEntry{
		{AccountName: "Abebe Bikila", AccountNumber: "1000123456789", Amount: 20, Reference: "b1", BankCode: 656},
		{AccountName: "Derartu Tulu", AccountNumber: "1000987654321", Amount: 30, Reference: "b2", BankCode: 656},
	}, &BulkTransferOptions{Title: "payroll", Currency: CurrencyETB})
	require.NoError(t, err)
	require.Equal(t, int64(431), queue.ID)
	require.False(t, queue.CreatedAt.IsZero())

	require.JSONEq(t, `{
		"title": "payroll",
		"currency": "ETB",
		"bulk_data": [
			{"account_name":"Abebe Bikila","account_number":"1000123456789","amount":20,"reference":"b1","bank_code":656},
			{"account_name":"Derartu Tulu","account_number":"1000987654321","amount":30,"reference":"b2","bank_code":656}
		]
	}`, string(body))
}

func TestBulkTransferRequiresEntries(t *testing.T) {
	c := newTestClient(t, jsonHandler(http.StatusOK, `{}`))

	_, err := c.BulkTransfer(context.Background(), nil, nil)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestBulkTransferMissingTicketField(t *testing.T) {
	c := newTestClient(t, jsonHandler(http.StatusOK, `{"message":"queued","status":"success","data":{"created_at":"2023-02-03T03:45:46Z"}}`))

	_, err := c.BulkTransfer(context.Background(), []BulkTransferEntry{
		{AccountNumber: "1000123456789", Amount: 20, BankCode: 656},
	}, nil)

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	require.Equal(t, "id", schemaErr.Field)
}

func TestVerifyTransferSuccess(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/transfers/verify/tr123", r.URL.Path)
		jsonHandler(http.StatusOK, `{
			"message": "Transfer details",
			"status": "success",
			"data": {
				"account_name": "Abebe Bikila",
				"account_number": "1000123456789",
				"amount": 100,
				"charge": 2.5,
				"currency": "ETB",
				"mode": "live",
				"status": "success",
				"bank_code": "656",
				"bank_name": "Awash Bank",
				"transfer_method": "bank",
				"tx_ref": "tr123",
				"chapa_transfer_id": "ctid-77",
				"created_at": "2023-02-03T03:45:46Z",
				"updated_at": "2023-02-03T03:45:46Z"
			}
		}`)(w, r)
	})

	detail, err := c.VerifyTransfer(context.Background(), "tr123")
	require.NoError(t, err)
	require.Equal(t, "tr123", detail.TxRef)
	require.Equal(t, "Awash Bank", detail.BankName)
	require.Equal(t, StatusSuccess, detail.Status)
	require.Equal(t, Amount(100), detail.Amount)
}

func TestVerifyTransferMissingField(t *testing.T) {
	c := newTestClient(t, jsonHandler(http.StatusOK, `{
		"message": "Transfer details",
		"status": "success",
		"data": {"account_name": "Abebe Bikila"}
	}`))

	_, err := c.VerifyTransfer(context.Background(), "tr123")

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	require.Equal(t, "account_number", schemaErr.Field)
}

func TestGetTransfersPaging(t *testing.T) {
	var query string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/transfers", r.URL.Path)
		require.Equal(t, http.MethodGet, r.Method)
		query = r.URL.RawQuery
		jsonHandler(http.StatusOK, `{"message":"ok","status":"success","meta":{"current_page":2},"data":{"transfers":[]}}`)(w, r)
	})

	data, err := c.GetTransfers(context.Background(), &ListOptions{Page: 2, PerPage: 50})
	require.NoError(t, err)
	require.Contains(t, data, "transfers")
	require.Contains(t, query, "page=2")
	require.Contains(t, query, "per_page=50")
}

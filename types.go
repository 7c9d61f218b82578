package chapa

// Currency identifies a settlement currency supported by Chapa.
type Currency string

const (
	CurrencyETB Currency = "ETB"
	CurrencyUSD Currency = "USD"
)

// Mode distinguishes test and live transactions.
type Mode string

const (
	ModeTest Mode = "test"
	ModeLive Mode = "live"
)

// Status is the lifecycle state Chapa reports for transactions and transfers.
type Status string

const (
	StatusPending Status = "pending"
	StatusSuccess Status = "success"
)

// SplitType selects how a subaccount split value is interpreted.
type SplitType string

const (
	SplitFlat       SplitType = "flat"
	SplitPercentage SplitType = "percentage"
)

// Relative API paths, one per operation category.
const (
	epSwap                  = "swap"
	epBanks                 = "banks"
	epEvents                = "events"
	epBalances              = "balances"
	epTransfers             = "transfers"
	epSubaccount            = "subaccount"
	epTransactions          = "transactions"
	epBulkTransfers         = "bulk-transfers"
	epTransfersVerify       = "transfers/verify"
	epTransactionVerify     = "transaction/verify"
	epTransactionInitialize = "transaction/initialize"
)

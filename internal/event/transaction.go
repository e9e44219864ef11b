package event

import (
	"PaymentEngine/internal/money"
)

// TxKind discriminates transaction payloads.
type TxKind int32

const (
	TxUnknown TxKind = iota
	TxDeposit
	TxWithdrawal
	TxDispute
	TxResolve
	TxChargeback
)

func (k TxKind) String() string {
	switch k {
	case TxDeposit:
		return "deposit"
	case TxWithdrawal:
		return "withdrawal"
	case TxDispute:
		return "dispute"
	case TxResolve:
		return "resolve"
	case TxChargeback:
		return "chargeback"
	default:
		return "unknown"
	}
}

// Transaction is one record of the input stream.
//
// For deposits and withdrawals ID is the transaction's own unique id.
// For disputes, resolves and chargebacks it is the id of the deposit or
// withdrawal being referenced. Amount is meaningful only for deposits and
// withdrawals and is always non-negative.
type Transaction struct {
	ID     uint32
	Client uint16
	Kind   TxKind
	Amount money.Amount
}

// DepositAmount returns the carried amount when the transaction is a deposit.
func (t Transaction) DepositAmount() (money.Amount, bool) {
	if t.Kind == TxDeposit {
		return t.Amount, true
	}
	return money.Amount{}, false
}

package ledger

// RejectReason classifies why Apply ignored a transaction. Rejections are
// expected business outcomes, not errors; the reason exists so callers can
// count and log them.
type RejectReason int32

const (
	ReasonNone RejectReason = iota
	ReasonAccountLocked
	ReasonDuplicateTx
	ReasonInsufficientFunds
	ReasonUnknownTx
	ReasonNotDisputed
	ReasonAlreadyDisputed
	ReasonNotADeposit
)

func (r RejectReason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonAccountLocked:
		return "account_locked"
	case ReasonDuplicateTx:
		return "duplicate_tx"
	case ReasonInsufficientFunds:
		return "insufficient_funds"
	case ReasonUnknownTx:
		return "unknown_tx"
	case ReasonNotDisputed:
		return "not_disputed"
	case ReasonAlreadyDisputed:
		return "already_disputed"
	case ReasonNotADeposit:
		return "not_a_deposit"
	default:
		return "unknown"
	}
}

// Outcome reports what Apply did with a transaction.
type Outcome struct {
	Applied bool
	Reason  RejectReason // set only when Applied is false
}

func applied() Outcome { return Outcome{Applied: true} }

func ignored(r RejectReason) Outcome { return Outcome{Reason: r} }

package ledger

import (
	"PaymentEngine/internal/event"
	"PaymentEngine/internal/money"

	"github.com/google/uuid"
)

// ClientLedger owns one client's account, the history of transactions it
// has accepted, and the dispute state of those transactions. Apply is the
// single mutation entry point; every precondition the account-level
// mutators assume is established here first.
//
// History only ever stores deposits and withdrawals that actually changed
// the account, so a dispute referencing a failed or unknown id is inert —
// disputes can never materialize funds that never existed.
type ClientLedger struct {
	account  Account
	history  map[uint32]event.Transaction
	disputes *disputeSet
	journal  []JournalEntry
}

func NewClientLedger() *ClientLedger {
	return &ClientLedger{
		history:  make(map[uint32]event.Transaction),
		disputes: newDisputeSet(),
	}
}

// Account exposes the read-only balance view.
func (c *ClientLedger) Account() *Account { return &c.account }

// Journal returns the accepted mutations in application order.
func (c *ClientLedger) Journal() []JournalEntry { return c.journal }

// Apply routes one transaction through the idempotency and dispute rules.
// Ignored transactions leave no trace beyond the returned Outcome. Once the
// account is locked every transaction is ignored.
func (c *ClientLedger) Apply(tx event.Transaction) Outcome {
	if c.account.Locked() {
		return ignored(ReasonAccountLocked)
	}

	switch tx.Kind {
	case event.TxDeposit:
		return c.applyDeposit(tx)
	case event.TxWithdrawal:
		return c.applyWithdrawal(tx)
	case event.TxDispute:
		return c.applyDispute(tx)
	case event.TxResolve:
		return c.applyResolve(tx)
	case event.TxChargeback:
		return c.applyChargeback(tx)
	default:
		// The ingestion shell rejects unknown kinds before they reach us.
		panic("ledger: unknown transaction kind")
	}
}

func (c *ClientLedger) applyDeposit(tx event.Transaction) Outcome {
	if _, dup := c.history[tx.ID]; dup {
		return ignored(ReasonDuplicateTx)
	}

	c.account.deposit(tx.Amount)
	c.history[tx.ID] = tx
	c.record(event.TxDeposit, tx.ID, tx.Amount)
	return applied()
}

func (c *ClientLedger) applyWithdrawal(tx event.Transaction) Outcome {
	if _, dup := c.history[tx.ID]; dup {
		return ignored(ReasonDuplicateTx)
	}

	if !c.account.withdraw(tx.Amount) {
		// Dropped without trace: a failed withdrawal is never retried and
		// can never be disputed later.
		return ignored(ReasonInsufficientFunds)
	}

	c.history[tx.ID] = tx
	c.record(event.TxWithdrawal, tx.ID, tx.Amount)
	return applied()
}

func (c *ClientLedger) applyDispute(tx event.Transaction) Outcome {
	if c.disputes.state(tx.ID) != stateClean {
		return ignored(ReasonAlreadyDisputed)
	}

	original, ok := c.history[tx.ID]
	if !ok {
		return ignored(ReasonUnknownTx)
	}

	amount, ok := original.DepositAmount()
	if !ok {
		// Withdrawals cannot be disputed in this model.
		return ignored(ReasonNotADeposit)
	}

	if !c.account.hold(amount) {
		// No partial holds: if the deposit was already spent the dispute
		// silently aborts.
		return ignored(ReasonInsufficientFunds)
	}

	c.disputes.dispute(tx.ID)
	c.record(event.TxDispute, tx.ID, amount)
	return applied()
}

func (c *ClientLedger) applyResolve(tx event.Transaction) Outcome {
	original, ok := c.disputedTransaction(tx.ID)
	if !ok {
		return ignored(ReasonNotDisputed)
	}

	amount, ok := original.DepositAmount()
	if !ok {
		return ignored(ReasonNotADeposit)
	}

	c.account.release(amount)
	c.disputes.resolve(tx.ID)
	c.record(event.TxResolve, tx.ID, amount)
	return applied()
}

func (c *ClientLedger) applyChargeback(tx event.Transaction) Outcome {
	original, ok := c.disputedTransaction(tx.ID)
	if !ok {
		return ignored(ReasonNotDisputed)
	}

	amount, ok := original.DepositAmount()
	if !ok {
		return ignored(ReasonNotADeposit)
	}

	c.account.chargeback(amount)
	c.disputes.chargeback(tx.ID)
	c.record(event.TxChargeback, tx.ID, amount)
	return applied()
}

// disputedTransaction returns the original transaction only while its id is
// in the disputed state. Charged-back ids are tombstoned and never match.
func (c *ClientLedger) disputedTransaction(id uint32) (event.Transaction, bool) {
	if c.disputes.state(id) != stateDisputed {
		return event.Transaction{}, false
	}
	original, ok := c.history[id]
	return original, ok
}

func (c *ClientLedger) record(kind event.TxKind, txID uint32, amount money.Amount) {
	c.journal = append(c.journal, JournalEntry{
		EntryID:   uuid.New(),
		TxID:      txID,
		Kind:      kind,
		Amount:    amount,
		Available: c.account.Available(),
		Held:      c.account.Held(),
	})
}

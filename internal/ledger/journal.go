package ledger

import (
	"PaymentEngine/internal/event"
	"PaymentEngine/internal/money"

	"github.com/google/uuid"
)

// JournalEntry records one accepted mutation and the balances it left
// behind. Ignored transactions never reach the journal, so the entries are
// exactly the monetary movements that built the current account state.
type JournalEntry struct {
	EntryID   uuid.UUID
	TxID      uint32
	Kind      event.TxKind
	Amount    money.Amount
	Available money.Amount // post-state
	Held      money.Amount // post-state
}

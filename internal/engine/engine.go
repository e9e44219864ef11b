package engine

import (
	"PaymentEngine/internal/event"
	"PaymentEngine/internal/ledger"
	"PaymentEngine/internal/money"
	"PaymentEngine/internal/observability"

	"github.com/rs/zerolog"
)

// AccountView is one row of a Snapshot.
type AccountView struct {
	Client    uint16
	Available money.Amount
	Held      money.Amount
	Total     money.Amount
	Locked    bool
}

// Engine routes transactions to per-client ledgers and tracks which clients
// the stream has referenced. Client ledgers share no state, so the engine
// is a pure dispatcher; it stays single-threaded like the rest of the core.
type Engine struct {
	ledgers map[uint16]*ledger.ClientLedger
	seen    []uint16 // first-seen order; keeps Snapshot deterministic per run
	log     zerolog.Logger
	metrics *observability.Metrics
}

func New(log zerolog.Logger, metrics *observability.Metrics) *Engine {
	return &Engine{
		ledgers: make(map[uint16]*ledger.ClientLedger),
		log:     log,
		metrics: metrics,
	}
}

// Process forwards one transaction to its client's ledger, creating a fresh
// zero-balance ledger on first sight of the client id.
func (e *Engine) Process(tx event.Transaction) {
	l, ok := e.ledgers[tx.Client]
	if !ok {
		l = ledger.NewClientLedger()
		e.ledgers[tx.Client] = l
		e.seen = append(e.seen, tx.Client)
		e.metrics.ClientsSeen.Inc()
	}

	outcome := l.Apply(tx)
	if outcome.Applied {
		e.metrics.TxApplied.WithLabelValues(tx.Kind.String()).Inc()
		return
	}

	e.metrics.TxIgnored.WithLabelValues(tx.Kind.String(), outcome.Reason.String()).Inc()
	e.log.Debug().
		Uint32("tx", tx.ID).
		Uint16("client", tx.Client).
		Stringer("kind", tx.Kind).
		Stringer("reason", outcome.Reason).
		Msg("transaction ignored")
}

// Snapshot returns one view per client id seen at least once, in first-seen
// order. Clients never referenced by the input do not appear.
func (e *Engine) Snapshot() []AccountView {
	views := make([]AccountView, 0, len(e.seen))
	for _, client := range e.seen {
		acc := e.ledgers[client].Account()
		views = append(views, AccountView{
			Client:    client,
			Available: acc.Available(),
			Held:      acc.Held(),
			Total:     acc.Total(),
			Locked:    acc.Locked(),
		})
	}
	return views
}

// Ledger returns the ledger for a client id, if it has been seen.
func (e *Engine) Ledger(client uint16) (*ledger.ClientLedger, bool) {
	l, ok := e.ledgers[client]
	return l, ok
}

package ledger

// disputeState tracks a transaction id through the dispute lifecycle.
// stateChargedBack is a tombstone: once there, an id can never be disputed
// again, independent of the account-level lock.
type disputeState int8

const (
	stateClean disputeState = iota
	stateDisputed
	stateChargedBack
)

// disputeSet tracks per-transaction dispute state for one client.
type disputeSet struct {
	states map[uint32]disputeState
}

func newDisputeSet() *disputeSet {
	return &disputeSet{states: make(map[uint32]disputeState)}
}

func (s *disputeSet) state(tx uint32) disputeState { return s.states[tx] }

func (s *disputeSet) dispute(tx uint32) { s.states[tx] = stateDisputed }

func (s *disputeSet) resolve(tx uint32) { delete(s.states, tx) }

func (s *disputeSet) chargeback(tx uint32) { s.states[tx] = stateChargedBack }

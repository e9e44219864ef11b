package ledger

import (
	"PaymentEngine/internal/money"
)

// Account holds one client's balances. The mutators are package-private on
// purpose: the only caller is ClientLedger.Apply, which checks every
// business rule before touching the account. The remaining preconditions
// (never mutate a locked account, never release more than is held) are
// therefore caller bugs, not recoverable states, and panic.
type Account struct {
	available money.Amount
	held      money.Amount
	locked    bool
}

// Available returns the balance immediately withdrawable.
func (a *Account) Available() money.Amount { return a.available }

// Held returns the balance frozen pending dispute resolution.
func (a *Account) Held() money.Amount { return a.held }

// Total returns available + held.
func (a *Account) Total() money.Amount { return a.available.Add(a.held) }

// Locked reports whether a chargeback has permanently frozen the account.
func (a *Account) Locked() bool { return a.locked }

func (a *Account) mustNotBeLocked() {
	if a.locked {
		panic("ledger: mutation of a locked account")
	}
}

func (a *Account) deposit(amount money.Amount) {
	a.mustNotBeLocked()
	a.available = a.available.Add(amount)
}

// withdraw subtracts from available. Reports false and leaves the account
// untouched when available < amount.
func (a *Account) withdraw(amount money.Amount) bool {
	a.mustNotBeLocked()
	if a.available.Cmp(amount) < 0 {
		return false
	}
	a.available = a.available.Sub(amount)
	return true
}

// hold moves amount from available to held. Reports false and leaves the
// account untouched when available < amount.
func (a *Account) hold(amount money.Amount) bool {
	a.mustNotBeLocked()
	if a.available.Cmp(amount) < 0 {
		return false
	}
	a.available = a.available.Sub(amount)
	a.held = a.held.Add(amount)
	return true
}

// release moves amount from held back to available. The caller guarantees
// held >= amount by only releasing amounts it previously held.
func (a *Account) release(amount money.Amount) {
	a.mustNotBeLocked()
	if a.held.Cmp(amount) < 0 {
		panic("ledger: releasing more than held")
	}
	a.held = a.held.Sub(amount)
	a.available = a.available.Add(amount)
}

// chargeback removes amount from held and locks the account permanently.
func (a *Account) chargeback(amount money.Amount) {
	a.mustNotBeLocked()
	if a.held.Cmp(amount) < 0 {
		panic("ledger: charging back more than held")
	}
	a.held = a.held.Sub(amount)
	a.locked = true
}

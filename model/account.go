package model

// Account holds the balances for one client. Total is always derived from
// available and held, never stored.
type Account struct {
	Client    uint16 `json:"client"`
	Available Amount `json:"available"`
	Held      Amount `json:"held"`
	Locked    bool   `json:"locked"`
}

// NewAccount creates an empty, unlocked account for a client.
func NewAccount(client uint16) *Account {
	return &Account{Client: client}
}

// Total returns available + held.
func (account *Account) Total() Amount {
	return account.Available.Add(account.Held)
}

// Credit adds amount to the available balance.
func (account *Account) Credit(amount Amount) {
	account.Available = account.Available.Add(amount)
}

// Debit removes amount from the available balance. Callers check funds
// first; Debit itself never refuses.
func (account *Account) Debit(amount Amount) {
	account.Available = account.Available.Sub(amount)
}

// Hold moves amount from available to held. Available may go negative when
// the disputed amount exceeds what is currently available.
func (account *Account) Hold(amount Amount) {
	account.Available = account.Available.Sub(amount)
	account.Held = account.Held.Add(amount)
}

// Release moves amount from held back to available.
func (account *Account) Release(amount Amount) {
	account.Held = account.Held.Sub(amount)
	account.Available = account.Available.Add(amount)
}

// Chargeback removes amount from held and locks the account. Locked is
// terminal for the account.
func (account *Account) Chargeback(amount Amount) {
	account.Held = account.Held.Sub(amount)
	account.Locked = true
}

// Snapshot returns the reporting view of the account.
func (account *Account) Snapshot() AccountSnapshot {
	return AccountSnapshot{
		Client:    account.Client,
		Available: account.Available,
		Held:      account.Held,
		Total:     account.Total(),
		Locked:    account.Locked,
	}
}

// TxRecord is the retained memory of an accepted deposit. Dispute, resolve
// and chargeback locate the original amount and dispute status through it.
type TxRecord struct {
	Tx       uint32 `json:"tx"`
	Client   uint16 `json:"client"`
	Amount   Amount `json:"amount"`
	Disputed bool   `json:"disputed"`
}

// AccountSnapshot is one row of the final report.
type AccountSnapshot struct {
	Client    uint16 `json:"client"`
	Available Amount `json:"available"`
	Held      Amount `json:"held"`
	Total     Amount `json:"total"`
	Locked    bool   `json:"locked"`
}

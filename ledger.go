/*
Copyright 2024 Blnk Finance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package txflow

import (
	"github.com/jerry-enebeli/txflow/model"
)

// Ledger is the account state machine. It owns the mapping from client id
// to account and from tx id to deposit record, and applies events strictly
// in arrival order. A rejected event is a silent skip that leaves all state
// unchanged; the ledger itself never fails on a well-typed event.
//
// The ledger is exclusively owned by a single processing flow. It holds no
// locks and must not be shared across goroutines.
type Ledger struct {
	accounts map[uint16]*model.Account
	deposits map[uint32]*model.TxRecord

	applied uint64
	skipped uint64
}

// NewLedger creates an empty ledger. Both maps live and die with the
// instance; there is no package-level state.
func NewLedger() *Ledger {
	return &Ledger{
		accounts: make(map[uint16]*model.Account),
		deposits: make(map[uint32]*model.TxRecord),
	}
}

// Apply routes one event through the state machine. Events for a locked
// account are dropped unconditionally; every other rejection is decided by
// the per-kind preconditions.
func (l *Ledger) Apply(event model.Event) {
	if account, ok := l.accounts[event.Client]; ok && account.Locked {
		l.skipped++
		return
	}

	var ok bool
	switch event.Type {
	case model.EventDeposit:
		ok = l.applyDeposit(event)
	case model.EventWithdrawal:
		ok = l.applyWithdrawal(event)
	case model.EventDispute:
		ok = l.applyDispute(event)
	case model.EventResolve:
		ok = l.applyResolve(event)
	case model.EventChargeback:
		ok = l.applyChargeback(event)
	}

	if ok {
		l.applied++
	} else {
		l.skipped++
	}
}

// applyDeposit credits the client's available balance and records the
// deposit. Tx ids are globally unique; a repeat is dropped before any
// account is created, so a duplicate never conjures a new client.
func (l *Ledger) applyDeposit(event model.Event) bool {
	if _, exists := l.deposits[event.Tx]; exists {
		return false
	}
	account := l.getOrCreateAccount(event.Client)
	account.Credit(*event.Amount)
	l.deposits[event.Tx] = &model.TxRecord{
		Tx:     event.Tx,
		Client: event.Client,
		Amount: *event.Amount,
	}
	return true
}

// applyWithdrawal debits the client's available balance when funds cover
// it. The account is created lazily even for an unseen client; a brand-new
// account then fails the funds check, but the record exists afterwards.
func (l *Ledger) applyWithdrawal(event model.Event) bool {
	account := l.getOrCreateAccount(event.Client)
	if account.Available.Cmp(*event.Amount) < 0 {
		return false
	}
	account.Debit(*event.Amount)
	return true
}

// applyDispute freezes the referenced deposit's amount. The move from
// available to held is applied literally even when it drives available
// negative: disputing more than is currently available is allowed.
func (l *Ledger) applyDispute(event model.Event) bool {
	record, account := l.lookupReference(event)
	if record == nil || record.Disputed {
		return false
	}
	record.Disputed = true
	account.Hold(record.Amount)
	return true
}

// applyResolve reverses a dispute, returning the held amount to available.
func (l *Ledger) applyResolve(event model.Event) bool {
	record, account := l.lookupReference(event)
	if record == nil || !record.Disputed {
		return false
	}
	record.Disputed = false
	account.Release(record.Amount)
	return true
}

// applyChargeback finalizes a dispute against the client: the held amount
// is removed and the account locks. The record stays disputed; there is no
// transition out of a charged-back deposit.
func (l *Ledger) applyChargeback(event model.Event) bool {
	record, account := l.lookupReference(event)
	if record == nil || !record.Disputed {
		return false
	}
	account.Chargeback(record.Amount)
	return true
}

// lookupReference resolves the deposit a dispute/resolve/chargeback points
// at. Nil when the tx is unknown, owned by another client, or the client
// has no account.
func (l *Ledger) lookupReference(event model.Event) (*model.TxRecord, *model.Account) {
	record, ok := l.deposits[event.Tx]
	if !ok || record.Client != event.Client {
		return nil, nil
	}
	account, ok := l.accounts[event.Client]
	if !ok {
		return nil, nil
	}
	return record, account
}

func (l *Ledger) getOrCreateAccount(client uint16) *model.Account {
	account, ok := l.accounts[client]
	if !ok {
		account = model.NewAccount(client)
		l.accounts[client] = account
	}
	return account
}

// IsLocked reports whether the client's account exists and is locked.
func (l *Ledger) IsLocked(client uint16) bool {
	account, ok := l.accounts[client]
	return ok && account.Locked
}

// Snapshot returns the reporting view of every account. Order is map
// iteration order and is deliberately unspecified.
func (l *Ledger) Snapshot() []model.AccountSnapshot {
	snapshots := make([]model.AccountSnapshot, 0, len(l.accounts))
	for _, account := range l.accounts {
		snapshots = append(snapshots, account.Snapshot())
	}
	return snapshots
}

// Stats returns how many events were applied and skipped so far. Used for
// the end-of-run summary only; individual skips are silent.
func (l *Ledger) Stats() (applied, skipped uint64) {
	return l.applied, l.skipped
}

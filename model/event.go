package model

import (
	"errors"
	"fmt"
)

// EventType identifies the kind of event in the input stream.
type EventType string

const (
	EventDeposit    EventType = "deposit"
	EventWithdrawal EventType = "withdrawal"
	EventDispute    EventType = "dispute"
	EventResolve    EventType = "resolve"
	EventChargeback EventType = "chargeback"
)

var (
	ErrUnknownEventType = errors.New("unknown event type")
	ErrMissingAmount    = errors.New("missing amount")
	ErrNegativeAmount   = errors.New("negative amount")
)

// Event is one record of the input stream. Amount is nil for the event
// kinds that reference a prior deposit instead of carrying their own value.
type Event struct {
	Type   EventType `json:"type"`
	Client uint16    `json:"client"`
	Tx     uint32    `json:"tx"`
	Amount *Amount   `json:"amount,omitempty"`
}

// ParseEventType maps a raw type field to an EventType.
func ParseEventType(s string) (EventType, error) {
	switch EventType(s) {
	case EventDeposit, EventWithdrawal, EventDispute, EventResolve, EventChargeback:
		return EventType(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEventType, s)
	}
}

// Validate checks the event's shape. Deposits and withdrawals must carry a
// non-negative amount; the reference kinds tolerate a supplied amount but
// never use it. A validation failure is a decode-boundary error, not a
// business-rule skip.
func (e *Event) Validate() error {
	switch e.Type {
	case EventDeposit, EventWithdrawal:
		if e.Amount == nil {
			return fmt.Errorf("%w for %s tx %d", ErrMissingAmount, e.Type, e.Tx)
		}
		if e.Amount.IsNegative() {
			return fmt.Errorf("%w for %s tx %d", ErrNegativeAmount, e.Type, e.Tx)
		}
	case EventDispute, EventResolve, EventChargeback:
		// amount, if present, is ignored
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEventType, e.Type)
	}
	return nil
}

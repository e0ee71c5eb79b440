package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEventType(t *testing.T) {
	for _, raw := range []string{"deposit", "withdrawal", "dispute", "resolve", "chargeback"} {
		eventType, err := ParseEventType(raw)
		assert.NoError(t, err)
		assert.Equal(t, EventType(raw), eventType)
	}

	_, err := ParseEventType("transfer")
	assert.ErrorIs(t, err, ErrUnknownEventType)

	_, err = ParseEventType("")
	assert.ErrorIs(t, err, ErrUnknownEventType)
}

func TestEvent_Validate(t *testing.T) {
	amount, _ := ParseAmount("1.5")
	negative, _ := ParseAmount("-1.5")

	t.Run("deposit and withdrawal require a non-negative amount", func(t *testing.T) {
		for _, eventType := range []EventType{EventDeposit, EventWithdrawal} {
			event := Event{Type: eventType, Client: 1, Tx: 1, Amount: &amount}
			assert.NoError(t, event.Validate())

			event.Amount = nil
			assert.ErrorIs(t, event.Validate(), ErrMissingAmount)

			event.Amount = &negative
			assert.ErrorIs(t, event.Validate(), ErrNegativeAmount)
		}
	})

	t.Run("reference kinds tolerate a missing or supplied amount", func(t *testing.T) {
		for _, eventType := range []EventType{EventDispute, EventResolve, EventChargeback} {
			event := Event{Type: eventType, Client: 1, Tx: 1}
			assert.NoError(t, event.Validate())

			event.Amount = &amount
			assert.NoError(t, event.Validate())
		}
	})

	t.Run("unknown type is rejected", func(t *testing.T) {
		event := Event{Type: "transfer", Client: 1, Tx: 1}
		assert.ErrorIs(t, event.Validate(), ErrUnknownEventType)
	})
}

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
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Txflow ties one processing run together: a fresh ledger, a run id for log
// correlation, and the stream loop. One instance serves one run; it is
// built at start and discarded with its state at the end.
type Txflow struct {
	ledger *Ledger
	runID  string
}

// NewTxflow creates a run with an empty ledger.
func NewTxflow() *Txflow {
	return &Txflow{
		ledger: NewLedger(),
		runID:  fmt.Sprintf("run_%s", uuid.New().String()),
	}
}

// RunID returns the identifier stamped on this run's log lines.
func (t *Txflow) RunID() string {
	return t.runID
}

// Ledger exposes the run's state machine.
func (t *Txflow) Ledger() *Ledger {
	return t.ledger
}

// ProcessStream decodes events from r and feeds them to the ledger one at a
// time, in input order, until end of stream. The first malformed record
// aborts the run; business-rule skips inside the ledger stay silent and the
// stream keeps going.
func (t *Txflow) ProcessStream(r io.Reader) error {
	reader, err := NewEventReader(r)
	if err != nil {
		return err
	}

	for {
		event, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		t.ledger.Apply(event)
	}

	applied, skipped := t.ledger.Stats()
	logrus.WithFields(logrus.Fields{
		"run_id":   t.runID,
		"applied":  applied,
		"skipped":  skipped,
		"accounts": len(t.ledger.accounts),
	}).Info("processed event stream")

	return nil
}

// WriteReport renders the final account snapshot to w.
func (t *Txflow) WriteReport(w io.Writer) error {
	return WriteReport(w, t.ledger.Snapshot())
}

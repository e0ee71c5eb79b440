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
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jerry-enebeli/txflow/model"
)

var requiredColumns = []string{"type", "client", "tx", "amount"}

var ErrInvalidHeader = errors.New("invalid csv header")

// EventReader decodes CSV rows into validated events. Columns are resolved
// by header name, so column order does not matter; all four required
// columns must be present. Any malformed row is a fatal decode error —
// business logic never sees an invalid event.
type EventReader struct {
	reader  *csv.Reader
	columns map[string]int
	row     int
}

// NewEventReader wraps r and consumes the header row.
func NewEventReader(r io.Reader) (*EventReader, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrInvalidHeader, name)
		}
	}

	return &EventReader{reader: reader, columns: columns, row: 1}, nil
}

// Read returns the next event, or io.EOF at end of stream. Every field is
// whitespace-trimmed before parsing; an empty amount field decodes to a nil
// amount.
func (er *EventReader) Read() (model.Event, error) {
	record, err := er.reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return model.Event{}, io.EOF
		}
		return model.Event{}, fmt.Errorf("reading csv record: %w", err)
	}
	er.row++

	event, err := er.decode(record)
	if err != nil {
		return model.Event{}, fmt.Errorf("row %d: %w", er.row, err)
	}
	return event, nil
}

func (er *EventReader) decode(record []string) (model.Event, error) {
	eventType, err := model.ParseEventType(er.field(record, "type"))
	if err != nil {
		return model.Event{}, err
	}

	client, err := strconv.ParseUint(er.field(record, "client"), 10, 16)
	if err != nil {
		return model.Event{}, fmt.Errorf("parsing client id: %w", err)
	}

	tx, err := strconv.ParseUint(er.field(record, "tx"), 10, 32)
	if err != nil {
		return model.Event{}, fmt.Errorf("parsing tx id: %w", err)
	}

	event := model.Event{
		Type:   eventType,
		Client: uint16(client),
		Tx:     uint32(tx),
	}

	if raw := er.field(record, "amount"); raw != "" {
		amount, err := model.ParseAmount(raw)
		if err != nil {
			return model.Event{}, err
		}
		event.Amount = &amount
	}

	if err := event.Validate(); err != nil {
		return model.Event{}, err
	}
	return event, nil
}

// field returns the trimmed value of a named column, or "" when the row is
// too short to contain it.
func (er *EventReader) field(record []string, name string) string {
	i := er.columns[name]
	if i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

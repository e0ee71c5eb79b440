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
	"fmt"
	"io"
	"strconv"

	"github.com/jerry-enebeli/txflow/model"
)

var reportHeader = []string{"client", "available", "held", "total", "locked"}

// WriteReport renders account snapshots as the final CSV report. Amounts
// carry exactly four fractional digits regardless of their internal
// precision; row order follows the snapshot slice.
func WriteReport(w io.Writer, snapshots []model.AccountSnapshot) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(reportHeader); err != nil {
		return fmt.Errorf("writing report header: %w", err)
	}
	for _, snapshot := range snapshots {
		row := []string{
			strconv.FormatUint(uint64(snapshot.Client), 10),
			snapshot.Available.String(),
			snapshot.Held.String(),
			snapshot.Total.String(),
			strconv.FormatBool(snapshot.Locked),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing report row for client %d: %w", snapshot.Client, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

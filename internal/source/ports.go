// Package source defines the ingestion port the report pipeline reads
// transactions through, with one backend per supported export format.
package source

import (
	"context"

	"finreport/internal/core"
)

// Reader is the inbound port for transaction ingestion. Backends return
// the full transaction list of the dataset in one call: the pipeline is a
// single batch run over an in-memory list.
type Reader interface {
	Read(ctx context.Context) ([]core.Transaction, error)
}

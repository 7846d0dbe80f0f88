package ports

import (
	"sigtab/domain/table"
)

// TableReader loads a crosstab from an external source (xlsx, csv) into the
// in-memory table model. Malformed cells degrade to "no data"; only
// structural problems (unreadable file, missing header rows) are errors.
type TableReader interface {
	ReadTable() (*table.Table, error)
}

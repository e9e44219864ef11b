package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"PaymentEngine/internal/engine"
)

// Write renders the snapshot as CSV with the header
// client,available,held,total,locked. Amounts use the canonical minimal
// rendering (trailing zeros trimmed). Row order follows the snapshot and is
// not part of the contract.
func Write(w io.Writer, views []engine.AccountView) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, v := range views {
		row := []string{
			strconv.FormatUint(uint64(v.Client), 10),
			v.Available.String(),
			v.Held.String(),
			v.Total.String(),
			strconv.FormatBool(v.Locked),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write client %d: %w", v.Client, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

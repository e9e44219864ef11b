package ingestion

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"PaymentEngine/internal/event"
	"PaymentEngine/internal/money"
)

// Reader streams transactions out of a CSV document with the header
// type,client,tx,amount. Fields are whitespace-trimmed. Any malformed
// record aborts the stream: a partial input must never produce a report.
type Reader struct {
	csv     *csv.Reader
	started bool
	record  int // 1-based data record counter, for error messages
}

func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	// Dispute, resolve and chargeback rows may omit the amount column.
	cr.FieldsPerRecord = -1
	return &Reader{csv: cr}
}

// Next returns the next transaction in stream order, or io.EOF at end of
// input.
func (r *Reader) Next() (event.Transaction, error) {
	if !r.started {
		if err := r.readHeader(); err != nil {
			return event.Transaction{}, err
		}
		r.started = true
	}

	fields, err := r.csv.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return event.Transaction{}, io.EOF
		}
		return event.Transaction{}, fmt.Errorf("read record: %w", err)
	}
	r.record++

	tx, err := parseRecord(fields)
	if err != nil {
		return event.Transaction{}, fmt.Errorf("record %d: %w", r.record, err)
	}
	return tx, nil
}

func (r *Reader) readHeader() error {
	fields, err := r.csv.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("missing header row")
		}
		return fmt.Errorf("read header: %w", err)
	}

	want := []string{"type", "client", "tx", "amount"}
	if len(fields) != len(want) {
		return fmt.Errorf("bad header: want %d columns, got %d", len(want), len(fields))
	}
	for i, name := range want {
		if strings.TrimSpace(fields[i]) != name {
			return fmt.Errorf("bad header: column %d is %q, want %q", i, fields[i], name)
		}
	}
	return nil
}

func parseRecord(fields []string) (event.Transaction, error) {
	if len(fields) < 3 {
		return event.Transaction{}, fmt.Errorf("want at least 3 fields, got %d", len(fields))
	}

	kind, err := parseKind(strings.TrimSpace(fields[0]))
	if err != nil {
		return event.Transaction{}, err
	}

	client, err := strconv.ParseUint(strings.TrimSpace(fields[1]), 10, 16)
	if err != nil {
		return event.Transaction{}, fmt.Errorf("parse client id %q: %w", fields[1], err)
	}

	id, err := strconv.ParseUint(strings.TrimSpace(fields[2]), 10, 32)
	if err != nil {
		return event.Transaction{}, fmt.Errorf("parse tx id %q: %w", fields[2], err)
	}

	tx := event.Transaction{
		ID:     uint32(id),
		Client: uint16(client),
		Kind:   kind,
	}

	switch kind {
	case event.TxDeposit, event.TxWithdrawal:
		if len(fields) < 4 || strings.TrimSpace(fields[3]) == "" {
			return event.Transaction{}, fmt.Errorf("missing amount for %s", kind)
		}
		amount, err := money.Parse(strings.TrimSpace(fields[3]))
		if err != nil {
			return event.Transaction{}, err
		}
		if amount.IsNegative() {
			return event.Transaction{}, fmt.Errorf("negative amount for %s", kind)
		}
		tx.Amount = amount
	}

	return tx, nil
}

func parseKind(s string) (event.TxKind, error) {
	switch s {
	case "deposit":
		return event.TxDeposit, nil
	case "withdrawal":
		return event.TxWithdrawal, nil
	case "dispute":
		return event.TxDispute, nil
	case "resolve":
		return event.TxResolve, nil
	case "chargeback":
		return event.TxChargeback, nil
	default:
		return event.TxUnknown, fmt.Errorf("unknown transaction type %q", s)
	}
}

// ForEach streams every transaction in r into fn, stopping at the first
// malformed record.
func ForEach(r io.Reader, fn func(event.Transaction)) error {
	reader := NewReader(r)
	for {
		tx, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		fn(tx)
	}
}

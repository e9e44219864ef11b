package ingestion_test

import (
	"strings"
	"testing"

	"PaymentEngine/internal/event"
	"PaymentEngine/internal/ingestion"
	"PaymentEngine/internal/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, input string) []event.Transaction {
	t.Helper()
	var txs []event.Transaction
	err := ingestion.ForEach(strings.NewReader(input), func(tx event.Transaction) {
		txs = append(txs, tx)
	})
	require.NoError(t, err)
	return txs
}

func TestReaderParsesStream(t *testing.T) {
	input := strings.Join([]string{
		"type, client, tx, amount",
		"deposit, 1, 1, 1.0",
		"withdrawal, 1, 4, 1.5",
		"dispute, 1, 1,",
		"resolve, 1, 1,",
		"chargeback, 1, 1,",
	}, "\n")

	txs := collect(t, input)
	require.Len(t, txs, 5)

	assert.Equal(t, event.TxDeposit, txs[0].Kind)
	assert.Equal(t, uint16(1), txs[0].Client)
	assert.Equal(t, uint32(1), txs[0].ID)
	assert.True(t, txs[0].Amount.Equal(money.MustParse("1")))

	assert.Equal(t, event.TxWithdrawal, txs[1].Kind)
	assert.Equal(t, uint32(4), txs[1].ID)
	assert.True(t, txs[1].Amount.Equal(money.MustParse("1.5")))

	assert.Equal(t, event.TxDispute, txs[2].Kind)
	assert.Equal(t, event.TxResolve, txs[3].Kind)
	assert.Equal(t, event.TxChargeback, txs[4].Kind)
}

func TestReaderTrimsWhitespace(t *testing.T) {
	input := "type, client, tx, amount\n" +
		"deposit,   42  ,  7 ,   3.25  \n"

	txs := collect(t, input)
	require.Len(t, txs, 1)
	assert.Equal(t, uint16(42), txs[0].Client)
	assert.Equal(t, uint32(7), txs[0].ID)
	assert.True(t, txs[0].Amount.Equal(money.MustParse("3.25")))
}

func TestReaderReferenceRowsWithoutAmountColumn(t *testing.T) {
	// Dispute rows may omit the amount column entirely.
	input := "type, client, tx, amount\n" +
		"deposit, 1, 1, 5\n" +
		"dispute, 1, 1\n"

	txs := collect(t, input)
	require.Len(t, txs, 2)
	assert.Equal(t, event.TxDispute, txs[1].Kind)
}

func TestReaderUnknownKindFatal(t *testing.T) {
	input := "type, client, tx, amount\n" +
		"transfer, 1, 1, 5\n"

	err := ingestion.ForEach(strings.NewReader(input), func(event.Transaction) {})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown transaction type")
}

func TestReaderMissingAmountFatal(t *testing.T) {
	for _, row := range []string{
		"deposit, 1, 1,",
		"deposit, 1, 1",
		"withdrawal, 1, 1,  ",
	} {
		input := "type, client, tx, amount\n" + row + "\n"
		err := ingestion.ForEach(strings.NewReader(input), func(event.Transaction) {})
		require.Error(t, err, "row %q", row)
		assert.Contains(t, err.Error(), "missing amount", "row %q", row)
	}
}

func TestReaderMalformedNumbersFatal(t *testing.T) {
	for _, row := range []string{
		"deposit, x, 1, 5",       // bad client id
		"deposit, 1, y, 5",       // bad tx id
		"deposit, 70000, 1, 5",   // client id out of u16 range
		"deposit, 1, 1, 1.2.3",   // bad amount
		"withdrawal, 1, 1, -5.0", // negative amount
	} {
		input := "type, client, tx, amount\n" + row + "\n"
		err := ingestion.ForEach(strings.NewReader(input), func(event.Transaction) {})
		require.Error(t, err, "row %q", row)
	}
}

func TestReaderBadHeaderFatal(t *testing.T) {
	for _, header := range []string{
		"",
		"tx, client, type, amount",
		"type, client, tx",
	} {
		err := ingestion.ForEach(strings.NewReader(header+"\n"), func(event.Transaction) {})
		require.Error(t, err, "header %q", header)
	}
}

func TestForEachStopsAtFirstMalformedRecord(t *testing.T) {
	input := strings.Join([]string{
		"type, client, tx, amount",
		"deposit, 1, 1, 5",
		"bogus, 1, 2, 5",
		"deposit, 1, 3, 5",
	}, "\n")

	var count int
	err := ingestion.ForEach(strings.NewReader(input), func(event.Transaction) { count++ })
	require.Error(t, err)
	assert.Equal(t, 1, count, "records after the malformed one must not be delivered")
}

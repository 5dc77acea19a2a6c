package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"merchant-payment-api/models"
)

var sampleRecords = []models.TransactionRecord{
	{
		ID:             "txn1",
		Status:         "settled",
		Amount:         "10.00",
		InstrumentType: "credit_card",
		CreatedAt:      time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	},
	{
		ID:             "txn2",
		Status:         "submitted_for_settlement",
		Amount:         "99.90",
		InstrumentType: "paypal_account",
		CreatedAt:      time.Date(2024, 3, 2, 9, 30, 0, 0, time.UTC),
	},
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleRecords))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "ID,STATUS,AMOUNT,INSTRUMENT,CREATED", lines[0])
	assert.Equal(t, "txn1,settled,10.00,credit_card,2024-03-01T12:00:00Z", lines[1])
	assert.Equal(t, "txn2,submitted_for_settlement,99.90,paypal_account,2024-03-02T09:30:00Z", lines[2])
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "ID,STATUS,AMOUNT,INSTRUMENT,CREATED\n", buf.String())
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, sampleRecords))

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "ID")
	assert.Contains(t, lines[0], "INSTRUMENT")
	assert.Contains(t, lines[1], "txn1")
	assert.Contains(t, lines[2], "paypal_account")
}

func TestWriteTableWithDecoration(t *testing.T) {
	var buf bytes.Buffer
	decorate := func(s string) string { return "<" + s + ">" }
	require.NoError(t, WriteTableWith(&buf, sampleRecords, decorate))

	assert.Contains(t, buf.String(), "<ID>")
	assert.NotContains(t, buf.String(), "<txn1>", "only headers are decorated")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleRecords))
	assert.Contains(t, buf.String(), `"id": "txn1"`)
}

// Package report renders already-normalized transaction records as
// delimited text, structured data or a console table.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"merchant-payment-api/models"
)

var columns = []string{"ID", "STATUS", "AMOUNT", "INSTRUMENT", "CREATED"}

func WriteCSV(w io.Writer, records []models.TransactionRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return err
	}
	for _, rec := range records {
		if err := cw.Write(recordFields(rec)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func WriteJSON(w io.Writer, records []models.TransactionRecord) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

// WriteTable lays the records out in aligned columns. Header decoration is
// the CLI's concern; pass nil to leave it plain.
func WriteTable(w io.Writer, records []models.TransactionRecord) error {
	return WriteTableWith(w, records, nil)
}

func WriteTableWith(w io.Writer, records []models.TransactionRecord, decorate func(string) string) error {
	if decorate == nil {
		decorate = func(s string) string { return s }
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, col := range columns {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, decorate(col))
	}
	fmt.Fprintln(tw)

	for _, rec := range records {
		fields := recordFields(rec)
		for i, field := range fields {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, field)
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}

func recordFields(rec models.TransactionRecord) []string {
	return []string{
		rec.ID,
		rec.Status,
		rec.Amount,
		rec.InstrumentType,
		rec.CreatedAt.Format(time.RFC3339),
	}
}

// Command report fetches the merchant's historical transactions from the
// API and renders them as a console table, CSV or JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/fatih/color"

	"merchant-payment-api/models"
	"merchant-payment-api/report"
)

func main() {
	var (
		apiURL = flag.String("url", "http://localhost:8080", "base URL of the payment API")
		token  = flag.String("token", os.Getenv("REPORT_TOKEN"), "bearer token for the reporting endpoint")
		format = flag.String("format", "table", "output format: table, csv or json")
	)
	flag.Parse()

	records, err := fetchTransactions(*apiURL, *token)
	if err != nil {
		log.Fatalf("Failed to fetch transactions: %v", err)
	}

	switch *format {
	case "table":
		header := color.New(color.FgCyan, color.Bold)
		err = report.WriteTableWith(os.Stdout, records, func(s string) string { return header.Sprint(s) })
	case "csv":
		err = report.WriteCSV(os.Stdout, records)
	case "json":
		err = report.WriteJSON(os.Stdout, records)
	default:
		log.Fatalf("Unsupported format: %s", *format)
	}
	if err != nil {
		log.Fatalf("Failed to render report: %v", err)
	}
}

func fetchTransactions(apiURL, token string) ([]models.TransactionRecord, error) {
	client := &http.Client{Timeout: 30 * time.Second}

	req, err := http.NewRequest("GET", apiURL+"/api/transactions?format=json", nil)
	if err != nil {
		return nil, err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr models.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("%s (status %d)", apiErr.Error, resp.StatusCode)
		}
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var records []models.TransactionRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, err
	}
	return records, nil
}

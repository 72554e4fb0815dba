// Package common provides the CSV transaction feed I/O shared by the
// commands.
package common

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fjacquet/fincat/internal/dateutils"
	"fjacquet/fincat/internal/models"
	"fjacquet/fincat/internal/parsererror"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// Delimiter is the CSV delimiter used for reading and writing feeds.
var Delimiter rune = ','

func init() {
	if val := os.Getenv("CSV_DELIMITER"); val != "" {
		SetDelimiter([]rune(val)[0])
	}
}

// SetDelimiter sets the delimiter for CSV input and output.
func SetDelimiter(delim rune) {
	Delimiter = delim
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = Delimiter
		return r
	})
}

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger == nil {
		return
	}
	log = logger
}

// transactionRow mirrors one line of the bank feed. All fields stay
// strings here; parsing into typed values happens in one place so a bad
// row aborts the whole batch with a precise reason.
type transactionRow struct {
	Date     string `csv:"Date"`
	Details  string `csv:"Details"`
	Amount   string `csv:"Amount"`
	Flow     string `csv:"Debit/Credit"`
	Category string `csv:"Category"`
}

// ReadTransactionsFile reads a transaction feed CSV into a fresh batch.
// The load is fail-fast: the first unparseable date, amount, or flow
// label aborts the whole batch with a MalformedInputError, so callers
// never see a half-valid batch.
func ReadTransactionsFile(filePath string) ([]models.Transaction, error) {
	log.WithField("file", filePath).Info("Reading transaction feed")

	file, err := os.Open(filePath)
	if err != nil {
		log.WithError(err).Error("Failed to open CSV file")
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	var rows []transactionRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		log.WithError(err).Error("Failed to parse CSV file")
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}

	transactions := make([]models.Transaction, 0, len(rows))
	for i, row := range rows {
		// Data rows start after the header line.
		rowNum := i + 2

		date, err := dateutils.ParseDateString(row.Date)
		if err != nil {
			return nil, &parsererror.MalformedInputError{
				FilePath: filePath, Row: rowNum, Field: "Date", Value: row.Date, Err: err,
			}
		}

		amount, err := models.ParseAmount(row.Amount)
		if err != nil {
			return nil, &parsererror.MalformedInputError{
				FilePath: filePath, Row: rowNum, Field: "Amount", Value: row.Amount, Err: err,
			}
		}

		direction, err := models.ParseDirection(row.Flow)
		if err != nil {
			return nil, &parsererror.MalformedInputError{
				FilePath: filePath, Row: rowNum, Field: "Debit/Credit", Value: row.Flow, Err: err,
			}
		}

		category := row.Category
		if category == "" {
			category = models.CategoryUncategorized
		}

		transactions = append(transactions, models.Transaction{
			Date:      date,
			Details:   row.Details,
			Amount:    amount,
			Direction: direction,
			Category:  category,
		})
	}

	log.WithField("count", len(transactions)).Info("Successfully read transaction feed")
	return transactions, nil
}

// WriteTransactionsToCSV writes a categorized batch back out as CSV with
// the same columns as the feed plus the Category column.
func WriteTransactionsToCSV(transactions []models.Transaction, csvFile string) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}

	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"count": len(transactions),
	}).Info("Writing transactions to CSV file")

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		log.WithError(err).Error("Failed to create directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		log.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	rows := make([]transactionRow, len(transactions))
	for i, tx := range transactions {
		rows[i] = transactionRow{
			Date:     dateutils.ToFeedFormat(tx.Date),
			Details:  tx.Details,
			Amount:   tx.Amount.StringFixed(2),
			Flow:     string(tx.Direction),
			Category: tx.Category,
		}
	}

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		log.WithError(err).Error("Failed to marshal transactions to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"count": len(transactions),
	}).Info("Successfully wrote transactions to CSV file")

	return nil
}

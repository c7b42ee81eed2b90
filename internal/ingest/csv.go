package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/monthly-expense/backend/internal/models"
)

// Column names of the CSV header. They are matched case-insensitively
// and may appear in any order.
const (
	ColumnDate        = "date"
	ColumnDescription = "description"
	ColumnAmount      = "amount"
	ColumnCategory    = "category"
)

var columns = []string{ColumnDate, ColumnDescription, ColumnAmount, ColumnCategory}

var ErrNoHeader = fmt.Errorf("%w: the file does not contain a CSV header", models.ErrValidation)

// header maps column names to their index in a row.
type header map[string]int

func parseHeader(record []string) (header, error) {
	h := header{}
	for i, name := range record {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if name == "" {
			continue
		}

		if _, ok := h[name]; ok {
			return nil, fmt.Errorf("%w: the column %s appears more than once in the CSV header", models.ErrValidation, name)
		}
		h[name] = i
	}

	for _, c := range columns {
		if _, ok := h[c]; !ok {
			return nil, fmt.Errorf("%w: the CSV header is missing the column %s", models.ErrValidation, c)
		}
	}

	return h, nil
}

// value returns the value of the column in the row. Rows shorter
// than the header have empty values for the missing columns.
func (h header) value(record []string, column string) string {
	i := h[column]
	if i >= len(record) {
		return ""
	}

	return record[i]
}

// ParseCSV reads transactions from a CSV file.
//
// The first line must be a header with the columns Date, Description,
// Amount and Category. Additional columns are ignored. All rows must
// be valid, otherwise an error naming the line is returned and no
// transactions are.
func ParseCSV(f io.Reader) ([]models.Transaction, error) {
	reader := csv.NewReader(f)

	// We can reuse the array in the background to improve performance
	reader.ReuseRecord = true
	reader.TrimLeadingSpace = true

	// Short rows are reported as missing fields, not as a malformed file
	reader.FieldsPerRecord = -1

	record, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return []models.Transaction{}, ErrNoHeader
	}
	if err != nil {
		return csvReadError(reader, fmt.Errorf("%w: could not read CSV header: %w", models.ErrValidation, err))
	}

	h, err := parseHeader(record)
	if err != nil {
		return csvReadError(reader, err)
	}

	transactions := []models.Transaction{}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return csvReadError(reader, fmt.Errorf("%w: could not read line in CSV: %w", models.ErrValidation, err))
		}

		t, err := NormalizeText(
			h.value(record, ColumnDate),
			h.value(record, ColumnDescription),
			h.value(record, ColumnAmount),
			h.value(record, ColumnCategory),
		)
		if err != nil {
			return csvReadError(reader, err)
		}

		transactions = append(transactions, t)
	}

	return transactions, nil
}

// csvReadError returns the error, including the line of the input
// the error occurred in in the message.
func csvReadError(r *csv.Reader, err error) ([]models.Transaction, error) {
	var line int

	// Field positions are incomplete when the reader failed on the record
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		line = parseErr.StartLine
	} else {
		// always use the first field, we are only interested in the line
		line, _ = r.FieldPos(0)
	}

	return []models.Transaction{}, fmt.Errorf("error in line %d of the CSV: %w", line, err)
}

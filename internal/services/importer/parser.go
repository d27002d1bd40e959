// Package importer normalizes broker-exported transaction CSVs into
// canonical transactions and imports them into an account.
package importer

import (
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/findosh/tradebook/internal/models"
)

var (
	ErrUnknownFormat = errors.New("unknown CSV format")
	ErrEmptyFile     = errors.New("CSV file is empty")
)

// Format is a broker-specific transaction CSV format
type Format interface {
	// Name returns the format name, e.g. "schwab_transactions_v1"
	Name() string

	// Detect checks if this format handles the given header row
	Detect(header []string) bool

	// ParseRow normalizes a single data row. line is the 1-based line
	// number in the source file, for diagnostics.
	ParseRow(header, row []string, line int) RowResult
}

// RowStatus is the three-way outcome of normalizing one row
type RowStatus int

const (
	// RowAccepted means the row produced a transaction
	RowAccepted RowStatus = iota
	// RowSkipped means the row is a known non-trading entry and was
	// silently dropped
	RowSkipped
	// RowRejected means the row could not be normalized; Reason says why
	RowRejected
)

// RowResult is the outcome of normalizing a single source row
type RowResult struct {
	Status      RowStatus
	Transaction *models.Transaction
	Line        int
	Reason      string

	// Warnings records lenient-parsing substitutions (e.g. a malformed
	// numeric cell defaulted to zero) on rows that were still accepted.
	Warnings []string
}

// RowWarning identifies a row that was rejected or degraded during parsing
type RowWarning struct {
	Line    int
	Message string
}

func (w RowWarning) String() string {
	return fmt.Sprintf("line %d: %s", w.Line, w.Message)
}

// ParseResult contains the normalized transactions from one source file
type ParseResult struct {
	Transactions []models.Transaction
	Warnings     []RowWarning
	Skipped      int
	Source       string
}

// Service parses broker transaction exports
type Service struct {
	formats []Format
}

// NewService creates a parse service with all known broker formats
func NewService() *Service {
	return &Service{
		formats: []Format{
			NewSchwabTransactions(),
		},
	}
}

// ParseCSV auto-detects the broker format and normalizes every row.
// Parsing is pure: the same input always yields the same result, and a bad
// row never aborts the batch; it is recorded as a warning instead.
func (s *Service) ParseCSV(reader io.Reader) (*ParseResult, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	csvReader := csv.NewReader(strings.NewReader(sanitize(string(data))))
	csvReader.FieldsPerRecord = -1
	csvReader.TrimLeadingSpace = true

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrEmptyFile
	}

	headerIdx, header := findHeader(records)
	if headerIdx < 0 {
		return nil, ErrUnknownFormat
	}

	var format Format
	for _, f := range s.formats {
		if f.Detect(header) {
			format = f
			break
		}
	}
	if format == nil {
		return nil, ErrUnknownFormat
	}

	result := &ParseResult{Source: format.Name()}
	for i := headerIdx + 1; i < len(records); i++ {
		res := format.ParseRow(header, records[i], i+1)
		for _, msg := range res.Warnings {
			result.Warnings = append(result.Warnings, RowWarning{Line: res.Line, Message: msg})
		}
		switch res.Status {
		case RowAccepted:
			result.Transactions = append(result.Transactions, *res.Transaction)
		case RowSkipped:
			result.Skipped++
		case RowRejected:
			result.Warnings = append(result.Warnings, RowWarning{Line: res.Line, Message: res.Reason})
		}
	}

	return result, nil
}

// sanitize strips artifacts brokers leave in exports: a UTF-8 BOM, NUL
// bytes, and non-breaking spaces.
func sanitize(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	s = strings.ReplaceAll(s, "\x00", "")
	s = strings.ReplaceAll(s, "\u00a0", "")
	return s
}

// findHeader locates the header row, which may follow preamble lines in
// some exports.
func findHeader(records [][]string) (int, []string) {
	keywords := []string{"date", "action", "symbol", "description", "quantity", "price", "amount"}

	for i, row := range records {
		if len(row) < 3 {
			continue
		}
		rowStr := strings.ToLower(strings.Join(row, " "))
		matches := 0
		for _, kw := range keywords {
			if strings.Contains(rowStr, kw) {
				matches++
			}
		}
		if matches >= 3 {
			return i, row
		}
	}
	return -1, nil
}

// importHash is a deterministic digest of a source row. The 1-based line
// number is included so identical rows within one file stay distinct while
// a re-import of the same file collides on every row.
func importHash(row []string, line int) string {
	h := sha256.New()
	for _, field := range row {
		h.Write([]byte(field))
		h.Write([]byte{0x1f})
	}
	h.Write([]byte(strconv.Itoa(line)))
	return hex.EncodeToString(h.Sum(nil))
}

package seed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"reward-indexer/internal/core/domain"
	"reward-indexer/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Loader reads the historical payout snapshot: a header line followed by
// address,amount rows with amounts in display units.
type Loader struct {
	decimals int32
	log      zerolog.Logger
}

// NewLoader creates a seed loader for a token with the given decimals.
func NewLoader(decimals int32, log zerolog.Logger) *Loader {
	return &Loader{decimals: decimals, log: log}
}

// LoadFile opens path and loads it. A missing file is a parse error.
func (l *Loader) LoadFile(path string) ([]domain.SeedRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperror.ErrParse("opening seed file "+path, err)
	}
	defer f.Close()

	records, err := l.Load(f)
	if err != nil {
		return nil, err
	}

	distinct := make(map[domain.Address]struct{}, len(records))
	for _, r := range records {
		distinct[r.Address] = struct{}{}
	}

	l.log.Info().
		Str("path", path).
		Int("rows", len(records)).
		Int("addresses", len(distinct)).
		Msg("Seed loaded")

	return records, nil
}

// Load parses seed rows from r. The first record is the header and is
// skipped. Amounts are floored to the token's base units.
func (l *Loader) Load(r io.Reader) ([]domain.SeedRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, apperror.ErrParse("seed is empty: missing header line", nil)
		}
		return nil, apperror.ErrParse("reading seed header", err)
	}

	var records []domain.SeedRecord
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, apperror.ErrParse("reading seed", err)
		}

		line, _ := reader.FieldPos(0)
		rec, err := l.parseRow(row, line)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		l.log.Warn().Msg("Seed has a header but no rows; starting from an empty ledger")
	}

	return records, nil
}

func (l *Loader) parseRow(row []string, line int) (domain.SeedRecord, error) {
	if len(row) != 2 {
		return domain.SeedRecord{}, apperror.ErrParse(
			fmt.Sprintf("line %d: expected 2 fields (address,amount), got %d", line, len(row)), nil)
	}

	addr := domain.NormalizeAddress(row[0])
	if addr == "" {
		return domain.SeedRecord{}, apperror.ErrParse(fmt.Sprintf("line %d: empty address", line), nil)
	}

	raw := strings.TrimSpace(row[1])
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return domain.SeedRecord{}, apperror.ErrParse(fmt.Sprintf("line %d: invalid amount %q", line, raw), err)
	}
	if amount.IsNegative() {
		return domain.SeedRecord{}, apperror.ErrParse(fmt.Sprintf("line %d: negative amount %q", line, raw), nil)
	}

	return domain.SeedRecord{
		Address: addr,
		Amount:  domain.ToBaseUnits(amount, l.decimals),
		Line:    line,
	}, nil
}

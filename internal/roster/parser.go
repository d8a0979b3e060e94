package roster

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	enc "github.com/MrJamesThe3rd/cashup/internal/encoding"
	"github.com/MrJamesThe3rd/cashup/internal/guide"
)

// ErrNoHeader is returned when no row names both a name and a rank column.
var ErrNoHeader = errors.New("no roster header found: expected Name and Rank columns")

// headers lists the accepted spellings of each column, lower-cased.
var headers = map[string][]string{
	colName:  {"name", "guide", "guide name", "full name"},
	colRank:  {"rank", "level", "grade"},
	colEmail: {"email", "e-mail", "email address"},
}

const (
	colName  = "name"
	colRank  = "rank"
	colEmail = "email"
)

// Parser reads guide rosters exported from spreadsheets. The header row may
// be preceded by title rows and columns may come in any order.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse returns one entry per data row. Ranks are passed through as
// written so the import can report invalid ones per row.
func (p *Parser) Parse(r io.Reader) ([]guide.CreateParams, error) {
	utf8r, charset, err := enc.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	data, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter(data)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	cols, headerIdx, ok := findHeader(rows)
	if !ok {
		return nil, ErrNoHeader
	}

	slog.Info("parsing roster", "charset", charset, "delimiter", string(reader.Comma), "rows", len(rows)-headerIdx-1)

	var out []guide.CreateParams

	for _, row := range rows[headerIdx+1:] {
		name := cellValue(row, cols[colName])
		rank := cellValue(row, cols[colRank])

		if name == "" && rank == "" {
			continue
		}

		params := guide.CreateParams{
			Name: name,
			Rank: guide.Rank(strings.ToUpper(rank)),
		}

		if idx, ok := cols[colEmail]; ok {
			if email := cellValue(row, idx); email != "" {
				params.Email = &email
			}
		}

		out = append(out, params)
	}

	return out, nil
}

// delimiter picks ';' or ',' by whichever appears more in the first line
// that has either.
func delimiter(data []byte) rune {
	sc := bufio.NewScanner(bytes.NewReader(data))

	for sc.Scan() {
		line := sc.Text()

		semi := strings.Count(line, ";")
		comma := strings.Count(line, ",")

		if semi == 0 && comma == 0 {
			continue
		}

		if semi > comma {
			return ';'
		}

		return ','
	}

	return ','
}

// findHeader returns the column index of each known header and the row it
// was found on.
func findHeader(rows [][]string) (map[string]int, int, bool) {
	for rowIdx, row := range rows {
		cols := make(map[string]int)

		for i, cell := range row {
			name := strings.ToLower(strings.TrimSpace(cell))

			for col, aliases := range headers {
				if _, taken := cols[col]; taken {
					continue
				}

				for _, alias := range aliases {
					if name == alias {
						cols[col] = i
					}
				}
			}
		}

		_, hasName := cols[colName]
		_, hasRank := cols[colRank]

		if hasName && hasRank {
			return cols, rowIdx, true
		}
	}

	return nil, 0, false
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

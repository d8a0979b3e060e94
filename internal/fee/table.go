package fee

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/MrJamesThe3rd/cashup/internal/guide"
)

// NameOverride pays a fixed amount to any guide whose name contains Substring,
// regardless of rank.
type NameOverride struct {
	Substring string          `yaml:"substring"`
	Leader    decimal.Decimal `yaml:"leader"`
	Member    decimal.Decimal `yaml:"member"`
}

// Table is one version of the per-trip rate configuration.
type Table struct {
	Version      string                         `yaml:"version"`
	Flat         map[guide.Rank]decimal.Decimal `yaml:"flat"`
	Leader       map[guide.Rank]decimal.Decimal `yaml:"leader"`
	NameOverride *NameOverride                  `yaml:"name_override"`
}

func DefaultTable() *Table {
	return &Table{
		Version: "2024-01",
		Flat: map[guide.Rank]decimal.Decimal{
			guide.RankTrainee:      decimal.NewFromInt(200),
			guide.RankJunior:       decimal.NewFromInt(350),
			guide.RankIntermediate: decimal.NewFromInt(550),
			guide.RankSenior:       decimal.NewFromInt(730),
		},
		Leader: map[guide.Rank]decimal.Decimal{
			guide.RankTrainee:      decimal.NewFromInt(810),
			guide.RankJunior:       decimal.NewFromInt(810),
			guide.RankIntermediate: decimal.NewFromInt(700),
			guide.RankSenior:       decimal.NewFromInt(810),
		},
		NameOverride: &NameOverride{
			Substring: "leader",
			Leader:    decimal.NewFromInt(820),
			Member:    decimal.NewFromInt(740),
		},
	}
}

// Validate checks that every rank has both rates and nothing is negative.
func (t *Table) Validate() error {
	if t.Version == "" {
		return fmt.Errorf("rate table has no version")
	}

	for _, r := range guide.Ranks {
		flat, ok := t.Flat[r]
		if !ok {
			return fmt.Errorf("rate table %s: no flat rate for %s", t.Version, r)
		}

		lead, ok := t.Leader[r]
		if !ok {
			return fmt.Errorf("rate table %s: no leader rate for %s", t.Version, r)
		}

		if flat.IsNegative() || lead.IsNegative() {
			return fmt.Errorf("rate table %s: negative rate for %s", t.Version, r)
		}
	}

	if o := t.NameOverride; o != nil {
		if o.Substring == "" {
			return fmt.Errorf("rate table %s: name override without substring", t.Version)
		}

		if o.Leader.IsNegative() || o.Member.IsNegative() {
			return fmt.Errorf("rate table %s: negative name override", t.Version)
		}
	}

	return nil
}

// LoadTable reads a YAML rate table from path.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rate table: %w", err)
	}

	return ParseTable(data)
}

func ParseTable(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("decoding rate table: %w", err)
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}

	return &t, nil
}

// Package fee computes what a guide earns for a single trip.
package fee

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/MrJamesThe3rd/cashup/internal/guide"
)

// Engine applies a rate table. It holds no state besides the table and is
// safe for concurrent use.
type Engine struct {
	table *Table
}

func NewEngine(table *Table) *Engine {
	return &Engine{table: table}
}

// Version identifies the rate table the engine prices with.
func (e *Engine) Version() string { return e.table.Version }

// Fee returns the per-trip earnings for a guide. Rules apply in order:
// the name override, then the leader rate, then the flat rate.
func (e *Engine) Fee(rank guide.Rank, isLeader bool, name string) decimal.Decimal {
	if amount, ok := e.nameOverride(name, isLeader); ok {
		return amount
	}

	if isLeader {
		return e.table.Leader[rank]
	}

	return e.table.Flat[rank]
}

// nameOverride is a deliberate one-off: guides whose display name contains the
// configured substring are paid a fixed rate. Do not add more rules like it.
func (e *Engine) nameOverride(name string, isLeader bool) (decimal.Decimal, bool) {
	o := e.table.NameOverride
	if o == nil || name == "" {
		return decimal.Decimal{}, false
	}

	fold := cases.Fold()
	if !strings.Contains(fold.String(name), fold.String(o.Substring)) {
		return decimal.Decimal{}, false
	}

	if isLeader {
		return o.Leader, true
	}

	return o.Member, true
}

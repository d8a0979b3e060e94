package fee_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/cashup/internal/fee"
	"github.com/MrJamesThe3rd/cashup/internal/guide"
)

func TestEngine_RankRates(t *testing.T) {
	engine := fee.NewEngine(fee.DefaultTable())

	type testCase struct {
		rank       guide.Rank
		wantFlat   int64
		wantLeader int64
	}

	tests := []testCase{
		{rank: guide.RankTrainee, wantFlat: 200, wantLeader: 810},
		{rank: guide.RankJunior, wantFlat: 350, wantLeader: 810},
		{rank: guide.RankIntermediate, wantFlat: 550, wantLeader: 700},
		{rank: guide.RankSenior, wantFlat: 730, wantLeader: 810},
	}

	for _, tt := range tests {
		t.Run(string(tt.rank), func(t *testing.T) {
			flat := engine.Fee(tt.rank, false, "Alice")
			lead := engine.Fee(tt.rank, true, "Alice")

			assert.True(t, flat.Equal(decimal.NewFromInt(tt.wantFlat)), "flat: got %s", flat)
			assert.True(t, lead.Equal(decimal.NewFromInt(tt.wantLeader)), "leader: got %s", lead)
		})
	}
}

func TestEngine_NameOverride(t *testing.T) {
	engine := fee.NewEngine(fee.DefaultTable())

	type args struct {
		name     string
		isLeader bool
	}

	type testCase struct {
		name string
		args args
		want int64
	}

	tests := []testCase{
		{name: "LeaderFlag", args: args{name: "Guide Leader", isLeader: true}, want: 820},
		{name: "NoLeaderFlag", args: args{name: "Guide Leader", isLeader: false}, want: 740},
		{name: "UpperCase", args: args{name: "TEAM LEADER", isLeader: false}, want: 740},
		{name: "Embedded", args: args{name: "Cheerleaders", isLeader: true}, want: 820},
		{name: "NotMatching", args: args{name: "Lead Guide", isLeader: false}, want: 550},
		{name: "Empty", args: args{name: "", isLeader: true}, want: 700},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.Fee(guide.RankIntermediate, tt.args.isLeader, tt.args.name)
			assert.True(t, got.Equal(decimal.NewFromInt(tt.want)), "got %s", got)
		})
	}

	for _, r := range guide.Ranks {
		assert.True(t, engine.Fee(r, true, "Guide Leader").Equal(decimal.NewFromInt(820)))
		assert.True(t, engine.Fee(r, false, "Guide Leader").Equal(decimal.NewFromInt(740)))
	}
}

func TestParseTable(t *testing.T) {
	type testCase struct {
		name    string
		data    string
		wantErr bool
	}

	tests := []testCase{
		{
			name: "Valid",
			data: `
version: "2025-02"
flat: {TRAINEE: 250, JUNIOR: 400, INTERMEDIATE: 600, SENIOR: "780.50"}
leader: {TRAINEE: 850, JUNIOR: 850, INTERMEDIATE: 750, SENIOR: 850}
`,
		},
		{
			name: "MissingRank",
			data: `
version: "2025-02"
flat: {TRAINEE: 250, JUNIOR: 400, INTERMEDIATE: 600}
leader: {TRAINEE: 850, JUNIOR: 850, INTERMEDIATE: 750, SENIOR: 850}
`,
			wantErr: true,
		},
		{
			name: "Negative",
			data: `
version: "2025-02"
flat: {TRAINEE: -1, JUNIOR: 400, INTERMEDIATE: 600, SENIOR: 700}
leader: {TRAINEE: 850, JUNIOR: 850, INTERMEDIATE: 750, SENIOR: 850}
`,
			wantErr: true,
		},
		{
			name:    "NoVersion",
			data:    `flat: {}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := fee.ParseTable([]byte(tt.data))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)

			engine := fee.NewEngine(table)
			assert.Equal(t, "2025-02", engine.Version())
			assert.True(t, engine.Fee(guide.RankSenior, false, "Bo").Equal(decimal.RequireFromString("780.50")))
			assert.True(t, engine.Fee(guide.RankSenior, false, "Team Leader").Equal(decimal.NewFromInt(780).Add(decimal.RequireFromString("0.5"))))
		})
	}
}

func TestDefaultTable_Valid(t *testing.T) {
	require.NoError(t, fee.DefaultTable().Validate())
}

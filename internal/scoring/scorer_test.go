package scoring

import (
	"testing"

	"github.com/campuscompass/api-server/internal/models"
)

func fee(amount int64) *int64 {
	return &amount
}

func TestEngine_Score(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		name    string
		college models.College
		query   Query
		want    int
	}{
		{
			name:    "branch and fee match",
			college: models.College{Name: "A", Fees: fee(100000), Branches: models.BranchList{"CSE", "IT", "EEE"}},
			query:   Query{Branch: "cse", MaxFees: 120000},
			want:    80,
		},
		{
			name:    "branch match only",
			college: models.College{Name: "B", Fees: fee(140000), Branches: models.BranchList{"CSE", "AI"}},
			query:   Query{Branch: "cse", MaxFees: 120000},
			want:    50,
		},
		{
			name:    "fee match only",
			college: models.College{Name: "C", Fees: fee(90000), Branches: models.BranchList{"MECH"}},
			query:   Query{Branch: "cse", MaxFees: 120000},
			want:    30,
		},
		{
			name:    "no match",
			college: models.College{Name: "D", Fees: fee(200000), Branches: models.BranchList{"MECH"}},
			query:   Query{Branch: "cse", MaxFees: 120000},
			want:    0,
		},
		{
			name:    "substring matches partial branch name",
			college: models.College{Name: "E", Branches: models.BranchList{"CSE"}},
			query:   Query{Branch: "cs"},
			want:    50,
		},
		{
			name:    "branch match is case-insensitive",
			college: models.College{Name: "F", Branches: models.BranchList{"cse-cyber"}},
			query:   Query{Branch: "CSE"},
			want:    50,
		},
		{
			name:    "empty branch preference scores no branch points",
			college: models.College{Name: "G", Branches: models.BranchList{"CSE"}},
			query:   Query{Branch: "", MaxFees: 200000},
			want:    0,
		},
		{
			name:    "fee limit is inclusive",
			college: models.College{Name: "H", Fees: fee(100000)},
			query:   Query{MaxFees: 100000},
			want:    30,
		},
		{
			name:    "fee just over the limit scores nothing",
			college: models.College{Name: "I", Fees: fee(100001)},
			query:   Query{MaxFees: 100000},
			want:    0,
		},
		{
			name:    "unknown fees never earn fee points",
			college: models.College{Name: "J", Branches: models.BranchList{"CSE"}},
			query:   Query{Branch: "cse", MaxFees: 1000000},
			want:    50,
		},
		{
			name:    "absent fee limit treats fees as unbounded",
			college: models.College{Name: "K", Fees: fee(5000000)},
			query:   Query{},
			want:    30,
		},
		{
			name:    "negative fee limit treated as no limit",
			college: models.College{Name: "L", Fees: fee(150000)},
			query:   Query{MaxFees: -1},
			want:    30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.Score(&tt.college, tt.query)
			if got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEngine_ScoreRange(t *testing.T) {
	engine := NewEngine()
	valid := map[int]bool{0: true, 30: true, 50: true, 80: true}

	colleges := []models.College{
		{Name: "A"},
		{Name: "B", Fees: fee(0)},
		{Name: "C", Fees: fee(100000), Branches: models.BranchList{"CSE", "IT"}},
		{Name: "D", Branches: models.BranchList{"AI"}},
	}
	queries := []Query{
		{},
		{Branch: "cse"},
		{MaxFees: 50000},
		{Branch: "ai", MaxFees: 9999999},
		{Branch: "zzz", MaxFees: -10},
	}

	for _, college := range colleges {
		for _, query := range queries {
			score := engine.Score(&college, query)
			if !valid[score] {
				t.Errorf("Score(%s, %+v) = %d, want one of 0/30/50/80", college.Name, query, score)
			}
		}
	}
}

func TestQuery_EffectiveMaxFees(t *testing.T) {
	tests := []struct {
		name    string
		maxFees int64
		want    int64
	}{
		{"positive cap kept", 120000, 120000},
		{"zero means no limit", 0, NoFeeLimit},
		{"negative means no limit", -50, NoFeeLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Query{MaxFees: tt.maxFees}
			if got := q.EffectiveMaxFees(); got != tt.want {
				t.Errorf("EffectiveMaxFees() = %d, want %d", got, tt.want)
			}
		})
	}
}

package scoring

import (
	"strings"

	"github.com/campuscompass/api-server/internal/models"
)

// NoFeeLimit is the sentinel used when a query carries no usable fee cap
const NoFeeLimit int64 = 9999999

// Points awarded per matching criterion
const (
	BranchMatchPoints = 50
	FeeMatchPoints    = 30
)

// Query holds the recommendation criteria a college is scored against
type Query struct {
	// Branch is matched case-insensitively as a substring of the
	// college's joined branch text; empty means no branch preference.
	Branch string
	// MaxFees caps acceptable tuition; zero or negative means no limit.
	MaxFees int64
}

// EffectiveMaxFees returns the fee cap actually applied: the requested
// cap when positive, otherwise NoFeeLimit.
func (q Query) EffectiveMaxFees() int64 {
	if q.MaxFees > 0 {
		return q.MaxFees
	}
	return NoFeeLimit
}

// Engine scores colleges against recommendation queries
type Engine struct{}

// NewEngine creates a new scoring engine instance
func NewEngine() *Engine {
	return &Engine{}
}

// Score computes the additive score of a college for a query.
//
// A non-empty branch preference that appears (case-insensitively) as a
// substring of the college's branch text is worth BranchMatchPoints, so
// "cs" matches a college offering "CSE". A known fee at or under the
// effective cap is worth FeeMatchPoints. Possible results are 0, 30,
// 50 and 80.
func (e *Engine) Score(college *models.College, query Query) int {
	score := 0

	if branch := strings.ToLower(query.Branch); branch != "" {
		if strings.Contains(strings.ToLower(college.Branches.Joined()), branch) {
			score += BranchMatchPoints
		}
	}

	if college.FeesKnown() && *college.Fees <= query.EffectiveMaxFees() {
		score += FeeMatchPoints
	}

	return score
}

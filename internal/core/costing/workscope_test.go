package costing

import (
	"testing"

	"cost-engine-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

func TestScopeFromAvg(t *testing.T) {
	tests := []struct {
		avg  float64
		want domain.WorkScope
	}{
		{1.0, domain.ScopeFullRenovation},
		{1.5, domain.ScopeReplace},
		{2.0, domain.ScopeReplace},
		{2.5, domain.ScopeRefurbish},
		{3.0, domain.ScopeRefurbish},
		{3.5, domain.ScopeRepair},
		{4.0, domain.ScopeRepair},
		{4.5, domain.ScopeNone},
		{5.0, domain.ScopeNone},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ScopeFromAvg(tt.avg), "avg %.1f", tt.avg)
	}
}

func TestScopeFromScores(t *testing.T) {
	t.Run("no scores means no work", func(t *testing.T) {
		assert.Equal(t, domain.ScopeNone, scopeFromScores(nil))
	})

	t.Run("mixed scores average", func(t *testing.T) {
		scores := []domain.ConditionScore{1, 2, 3} // avg 2.0
		assert.Equal(t, domain.ScopeReplace, scopeFromScores(scores))
	})

	t.Run("all excellent means none", func(t *testing.T) {
		scores := []domain.ConditionScore{5, 5}
		assert.Equal(t, domain.ScopeNone, scopeFromScores(scores))
	})
}

func TestWorkScopeOrdering(t *testing.T) {
	// The ordinal ordering is load-bearing for the worst-scope reduction.
	assert.True(t, domain.ScopeNone < domain.ScopeRepair)
	assert.True(t, domain.ScopeRepair < domain.ScopeRefurbish)
	assert.True(t, domain.ScopeRefurbish < domain.ScopeReplace)
	assert.True(t, domain.ScopeReplace < domain.ScopeFullRenovation)
}

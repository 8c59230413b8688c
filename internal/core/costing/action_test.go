package costing

import (
	"testing"

	"cost-engine-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

func TestResolveAction(t *testing.T) {
	tests := []struct {
		name  string
		score *domain.ConditionScore
		want  domain.Action
	}{
		{"nil score means keep", nil, domain.ActionKeep},
		{"score 1 means replace", score(1), domain.ActionReplace},
		{"score 2 means replace", score(2), domain.ActionReplace},
		{"score 3 means repair", score(3), domain.ActionRepair},
		{"score 4 means keep", score(4), domain.ActionKeep},
		{"score 5 means keep", score(5), domain.ActionKeep},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveAction(tt.score))
		})
	}
}

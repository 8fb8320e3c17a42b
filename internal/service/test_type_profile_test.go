package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lshigami/Sifaka/internal/model"
)

func TestProfileFor(t *testing.T) {
	tests := []struct {
		testType model.TestType
		count    int
		marks    int
		total    int
	}{
		{model.TestTypeCAT1, 5, 10, 50},
		{model.TestTypeCAT2, 5, 10, 50},
		{model.TestTypeFAT, 10, 10, 100},
	}

	for _, tt := range tests {
		t.Run(string(tt.testType), func(t *testing.T) {
			profile, ok := ProfileFor(tt.testType)
			require.True(t, ok)
			assert.Equal(t, tt.count, profile.QuestionCount)
			assert.Equal(t, tt.marks, profile.MarksPerQuestion)
			assert.Equal(t, tt.total, profile.TotalMarks)
			assert.Equal(t, tt.total, tt.count*tt.marks)
			assert.NotEmpty(t, profile.RuleText)
		})
	}

	_, ok := ProfileFor(model.TestType("MIDTERM"))
	assert.False(t, ok)
}

func TestNormalizeModuleLabel(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Module 3", "Module 3"},
		{"module 3", "Module 3"},
		{"MODULE 3", "Module 3"},
		{"  module 7  ", "Module 7"},
		{"3", "Module 3"},
		{"10", "Module 10"},
		{"Module 10", "Module 10"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := NormalizeModuleLabel(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeModuleLabel_Idempotent(t *testing.T) {
	once, err := NormalizeModuleLabel("module 4")
	require.NoError(t, err)
	twice, err := NormalizeModuleLabel(once)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestNormalizeModuleLabel_Rejects(t *testing.T) {
	for _, raw := range []string{"", "   ", "Module 0", "Module 11", "0", "11", "Mod 3", "Module three", "chapter 3"} {
		t.Run(raw, func(t *testing.T) {
			_, err := NormalizeModuleLabel(raw)
			require.Error(t, err)
			var vErr *ValidationError
			assert.True(t, errors.As(err, &vErr))
		})
	}
}

func TestNormalizeModuleLabels(t *testing.T) {
	labels, err := NormalizeModuleLabels([]string{"module 2", "1", "Module 2", "MODULE 5"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Module 2", "Module 1", "Module 5"}, labels)
}

func TestNormalizeModuleLabels_PropagatesError(t *testing.T) {
	_, err := NormalizeModuleLabels([]string{"Module 1", "Module 99"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Module 99")
}

package grade

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fp(f float64) *float64 { return &f }

func Test_Grade_Percent(t *testing.T) {
	tests := []struct {
		name   string
		grade  Grade
		want   float64
		wantOK bool
	}{
		{name: "valid", grade: Grade{Score: fp(42), MaxPoints: fp(50)}, want: 84, wantOK: true},
		{name: "missing score", grade: Grade{MaxPoints: fp(50)}},
		{name: "missing max", grade: Grade{Score: fp(42)}},
		{name: "zero max", grade: Grade{Score: fp(42), MaxPoints: fp(0)}},
		{name: "negative max", grade: Grade{Score: fp(42), MaxPoints: fp(-10)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.grade.Percent()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_Filter(t *testing.T) {
	grades := []Grade{
		{ID: 1, StudentID: 1, Subject: "Mathematics", Assignment: "Algebra Quiz", GradingPeriod: "Q1"},
		{ID: 2, StudentID: 2, Subject: "English", Assignment: "Essay", GradingPeriod: "Q2"},
		{ID: 3, StudentID: 1, Subject: "Mathematics", Assignment: "Geometry Test", GradingPeriod: "Q2"},
	}

	got := Filter(grades, QueryFilter{Subject: "mathematics"})
	assert.Len(t, got, 2)

	got = Filter(grades, QueryFilter{Search: "essay"})
	assert.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)

	got = Filter(grades, QueryFilter{StudentID: 1, Period: "Q2"})
	assert.Len(t, got, 1)
	assert.Equal(t, 3, got[0].ID)

	got = Filter(grades, QueryFilter{Subject: "all"})
	assert.Len(t, got, 3)
}

package assignment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkaleko/shule/core"
)

func Test_Assignment_Overdue(t *testing.T) {
	today := core.Today()

	tests := []struct {
		name string
		a    Assignment
		want bool
	}{
		{name: "due yesterday", a: Assignment{DueDate: today.AddDays(-1), Status: StatusInProgress}, want: true},
		{name: "due yesterday but completed", a: Assignment{DueDate: today.AddDays(-1), Status: StatusCompleted}},
		{name: "completed case-insensitive", a: Assignment{DueDate: today.AddDays(-1), Status: "completed"}},
		{name: "due today", a: Assignment{DueDate: today, Status: StatusNotStarted}},
		{name: "due tomorrow", a: Assignment{DueDate: today.AddDays(1), Status: StatusNotStarted}},
		{name: "no due date", a: Assignment{Status: StatusInProgress}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overdue(today))
		})
	}
}

func Test_Filter_subjectMatchesTags(t *testing.T) {
	assignments := []Assignment{
		{ID: 1, Title: "Algebra homework", Tags: "math, homework", Status: StatusNotStarted},
		{ID: 2, Title: "Book report", Tags: "english", Status: StatusCompleted},
		{ID: 3, Title: "Lab writeup", Tags: "science", Status: StatusInProgress},
	}

	got := Filter(assignments, QueryFilter{Subject: "math"})
	assert.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)

	got = Filter(assignments, QueryFilter{Status: "completed"})
	assert.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)

	got = Filter(assignments, QueryFilter{Search: "report"})
	assert.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)

	got = Filter(assignments, QueryFilter{Status: "all", Subject: "all"})
	assert.Len(t, got, 3)
}

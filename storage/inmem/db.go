// Package inmemdb is a map-backed storage used by tests and by local
// development when no record store or database is reachable.
package inmemdb

import (
	"sync"

	"github.com/mkaleko/shule/core/assignment"
	"github.com/mkaleko/shule/core/attendance"
	"github.com/mkaleko/shule/core/class"
	"github.com/mkaleko/shule/core/department"
	"github.com/mkaleko/shule/core/grade"
	"github.com/mkaleko/shule/core/student"
)

type (
	studentTable struct {
		mutex   sync.RWMutex
		pkCount int
		table   map[int]*student.Student
	}

	classTable struct {
		mutex   sync.RWMutex
		pkCount int
		table   map[int]*class.Class
	}

	gradeTable struct {
		mutex   sync.RWMutex
		pkCount int
		table   map[int]*grade.Grade
	}

	attendanceTable struct {
		mutex   sync.RWMutex
		pkCount int
		table   map[int]*attendance.Record
	}

	assignmentTable struct {
		mutex   sync.RWMutex
		pkCount int
		table   map[int]*assignment.Assignment
	}

	departmentTable struct {
		mutex   sync.RWMutex
		pkCount int
		table   map[int]*department.Department
	}

	DB struct {
		student    *studentTable
		class      *classTable
		grade      *gradeTable
		attendance *attendanceTable
		assignment *assignmentTable
		department *departmentTable
	}
)

func Open() *DB {
	return &DB{
		student:    &studentTable{table: make(map[int]*student.Student)},
		class:      &classTable{table: make(map[int]*class.Class)},
		grade:      &gradeTable{table: make(map[int]*grade.Grade)},
		attendance: &attendanceTable{table: make(map[int]*attendance.Record)},
		assignment: &assignmentTable{table: make(map[int]*assignment.Assignment)},
		department: &departmentTable{table: make(map[int]*department.Department)},
	}
}

package inmemdb

import (
	"sync"

	"github.com/edurecords/portal/core/student"
)

type (
	DB struct {
		students *studentTable
		marks    *markTable
	}

	studentTable struct {
		sync.RWMutex
		table map[string]*student.Student
	}

	markKey struct {
		roll, exam string
	}

	markTable struct {
		sync.RWMutex
		table map[markKey][]int
	}
)

func Open() (*DB, error) {
	db := &DB{
		students: &studentTable{table: make(map[string]*student.Student)},
		marks:    &markTable{table: make(map[markKey][]int)},
	}
	return db, nil
}

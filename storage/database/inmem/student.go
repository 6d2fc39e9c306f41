package inmemdb

import (
	"github.com/pkg/errors"

	"github.com/edurecords/portal/core/student"
)

type studentRepository struct {
	students *studentTable
	marks    *markTable
}

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

func NewStudentRepository(db *DB) student.Repository {
	return &studentRepository{students: db.students, marks: db.marks}
}

func (repo *studentRepository) UpsertStudent(std student.Student) error {
	repo.students.Lock()
	defer repo.students.Unlock()

	repo.students.table[std.Roll] = &std
	return nil
}

func (repo *studentRepository) UpsertMarks(roll, exam string, scores []int) error {
	if len(scores) != student.NumSubjects {
		return errors.Errorf("upserting marks: want %d scores, got %d", student.NumSubjects, len(scores))
	}

	repo.marks.Lock()
	defer repo.marks.Unlock()

	cp := make([]int, len(scores))
	copy(cp, scores)
	repo.marks.table[markKey{roll, exam}] = cp
	return nil
}

func (repo *studentRepository) GetStudent(roll string) (student.Student, error) {
	repo.students.RLock()
	defer repo.students.RUnlock()

	if std, ok := repo.students.table[roll]; ok {
		return *std, nil
	}
	return student.Student{}, student.ErrNotFound
}

func (repo *studentRepository) GetMarks(roll, exam string) ([]int, error) {
	repo.marks.RLock()
	defer repo.marks.RUnlock()

	if scores, ok := repo.marks.table[markKey{roll, exam}]; ok {
		cp := make([]int, len(scores))
		copy(cp, scores)
		return cp, nil
	}
	return nil, student.ErrNotFound
}

func (repo *studentRepository) AllMarks(roll string) ([]student.MarkRecord, error) {
	repo.marks.RLock()
	defer repo.marks.RUnlock()

	records := make([]student.MarkRecord, 0)
	for key, scores := range repo.marks.table {
		if key.roll != roll {
			continue
		}
		cp := make([]int, len(scores))
		copy(cp, scores)
		records = append(records, student.MarkRecord{Roll: key.roll, Exam: key.exam, Scores: cp})
	}
	return records, nil
}

package database

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/edurecords/portal/core/student"
)

type studentRepository struct {
	db *sqlx.DB
}

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

func NewStudentRepository(db *sqlx.DB) student.Repository {
	return &studentRepository{db: db}
}

func (repo *studentRepository) UpsertStudent(std student.Student) error {
	_, err := repo.db.NamedExec(`
		INSERT INTO students (roll, name, section, attendance, assignments)
		VALUES (:roll, :name, :section, :attendance, :assignments)
		ON CONFLICT (roll) DO UPDATE SET
			name        = EXCLUDED.name,
			section     = EXCLUDED.section,
			attendance  = EXCLUDED.attendance,
			assignments = EXCLUDED.assignments`,
		std,
	)
	return errors.Wrap(err, "upserting student")
}

func (repo *studentRepository) UpsertMarks(roll, exam string, scores []int) error {
	if len(scores) != student.NumSubjects {
		return errors.Errorf("upserting marks: want %d scores, got %d", student.NumSubjects, len(scores))
	}
	_, err := repo.db.Exec(`
		INSERT INTO marks (roll, exam, s1, s2, s3, s4, s5, s6)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (roll, exam) DO UPDATE SET
			s1 = EXCLUDED.s1, s2 = EXCLUDED.s2, s3 = EXCLUDED.s3,
			s4 = EXCLUDED.s4, s5 = EXCLUDED.s5, s6 = EXCLUDED.s6`,
		roll, exam, scores[0], scores[1], scores[2], scores[3], scores[4], scores[5],
	)
	return errors.Wrap(err, "upserting marks")
}

func (repo *studentRepository) GetStudent(roll string) (student.Student, error) {
	var std student.Student
	err := repo.db.Get(&std, `SELECT roll, name, section, attendance, assignments FROM students WHERE roll = $1`, roll)
	if err != nil {
		if err == sql.ErrNoRows {
			return student.Student{}, student.ErrNotFound
		}
		return student.Student{}, errors.Wrap(err, "getting student")
	}
	return std, nil
}

func (repo *studentRepository) GetMarks(roll, exam string) ([]int, error) {
	var row markRow
	err := repo.db.Get(&row, `SELECT s1, s2, s3, s4, s5, s6 FROM marks WHERE roll = $1 AND exam = $2`, roll, exam)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, student.ErrNotFound
		}
		return nil, errors.Wrap(err, "getting marks")
	}
	return row.scores(), nil
}

func (repo *studentRepository) AllMarks(roll string) ([]student.MarkRecord, error) {
	var rows []markRow
	err := repo.db.Select(&rows, `SELECT roll, exam, s1, s2, s3, s4, s5, s6 FROM marks WHERE roll = $1`, roll)
	if err != nil {
		return nil, errors.Wrap(err, "querying marks")
	}

	records := make([]student.MarkRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, student.MarkRecord{
			Roll:   row.Roll,
			Exam:   row.Exam,
			Scores: row.scores(),
		})
	}
	return records, nil
}

type markRow struct {
	Roll string `db:"roll"`
	Exam string `db:"exam"`
	S1   int    `db:"s1"`
	S2   int    `db:"s2"`
	S3   int    `db:"s3"`
	S4   int    `db:"s4"`
	S5   int    `db:"s5"`
	S6   int    `db:"s6"`
}

func (row markRow) scores() []int {
	return []int{row.S1, row.S2, row.S3, row.S4, row.S5, row.S6}
}

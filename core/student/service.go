package student

import (
	"github.com/pkg/errors"

	"github.com/edurecords/portal/core"
)

var (
	// errors
	ErrNotFound = errors.New("student not found")

	errWrongMarksCount = errors.New("exactly 6 marks are required")
)

type (
	Repository interface {
		// UpsertStudent inserts a new profile or replaces all non-key fields
		// of the existing row for that roll.
		UpsertStudent(std Student) error
		// UpsertMarks inserts or replaces the six scores for a (roll, exam) pair.
		UpsertMarks(roll, exam string, scores []int) error
		GetStudent(roll string) (Student, error)
		GetMarks(roll, exam string) ([]int, error)
		// AllMarks returns every exam sitting recorded for a roll, order not significant.
		AllMarks(roll string) ([]MarkRecord, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Save upserts the student profile, then the exam's marks.
// Each upsert is atomic in isolation; there is no transactional coupling between them.
func (svc *Service) Save(rec SaveRecord) error {
	if len(rec.Marks) != NumSubjects {
		return core.NewValidationError(errWrongMarksCount,
			core.FieldError{Field: "marks", Error: errWrongMarksCount.Error()})
	}

	std := Student{
		Roll:        rec.Roll,
		Name:        rec.Name,
		Section:     rec.Section,
		Attendance:  rec.Attendance,
		Assignments: rec.Assignments,
	}
	if err := svc.repo.UpsertStudent(std); err != nil {
		return errors.Wrap(err, "upserting student")
	}
	return errors.Wrap(svc.repo.UpsertMarks(rec.Roll, rec.Exam, rec.Marks), "upserting marks")
}

func (svc *Service) Get(roll string) (Student, error) {
	return svc.repo.GetStudent(roll)
}

// Dashboard assembles one student's profile plus the three exam slots.
// A missing exam yields an empty slot; a missing profile yields ErrNotFound.
func (svc *Service) Dashboard(roll string) (Dashboard, error) {
	std, err := svc.repo.GetStudent(roll)
	if err != nil {
		return Dashboard{}, err
	}

	dash := Dashboard{
		Roll:        std.Roll,
		Name:        std.Name,
		Section:     std.Section,
		Attendance:  std.Attendance,
		Assignments: std.Assignments,
		Cat1:        []int{},
		Cat2:        []int{},
		Model:       []int{},
	}
	for _, exam := range Exams {
		scores, err := svc.repo.GetMarks(roll, exam)
		if err != nil {
			if errors.Cause(err) == ErrNotFound {
				continue
			}
			return Dashboard{}, errors.Wrapf(err, "getting %s marks", exam)
		}
		switch exam {
		case ExamCat1:
			dash.Cat1 = scores
		case ExamCat2:
			dash.Cat2 = scores
		case ExamModel:
			dash.Model = scores
		}
	}
	return dash, nil
}

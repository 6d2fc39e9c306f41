package student

import (
	"github.com/edurecords/portal/core"
)

// Exam slots. The persistence layer imposes no enum constraint;
// the application only ever writes and reads these three.
const (
	ExamCat1  = "cat1"
	ExamCat2  = "cat2"
	ExamModel = "model"

	// NumSubjects is the number of subject scores recorded per exam sitting.
	NumSubjects = 6
)

var Exams = []string{ExamCat1, ExamCat2, ExamModel}

// Student is one student profile, keyed by roll number.
// Roll doubles as the student's login username.
type Student struct {
	Roll        string `json:"roll" db:"roll"`
	Name        string `json:"name" db:"name"`
	Section     string `json:"section" db:"section"`
	Attendance  int    `json:"attendance" db:"attendance"`
	Assignments int    `json:"assignments" db:"assignments"`
}

// MarkRecord is one exam sitting: six subject scores for a (roll, exam) pair.
type MarkRecord struct {
	Roll   string
	Exam   string
	Scores []int
}

// SaveRecord is the admin save payload: a full student profile plus one exam's marks.
type SaveRecord struct {
	Roll        string `json:"roll" validate:"required,alphanum_"`
	Name        string `json:"name" validate:"required"`
	Section     string `json:"section" validate:"required"`
	Attendance  int    `json:"attendance" validate:"gte=0,lte=100"`
	Assignments int    `json:"assignments" validate:"gte=0"`
	Exam        string `json:"exam" validate:"required,oneof=cat1 cat2 model"`
	Marks       []int  `json:"marks" validate:"required,len=6"`
}

func (sr *SaveRecord) Validate() error {
	sr.Roll = core.CleanString(sr.Roll)
	sr.Name = core.CleanString(sr.Name)
	sr.Section = core.CleanString(sr.Section)
	sr.Exam = core.CleanString(sr.Exam, true /* lower */)
	return core.Validate.Struct(sr)
}

// Dashboard is the student view: profile fields plus one slot per exam.
// Missing exams yield empty slots, never errors.
type Dashboard struct {
	Roll        string `json:"roll"`
	Name        string `json:"name"`
	Section     string `json:"section"`
	Attendance  int    `json:"attendance"`
	Assignments int    `json:"assignments"`
	Cat1        []int  `json:"cat1"`
	Cat2        []int  `json:"cat2"`
	Model       []int  `json:"model"`
}

package student

import (
	"encoding/json"
	"math"

	"github.com/pkg/errors"
)

// Performance labels, ordered from best to worst.
const (
	LabelExcellent        = "Excellent"
	LabelGood             = "Good"
	LabelAverage          = "Average"
	LabelNeedsImprovement = "Needs Improvement"
	LabelNoData           = "No Data"
)

// Prediction is a deterministic label over stored state; there is no model behind it.
// HasProfile/HasMarks drive the degraded "No Data" response shapes.
type Prediction struct {
	Attendance  int
	Assignments int
	Average     float64
	Label       string
	HasProfile  bool
	HasMarks    bool
}

// Classify applies the fixed threshold rules, first match wins.
// The thresholds are business constants, not configuration.
func Classify(attendance int, avg float64, assignments int) string {
	switch {
	case attendance >= 85 && avg >= 80 && assignments >= 2:
		return LabelExcellent
	case attendance >= 70 && avg >= 65:
		return LabelGood
	case attendance >= 50 && avg >= 50:
		return LabelAverage
	default:
		return LabelNeedsImprovement
	}
}

// Predict loads the student's profile and every recorded score, flattens the scores
// into one unordered list and classifies the average. Missing data degrades to a
// "No Data" prediction rather than an error.
func (svc *Service) Predict(roll string) (Prediction, error) {
	std, err := svc.repo.GetStudent(roll)
	if err != nil {
		if errors.Cause(err) == ErrNotFound {
			return Prediction{Label: LabelNoData}, nil
		}
		return Prediction{}, errors.Wrap(err, "getting student")
	}

	records, err := svc.repo.AllMarks(roll)
	if err != nil {
		return Prediction{}, errors.Wrap(err, "getting marks")
	}

	pred := Prediction{
		Attendance:  std.Attendance,
		Assignments: std.Assignments,
		HasProfile:  true,
	}

	var sum, count int
	for _, rec := range records {
		for _, score := range rec.Scores {
			sum += score
			count++
		}
	}
	if count == 0 {
		pred.Label = LabelNoData
		return pred, nil
	}

	pred.HasMarks = true
	// classification uses the exact average; rounding is display-only
	pred.Average = float64(sum) / float64(count)
	pred.Label = Classify(std.Attendance, pred.Average, std.Assignments)
	return pred, nil
}

func (p Prediction) MarshalJSON() ([]byte, error) {
	if !p.HasProfile {
		return json.Marshal(map[string]string{"prediction": p.Label})
	}
	if !p.HasMarks {
		return json.Marshal(struct {
			Attendance   int    `json:"attendance"`
			AverageMarks string `json:"average_marks"`
			Assignments  int    `json:"assignments"`
			Prediction   string `json:"prediction"`
		}{p.Attendance, "--", p.Assignments, p.Label})
	}
	return json.Marshal(struct {
		Attendance   int     `json:"attendance"`
		AverageMarks float64 `json:"average_marks"`
		Assignments  int     `json:"assignments"`
		Prediction   string  `json:"prediction"`
	}{p.Attendance, math.Round(p.Average*100) / 100, p.Assignments, p.Label})
}

package echoapi

import (
	"net/http"
	"testing"

	"github.com/edurecords/portal/core/student"
)

func seedStudent(t *testing.T, repo student.Repository, std student.Student) {
	if err := repo.UpsertStudent(std); err != nil {
		t.Fatalf("seedStudent() failed: %v", err)
	}
}

func seedMarks(t *testing.T, repo student.Repository, roll, exam string, scores []int) {
	if err := repo.UpsertMarks(roll, exam, scores); err != nil {
		t.Fatalf("seedMarks() failed: %v", err)
	}
}

func Test_studentApi_data(t *testing.T) {
	srv, repo := setup(t)

	token := getToken(t, studentIdentity("S1"))
	wantUnauthorized := marshallObj(t, httpErr{Error: "Unauthorized"})

	seedStudent(t, repo, student.Student{Roll: "S1", Name: "Awe", Section: "A", Attendance: 90, Assignments: 3})
	seedMarks(t, repo, "S1", student.ExamCat1, []int{90, 85, 88, 92, 80, 95})

	tests := []httpTest{
		{
			name:     "no session",
			wantCode: http.StatusUnauthorized,
			wantData: wantUnauthorized,
		},
		{
			name:     "admin session",
			token:    getToken(t, adminIdentity),
			wantCode: http.StatusUnauthorized,
			wantData: wantUnauthorized,
		},
		{
			name:     "unknown roll",
			token:    getToken(t, studentIdentity("ghost")),
			wantCode: http.StatusNotFound,
			wantData: marshallObj(t, httpErr{Error: "No data"}),
		},
		{
			name:     "own records with empty slots",
			token:    token,
			wantCode: http.StatusOK,
			wantData: []byte(`{"data": {
				"roll": "S1", "name": "Awe", "section": "A",
				"attendance": 90, "assignments": 3,
				"cat1": [90, 85, 88, 92, 80, 95], "cat2": [], "model": []
			}}`),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodGet, "/student/data", tt.token, tt.body)
			srv.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_studentApi_predict(t *testing.T) {
	srv, repo := setup(t)

	wantUnauthorized := marshallObj(t, httpErr{Error: "Unauthorized"})

	seedStudent(t, repo, student.Student{Roll: "S1", Name: "Awe", Section: "A", Attendance: 90, Assignments: 3})
	seedStudent(t, repo, student.Student{Roll: "S2", Name: "Meh", Section: "B", Attendance: 60, Assignments: 1})
	seedMarks(t, repo, "S1", student.ExamCat1, []int{90, 85, 88, 92, 80, 95})
	seedMarks(t, repo, "S2", student.ExamCat1, []int{60, 60, 60, 60, 60, 60})
	seedStudent(t, repo, student.Student{Roll: "S3", Name: "New", Section: "C", Attendance: 95, Assignments: 5})

	tests := []httpTest{
		{
			name:     "no session",
			wantCode: http.StatusUnauthorized,
			wantData: wantUnauthorized,
		},
		{
			name:     "admin session",
			token:    getToken(t, adminIdentity),
			wantCode: http.StatusUnauthorized,
			wantData: wantUnauthorized,
		},
		{
			name:     "no profile degrades to no data",
			token:    getToken(t, studentIdentity("ghost")),
			wantCode: http.StatusOK,
			wantData: []byte(`{"prediction": "No Data"}`),
		},
		{
			name:     "profile without marks",
			token:    getToken(t, studentIdentity("S3")),
			wantCode: http.StatusOK,
			wantData: []byte(`{"attendance": 95, "average_marks": "--", "assignments": 5, "prediction": "No Data"}`),
		},
		{
			name:     "excellent",
			token:    getToken(t, studentIdentity("S1")),
			wantCode: http.StatusOK,
			wantData: []byte(`{"attendance": 90, "average_marks": 88.33, "assignments": 3, "prediction": "Excellent"}`),
		},
		{
			name:     "average",
			token:    getToken(t, studentIdentity("S2")),
			wantCode: http.StatusOK,
			wantData: []byte(`{"attendance": 60, "average_marks": 60, "assignments": 1, "prediction": "Average"}`),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodGet, "/student/predict", tt.token, tt.body)
			srv.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     PlanRequest
		wantErr bool
	}{
		{
			name: "valid bachelor request",
			req:  PlanRequest{DegreeName: "Bachelor of Science in Computer Science (BSCS)", CreditsRemaining: 90},
		},
		{
			name: "valid graduate request",
			req:  PlanRequest{DegreeName: "Master of Science in Computer Science (MSCS)", CreditsRemaining: 30},
		},
		{
			name:    "missing degree name",
			req:     PlanRequest{CreditsRemaining: 90},
			wantErr: true,
		},
		{
			name:    "zero credits",
			req:     PlanRequest{DegreeName: "Bachelor of Arts in History", CreditsRemaining: 0},
			wantErr: true,
		},
		{
			name:    "negative credits",
			req:     PlanRequest{DegreeName: "Bachelor of Arts in History", CreditsRemaining: -12},
			wantErr: true,
		},
		{
			name:    "bachelor over the 120 ceiling",
			req:     PlanRequest{DegreeName: "Bachelor of Science in Computer Science (BSCS)", CreditsRemaining: 130},
			wantErr: true,
		},
		{
			name: "bachelor at the ceiling",
			req:  PlanRequest{DegreeName: "Bachelor of Science in Computer Science (BSCS)", CreditsRemaining: 120},
		},
		{
			name:    "master over the 36 ceiling",
			req:     PlanRequest{DegreeName: "Master of Science in Computer Science (MSCS)", CreditsRemaining: 40},
			wantErr: true,
		},
		{
			name:    "mba over the 36 ceiling",
			req:     PlanRequest{DegreeName: "MBA in Technology Management", CreditsRemaining: 48},
			wantErr: true,
		},
		{
			name: "mba within the ceiling",
			req:  PlanRequest{DegreeName: "MBA in Technology Management", CreditsRemaining: 36},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidRequest)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPlanRequestStudent(t *testing.T) {
	req := PlanRequest{
		DegreeName:         "Bachelor of Science in Computer Science (BSCS)",
		CompletedCourseIDs: []string{"CS250", "CS250L", "CS250"},
		CreditsRemaining:   90,
		SkillBenchmark:     []string{"python", "sql"},
		StudentSkills:      []string{"python"},
	}

	student := req.Student()

	assert.Equal(t, req.DegreeName, student.EnrolledDegree)
	assert.InDelta(t, 90, student.CreditsRemaining, 1e-9)
	assert.True(t, student.Completed("CS250"))
	assert.True(t, student.Completed("CS250L"))
	assert.False(t, student.Completed("CS310"))
	assert.Len(t, student.CompletedCourseIDs, 2, "duplicate ids collapse")
	assert.Equal(t, req.SkillBenchmark, student.SkillBenchmark)
	assert.Equal(t, req.StudentSkills, student.StudentSkills)
}

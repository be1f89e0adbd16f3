package model_test

import (
	"testing"

	"github.com/gauravmalhotra04/raiden-ai/internal/model"
)

func TestPriority(t *testing.T) {
	tests := []struct {
		p     model.Priority
		valid bool
		str   string
	}{
		{model.PriorityLow, true, "low"},
		{model.PriorityNormal, true, "normal"},
		{model.PriorityHigh, true, "high"},
		{0, false, "priority(0)"},
		{7, false, "priority(7)"},
	}

	for _, tt := range tests {
		if got := tt.p.Valid(); got != tt.valid {
			t.Errorf("Priority(%d).Valid() = %v, want %v", tt.p, got, tt.valid)
		}
		if got := tt.p.String(); got != tt.str {
			t.Errorf("Priority(%d).String() = %q, want %q", tt.p, got, tt.str)
		}
	}
}

func TestAttendanceStatusValid(t *testing.T) {
	for _, s := range []model.AttendanceStatus{model.AttendancePresent, model.AttendanceAbsent, model.AttendanceLate} {
		if !s.Valid() {
			t.Errorf("expected %q to be valid", s)
		}
	}
	if model.AttendanceStatus("excused").Valid() {
		t.Errorf("expected unknown status to be invalid")
	}
}

func TestTaskExists(t *testing.T) {
	if (model.Task{}).Exists() {
		t.Errorf("zero task must not exist")
	}
	if !(model.Task{ID: "t1"}).Exists() {
		t.Errorf("task with id must exist")
	}
}

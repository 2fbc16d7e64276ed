package candidate

import (
	"strings"
	"testing"
)

func TestCandidate_Validate(t *testing.T) {
	if err := (&Candidate{JobTitle: "Backend Engineer"}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	err := (&Candidate{Skills: []string{"go"}}).Validate()
	if err == nil || !strings.Contains(err.Error(), "jobTitle is required") {
		t.Errorf("err = %v, want jobTitle is required", err)
	}
}

func TestPage_Empty(t *testing.T) {
	if !(Page{}).Empty() {
		t.Error("zero page should be empty")
	}
}

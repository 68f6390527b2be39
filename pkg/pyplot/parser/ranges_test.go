package parser

import (
	"testing"

	"github.com/ukaji3/pyplot-go/pkg/pyplot/models"
)

func TestParseRangeRef(t *testing.T) {
	tests := []struct {
		ref      string
		expected models.CellRange
	}{
		{"Sheet1!$A$2:$A$10", models.CellRange{Sheet: "Sheet1", R1: 2, C1: 1, R2: 10, C2: 1}},
		{"'My Data'!$B$1:$D$3", models.CellRange{Sheet: "My Data", R1: 1, C1: 2, R2: 3, C2: 4}},
		{"Sheet1!$B$1", models.CellRange{Sheet: "Sheet1", R1: 1, C1: 2, R2: 1, C2: 2}},
		{"A1:C5", models.CellRange{R1: 1, C1: 1, R2: 5, C2: 3}},
		{"C5:A1", models.CellRange{R1: 1, C1: 1, R2: 5, C2: 3}},
	}

	for _, tt := range tests {
		result, err := ParseRangeRef(tt.ref)
		if err != nil {
			t.Errorf("ParseRangeRef(%q) failed: %v", tt.ref, err)
			continue
		}
		if result != tt.expected {
			t.Errorf("ParseRangeRef(%q) = %+v, expected %+v", tt.ref, result, tt.expected)
		}
	}
}

func TestParseRangeRefInvalid(t *testing.T) {
	for _, ref := range []string{"", "Sheet1!", "A1:B2:C3", "Sheet1!$1$A"} {
		if _, err := ParseRangeRef(ref); err == nil {
			t.Errorf("ParseRangeRef(%q) succeeded, expected error", ref)
		}
	}
}

func TestCellNames(t *testing.T) {
	names, err := CellNames(models.CellRange{R1: 1, C1: 1, R2: 2, C2: 2})
	if err != nil {
		t.Fatalf("CellNames failed: %v", err)
	}
	expected := []string{"A1", "B1", "A2", "B2"}
	if len(names) != len(expected) {
		t.Fatalf("CellNames = %q, expected %q", names, expected)
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("CellNames[%d] = %q, expected %q", i, names[i], expected[i])
		}
	}
}

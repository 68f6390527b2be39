package parser

import "testing"

func TestResolveRelativePath(t *testing.T) {
	tests := []struct {
		target   string
		baseDir  string
		expected string
	}{
		{"../charts/chart1.xml", "xl/drawings", "xl/charts/chart1.xml"},
		{"/xl/drawings/drawing1.xml", "xl/drawings", "xl/drawings/drawing1.xml"},
		{"drawing1.xml", "xl/drawings", "xl/drawings/drawing1.xml"},
		{"worksheets/sheet1.xml", "xl", "xl/worksheets/sheet1.xml"},
	}

	for _, tt := range tests {
		result := resolveRelativePath(tt.target, tt.baseDir)
		if result != tt.expected {
			t.Errorf("resolveRelativePath(%q, %q) = %q, expected %q",
				tt.target, tt.baseDir, result, tt.expected)
		}
	}
}

func TestRelsPathFor(t *testing.T) {
	tests := []struct {
		part     string
		expected string
	}{
		{"xl/worksheets/sheet1.xml", "xl/worksheets/_rels/sheet1.xml.rels"},
		{"xl/drawings/drawing2.xml", "xl/drawings/_rels/drawing2.xml.rels"},
		{"workbook.xml", "_rels/workbook.xml.rels"},
	}

	for _, tt := range tests {
		if result := relsPathFor(tt.part); result != tt.expected {
			t.Errorf("relsPathFor(%q) = %q, expected %q", tt.part, result, tt.expected)
		}
	}
}

func TestWorkbookSheetParts(t *testing.T) {
	workbook := []byte(`<workbook xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
  <sheets>
    <sheet name="Data" sheetId="1" r:id="rId1"/>
    <sheet name="Notes" sheetId="2" r:id="rId2"/>
  </sheets>
</workbook>`)
	rels := []byte(`<Relationships>
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="worksheets/sheet1.xml"/>
  <Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="/xl/worksheets/sheet2.xml"/>
  <Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
</Relationships>`)

	parts := parseWorkbookRels(rels, parseWorkbookSheets(workbook))
	expected := map[string]string{
		"Data":  "xl/worksheets/sheet1.xml",
		"Notes": "xl/worksheets/sheet2.xml",
	}
	if len(parts) != len(expected) {
		t.Fatalf("parseWorkbookRels = %v, expected %v", parts, expected)
	}
	for name, part := range expected {
		if parts[name] != part {
			t.Errorf("part for %q = %q, expected %q", name, parts[name], part)
		}
	}

	if target := findRelationship(rels, "styles"); target != "styles.xml" {
		t.Errorf("findRelationship(styles) = %q, expected styles.xml", target)
	}
	if target := findRelationship(rels, "drawing"); target != "" {
		t.Errorf("findRelationship(drawing) = %q, expected none", target)
	}
}

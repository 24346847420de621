package cxf_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	cxf "github.com/colour-science/cxf-go"
)

func TestEnumDomains(t *testing.T) {
	if !cxf.IlluminantD50.Valid() || cxf.Illuminant("D99").Valid() {
		t.Fatalf("Illuminant domain")
	}
	if !cxf.Observer10.Valid() || cxf.Observer("4").Valid() {
		t.Fatalf("Observer domain")
	}
	if !cxf.MethodE308Table6.Valid() || cxf.Method("E308").Valid() {
		t.Fatalf("Method domain")
	}
	if !cxf.MeasurementColorimetricEmission.Valid() || cxf.MeasurementType("Emissive").Valid() {
		t.Fatalf("MeasurementType domain")
	}
	if !cxf.SphereSPEX.Valid() || cxf.SphereType("spin").Valid() {
		t.Fatalf("SphereType domain is case-sensitive")
	}
	if !cxf.LuminanceLux.Valid() || cxf.LuminanceUnits("nits").Valid() {
		t.Fatalf("LuminanceUnits domain")
	}
	if !cxf.CalibrationGMDI.Valid() || cxf.CalibrationStandard("ISO").Valid() {
		t.Fatalf("CalibrationStandard domain")
	}
	if !cxf.DeviceCamera.Valid() || cxf.DeviceClass("Telescope").Valid() {
		t.Fatalf("DeviceClass domain")
	}
	if !cxf.DirectionBoth.Valid() || cxf.ProfileDirection("Sideways").Valid() {
		t.Fatalf("ProfileDirection domain")
	}
	if !cxf.TargetProduction.Valid() || cxf.TargetType("Target").Valid() {
		t.Fatalf("TargetType domain")
	}
	if !cxf.FinishSatin.Valid() || cxf.FinishType("Rough").Valid() {
		t.Fatalf("FinishType domain")
	}
	if !cxf.SubstrateCeramic.Valid() || cxf.SubstrateType("Wood").Valid() {
		t.Fatalf("SubstrateType domain")
	}
}

func TestCategoryOf(t *testing.T) {
	cases := map[string]cxf.Category{
		cxf.CodeMalformedMarkup:     cxf.MalformedMarkup,
		cxf.CodeUnexpectedRoot:      cxf.SchemaViolation,
		cxf.CodeWrongNamespace:      cxf.SchemaViolation,
		cxf.CodeUnknownElement:      cxf.SchemaViolation,
		cxf.CodeElementOrder:        cxf.SchemaViolation,
		cxf.CodeRequired:            cxf.SchemaViolation,
		cxf.CodeInvalidChoice:       cxf.SchemaViolation,
		cxf.CodeInvalidEnum:         cxf.DomainViolation,
		cxf.CodeDomainRange:         cxf.DomainViolation,
		cxf.CodeInvalidGUID:         cxf.DomainViolation,
		cxf.CodeReferenceUnresolved: cxf.ReferenceIntegrity,
		cxf.CodeDuplicateID:         cxf.DuplicateKey,
		"made_up_code":              cxf.CategoryUnknown,
	}
	for code, want := range cases {
		if got := cxf.CategoryOf(code); got != want {
			t.Fatalf("CategoryOf(%s) = %v, want %v", code, got, want)
		}
	}
}

func TestIssuesErrorSummary(t *testing.T) {
	var iss cxf.Issues
	for i := 0; i < 5; i++ {
		iss = cxf.AppendIssues(iss, cxf.Issue{
			Path:    fmt.Sprintf("/CxF/item[%d]", i+1),
			Code:    cxf.CodeInvalidNumber,
			Message: "bad",
		})
	}
	msg := iss.Error()
	if !strings.Contains(msg, "/CxF/item[1]") {
		t.Fatalf("summary misses first issue: %q", msg)
	}
	if strings.Contains(msg, "/CxF/item[4]") {
		t.Fatalf("summary should truncate: %q", msg)
	}
	if !strings.Contains(msg, "(total 5)") {
		t.Fatalf("summary misses total: %q", msg)
	}
}

func TestAsIssuesThroughWrapping(t *testing.T) {
	iss := cxf.AppendIssues(nil, cxf.Issue{Path: "/", Code: cxf.CodeRequired})
	wrapped := fmt.Errorf("loading sample: %w", error(iss))
	got, ok := cxf.AsIssues(wrapped)
	if !ok || len(got) != 1 || got[0].Code != cxf.CodeRequired {
		t.Fatalf("AsIssues through wrap = %v, %v", got, ok)
	}
	if _, ok := cxf.AsIssues(errors.New("plain")); ok {
		t.Fatalf("plain error must not convert")
	}
	if _, ok := cxf.AsIssues(nil); ok {
		t.Fatalf("nil error must not convert")
	}
}

package cxf_test

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	cxf "github.com/colour-science/cxf-go"
	"github.com/colour-science/cxf-go/internal/xmltree"
)

// Decode then encode must preserve the document's information content: the
// re-encoded bytes parse to a namespace-equivalent tree, the re-decoded graph
// is identical, and a second encode is byte-identical to the first.
func TestRoundtripFixtures(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("testdata", "*.cxf"))
	if err != nil || len(matches) == 0 {
		t.Fatalf("no fixtures: %v", err)
	}
	for _, path := range matches {
		t.Run(filepath.Base(path), func(t *testing.T) {
			original, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			doc, err := cxf.Read(original)
			if err != nil {
				t.Fatalf("read: %v", err)
			}
			first, err := cxf.Encode(doc, cxf.EncodeOpt{Validate: true})
			if err != nil {
				t.Fatalf("encode: %v", err)
			}

			wantTree, err := xmltree.Parse(original)
			if err != nil {
				t.Fatal(err)
			}
			gotTree, err := xmltree.Parse(first)
			if err != nil {
				t.Fatalf("re-parse: %v", err)
			}
			if !wantTree.Equal(gotTree) {
				t.Fatalf("re-encoded tree differs from original\n--- encoded ---\n%s", first)
			}

			doc2, err := cxf.Decode(first)
			if err != nil {
				t.Fatalf("re-decode: %v", err)
			}
			if !reflect.DeepEqual(doc, doc2) {
				t.Fatalf("decoded graphs differ after one cycle")
			}
			second, err := cxf.Encode(doc2)
			if err != nil {
				t.Fatalf("second encode: %v", err)
			}
			if !bytes.Equal(first, second) {
				t.Fatalf("encode is not idempotent\n--- first ---\n%s--- second ---\n%s", first, second)
			}
		})
	}
}

// High-precision values survive the cycle digit for digit.
func TestRoundtripFloatFidelity(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "spectral.cxf"))
	if err != nil {
		t.Fatal(err)
	}
	doc, err := cxf.Read(data)
	if err != nil {
		t.Fatal(err)
	}
	lab := doc.Resources.ObjectCollection.Objects[0].ColorValues.Values[0].(cxf.ColorCIELab)
	if lab.L != 50.123456789 {
		t.Fatalf("L = %v", lab.L)
	}
	out, err := cxf.Encode(doc)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"<cc:L>50.123456789</cc:L>",
		"<cc:A>1e-09</cc:A>",
		"<cc:B>-99.999999999</cc:B>",
		"0.031415926535",
		`MeasureDate="2023-11-02T09:15:30Z"`,
	} {
		if !strings.Contains(string(out), want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

// Fractional-second timestamps keep their precision.
func TestRoundtripFractionalSeconds(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "spectral.cxf"))
	if err != nil {
		t.Fatal(err)
	}
	doc, err := cxf.Read(data)
	if err != nil {
		t.Fatal(err)
	}
	created := doc.Resources.ObjectCollection.Objects[0].CreationDate
	if got := created.String(); got != "2023-11-02T09:15:30.25Z" {
		t.Fatalf("CreationDate = %q", got)
	}
}

// Foreign payloads in CustomResources are preserved verbatim, attributes and
// nesting included.
func TestRoundtripCustomResources(t *testing.T) {
	data := []byte(`<cc:CxF xmlns:cc="http://colorexchangeformat.com/CxF3-core">` +
		`<cc:CustomResources>` +
		`<v:Vendor xmlns:v="urn:vendor" version="2">` +
		`<v:Inner flag="on">payload</v:Inner>` +
		`<v:Empty/>` +
		`</v:Vendor>` +
		`</cc:CustomResources></cc:CxF>`)
	doc, err := cxf.Read(data)
	if err != nil {
		t.Fatal(err)
	}
	out, err := cxf.Encode(doc)
	if err != nil {
		t.Fatal(err)
	}
	want, err := xmltree.Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	got, err := xmltree.Parse(out)
	if err != nil {
		t.Fatalf("re-parse: %v\n%s", err, out)
	}
	if !want.Equal(got) {
		t.Fatalf("foreign subtree not preserved:\n%s", out)
	}
}

package cxf_test

import (
	"fmt"
	"strings"
	"testing"

	cxf "github.com/colour-science/cxf-go"
)

// --- Fixtures ---

// syntheticDocument builds a document with n measurement objects, half
// colorimetric and half spectral, all referencing a shared specification.
func syntheticDocument(tb testing.TB, n int) []byte {
	tb.Helper()
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<cc:CxF xmlns:cc="http://colorexchangeformat.com/CxF3-core">` + "\n")
	b.WriteString("<cc:FileInformation><cc:Creator>bench</cc:Creator><cc:CreationDate>2024-06-01T12:00:00Z</cc:CreationDate></cc:FileInformation>\n")
	b.WriteString("<cc:Resources>\n<cc:ObjectCollection>\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, `<cc:Object ObjectType="Standard" Name="patch-%d" Id="c%d">`, i, i)
		b.WriteString("<cc:CreationDate>2024-06-01T12:00:00Z</cc:CreationDate><cc:ColorValues>")
		if i%2 == 0 {
			fmt.Fprintf(&b, `<cc:ColorCIELab ColorSpecification="spec-d50"><cc:L>%g</cc:L><cc:A>%g</cc:A><cc:B>%g</cc:B></cc:ColorCIELab>`,
				50.0+float64(i%50), float64(i%128)-64, float64((i*7)%128)-64)
		} else {
			b.WriteString(`<cc:ReflectanceSpectrum StartWL="400" Increment="10" ColorSpecification="spec-d50"><cc:Value>`)
			for w := 0; w < 31; w++ {
				if w > 0 {
					b.WriteString(" ")
				}
				fmt.Fprintf(&b, "%g", 0.01+float64((i+w)%100)/101.0)
			}
			b.WriteString("</cc:Value></cc:ReflectanceSpectrum>")
		}
		b.WriteString("</cc:ColorValues></cc:Object>\n")
	}
	b.WriteString("</cc:ObjectCollection>\n<cc:ColorSpecificationCollection>\n")
	b.WriteString(`<cc:ColorSpecification Id="spec-d50"><cc:TristimulusSpec><cc:Illuminant>D50</cc:Illuminant><cc:Observer>2</cc:Observer></cc:TristimulusSpec></cc:ColorSpecification>` + "\n")
	b.WriteString("</cc:ColorSpecificationCollection>\n</cc:Resources>\n</cc:CxF>\n")
	return []byte(b.String())
}

// --- Validate ---

func Benchmark_Validate_Small(b *testing.B) {
	data := syntheticDocument(b, 4)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := cxf.Validate(data); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Validate_Large(b *testing.B) {
	data := syntheticDocument(b, 1000)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := cxf.Validate(data); err != nil {
			b.Fatal(err)
		}
	}
}

// --- Decode ---

func Benchmark_Decode_Small(b *testing.B) {
	data := syntheticDocument(b, 4)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cxf.Decode(data); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Decode_Large(b *testing.B) {
	data := syntheticDocument(b, 1000)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cxf.Decode(data); err != nil {
			b.Fatal(err)
		}
	}
}

// --- Read (validate + decode) ---

func Benchmark_Read_Large(b *testing.B) {
	data := syntheticDocument(b, 1000)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cxf.Read(data); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Read_Large_SkipValidation(b *testing.B) {
	data := syntheticDocument(b, 1000)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cxf.Read(data, cxf.ReadOpt{SkipValidation: true}); err != nil {
			b.Fatal(err)
		}
	}
}

// --- Encode ---

func Benchmark_Encode_Large(b *testing.B) {
	data := syntheticDocument(b, 1000)
	doc, err := cxf.Decode(data)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cxf.Encode(doc); err != nil {
			b.Fatal(err)
		}
	}
}

// --- Full round trip ---

func Benchmark_Roundtrip_Large(b *testing.B) {
	data := syntheticDocument(b, 1000)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		doc, err := cxf.Decode(data)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := cxf.Encode(doc); err != nil {
			b.Fatal(err)
		}
	}
}

package cxf_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cxf "github.com/colour-science/cxf-go"
)

func decodeFixture(t *testing.T, name string) *cxf.Document {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	doc, err := cxf.Decode(data)
	require.NoError(t, err)
	return doc
}

func TestDecodeFullDocument(t *testing.T) {
	doc := decodeFixture(t, "full.cxf")

	fi := doc.FileInformation
	require.NotNil(t, fi)
	assert.Equal(t, "colour-science", fi.Creator)
	require.NotNil(t, fi.CreationDate)
	assert.Equal(t, "2024-03-15T10:30:00Z", fi.CreationDate.String())
	assert.Equal(t, "Press sheet measurements", fi.Description)
	assert.Equal(t, []cxf.Tag{{Name: "job", Value: "proof-1"}, {Name: "operator", Value: "mk"}}, fi.Tags)

	require.NotNil(t, doc.Resources)
	require.NotNil(t, doc.Resources.ObjectCollection)
	objs := doc.Resources.ObjectCollection.Objects
	require.Len(t, objs, 2)

	cyan := objs[0]
	assert.Equal(t, "Standard", cyan.ObjectType)
	assert.Equal(t, "Cyan ramp 100", cyan.Name)
	assert.Equal(t, "c100", cyan.ID)
	assert.Equal(t, "f47ac10b-58cc-4372-a567-0e02b2c3d479", cyan.GUID)
	assert.Equal(t, "first patch", cyan.Comment)
	assert.False(t, cyan.CreationDate.IsDateOnly())

	require.NotNil(t, cyan.ColorValues)
	require.Len(t, cyan.ColorValues.Values, 2)
	lab, ok := cyan.ColorValues.Values[0].(cxf.ColorCIELab)
	require.True(t, ok, "first colour value should be ColorCIELab, got %T", cyan.ColorValues.Values[0])
	assert.Equal(t, 54.29, lab.L)
	assert.Equal(t, -37.01, lab.A)
	assert.Equal(t, -50.23, lab.B)
	assert.Equal(t, "spec-d50-2", lab.ColorSpecification)

	spec, ok := cyan.ColorValues.Values[1].(cxf.ReflectanceSpectrum)
	require.True(t, ok)
	assert.Equal(t, 400.0, spec.StartWL)
	require.NotNil(t, spec.EndWL)
	assert.Equal(t, 700.0, *spec.EndWL)
	require.NotNil(t, spec.Increment)
	assert.Equal(t, 10.0, *spec.Increment)
	assert.Len(t, spec.Values, 31)
	assert.Equal(t, 0.049, spec.Values[0])
	assert.Equal(t, 0.068, spec.Values[30])

	require.NotNil(t, cyan.DeviceColorValues)
	require.Len(t, cyan.DeviceColorValues.Values, 1)
	cmyk, ok := cyan.DeviceColorValues.Values[0].(cxf.ColorCMYK)
	require.True(t, ok)
	assert.Equal(t, 100.0, cmyk.C)
	assert.Equal(t, cxf.DeviceSpectrophotometer, cmyk.DeviceClass)

	require.NotNil(t, cyan.ColorDifferenceValues)
	require.Len(t, cyan.ColorDifferenceValues.Values, 1)
	de, ok := cyan.ColorDifferenceValues.Values[0].(cxf.ColorCIEDE2000)
	require.True(t, ok)
	assert.Equal(t, 0.42, de.Value)

	require.NotNil(t, cyan.TagCollection)
	assert.Equal(t, []cxf.Tag{{Name: "row", Value: "1"}}, cyan.TagCollection.Tags)

	pa := cyan.PhysicalAttributes
	require.NotNil(t, pa)
	assert.Equal(t, cxf.TargetProof, pa.TargetType)
	assert.Equal(t, cxf.FinishGlossy, pa.FinishType)
	assert.Equal(t, cxf.SubstratePaper, pa.SubstrateType)
	require.NotNil(t, pa.Width)
	assert.Equal(t, cxf.Measurement{Value: 210, Unit: "mm"}, *pa.Width)
	require.NotNil(t, pa.Gloss)
	assert.Equal(t, cxf.MethodValue{Value: 72.5, Method: "60deg"}, *pa.Gloss)
	assert.Equal(t, []cxf.CustomAttribute{{Name: "lot", Value: "A-7"}}, pa.CustomAttributes)
	require.NotNil(t, pa.Image)
	assert.Equal(t, "image/png", pa.Image.MimeType)
	uri, ok := pa.Image.Source.(cxf.ImageURI)
	require.True(t, ok)
	assert.Equal(t, "https://example.com/patch/c100.png", uri.URI)

	white := objs[1]
	assert.True(t, white.CreationDate.IsDateOnly())
	assert.Empty(t, white.GUID)
	srgb, ok := white.ColorValues.Values[0].(cxf.ColorSRGB)
	require.True(t, ok)
	assert.Equal(t, 250.0, srgb.R)
	trans, ok := white.ColorValues.Values[1].(cxf.TransmittanceSpectrum)
	require.True(t, ok)
	assert.Nil(t, trans.EndWL)
	assert.Len(t, trans.Values, 16)

	require.NotNil(t, doc.Resources.ColorSpecificationCollection)
	specs := doc.Resources.ColorSpecificationCollection.Specifications
	require.Len(t, specs, 2)
	d50 := specs[0]
	assert.Equal(t, "spec-d50-2", d50.ID)
	require.NotNil(t, d50.TristimulusSpec)
	assert.Equal(t, cxf.IlluminantD50, d50.TristimulusSpec.Illuminant)
	assert.Equal(t, cxf.Observer2, d50.TristimulusSpec.Observer)
	assert.Equal(t, cxf.MethodE308Table5, d50.TristimulusSpec.Method)
	require.NotNil(t, d50.MeasurementSpec)
	assert.Equal(t, cxf.MeasurementSpectrumReflectance, d50.MeasurementSpec.MeasurementType)
	sphere, ok := d50.MeasurementSpec.Geometry.(cxf.SphereGeometry)
	require.True(t, ok)
	assert.Equal(t, cxf.SphereSPIN, sphere.SphereType)
	require.NotNil(t, d50.MeasurementSpec.WavelengthRange)
	assert.Equal(t, cxf.WavelengthRange{StartWL: 400, Increment: 10}, *d50.MeasurementSpec.WavelengthRange)
	assert.Equal(t, cxf.CalibrationXRGA, d50.MeasurementSpec.CalibrationStandard)
	require.NotNil(t, d50.MeasurementSpec.Device)
	assert.Equal(t, "X-Rite", d50.MeasurementSpec.Device.Manufacturer)

	d65 := specs[1]
	directional, ok := d65.MeasurementSpec.Geometry.(cxf.DirectionalGeometry)
	require.True(t, ok)
	assert.Equal(t, 45.0, directional.IlluminationAngle)
	assert.Equal(t, 0.0, directional.MeasurementAngle)
	assert.Equal(t, cxf.LuminanceCandelaM2, d65.MeasurementSpec.LuminanceUnits)

	require.NotNil(t, doc.Resources.ProfileCollection)
	profs := doc.Resources.ProfileCollection.Profiles
	require.Len(t, profs, 2)
	assert.Equal(t, cxf.DirectionOutput, profs[0].Direction)
	require.NotNil(t, profs[0].Created)
	assert.Equal(t, "2024-01-10T08:00:00Z", profs[0].Created.String())
	file, ok := profs[0].Source.(cxf.ProfileFile)
	require.True(t, ok)
	assert.Equal(t, "profiles/press-gracol.icc", file.Path)
	assert.Equal(t, []cxf.ProfileParameter{{Name: "rendering_intent", Value: "relative"}}, profs[0].Parameters)
	_, ok = profs[1].Source.(cxf.ProfileURI)
	require.True(t, ok)

	require.NotNil(t, doc.CustomResources)
	require.Len(t, doc.CustomResources.Elements, 1)
	run := doc.CustomResources.Elements[0]
	assert.Equal(t, "https://example.com/press-ext", run.Space)
	assert.Equal(t, "PressRun", run.Local)
	assert.Equal(t, []cxf.ForeignAttr{{Local: "id", Value: "run-9"}}, run.Attrs)
	require.Len(t, run.Children, 1)
	assert.Equal(t, "Operator", run.Children[0].Local)
	assert.Equal(t, "mk", run.Children[0].Text)
}

func TestDecodeAbsentVersusEmpty(t *testing.T) {
	minimal := decodeFixture(t, "minimal.cxf")
	assert.Nil(t, minimal.FileInformation)
	assert.Nil(t, minimal.Resources)
	assert.Nil(t, minimal.CustomResources)

	empty := decodeFixture(t, "empty_sections.cxf")
	require.NotNil(t, empty.FileInformation)
	assert.Empty(t, empty.FileInformation.Creator)
	res := empty.Resources
	require.NotNil(t, res)
	require.NotNil(t, res.ObjectCollection)
	assert.NotNil(t, res.ObjectCollection.Objects)
	assert.Len(t, res.ObjectCollection.Objects, 0)
	require.NotNil(t, res.ColorSpecificationCollection)
	assert.Len(t, res.ColorSpecificationCollection.Specifications, 0)
	require.NotNil(t, res.ProfileCollection)
	assert.Len(t, res.ProfileCollection.Profiles, 0)
}

// Decode enforces the schema on its own, so a document that never went through
// Validate is still rejected atomically.
func TestDecodeEnforcesWithoutValidate(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		code string
	}{
		{"out of range", object("", `<cc:ColorValues><cc:ColorSRGB><cc:R>300</cc:R><cc:G>0</cc:G><cc:B>0</cc:B></cc:ColorSRGB></cc:ColorValues>`), cxf.CodeDomainRange},
		{"bad enum", object("", `<cc:DeviceColorValues><cc:ColorCMYK><cc:C>0</cc:C><cc:M>0</cc:M><cc:Y>0</cc:Y><cc:K>0</cc:K><cc:DeviceClass>Telescope</cc:DeviceClass></cc:ColorCMYK></cc:DeviceColorValues>`), cxf.CodeInvalidEnum},
		{"bad guid", object(` GUID="xyz"`, ""), cxf.CodeInvalidGUID},
		{"unresolved reference", object("", `<cc:ColorValues><cc:ColorCIELab ColorSpecification="nope"><cc:L>0</cc:L><cc:A>0</cc:A><cc:B>0</cc:B></cc:ColorCIELab></cc:ColorValues>`), cxf.CodeReferenceUnresolved},
		{"duplicate ids", envelope(`<cc:Resources><cc:ObjectCollection>` +
			`<cc:Object ObjectType="t" Name="a" Id="dup"><cc:CreationDate>2024-01-01</cc:CreationDate></cc:Object>` +
			`<cc:Object ObjectType="t" Name="b" Id="dup"><cc:CreationDate>2024-01-01</cc:CreationDate></cc:Object>` +
			`</cc:ObjectCollection></cc:Resources>`), cxf.CodeDuplicateID},
		{"structure", envelope(`<cc:Resources><cc:Bogus/></cc:Resources>`), cxf.CodeUnknownElement},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := cxf.Decode(tc.data)
			require.Error(t, err)
			assert.Nil(t, doc, "failed decode must not return a partial document")
			iss, ok := cxf.AsIssues(err)
			require.True(t, ok)
			assert.Equal(t, tc.code, iss[0].Code)
		})
	}
}

// Boundary values of the closed numeric domains are accepted.
func TestDecodeAcceptsBoundaryValues(t *testing.T) {
	data := object("", `<cc:ColorValues><cc:ColorSRGB><cc:R>255</cc:R><cc:G>128</cc:G><cc:B>0</cc:B></cc:ColorSRGB></cc:ColorValues>`+
		`<cc:DeviceColorValues><cc:ColorCMYK><cc:C>100</cc:C><cc:M>0</cc:M><cc:Y>100</cc:Y><cc:K>0</cc:K></cc:ColorCMYK></cc:DeviceColorValues>`)
	require.NoError(t, cxf.Validate(data))
	doc, err := cxf.Decode(data)
	require.NoError(t, err)
	srgb := doc.Resources.ObjectCollection.Objects[0].ColorValues.Values[0].(cxf.ColorSRGB)
	assert.Equal(t, cxf.ColorSRGB{R: 255, G: 128, B: 0}, srgb)
}

// Forward references resolve: objects precede specifications in document order.
func TestDecodeForwardReference(t *testing.T) {
	data := envelope(`<cc:Resources>` +
		`<cc:ObjectCollection><cc:Object ObjectType="t" Name="n" Id="o1">` +
		`<cc:CreationDate>2024-01-01</cc:CreationDate>` +
		`<cc:ColorValues><cc:ColorCIELab ColorSpecification="later"><cc:L>1</cc:L><cc:A>2</cc:A><cc:B>3</cc:B></cc:ColorCIELab></cc:ColorValues>` +
		`</cc:Object></cc:ObjectCollection>` +
		`<cc:ColorSpecificationCollection><cc:ColorSpecification Id="later"/></cc:ColorSpecificationCollection>` +
		`</cc:Resources>`)
	doc, err := cxf.Decode(data)
	require.NoError(t, err)
	lab := doc.Resources.ObjectCollection.Objects[0].ColorValues.Values[0].(cxf.ColorCIELab)
	assert.Equal(t, "later", lab.ColorSpecification)
}

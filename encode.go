package cxf

import (
	"bytes"
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

const (
	xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"
	nsPrefix  = "cc"
)

// Encode serializes a Document graph to schema-conformant UTF-8 XML. Elements
// are emitted in the schema-mandated order regardless of how the graph was
// assembled; absent optional members produce no element while
// present-but-empty collections produce an empty container element. Floats
// are rendered in their shortest round-trip form. The graph is not
// re-validated; pass EncodeOpt{Validate: true} to check the produced bytes.
func Encode(doc *Document, opts ...EncodeOpt) ([]byte, error) {
	if doc == nil {
		return nil, issueAt("/", CodeRequired, "nil document")
	}
	var opt EncodeOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}

	e := &encoder{}
	e.buf.WriteString(xmlHeader)
	if err := e.document(doc); err != nil {
		return nil, err
	}
	out := e.buf.Bytes()
	if opt.Validate {
		if err := Validate(out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

type attrKV struct{ name, value string }

type encoder struct {
	buf   bytes.Buffer
	depth int
}

func (e *encoder) indent() {
	for i := 0; i < e.depth; i++ {
		e.buf.WriteString("  ")
	}
}

func (e *encoder) open(name string, attrs ...attrKV) {
	e.indent()
	e.buf.WriteString("<" + nsPrefix + ":" + name)
	e.writeAttrs(attrs)
	e.buf.WriteString(">\n")
	e.depth++
}

func (e *encoder) close(name string) {
	e.depth--
	e.indent()
	e.buf.WriteString("</" + nsPrefix + ":" + name + ">\n")
}

func (e *encoder) empty(name string, attrs ...attrKV) {
	e.indent()
	e.buf.WriteString("<" + nsPrefix + ":" + name)
	e.writeAttrs(attrs)
	e.buf.WriteString("/>\n")
}

func (e *encoder) leaf(name, text string, attrs ...attrKV) {
	e.indent()
	e.buf.WriteString("<" + nsPrefix + ":" + name)
	e.writeAttrs(attrs)
	e.buf.WriteString(">")
	e.text(text)
	e.buf.WriteString("</" + nsPrefix + ":" + name + ">\n")
}

func (e *encoder) writeAttrs(attrs []attrKV) {
	for _, a := range attrs {
		e.buf.WriteString(" " + a.name + `="`)
		e.text(a.value)
		e.buf.WriteString(`"`)
	}
}

func (e *encoder) text(s string) {
	// EscapeText also escapes quotes, so it is safe for attribute values.
	_ = xml.EscapeText(&e.buf, []byte(s))
}

// formatFloat renders the canonical shortest representation that re-parses to
// the identical float64.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func (e *encoder) document(doc *Document) error {
	e.indent()
	e.buf.WriteString("<" + nsPrefix + ":CxF xmlns:" + nsPrefix + `="` + Namespace + `">` + "\n")
	e.depth++
	if doc.FileInformation != nil {
		e.fileInformation(doc.FileInformation)
	}
	if doc.Resources != nil {
		if err := e.resources(doc.Resources); err != nil {
			return err
		}
	}
	if doc.CustomResources != nil {
		e.customResources(doc.CustomResources)
	}
	e.depth--
	e.indent()
	e.buf.WriteString("</" + nsPrefix + ":CxF>\n")
	return nil
}

func (e *encoder) fileInformation(fi *FileInformation) {
	e.open("FileInformation")
	if fi.Creator != "" {
		e.leaf("Creator", fi.Creator)
	}
	if fi.CreationDate != nil {
		e.leaf("CreationDate", fi.CreationDate.String())
	}
	if fi.Description != "" {
		e.leaf("Description", fi.Description)
	}
	if fi.Comment != "" {
		e.leaf("Comment", fi.Comment)
	}
	for _, t := range fi.Tags {
		e.tag(t)
	}
	e.close("FileInformation")
}

func (e *encoder) tag(t Tag) {
	attrs := []attrKV{{"Name", t.Name}}
	if t.Value != "" {
		attrs = append(attrs, attrKV{"Value", t.Value})
	}
	e.empty("Tag", attrs...)
}

func (e *encoder) resources(res *Resources) error {
	e.open("Resources")
	if res.ObjectCollection != nil {
		if len(res.ObjectCollection.Objects) == 0 {
			e.empty("ObjectCollection")
		} else {
			e.open("ObjectCollection")
			for i := range res.ObjectCollection.Objects {
				if err := e.object(&res.ObjectCollection.Objects[i]); err != nil {
					return err
				}
			}
			e.close("ObjectCollection")
		}
	}
	if res.ColorSpecificationCollection != nil {
		if len(res.ColorSpecificationCollection.Specifications) == 0 {
			e.empty("ColorSpecificationCollection")
		} else {
			e.open("ColorSpecificationCollection")
			for i := range res.ColorSpecificationCollection.Specifications {
				if err := e.colorSpecification(&res.ColorSpecificationCollection.Specifications[i]); err != nil {
					return err
				}
			}
			e.close("ColorSpecificationCollection")
		}
	}
	if res.ProfileCollection != nil {
		if len(res.ProfileCollection.Profiles) == 0 {
			e.empty("ProfileCollection")
		} else {
			e.open("ProfileCollection")
			for i := range res.ProfileCollection.Profiles {
				if err := e.profile(&res.ProfileCollection.Profiles[i]); err != nil {
					return err
				}
			}
			e.close("ProfileCollection")
		}
	}
	e.close("Resources")
	return nil
}

func (e *encoder) object(obj *Object) error {
	attrs := []attrKV{
		{"ObjectType", obj.ObjectType},
		{"Name", obj.Name},
		{"Id", obj.ID},
	}
	if obj.GUID != "" {
		attrs = append(attrs, attrKV{"GUID", obj.GUID})
	}
	e.open("Object", attrs...)
	e.leaf("CreationDate", obj.CreationDate.String())
	if obj.Comment != "" {
		e.leaf("Comment", obj.Comment)
	}
	if obj.ColorValues != nil {
		if err := e.colorValues(obj.ColorValues); err != nil {
			return err
		}
	}
	if obj.DeviceColorValues != nil {
		if err := e.deviceColorValues(obj.DeviceColorValues); err != nil {
			return err
		}
	}
	if obj.ColorDifferenceValues != nil {
		if err := e.colorDifferenceValues(obj.ColorDifferenceValues); err != nil {
			return err
		}
	}
	if obj.TagCollection != nil {
		if len(obj.TagCollection.Tags) == 0 {
			e.empty("TagCollection")
		} else {
			e.open("TagCollection")
			for _, t := range obj.TagCollection.Tags {
				e.tag(t)
			}
			e.close("TagCollection")
		}
	}
	if obj.PhysicalAttributes != nil {
		if err := e.physicalAttributes(obj.PhysicalAttributes); err != nil {
			return err
		}
	}
	e.close("Object")
	return nil
}

func colorBaseAttrs(name, ref string) []attrKV {
	var attrs []attrKV
	if name != "" {
		attrs = append(attrs, attrKV{"Name", name})
	}
	if ref != "" {
		attrs = append(attrs, attrKV{"ColorSpecification", ref})
	}
	return attrs
}

func (e *encoder) colorValues(cv *ColorValues) error {
	if len(cv.Values) == 0 {
		e.empty("ColorValues")
		return nil
	}
	e.open("ColorValues")
	for i, v := range cv.Values {
		switch v := v.(type) {
		case ColorCIELab:
			e.open("ColorCIELab", colorBaseAttrs(v.Name, v.ColorSpecification)...)
			e.leaf("L", formatFloat(v.L))
			e.leaf("A", formatFloat(v.A))
			e.leaf("B", formatFloat(v.B))
			e.close("ColorCIELab")
		case ColorSRGB:
			e.open("ColorSRGB", colorBaseAttrs(v.Name, v.ColorSpecification)...)
			e.leaf("R", formatFloat(v.R))
			e.leaf("G", formatFloat(v.G))
			e.leaf("B", formatFloat(v.B))
			e.close("ColorSRGB")
		case ReflectanceSpectrum:
			e.spectrum("ReflectanceSpectrum", &v.Spectrum)
		case TransmittanceSpectrum:
			e.spectrum("TransmittanceSpectrum", &v.Spectrum)
		default:
			return issueAt(fmt.Sprintf("/ColorValues[%d]", i+1), CodeInvalidChoice,
				fmt.Sprintf("unsupported colour value %T", v))
		}
	}
	e.close("ColorValues")
	return nil
}

func (e *encoder) spectrum(name string, sp *Spectrum) {
	attrs := []attrKV{{"StartWL", formatFloat(sp.StartWL)}}
	if sp.EndWL != nil {
		attrs = append(attrs, attrKV{"EndWL", formatFloat(*sp.EndWL)})
	}
	if sp.Increment != nil {
		attrs = append(attrs, attrKV{"Increment", formatFloat(*sp.Increment)})
	}
	if sp.MeasureDate != nil {
		attrs = append(attrs, attrKV{"MeasureDate", sp.MeasureDate.String()})
	}
	attrs = append(attrs, colorBaseAttrs(sp.Name, sp.ColorSpecification)...)

	samples := make([]string, len(sp.Values))
	for i, v := range sp.Values {
		samples[i] = formatFloat(v)
	}
	e.open(name, attrs...)
	e.leaf("Value", strings.Join(samples, " "))
	e.close(name)
}

func (e *encoder) deviceColorValues(dv *DeviceColorValues) error {
	if len(dv.Values) == 0 {
		e.empty("DeviceColorValues")
		return nil
	}
	e.open("DeviceColorValues")
	for i, v := range dv.Values {
		switch v := v.(type) {
		case ColorCMYK:
			e.open("ColorCMYK", colorBaseAttrs(v.Name, v.ColorSpecification)...)
			e.leaf("C", formatFloat(v.C))
			e.leaf("M", formatFloat(v.M))
			e.leaf("Y", formatFloat(v.Y))
			e.leaf("K", formatFloat(v.K))
			if v.DeviceClass != "" {
				e.leaf("DeviceClass", string(v.DeviceClass))
			}
			e.close("ColorCMYK")
		default:
			return issueAt(fmt.Sprintf("/DeviceColorValues[%d]", i+1), CodeInvalidChoice,
				fmt.Sprintf("unsupported device colour value %T", v))
		}
	}
	e.close("DeviceColorValues")
	return nil
}

func (e *encoder) colorDifferenceValues(dv *ColorDifferenceValues) error {
	if len(dv.Values) == 0 {
		e.empty("ColorDifferenceValues")
		return nil
	}
	e.open("ColorDifferenceValues")
	for i, v := range dv.Values {
		switch v := v.(type) {
		case ColorCIEDeltaE1976:
			e.open("ColorCIEDeltaE1976", colorBaseAttrs(v.Name, v.ColorSpecification)...)
			e.leaf("Value", formatFloat(v.Value))
			e.close("ColorCIEDeltaE1976")
		case ColorCIEDE2000:
			e.open("ColorCIEDE2000", colorBaseAttrs(v.Name, v.ColorSpecification)...)
			e.leaf("Value", formatFloat(v.Value))
			e.close("ColorCIEDE2000")
		default:
			return issueAt(fmt.Sprintf("/ColorDifferenceValues[%d]", i+1), CodeInvalidChoice,
				fmt.Sprintf("unsupported delta-colour value %T", v))
		}
	}
	e.close("ColorDifferenceValues")
	return nil
}

func (e *encoder) colorSpecification(spec *ColorSpecification) error {
	kids := spec.TristimulusSpec != nil || spec.MeasurementSpec != nil || spec.PhysicalAttributes != nil
	if !kids {
		e.empty("ColorSpecification", attrKV{"Id", spec.ID})
		return nil
	}
	e.open("ColorSpecification", attrKV{"Id", spec.ID})
	if ts := spec.TristimulusSpec; ts != nil {
		e.open("TristimulusSpec")
		e.leaf("Illuminant", string(ts.Illuminant))
		if ts.CustomIlluminant != "" {
			e.leaf("CustomIlluminant", ts.CustomIlluminant)
		}
		e.leaf("Observer", string(ts.Observer))
		if ts.Method != "" {
			e.leaf("Method", string(ts.Method))
		}
		e.close("TristimulusSpec")
	}
	if ms := spec.MeasurementSpec; ms != nil {
		e.measurementSpec(ms)
	}
	if pa := spec.PhysicalAttributes; pa != nil {
		if err := e.physicalAttributes(pa); err != nil {
			return err
		}
	}
	e.close("ColorSpecification")
	return nil
}

func (e *encoder) measurementSpec(ms *MeasurementSpec) {
	e.open("MeasurementSpec")
	if ms.MeasurementType != "" {
		e.leaf("MeasurementType", string(ms.MeasurementType))
	}
	switch g := ms.Geometry.(type) {
	case SphereGeometry:
		e.open("SphereGeometry")
		e.leaf("SphereType", string(g.SphereType))
		e.close("SphereGeometry")
	case DirectionalGeometry:
		e.open("DirectionalGeometry")
		e.leaf("IlluminationAngle", formatFloat(g.IlluminationAngle))
		e.leaf("MeasurementAngle", formatFloat(g.MeasurementAngle))
		e.close("DirectionalGeometry")
	case nil:
		// geometry is optional
	}
	if wr := ms.WavelengthRange; wr != nil {
		e.empty("WavelengthRange",
			attrKV{"StartWL", formatFloat(wr.StartWL)},
			attrKV{"Increment", formatFloat(wr.Increment)})
	}
	if ms.LuminanceUnits != "" {
		e.leaf("LuminanceUnits", string(ms.LuminanceUnits))
	}
	if ms.CalibrationStandard != "" {
		e.leaf("CalibrationStandard", string(ms.CalibrationStandard))
	}
	if d := ms.Device; d != nil {
		e.open("Device")
		if d.Manufacturer != "" {
			e.leaf("Manufacturer", d.Manufacturer)
		}
		if d.Model != "" {
			e.leaf("Model", d.Model)
		}
		if d.SerialNumber != "" {
			e.leaf("SerialNumber", d.SerialNumber)
		}
		e.close("Device")
	}
	e.close("MeasurementSpec")
}

func (e *encoder) profile(p *Profile) error {
	attrs := []attrKV{{"Id", p.ID}, {"Direction", string(p.Direction)}}
	if p.Created != nil {
		attrs = append(attrs, attrKV{"Created", p.Created.String()})
	}
	e.open("Profile", attrs...)
	switch s := p.Source.(type) {
	case ProfileFile:
		e.leaf("ProfileFile", s.Path)
	case ProfileURI:
		e.leaf("ProfileURI", s.URI)
	default:
		return issueAt("/Profile", CodeInvalidChoice, "profile requires one of ProfileFile|ProfileURI")
	}
	for _, param := range p.Parameters {
		attrs := []attrKV{{"Name", param.Name}}
		if param.Value != "" {
			attrs = append(attrs, attrKV{"Value", param.Value})
		}
		e.empty("Parameter", attrs...)
	}
	e.close("Profile")
	return nil
}

func (e *encoder) physicalAttributes(pa *PhysicalAttributes) error {
	e.open("PhysicalAttributes")
	if pa.TargetType != "" {
		e.leaf("TargetType", string(pa.TargetType))
	}
	if pa.FinishType != "" {
		e.leaf("FinishType", string(pa.FinishType))
	}
	if pa.SubstrateType != "" {
		e.leaf("SubstrateType", string(pa.SubstrateType))
	}
	dims := []struct {
		name string
		m    *Measurement
	}{
		{"Quantity", pa.Quantity}, {"Width", pa.Width}, {"Length", pa.Length},
		{"Height", pa.Height}, {"Thickness", pa.Thickness},
	}
	for _, d := range dims {
		if d.m == nil {
			continue
		}
		var attrs []attrKV
		if d.m.Unit != "" {
			attrs = append(attrs, attrKV{"Unit", d.m.Unit})
		}
		e.leaf(d.name, formatFloat(d.m.Value), attrs...)
	}
	for _, mv := range []struct {
		name string
		m    *MethodValue
	}{{"Gloss", pa.Gloss}, {"Opacity", pa.Opacity}} {
		if mv.m == nil {
			continue
		}
		var attrs []attrKV
		if mv.m.Method != "" {
			attrs = append(attrs, attrKV{"Method", mv.m.Method})
		}
		e.leaf(mv.name, formatFloat(mv.m.Value), attrs...)
	}
	for _, ca := range pa.CustomAttributes {
		attrs := []attrKV{{"Name", ca.Name}}
		if ca.Value != "" {
			attrs = append(attrs, attrKV{"Value", ca.Value})
		}
		e.empty("CustomAttribute", attrs...)
	}
	if img := pa.Image; img != nil {
		var attrs []attrKV
		if img.MimeType != "" {
			attrs = append(attrs, attrKV{"MimeType", img.MimeType})
		}
		e.open("Image", attrs...)
		switch s := img.Source.(type) {
		case ImageData:
			e.leaf("Data", base64.StdEncoding.EncodeToString(s.Data))
		case ImageURI:
			e.leaf("Uri", s.URI)
		default:
			return issueAt("/PhysicalAttributes/Image", CodeInvalidChoice, "image requires one of Data|Uri")
		}
		e.close("Image")
	}
	e.close("PhysicalAttributes")
	return nil
}

// ---- foreign payload ----

func (e *encoder) customResources(cr *CustomResources) {
	if len(cr.Elements) == 0 {
		e.empty("CustomResources")
		return
	}
	e.open("CustomResources")
	for _, fe := range cr.Elements {
		e.foreign(fe, Namespace)
	}
	e.close("CustomResources")
}

// foreign re-emits an opaque subtree. Elements are written unprefixed with an
// explicit default-namespace declaration wherever the namespace changes from
// the enclosing element, which preserves the payload's meaning if not its
// original prefixes.
func (e *encoder) foreign(fe ForeignElement, parentSpace string) {
	e.indent()
	e.buf.WriteString("<" + fe.Local)
	if fe.Space != parentSpace {
		e.buf.WriteString(` xmlns="`)
		e.text(fe.Space)
		e.buf.WriteString(`"`)
	}
	for _, a := range fe.Attrs {
		// Foreign qualified attributes cannot be rendered without their
		// original prefix; emit local names only.
		e.buf.WriteString(" " + a.Local + `="`)
		e.text(a.Value)
		e.buf.WriteString(`"`)
	}
	if len(fe.Children) == 0 && fe.Text == "" {
		e.buf.WriteString("/>\n")
		return
	}
	if len(fe.Children) == 0 {
		e.buf.WriteString(">")
		e.text(fe.Text)
		e.buf.WriteString("</" + fe.Local + ">\n")
		return
	}
	e.buf.WriteString(">\n")
	e.depth++
	for _, c := range fe.Children {
		e.foreign(c, fe.Space)
	}
	e.depth--
	e.indent()
	e.buf.WriteString("</" + fe.Local + ">\n")
}

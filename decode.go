package cxf

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/colour-science/cxf-go/internal/xmltree"
)

// Decode maps raw document bytes into the typed Document graph. It enforces
// the schema on its own — structural conformance, required fields, enumerated
// domains, numeric ranges and reference integrity — so it is safe to call on
// untrusted input without a prior Validate. Failure is atomic: no partially
// populated Document is ever returned.
func Decode(data []byte) (*Document, error) {
	root, err := xmltree.Parse(data)
	if err != nil {
		return nil, issueCaused("/", CodeMalformedMarkup, err.Error(), err)
	}
	if iss := checkRoot(root); iss != nil {
		return nil, iss
	}
	if iss := checkStructure(root, "/CxF"); iss != nil {
		return nil, iss
	}

	ctx, iss := newDecodeContext(root)
	if iss != nil {
		return nil, iss
	}
	return decodeDocument(root, ctx)
}

// decodeContext carries the document-wide id index used to resolve
// colour-specification references and to reject duplicate Object ids while
// the graph is being built. It is explicit state threaded through the decode
// call, never a package-level lookup.
type decodeContext struct {
	specIDs   map[string]bool
	objectIDs map[string]bool
}

// newDecodeContext pre-scans the tree for declared ColorSpecification ids so
// that forward references (objects precede specifications in document order)
// resolve during the build.
func newDecodeContext(root *xmltree.Element) (*decodeContext, Issues) {
	specIDs, iss := collectSpecIDs(root)
	if iss != nil {
		return nil, iss
	}
	return &decodeContext{specIDs: specIDs, objectIDs: map[string]bool{}}, nil
}

func (ctx *decodeContext) resolve(ref, path string) Issues {
	if ref == "" {
		return nil
	}
	if !ctx.specIDs[ref] {
		return issueAt(path+"/@ColorSpecification", CodeReferenceUnresolved,
			fmt.Sprintf("colour-specification reference %q does not resolve", ref))
	}
	return nil
}

func decodeDocument(root *xmltree.Element, ctx *decodeContext) (*Document, error) {
	doc := &Document{}
	if el := root.Find("FileInformation"); el != nil {
		fi, iss := decodeFileInformation(el, "/CxF/FileInformation")
		if iss != nil {
			return nil, iss
		}
		doc.FileInformation = fi
	}
	if el := root.Find("Resources"); el != nil {
		res, iss := decodeResources(el, "/CxF/Resources", ctx)
		if iss != nil {
			return nil, iss
		}
		doc.Resources = res
	}
	if el := root.Find("CustomResources"); el != nil {
		doc.CustomResources = decodeCustomResources(el)
	}
	return doc, nil
}

func decodeFileInformation(el *xmltree.Element, path string) (*FileInformation, Issues) {
	fi := &FileInformation{}
	if c := el.Find("Creator"); c != nil {
		fi.Creator = c.Text
	}
	if c := el.Find("CreationDate"); c != nil {
		d, iss := parseDateText(c.Text, path+"/CreationDate")
		if iss != nil {
			return nil, iss
		}
		fi.CreationDate = &d
	}
	if c := el.Find("Description"); c != nil {
		fi.Description = c.Text
	}
	if c := el.Find("Comment"); c != nil {
		fi.Comment = c.Text
	}
	for i, t := range el.FindAll("Tag") {
		tag, iss := decodeTag(t, fmt.Sprintf("%s/Tag[%d]", path, i+1))
		if iss != nil {
			return nil, iss
		}
		fi.Tags = append(fi.Tags, tag)
	}
	return fi, nil
}

func decodeTag(el *xmltree.Element, path string) (Tag, Issues) {
	name, iss := requiredAttr(el, "Name", path)
	if iss != nil {
		return Tag{}, iss
	}
	value, _ := el.Attr("Value")
	return Tag{Name: name, Value: value}, nil
}

func decodeResources(el *xmltree.Element, path string, ctx *decodeContext) (*Resources, Issues) {
	res := &Resources{}
	if c := el.Find("ObjectCollection"); c != nil {
		coll := &ObjectCollection{Objects: []Object{}}
		for i, o := range c.FindAll("Object") {
			obj, iss := decodeObject(o, fmt.Sprintf("%s/ObjectCollection/Object[%d]", path, i+1), ctx)
			if iss != nil {
				return nil, iss
			}
			coll.Objects = append(coll.Objects, obj)
		}
		res.ObjectCollection = coll
	}
	if c := el.Find("ColorSpecificationCollection"); c != nil {
		coll := &ColorSpecificationCollection{Specifications: []ColorSpecification{}}
		for i, s := range c.FindAll("ColorSpecification") {
			spec, iss := decodeColorSpecification(s, fmt.Sprintf("%s/ColorSpecificationCollection/ColorSpecification[%d]", path, i+1))
			if iss != nil {
				return nil, iss
			}
			coll.Specifications = append(coll.Specifications, spec)
		}
		res.ColorSpecificationCollection = coll
	}
	if c := el.Find("ProfileCollection"); c != nil {
		coll := &ProfileCollection{Profiles: []Profile{}}
		for i, p := range c.FindAll("Profile") {
			prof, iss := decodeProfile(p, fmt.Sprintf("%s/ProfileCollection/Profile[%d]", path, i+1))
			if iss != nil {
				return nil, iss
			}
			coll.Profiles = append(coll.Profiles, prof)
		}
		res.ProfileCollection = coll
	}
	return res, nil
}

func decodeObject(el *xmltree.Element, path string, ctx *decodeContext) (Object, Issues) {
	var obj Object
	var iss Issues
	if obj.ObjectType, iss = requiredAttr(el, "ObjectType", path); iss != nil {
		return Object{}, iss
	}
	if obj.Name, iss = requiredAttr(el, "Name", path); iss != nil {
		return Object{}, iss
	}
	if obj.ID, iss = requiredAttr(el, "Id", path); iss != nil {
		return Object{}, iss
	}
	if ctx.objectIDs[obj.ID] {
		return Object{}, issueAt(path+"/@Id", CodeDuplicateID, fmt.Sprintf("duplicate Object id %q", obj.ID))
	}
	ctx.objectIDs[obj.ID] = true

	if guid, ok := el.Attr("GUID"); ok {
		if _, err := uuid.Parse(guid); err != nil {
			return Object{}, issueCaused(path+"/@GUID", CodeInvalidGUID, fmt.Sprintf("invalid GUID %q", guid), err)
		}
		obj.GUID = guid
	}

	created := el.Find("CreationDate")
	if created == nil {
		return Object{}, issueAt(path+"/CreationDate", CodeRequired, "required element CreationDate missing in Object")
	}
	d, iss := parseDateText(created.Text, path+"/CreationDate")
	if iss != nil {
		return Object{}, iss
	}
	obj.CreationDate = d

	if c := el.Find("Comment"); c != nil {
		obj.Comment = c.Text
	}
	if c := el.Find("ColorValues"); c != nil {
		cv, iss := decodeColorValues(c, path+"/ColorValues", ctx)
		if iss != nil {
			return Object{}, iss
		}
		obj.ColorValues = cv
	}
	if c := el.Find("DeviceColorValues"); c != nil {
		dv, iss := decodeDeviceColorValues(c, path+"/DeviceColorValues", ctx)
		if iss != nil {
			return Object{}, iss
		}
		obj.DeviceColorValues = dv
	}
	if c := el.Find("ColorDifferenceValues"); c != nil {
		dv, iss := decodeColorDifferenceValues(c, path+"/ColorDifferenceValues", ctx)
		if iss != nil {
			return Object{}, iss
		}
		obj.ColorDifferenceValues = dv
	}
	if c := el.Find("TagCollection"); c != nil {
		tc := &TagCollection{Tags: []Tag{}}
		for i, t := range c.FindAll("Tag") {
			tag, iss := decodeTag(t, fmt.Sprintf("%s/TagCollection/Tag[%d]", path, i+1))
			if iss != nil {
				return Object{}, iss
			}
			tc.Tags = append(tc.Tags, tag)
		}
		obj.TagCollection = tc
	}
	if c := el.Find("PhysicalAttributes"); c != nil {
		pa, iss := decodePhysicalAttributes(c, path+"/PhysicalAttributes")
		if iss != nil {
			return Object{}, iss
		}
		obj.PhysicalAttributes = pa
	}
	return obj, nil
}

// decodeColorValues dispatches the colour-value variants by element tag name.
// The variant set is closed; the structural pass has already rejected any
// other element here.
func decodeColorValues(el *xmltree.Element, path string, ctx *decodeContext) (*ColorValues, Issues) {
	cv := &ColorValues{Values: []ColorValue{}}
	for i, c := range el.Children {
		cpath := fmt.Sprintf("%s/%s[%d]", path, c.Local, i+1)
		var v ColorValue
		var iss Issues
		switch c.Local {
		case "ColorCIELab":
			v, iss = decodeColorCIELab(c, cpath, ctx)
		case "ColorSRGB":
			v, iss = decodeColorSRGB(c, cpath, ctx)
		case "ReflectanceSpectrum":
			var sp Spectrum
			sp, iss = decodeSpectrum(c, cpath, ctx)
			v = ReflectanceSpectrum{Spectrum: sp}
		case "TransmittanceSpectrum":
			var sp Spectrum
			sp, iss = decodeSpectrum(c, cpath, ctx)
			v = TransmittanceSpectrum{Spectrum: sp}
		default:
			iss = issueAt(cpath, CodeUnknownElement, fmt.Sprintf("unknown colour value %s", c.Local))
		}
		if iss != nil {
			return nil, iss
		}
		cv.Values = append(cv.Values, v)
	}
	return cv, nil
}

func decodeColorCIELab(el *xmltree.Element, path string, ctx *decodeContext) (ColorCIELab, Issues) {
	var v ColorCIELab
	v.Name, _ = el.Attr("Name")
	v.ColorSpecification, _ = el.Attr("ColorSpecification")
	if iss := ctx.resolve(v.ColorSpecification, path); iss != nil {
		return ColorCIELab{}, iss
	}
	var iss Issues
	if v.L, iss = requiredFloatChild(el, "L", path, nil, nil); iss != nil {
		return ColorCIELab{}, iss
	}
	if v.A, iss = requiredFloatChild(el, "A", path, nil, nil); iss != nil {
		return ColorCIELab{}, iss
	}
	if v.B, iss = requiredFloatChild(el, "B", path, nil, nil); iss != nil {
		return ColorCIELab{}, iss
	}
	return v, nil
}

func decodeColorSRGB(el *xmltree.Element, path string, ctx *decodeContext) (ColorSRGB, Issues) {
	var v ColorSRGB
	v.Name, _ = el.Attr("Name")
	v.ColorSpecification, _ = el.Attr("ColorSpecification")
	if iss := ctx.resolve(v.ColorSpecification, path); iss != nil {
		return ColorSRGB{}, iss
	}
	lo, hi := f(SRGBMin), f(SRGBMax)
	var iss Issues
	if v.R, iss = requiredFloatChild(el, "R", path, lo, hi); iss != nil {
		return ColorSRGB{}, iss
	}
	if v.G, iss = requiredFloatChild(el, "G", path, lo, hi); iss != nil {
		return ColorSRGB{}, iss
	}
	if v.B, iss = requiredFloatChild(el, "B", path, lo, hi); iss != nil {
		return ColorSRGB{}, iss
	}
	return v, nil
}

func decodeSpectrum(el *xmltree.Element, path string, ctx *decodeContext) (Spectrum, Issues) {
	var sp Spectrum
	sp.Name, _ = el.Attr("Name")
	sp.ColorSpecification, _ = el.Attr("ColorSpecification")
	if iss := ctx.resolve(sp.ColorSpecification, path); iss != nil {
		return Spectrum{}, iss
	}

	var iss Issues
	if sp.StartWL, iss = requiredFloatAttr(el, "StartWL", path, f(MinWavelengthNM), f(MaxWavelengthNM)); iss != nil {
		return Spectrum{}, iss
	}
	if raw, ok := el.Attr("EndWL"); ok {
		end, iss := parseFloatIn(raw, path+"/@EndWL", f(MinWavelengthNM), f(MaxWavelengthNM), false)
		if iss != nil {
			return Spectrum{}, iss
		}
		if end < sp.StartWL {
			return Spectrum{}, issueAt(path+"/@EndWL", CodeDomainRange,
				fmt.Sprintf("EndWL %v precedes StartWL %v", end, sp.StartWL))
		}
		sp.EndWL = &end
	}
	if raw, ok := el.Attr("Increment"); ok {
		inc, iss := parseFloatIn(raw, path+"/@Increment", f(0), nil, true)
		if iss != nil {
			return Spectrum{}, iss
		}
		sp.Increment = &inc
	}
	if raw, ok := el.Attr("MeasureDate"); ok {
		d, iss := parseDateText(raw, path+"/@MeasureDate")
		if iss != nil {
			return Spectrum{}, iss
		}
		sp.MeasureDate = &d
	}

	value := el.Find("Value")
	if value == nil {
		return Spectrum{}, issueAt(path+"/Value", CodeRequired, "required element Value missing in spectrum")
	}
	samples, iss := parseFloatList(value.Text, path+"/Value")
	if iss != nil {
		return Spectrum{}, iss
	}
	sp.Values = samples
	return sp, nil
}

func decodeDeviceColorValues(el *xmltree.Element, path string, ctx *decodeContext) (*DeviceColorValues, Issues) {
	dv := &DeviceColorValues{Values: []DeviceColorValue{}}
	for i, c := range el.Children {
		cpath := fmt.Sprintf("%s/%s[%d]", path, c.Local, i+1)
		switch c.Local {
		case "ColorCMYK":
			v, iss := decodeColorCMYK(c, cpath, ctx)
			if iss != nil {
				return nil, iss
			}
			dv.Values = append(dv.Values, v)
		default:
			return nil, issueAt(cpath, CodeUnknownElement, fmt.Sprintf("unknown device colour value %s", c.Local))
		}
	}
	return dv, nil
}

func decodeColorCMYK(el *xmltree.Element, path string, ctx *decodeContext) (ColorCMYK, Issues) {
	var v ColorCMYK
	v.Name, _ = el.Attr("Name")
	v.ColorSpecification, _ = el.Attr("ColorSpecification")
	if iss := ctx.resolve(v.ColorSpecification, path); iss != nil {
		return ColorCMYK{}, iss
	}
	lo, hi := f(CMYKMin), f(CMYKMax)
	var iss Issues
	if v.C, iss = requiredFloatChild(el, "C", path, lo, hi); iss != nil {
		return ColorCMYK{}, iss
	}
	if v.M, iss = requiredFloatChild(el, "M", path, lo, hi); iss != nil {
		return ColorCMYK{}, iss
	}
	if v.Y, iss = requiredFloatChild(el, "Y", path, lo, hi); iss != nil {
		return ColorCMYK{}, iss
	}
	if v.K, iss = requiredFloatChild(el, "K", path, lo, hi); iss != nil {
		return ColorCMYK{}, iss
	}
	if c := el.Find("DeviceClass"); c != nil {
		dc := DeviceClass(strings.TrimSpace(c.Text))
		if !dc.Valid() {
			return ColorCMYK{}, issueAt(path+"/DeviceClass", CodeInvalidEnum,
				fmt.Sprintf("%q is not a valid DeviceClass", strings.TrimSpace(c.Text)))
		}
		v.DeviceClass = dc
	}
	return v, nil
}

func decodeColorDifferenceValues(el *xmltree.Element, path string, ctx *decodeContext) (*ColorDifferenceValues, Issues) {
	dv := &ColorDifferenceValues{Values: []ColorDifferenceValue{}}
	for i, c := range el.Children {
		cpath := fmt.Sprintf("%s/%s[%d]", path, c.Local, i+1)
		name, _ := c.Attr("Name")
		ref, _ := c.Attr("ColorSpecification")
		if iss := ctx.resolve(ref, cpath); iss != nil {
			return nil, iss
		}
		val, iss := requiredFloatChild(c, "Value", cpath, f(0), nil)
		if iss != nil {
			return nil, iss
		}
		switch c.Local {
		case "ColorCIEDeltaE1976":
			dv.Values = append(dv.Values, ColorCIEDeltaE1976{Name: name, ColorSpecification: ref, Value: val})
		case "ColorCIEDE2000":
			dv.Values = append(dv.Values, ColorCIEDE2000{Name: name, ColorSpecification: ref, Value: val})
		default:
			return nil, issueAt(cpath, CodeUnknownElement, fmt.Sprintf("unknown delta-colour value %s", c.Local))
		}
	}
	return dv, nil
}

func decodeColorSpecification(el *xmltree.Element, path string) (ColorSpecification, Issues) {
	var spec ColorSpecification
	var iss Issues
	if spec.ID, iss = requiredAttr(el, "Id", path); iss != nil {
		return ColorSpecification{}, iss
	}
	if c := el.Find("TristimulusSpec"); c != nil {
		ts, iss := decodeTristimulusSpec(c, path+"/TristimulusSpec")
		if iss != nil {
			return ColorSpecification{}, iss
		}
		spec.TristimulusSpec = ts
	}
	if c := el.Find("MeasurementSpec"); c != nil {
		ms, iss := decodeMeasurementSpec(c, path+"/MeasurementSpec")
		if iss != nil {
			return ColorSpecification{}, iss
		}
		spec.MeasurementSpec = ms
	}
	if c := el.Find("PhysicalAttributes"); c != nil {
		pa, iss := decodePhysicalAttributes(c, path+"/PhysicalAttributes")
		if iss != nil {
			return ColorSpecification{}, iss
		}
		spec.PhysicalAttributes = pa
	}
	return spec, nil
}

func decodeTristimulusSpec(el *xmltree.Element, path string) (*TristimulusSpec, Issues) {
	ts := &TristimulusSpec{}
	ill := el.Find("Illuminant")
	if ill == nil {
		return nil, issueAt(path+"/Illuminant", CodeRequired, "required element Illuminant missing in TristimulusSpec")
	}
	ts.Illuminant = Illuminant(strings.TrimSpace(ill.Text))
	if !ts.Illuminant.Valid() {
		return nil, issueAt(path+"/Illuminant", CodeInvalidEnum,
			fmt.Sprintf("%q is not a valid Illuminant", strings.TrimSpace(ill.Text)))
	}
	if c := el.Find("CustomIlluminant"); c != nil {
		ts.CustomIlluminant = c.Text
	}
	obs := el.Find("Observer")
	if obs == nil {
		return nil, issueAt(path+"/Observer", CodeRequired, "required element Observer missing in TristimulusSpec")
	}
	ts.Observer = Observer(strings.TrimSpace(obs.Text))
	if !ts.Observer.Valid() {
		return nil, issueAt(path+"/Observer", CodeInvalidEnum,
			fmt.Sprintf("%q is not a valid Observer", strings.TrimSpace(obs.Text)))
	}
	if c := el.Find("Method"); c != nil {
		ts.Method = Method(strings.TrimSpace(c.Text))
		if !ts.Method.Valid() {
			return nil, issueAt(path+"/Method", CodeInvalidEnum,
				fmt.Sprintf("%q is not a valid Method", strings.TrimSpace(c.Text)))
		}
	}
	return ts, nil
}

func decodeMeasurementSpec(el *xmltree.Element, path string) (*MeasurementSpec, Issues) {
	ms := &MeasurementSpec{}
	if c := el.Find("MeasurementType"); c != nil {
		ms.MeasurementType = MeasurementType(strings.TrimSpace(c.Text))
		if !ms.MeasurementType.Valid() {
			return nil, issueAt(path+"/MeasurementType", CodeInvalidEnum,
				fmt.Sprintf("%q is not a valid MeasurementType", strings.TrimSpace(c.Text)))
		}
	}
	if c := el.Find("SphereGeometry"); c != nil {
		st := c.Find("SphereType")
		if st == nil {
			return nil, issueAt(path+"/SphereGeometry/SphereType", CodeRequired,
				"required element SphereType missing in SphereGeometry")
		}
		v := SphereType(strings.TrimSpace(st.Text))
		if !v.Valid() {
			return nil, issueAt(path+"/SphereGeometry/SphereType", CodeInvalidEnum,
				fmt.Sprintf("%q is not a valid SphereType", strings.TrimSpace(st.Text)))
		}
		ms.Geometry = SphereGeometry{SphereType: v}
	}
	if c := el.Find("DirectionalGeometry"); c != nil {
		if ms.Geometry != nil {
			return nil, issueAt(path+"/DirectionalGeometry", CodeInvalidChoice,
				"more than one geometry in MeasurementSpec")
		}
		gpath := path + "/DirectionalGeometry"
		var g DirectionalGeometry
		var iss Issues
		if g.IlluminationAngle, iss = requiredFloatChild(c, "IlluminationAngle", gpath, nil, nil); iss != nil {
			return nil, iss
		}
		if g.MeasurementAngle, iss = requiredFloatChild(c, "MeasurementAngle", gpath, nil, nil); iss != nil {
			return nil, iss
		}
		ms.Geometry = g
	}
	if c := el.Find("WavelengthRange"); c != nil {
		wr := &WavelengthRange{}
		var iss Issues
		wpath := path + "/WavelengthRange"
		if wr.StartWL, iss = requiredFloatAttr(c, "StartWL", wpath, f(MinWavelengthNM), f(MaxWavelengthNM)); iss != nil {
			return nil, iss
		}
		raw, ok := c.Attr("Increment")
		if !ok {
			return nil, issueAt(wpath+"/@Increment", CodeRequired, "required attribute Increment missing on WavelengthRange")
		}
		if wr.Increment, iss = parseFloatIn(raw, wpath+"/@Increment", f(0), nil, true); iss != nil {
			return nil, iss
		}
		ms.WavelengthRange = wr
	}
	if c := el.Find("LuminanceUnits"); c != nil {
		ms.LuminanceUnits = LuminanceUnits(strings.TrimSpace(c.Text))
		if !ms.LuminanceUnits.Valid() {
			return nil, issueAt(path+"/LuminanceUnits", CodeInvalidEnum,
				fmt.Sprintf("%q is not a valid LuminanceUnits", strings.TrimSpace(c.Text)))
		}
	}
	if c := el.Find("CalibrationStandard"); c != nil {
		ms.CalibrationStandard = CalibrationStandard(strings.TrimSpace(c.Text))
		if !ms.CalibrationStandard.Valid() {
			return nil, issueAt(path+"/CalibrationStandard", CodeInvalidEnum,
				fmt.Sprintf("%q is not a valid CalibrationStandard", strings.TrimSpace(c.Text)))
		}
	}
	if c := el.Find("Device"); c != nil {
		d := &Device{}
		if m := c.Find("Manufacturer"); m != nil {
			d.Manufacturer = m.Text
		}
		if m := c.Find("Model"); m != nil {
			d.Model = m.Text
		}
		if m := c.Find("SerialNumber"); m != nil {
			d.SerialNumber = m.Text
		}
		ms.Device = d
	}
	return ms, nil
}

func decodeProfile(el *xmltree.Element, path string) (Profile, Issues) {
	var p Profile
	var iss Issues
	if p.ID, iss = requiredAttr(el, "Id", path); iss != nil {
		return Profile{}, iss
	}
	dir, iss := requiredAttr(el, "Direction", path)
	if iss != nil {
		return Profile{}, iss
	}
	p.Direction = ProfileDirection(dir)
	if !p.Direction.Valid() {
		return Profile{}, issueAt(path+"/@Direction", CodeInvalidEnum,
			fmt.Sprintf("%q is not a valid Direction", dir))
	}
	if raw, ok := el.Attr("Created"); ok {
		d, iss := parseDateText(raw, path+"/@Created")
		if iss != nil {
			return Profile{}, iss
		}
		p.Created = &d
	}

	file := el.Find("ProfileFile")
	uri := el.Find("ProfileURI")
	switch {
	case file != nil && uri != nil:
		return Profile{}, issueAt(path, CodeInvalidChoice, "ProfileFile and ProfileURI are mutually exclusive")
	case file != nil:
		if strings.TrimSpace(file.Text) == "" {
			return Profile{}, issueAt(path+"/ProfileFile", CodeEmptyValue, "value must not be empty")
		}
		p.Source = ProfileFile{Path: file.Text}
	case uri != nil:
		if strings.TrimSpace(uri.Text) == "" {
			return Profile{}, issueAt(path+"/ProfileURI", CodeEmptyValue, "value must not be empty")
		}
		p.Source = ProfileURI{URI: uri.Text}
	default:
		return Profile{}, issueAt(path, CodeInvalidChoice, "one of ProfileFile|ProfileURI required in Profile")
	}

	for i, c := range el.FindAll("Parameter") {
		cpath := fmt.Sprintf("%s/Parameter[%d]", path, i+1)
		name, iss := requiredAttr(c, "Name", cpath)
		if iss != nil {
			return Profile{}, iss
		}
		value, _ := c.Attr("Value")
		p.Parameters = append(p.Parameters, ProfileParameter{Name: name, Value: value})
	}
	return p, nil
}

func decodePhysicalAttributes(el *xmltree.Element, path string) (*PhysicalAttributes, Issues) {
	pa := &PhysicalAttributes{}
	if c := el.Find("TargetType"); c != nil {
		pa.TargetType = TargetType(strings.TrimSpace(c.Text))
		if !pa.TargetType.Valid() {
			return nil, issueAt(path+"/TargetType", CodeInvalidEnum,
				fmt.Sprintf("%q is not a valid TargetType", strings.TrimSpace(c.Text)))
		}
	}
	if c := el.Find("FinishType"); c != nil {
		pa.FinishType = FinishType(strings.TrimSpace(c.Text))
		if !pa.FinishType.Valid() {
			return nil, issueAt(path+"/FinishType", CodeInvalidEnum,
				fmt.Sprintf("%q is not a valid FinishType", strings.TrimSpace(c.Text)))
		}
	}
	if c := el.Find("SubstrateType"); c != nil {
		pa.SubstrateType = SubstrateType(strings.TrimSpace(c.Text))
		if !pa.SubstrateType.Valid() {
			return nil, issueAt(path+"/SubstrateType", CodeInvalidEnum,
				fmt.Sprintf("%q is not a valid SubstrateType", strings.TrimSpace(c.Text)))
		}
	}
	for _, dim := range []string{"Quantity", "Width", "Length", "Height", "Thickness"} {
		c := el.Find(dim)
		if c == nil {
			continue
		}
		v, iss := parseFloatIn(c.Text, path+"/"+dim, f(0), nil, false)
		if iss != nil {
			return nil, iss
		}
		unit, _ := c.Attr("Unit")
		m := &Measurement{Value: v, Unit: unit}
		switch dim {
		case "Quantity":
			pa.Quantity = m
		case "Width":
			pa.Width = m
		case "Length":
			pa.Length = m
		case "Height":
			pa.Height = m
		case "Thickness":
			pa.Thickness = m
		}
	}
	for _, mv := range []string{"Gloss", "Opacity"} {
		c := el.Find(mv)
		if c == nil {
			continue
		}
		v, iss := parseFloatIn(c.Text, path+"/"+mv, f(0), nil, false)
		if iss != nil {
			return nil, iss
		}
		method, _ := c.Attr("Method")
		if mv == "Gloss" {
			pa.Gloss = &MethodValue{Value: v, Method: method}
		} else {
			pa.Opacity = &MethodValue{Value: v, Method: method}
		}
	}
	for i, c := range el.FindAll("CustomAttribute") {
		cpath := fmt.Sprintf("%s/CustomAttribute[%d]", path, i+1)
		name, iss := requiredAttr(c, "Name", cpath)
		if iss != nil {
			return nil, iss
		}
		value, _ := c.Attr("Value")
		pa.CustomAttributes = append(pa.CustomAttributes, CustomAttribute{Name: name, Value: value})
	}
	if c := el.Find("Image"); c != nil {
		img, iss := decodeImage(c, path+"/Image")
		if iss != nil {
			return nil, iss
		}
		pa.Image = img
	}
	return pa, nil
}

func decodeImage(el *xmltree.Element, path string) (*Image, Issues) {
	img := &Image{}
	img.MimeType, _ = el.Attr("MimeType")
	data := el.Find("Data")
	uri := el.Find("Uri")
	switch {
	case data != nil && uri != nil:
		return nil, issueAt(path, CodeInvalidChoice, "Data and Uri are mutually exclusive")
	case data != nil:
		compact := strings.Join(strings.Fields(data.Text), "")
		if compact == "" {
			return nil, issueAt(path+"/Data", CodeEmptyValue, "value must not be empty")
		}
		raw, err := base64.StdEncoding.DecodeString(compact)
		if err != nil {
			return nil, issueCaused(path+"/Data", CodeInvalidBase64, "invalid base64 payload", err)
		}
		img.Source = ImageData{Data: raw}
	case uri != nil:
		if strings.TrimSpace(uri.Text) == "" {
			return nil, issueAt(path+"/Uri", CodeEmptyValue, "value must not be empty")
		}
		img.Source = ImageURI{URI: uri.Text}
	default:
		return nil, issueAt(path, CodeInvalidChoice, "one of Data|Uri required in Image")
	}
	return img, nil
}

// decodeCustomResources copies the foreign subtree into the exported
// ForeignElement shape without interpreting it.
func decodeCustomResources(el *xmltree.Element) *CustomResources {
	cr := &CustomResources{Elements: []ForeignElement{}}
	for _, c := range el.Children {
		cr.Elements = append(cr.Elements, foreignFromTree(c))
	}
	return cr
}

func foreignFromTree(el *xmltree.Element) ForeignElement {
	fe := ForeignElement{Space: el.Space, Local: el.Local, Text: el.Text}
	for _, a := range el.Attrs {
		fe.Attrs = append(fe.Attrs, ForeignAttr{Space: a.Space, Local: a.Local, Value: a.Value})
	}
	for _, c := range el.Children {
		fe.Children = append(fe.Children, foreignFromTree(c))
	}
	return fe
}

// ---- scalar helpers ----

func requiredAttr(el *xmltree.Element, name, path string) (string, Issues) {
	v, ok := el.Attr(name)
	if !ok {
		return "", issueAt(path+"/@"+name, CodeRequired,
			fmt.Sprintf("required attribute %s missing on %s", name, el.Local))
	}
	if strings.TrimSpace(v) == "" {
		return "", issueAt(path+"/@"+name, CodeEmptyValue,
			fmt.Sprintf("required attribute %s empty on %s", name, el.Local))
	}
	return v, nil
}

func requiredFloatChild(el *xmltree.Element, name, path string, min, max *float64) (float64, Issues) {
	c := el.Find(name)
	if c == nil {
		return 0, issueAt(path+"/"+name, CodeRequired,
			fmt.Sprintf("required element %s missing in %s", name, el.Local))
	}
	return parseFloatIn(c.Text, path+"/"+name, min, max, false)
}

func requiredFloatAttr(el *xmltree.Element, name, path string, min, max *float64) (float64, Issues) {
	raw, ok := el.Attr(name)
	if !ok {
		return 0, issueAt(path+"/@"+name, CodeRequired,
			fmt.Sprintf("required attribute %s missing on %s", name, el.Local))
	}
	return parseFloatIn(raw, path+"/@"+name, min, max, false)
}

func parseFloatIn(raw, path string, min, max *float64, minExclusive bool) (float64, Issues) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return 0, issueAt(path, CodeEmptyValue, "value must not be empty")
	}
	fv, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, issueCaused(path, CodeInvalidNumber, fmt.Sprintf("invalid number %q", v), err)
	}
	if iss := checkBounds(valueRule{min: min, max: max, minExclusive: minExclusive}, fv, path); iss != nil {
		return 0, iss
	}
	return fv, nil
}

// parseFloatList splits whitespace-delimited spectral samples, tolerating any
// run of whitespace including leading and trailing.
func parseFloatList(raw, path string) ([]float64, Issues) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return nil, issueAt(path, CodeEmptyValue, "value must not be empty")
	}
	out := make([]float64, 0, len(fields))
	for _, field := range fields {
		fv, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, issueCaused(path, CodeInvalidNumber,
				fmt.Sprintf("invalid number %q in sample list", field), err)
		}
		out = append(out, fv)
	}
	return out, nil
}

func parseDateText(raw, path string) (DateTime, Issues) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return DateTime{}, issueAt(path, CodeEmptyValue, "value must not be empty")
	}
	d, err := ParseDateTime(v)
	if err != nil {
		return DateTime{}, issueCaused(path, CodeInvalidDateTime, err.Error(), err)
	}
	return d, nil
}

// Package codec projects decoded documents onto JSON and back. The XML model
// uses closed interface choices for its variant lists; the projection wraps
// each variant in an envelope carrying a "type" discriminator so consumers
// can dispatch without reflection, and UnmarshalDocument uses the same
// discriminator to rebuild the typed graph.
//
// The projection omits empty collections, so a present-but-empty collection
// element does not survive a Marshal/Unmarshal round trip; it comes back as
// absent.
package codec

import (
	"fmt"

	"github.com/goccy/go-json"

	cxf "github.com/colour-science/cxf-go"
)

// MarshalDocument renders doc as compact JSON.
func MarshalDocument(doc *cxf.Document) ([]byte, error) {
	proj, err := project(doc)
	if err != nil {
		return nil, err
	}
	return json.Marshal(proj)
}

// MarshalDocumentIndent renders doc as indented JSON.
func MarshalDocumentIndent(doc *cxf.Document, prefix, indent string) ([]byte, error) {
	proj, err := project(doc)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(proj, prefix, indent)
}

// UnmarshalDocument rebuilds a Document from the JSON projection produced by
// MarshalDocument. Variant envelopes are dispatched on their "type"
// discriminator; an unknown or missing discriminator is an error.
func UnmarshalDocument(data []byte) (*cxf.Document, error) {
	var proj document
	if err := json.Unmarshal(data, &proj); err != nil {
		return nil, err
	}
	doc := &cxf.Document{
		FileInformation: proj.FileInformation,
		CustomResources: proj.CustomResources,
	}
	if proj.Resources == nil {
		return doc, nil
	}
	res := &cxf.Resources{}
	if len(proj.Resources.Objects) > 0 {
		oc := &cxf.ObjectCollection{Objects: make([]cxf.Object, 0, len(proj.Resources.Objects))}
		for i := range proj.Resources.Objects {
			obj, err := unprojectObject(&proj.Resources.Objects[i])
			if err != nil {
				return nil, err
			}
			oc.Objects = append(oc.Objects, obj)
		}
		res.ObjectCollection = oc
	}
	if len(proj.Resources.Specifications) > 0 {
		sc := &cxf.ColorSpecificationCollection{
			Specifications: make([]cxf.ColorSpecification, 0, len(proj.Resources.Specifications)),
		}
		for i := range proj.Resources.Specifications {
			spec, err := unprojectSpecification(&proj.Resources.Specifications[i])
			if err != nil {
				return nil, err
			}
			sc.Specifications = append(sc.Specifications, spec)
		}
		res.ColorSpecificationCollection = sc
	}
	if len(proj.Resources.Profiles) > 0 {
		pc := &cxf.ProfileCollection{Profiles: make([]cxf.Profile, 0, len(proj.Resources.Profiles))}
		for i := range proj.Resources.Profiles {
			p, err := unprojectProfile(&proj.Resources.Profiles[i])
			if err != nil {
				return nil, err
			}
			pc.Profiles = append(pc.Profiles, p)
		}
		res.ProfileCollection = pc
	}
	doc.Resources = res
	return doc, nil
}

// wrap marshals v and splices a leading "type" discriminator into the object.
func wrap(kind string, v any) (json.RawMessage, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	head := `{"type":` + strconvQuote(kind)
	if len(body) == 2 { // "{}"
		return json.RawMessage(head + "}"), nil
	}
	out := make([]byte, 0, len(head)+len(body))
	out = append(out, head...)
	out = append(out, ',')
	out = append(out, body[1:]...)
	return out, nil
}

func strconvQuote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

type document struct {
	FileInformation *cxf.FileInformation `json:"fileInformation,omitempty"`
	Resources       *resources           `json:"resources,omitempty"`
	CustomResources *cxf.CustomResources `json:"customResources,omitempty"`
}

type resources struct {
	Objects        []object             `json:"objects,omitempty"`
	Specifications []colorSpecification `json:"colorSpecifications,omitempty"`
	Profiles       []profile            `json:"profiles,omitempty"`
}

type object struct {
	ObjectType            string                 `json:"objectType"`
	Name                  string                 `json:"name"`
	ID                    string                 `json:"id"`
	GUID                  string                 `json:"guid,omitempty"`
	CreationDate          cxf.DateTime           `json:"creationDate"`
	Comment               string                 `json:"comment,omitempty"`
	ColorValues           []json.RawMessage      `json:"colorValues,omitempty"`
	DeviceColorValues     []json.RawMessage      `json:"deviceColorValues,omitempty"`
	ColorDifferenceValues []json.RawMessage      `json:"colorDifferenceValues,omitempty"`
	Tags                  []cxf.Tag              `json:"tags,omitempty"`
	PhysicalAttributes    *json.RawMessage       `json:"physicalAttributes,omitempty"`
}

type colorSpecification struct {
	ID                 string               `json:"id"`
	TristimulusSpec    *cxf.TristimulusSpec `json:"tristimulusSpec,omitempty"`
	MeasurementSpec    *measurementSpec     `json:"measurementSpec,omitempty"`
	PhysicalAttributes *json.RawMessage     `json:"physicalAttributes,omitempty"`
}

type measurementSpec struct {
	MeasurementType     cxf.MeasurementType     `json:"measurementType,omitempty"`
	Geometry            json.RawMessage         `json:"geometry,omitempty"`
	WavelengthRange     *cxf.WavelengthRange    `json:"wavelengthRange,omitempty"`
	LuminanceUnits      cxf.LuminanceUnits      `json:"luminanceUnits,omitempty"`
	CalibrationStandard cxf.CalibrationStandard `json:"calibrationStandard,omitempty"`
	Device              *cxf.Device             `json:"device,omitempty"`
}

type profile struct {
	ID         string                 `json:"id"`
	Direction  cxf.ProfileDirection   `json:"direction"`
	Created    *cxf.DateTime          `json:"created,omitempty"`
	Source     json.RawMessage        `json:"source"`
	Parameters []cxf.ProfileParameter `json:"parameters,omitempty"`
}

func project(doc *cxf.Document) (*document, error) {
	if doc == nil {
		return nil, fmt.Errorf("codec: nil document")
	}
	out := &document{
		FileInformation: doc.FileInformation,
		CustomResources: doc.CustomResources,
	}
	if doc.Resources == nil {
		return out, nil
	}
	res := &resources{}
	if oc := doc.Resources.ObjectCollection; oc != nil {
		res.Objects = make([]object, 0, len(oc.Objects))
		for i := range oc.Objects {
			o, err := projectObject(&oc.Objects[i])
			if err != nil {
				return nil, err
			}
			res.Objects = append(res.Objects, o)
		}
	}
	if sc := doc.Resources.ColorSpecificationCollection; sc != nil {
		res.Specifications = make([]colorSpecification, 0, len(sc.Specifications))
		for i := range sc.Specifications {
			s, err := projectSpecification(&sc.Specifications[i])
			if err != nil {
				return nil, err
			}
			res.Specifications = append(res.Specifications, s)
		}
	}
	if pc := doc.Resources.ProfileCollection; pc != nil {
		res.Profiles = make([]profile, 0, len(pc.Profiles))
		for i := range pc.Profiles {
			p, err := projectProfile(&pc.Profiles[i])
			if err != nil {
				return nil, err
			}
			res.Profiles = append(res.Profiles, p)
		}
	}
	out.Resources = res
	return out, nil
}

func projectObject(obj *cxf.Object) (object, error) {
	o := object{
		ObjectType:   obj.ObjectType,
		Name:         obj.Name,
		ID:           obj.ID,
		GUID:         obj.GUID,
		CreationDate: obj.CreationDate,
		Comment:      obj.Comment,
	}
	if obj.ColorValues != nil {
		for _, v := range obj.ColorValues.Values {
			raw, err := colorValueJSON(v)
			if err != nil {
				return o, err
			}
			o.ColorValues = append(o.ColorValues, raw)
		}
	}
	if obj.DeviceColorValues != nil {
		for _, v := range obj.DeviceColorValues.Values {
			raw, err := deviceColorValueJSON(v)
			if err != nil {
				return o, err
			}
			o.DeviceColorValues = append(o.DeviceColorValues, raw)
		}
	}
	if obj.ColorDifferenceValues != nil {
		for _, v := range obj.ColorDifferenceValues.Values {
			raw, err := colorDifferenceValueJSON(v)
			if err != nil {
				return o, err
			}
			o.ColorDifferenceValues = append(o.ColorDifferenceValues, raw)
		}
	}
	if obj.TagCollection != nil {
		o.Tags = obj.TagCollection.Tags
	}
	if obj.PhysicalAttributes != nil {
		raw, err := physicalAttributesJSON(obj.PhysicalAttributes)
		if err != nil {
			return o, err
		}
		o.PhysicalAttributes = &raw
	}
	return o, nil
}

func projectSpecification(spec *cxf.ColorSpecification) (colorSpecification, error) {
	s := colorSpecification{ID: spec.ID, TristimulusSpec: spec.TristimulusSpec}
	if ms := spec.MeasurementSpec; ms != nil {
		proj := &measurementSpec{
			MeasurementType:     ms.MeasurementType,
			WavelengthRange:     ms.WavelengthRange,
			LuminanceUnits:      ms.LuminanceUnits,
			CalibrationStandard: ms.CalibrationStandard,
			Device:              ms.Device,
		}
		switch g := ms.Geometry.(type) {
		case cxf.SphereGeometry:
			raw, err := wrap("SphereGeometry", g)
			if err != nil {
				return s, err
			}
			proj.Geometry = raw
		case cxf.DirectionalGeometry:
			raw, err := wrap("DirectionalGeometry", g)
			if err != nil {
				return s, err
			}
			proj.Geometry = raw
		}
		s.MeasurementSpec = proj
	}
	if spec.PhysicalAttributes != nil {
		raw, err := physicalAttributesJSON(spec.PhysicalAttributes)
		if err != nil {
			return s, err
		}
		s.PhysicalAttributes = &raw
	}
	return s, nil
}

func projectProfile(p *cxf.Profile) (profile, error) {
	out := profile{ID: p.ID, Direction: p.Direction, Created: p.Created, Parameters: p.Parameters}
	switch src := p.Source.(type) {
	case cxf.ProfileFile:
		raw, err := wrap("ProfileFile", src)
		if err != nil {
			return out, err
		}
		out.Source = raw
	case cxf.ProfileURI:
		raw, err := wrap("ProfileURI", src)
		if err != nil {
			return out, err
		}
		out.Source = raw
	default:
		return out, fmt.Errorf("codec: profile %q has no source", p.ID)
	}
	return out, nil
}

func unprojectObject(o *object) (cxf.Object, error) {
	obj := cxf.Object{
		ObjectType:   o.ObjectType,
		Name:         o.Name,
		ID:           o.ID,
		GUID:         o.GUID,
		CreationDate: o.CreationDate,
		Comment:      o.Comment,
	}
	if len(o.ColorValues) > 0 {
		cv := &cxf.ColorValues{Values: make([]cxf.ColorValue, 0, len(o.ColorValues))}
		for _, raw := range o.ColorValues {
			v, err := colorValueFromJSON(raw)
			if err != nil {
				return obj, err
			}
			cv.Values = append(cv.Values, v)
		}
		obj.ColorValues = cv
	}
	if len(o.DeviceColorValues) > 0 {
		dv := &cxf.DeviceColorValues{Values: make([]cxf.DeviceColorValue, 0, len(o.DeviceColorValues))}
		for _, raw := range o.DeviceColorValues {
			v, err := deviceColorValueFromJSON(raw)
			if err != nil {
				return obj, err
			}
			dv.Values = append(dv.Values, v)
		}
		obj.DeviceColorValues = dv
	}
	if len(o.ColorDifferenceValues) > 0 {
		cd := &cxf.ColorDifferenceValues{Values: make([]cxf.ColorDifferenceValue, 0, len(o.ColorDifferenceValues))}
		for _, raw := range o.ColorDifferenceValues {
			v, err := colorDifferenceValueFromJSON(raw)
			if err != nil {
				return obj, err
			}
			cd.Values = append(cd.Values, v)
		}
		obj.ColorDifferenceValues = cd
	}
	if len(o.Tags) > 0 {
		obj.TagCollection = &cxf.TagCollection{Tags: o.Tags}
	}
	if o.PhysicalAttributes != nil {
		pa, err := physicalAttributesFromJSON(*o.PhysicalAttributes)
		if err != nil {
			return obj, err
		}
		obj.PhysicalAttributes = pa
	}
	return obj, nil
}

func unprojectSpecification(s *colorSpecification) (cxf.ColorSpecification, error) {
	spec := cxf.ColorSpecification{ID: s.ID, TristimulusSpec: s.TristimulusSpec}
	if ms := s.MeasurementSpec; ms != nil {
		out := &cxf.MeasurementSpec{
			MeasurementType:     ms.MeasurementType,
			WavelengthRange:     ms.WavelengthRange,
			LuminanceUnits:      ms.LuminanceUnits,
			CalibrationStandard: ms.CalibrationStandard,
			Device:              ms.Device,
		}
		if len(ms.Geometry) > 0 {
			g, err := geometryFromJSON(ms.Geometry)
			if err != nil {
				return spec, err
			}
			out.Geometry = g
		}
		spec.MeasurementSpec = out
	}
	if s.PhysicalAttributes != nil {
		pa, err := physicalAttributesFromJSON(*s.PhysicalAttributes)
		if err != nil {
			return spec, err
		}
		spec.PhysicalAttributes = pa
	}
	return spec, nil
}

func unprojectProfile(p *profile) (cxf.Profile, error) {
	out := cxf.Profile{ID: p.ID, Direction: p.Direction, Created: p.Created, Parameters: p.Parameters}
	if len(p.Source) == 0 {
		return out, fmt.Errorf("codec: profile %q has no source", p.ID)
	}
	src, err := profileSourceFromJSON(p.Source)
	if err != nil {
		return out, err
	}
	out.Source = src
	return out, nil
}

// envelope reads just the discriminator off a wrapped variant.
type envelope struct {
	Type string `json:"type"`
}

func kindOf(raw json.RawMessage) (string, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return "", err
	}
	if env.Type == "" {
		return "", fmt.Errorf("codec: missing type discriminator")
	}
	return env.Type, nil
}

func colorValueJSON(v cxf.ColorValue) (json.RawMessage, error) {
	switch v := v.(type) {
	case cxf.ColorCIELab:
		return wrap("ColorCIELab", v)
	case cxf.ColorSRGB:
		return wrap("ColorSRGB", v)
	case cxf.ReflectanceSpectrum:
		return wrap("ReflectanceSpectrum", v.Spectrum)
	case cxf.TransmittanceSpectrum:
		return wrap("TransmittanceSpectrum", v.Spectrum)
	default:
		return nil, fmt.Errorf("codec: unsupported colour value %T", v)
	}
}

func colorValueFromJSON(raw json.RawMessage) (cxf.ColorValue, error) {
	kind, err := kindOf(raw)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "ColorCIELab":
		var v cxf.ColorCIELab
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return v, nil
	case "ColorSRGB":
		var v cxf.ColorSRGB
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return v, nil
	case "ReflectanceSpectrum":
		var s cxf.Spectrum
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		return cxf.ReflectanceSpectrum{Spectrum: s}, nil
	case "TransmittanceSpectrum":
		var s cxf.Spectrum
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		return cxf.TransmittanceSpectrum{Spectrum: s}, nil
	default:
		return nil, fmt.Errorf("codec: unknown colour value type %q", kind)
	}
}

func deviceColorValueJSON(v cxf.DeviceColorValue) (json.RawMessage, error) {
	switch v := v.(type) {
	case cxf.ColorCMYK:
		return wrap("ColorCMYK", v)
	default:
		return nil, fmt.Errorf("codec: unsupported device colour value %T", v)
	}
}

func deviceColorValueFromJSON(raw json.RawMessage) (cxf.DeviceColorValue, error) {
	kind, err := kindOf(raw)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "ColorCMYK":
		var v cxf.ColorCMYK
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, fmt.Errorf("codec: unknown device colour value type %q", kind)
	}
}

func colorDifferenceValueJSON(v cxf.ColorDifferenceValue) (json.RawMessage, error) {
	switch v := v.(type) {
	case cxf.ColorCIEDeltaE1976:
		return wrap("ColorCIEDeltaE1976", v)
	case cxf.ColorCIEDE2000:
		return wrap("ColorCIEDE2000", v)
	default:
		return nil, fmt.Errorf("codec: unsupported delta-colour value %T", v)
	}
}

func colorDifferenceValueFromJSON(raw json.RawMessage) (cxf.ColorDifferenceValue, error) {
	kind, err := kindOf(raw)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "ColorCIEDeltaE1976":
		var v cxf.ColorCIEDeltaE1976
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return v, nil
	case "ColorCIEDE2000":
		var v cxf.ColorCIEDE2000
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, fmt.Errorf("codec: unknown delta-colour value type %q", kind)
	}
}

func geometryFromJSON(raw json.RawMessage) (cxf.Geometry, error) {
	kind, err := kindOf(raw)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "SphereGeometry":
		var g cxf.SphereGeometry
		if err := json.Unmarshal(raw, &g); err != nil {
			return nil, err
		}
		return g, nil
	case "DirectionalGeometry":
		var g cxf.DirectionalGeometry
		if err := json.Unmarshal(raw, &g); err != nil {
			return nil, err
		}
		return g, nil
	default:
		return nil, fmt.Errorf("codec: unknown geometry type %q", kind)
	}
}

func profileSourceFromJSON(raw json.RawMessage) (cxf.ProfileSource, error) {
	kind, err := kindOf(raw)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "ProfileFile":
		var s cxf.ProfileFile
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		return s, nil
	case "ProfileURI":
		var s cxf.ProfileURI
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("codec: unknown profile source type %q", kind)
	}
}

func imageSourceFromJSON(raw json.RawMessage) (cxf.ImageSource, error) {
	kind, err := kindOf(raw)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "Data":
		var s cxf.ImageData
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		return s, nil
	case "Uri":
		var s cxf.ImageURI
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("codec: unknown image source type %q", kind)
	}
}

type physicalAttributes struct {
	TargetType    cxf.TargetType    `json:"targetType,omitempty"`
	FinishType    cxf.FinishType    `json:"finishType,omitempty"`
	SubstrateType cxf.SubstrateType `json:"substrateType,omitempty"`

	Quantity  *cxf.Measurement `json:"quantity,omitempty"`
	Width     *cxf.Measurement `json:"width,omitempty"`
	Length    *cxf.Measurement `json:"length,omitempty"`
	Height    *cxf.Measurement `json:"height,omitempty"`
	Thickness *cxf.Measurement `json:"thickness,omitempty"`

	Gloss   *cxf.MethodValue `json:"gloss,omitempty"`
	Opacity *cxf.MethodValue `json:"opacity,omitempty"`

	CustomAttributes []cxf.CustomAttribute `json:"customAttributes,omitempty"`
	Image            *image                `json:"image,omitempty"`
}

type image struct {
	MimeType string          `json:"mimeType,omitempty"`
	Source   json.RawMessage `json:"source"`
}

func physicalAttributesJSON(pa *cxf.PhysicalAttributes) (json.RawMessage, error) {
	proj := physicalAttributes{
		TargetType:       pa.TargetType,
		FinishType:       pa.FinishType,
		SubstrateType:    pa.SubstrateType,
		Quantity:         pa.Quantity,
		Width:            pa.Width,
		Length:           pa.Length,
		Height:           pa.Height,
		Thickness:        pa.Thickness,
		Gloss:            pa.Gloss,
		Opacity:          pa.Opacity,
		CustomAttributes: pa.CustomAttributes,
	}
	if img := pa.Image; img != nil {
		proj.Image = &image{MimeType: img.MimeType}
		switch src := img.Source.(type) {
		case cxf.ImageData:
			raw, err := wrap("Data", src)
			if err != nil {
				return nil, err
			}
			proj.Image.Source = raw
		case cxf.ImageURI:
			raw, err := wrap("Uri", src)
			if err != nil {
				return nil, err
			}
			proj.Image.Source = raw
		default:
			return nil, fmt.Errorf("codec: image has no source")
		}
	}
	return json.Marshal(proj)
}

func physicalAttributesFromJSON(raw json.RawMessage) (*cxf.PhysicalAttributes, error) {
	var proj physicalAttributes
	if err := json.Unmarshal(raw, &proj); err != nil {
		return nil, err
	}
	pa := &cxf.PhysicalAttributes{
		TargetType:       proj.TargetType,
		FinishType:       proj.FinishType,
		SubstrateType:    proj.SubstrateType,
		Quantity:         proj.Quantity,
		Width:            proj.Width,
		Length:           proj.Length,
		Height:           proj.Height,
		Thickness:        proj.Thickness,
		Gloss:            proj.Gloss,
		Opacity:          proj.Opacity,
		CustomAttributes: proj.CustomAttributes,
	}
	if img := proj.Image; img != nil {
		out := &cxf.Image{MimeType: img.MimeType}
		if len(img.Source) == 0 || string(img.Source) == "null" {
			return nil, fmt.Errorf("codec: image has no source")
		}
		src, err := imageSourceFromJSON(img.Source)
		if err != nil {
			return nil, err
		}
		out.Source = src
		pa.Image = out
	}
	return pa, nil
}

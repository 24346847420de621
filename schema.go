package cxf

// The CxF3 content model, spelled out as fixed tables. Child order is a
// property of the schema, not of the in-memory graph: the validator checks
// incoming documents against these slots and the encoder emits in the same
// order.

// slot is one position in an element's child sequence. names lists the
// admissible element names at that position (more than one for choice
// groups), required marks minOccurs=1 and repeat marks maxOccurs=unbounded.
type slot struct {
	names    []string
	required bool
	repeat   bool
}

func one(name string) slot         { return slot{names: []string{name}} }
func need(name string) slot        { return slot{names: []string{name}, required: true} }
func many(names ...string) slot    { return slot{names: names, repeat: true} }
func choice(names ...string) slot  { return slot{names: names} }
func needChoice(n ...string) slot  { return slot{names: n, required: true} }

// contentModel maps each CxF element with child elements to its schema-ordered
// slot sequence. Elements not present here are leaves (text content only).
var contentModel = map[string][]slot{
	"CxF":             {one("FileInformation"), one("Resources"), one("CustomResources")},
	"FileInformation": {one("Creator"), one("CreationDate"), one("Description"), one("Comment"), many("Tag")},
	"Resources":       {one("ObjectCollection"), one("ColorSpecificationCollection"), one("ProfileCollection")},

	"ObjectCollection": {many("Object")},
	"Object": {
		need("CreationDate"), one("Comment"), one("ColorValues"), one("DeviceColorValues"),
		one("ColorDifferenceValues"), one("TagCollection"), one("PhysicalAttributes"),
	},
	"ColorValues":           {many("ColorCIELab", "ColorSRGB", "ReflectanceSpectrum", "TransmittanceSpectrum")},
	"DeviceColorValues":     {many("ColorCMYK")},
	"ColorDifferenceValues": {many("ColorCIEDeltaE1976", "ColorCIEDE2000")},
	"TagCollection":         {many("Tag")},

	"ColorCIELab":           {need("L"), need("A"), need("B")},
	"ColorSRGB":             {need("R"), need("G"), need("B")},
	"ReflectanceSpectrum":   {need("Value")},
	"TransmittanceSpectrum": {need("Value")},
	"ColorCMYK":             {need("C"), need("M"), need("Y"), need("K"), one("DeviceClass")},
	"ColorCIEDeltaE1976":    {need("Value")},
	"ColorCIEDE2000":        {need("Value")},

	"ColorSpecificationCollection": {many("ColorSpecification")},
	"ColorSpecification":           {one("TristimulusSpec"), one("MeasurementSpec"), one("PhysicalAttributes")},
	"TristimulusSpec":              {need("Illuminant"), one("CustomIlluminant"), need("Observer"), one("Method")},
	"MeasurementSpec": {
		one("MeasurementType"), choice("SphereGeometry", "DirectionalGeometry"),
		one("WavelengthRange"), one("LuminanceUnits"), one("CalibrationStandard"), one("Device"),
	},
	"SphereGeometry":      {need("SphereType")},
	"DirectionalGeometry": {need("IlluminationAngle"), need("MeasurementAngle")},
	"WavelengthRange":     {},
	"Device":              {one("Manufacturer"), one("Model"), one("SerialNumber")},

	"ProfileCollection": {many("Profile")},
	"Profile":           {needChoice("ProfileFile", "ProfileURI"), many("Parameter")},

	"PhysicalAttributes": {
		one("TargetType"), one("FinishType"), one("SubstrateType"),
		one("Quantity"), one("Width"), one("Length"), one("Height"), one("Thickness"),
		one("Gloss"), one("Opacity"), many("CustomAttribute"), one("Image"),
	},
	"Image": {needChoice("Data", "Uri")},

	// Attribute-only leaves. Listed so text content inside them is rejected.
	"Tag":             {},
	"Parameter":       {},
	"CustomAttribute": {},
}

// attrSpec lists the attributes an element admits.
type attrSpec struct {
	required []string
	optional []string
}

// attrModel maps each CxF element to its attribute spec. Elements not present
// admit no attributes at all.
var attrModel = map[string]attrSpec{
	"Object":             {required: []string{"ObjectType", "Name", "Id"}, optional: []string{"GUID"}},
	"Tag":                {required: []string{"Name"}, optional: []string{"Value"}},
	"ColorSpecification": {required: []string{"Id"}},
	"Profile":            {required: []string{"Id", "Direction"}, optional: []string{"Created"}},
	"Parameter":          {required: []string{"Name"}, optional: []string{"Value"}},
	"CustomAttribute":    {required: []string{"Name"}, optional: []string{"Value"}},
	"WavelengthRange":    {required: []string{"StartWL", "Increment"}},
	"Image":              {optional: []string{"MimeType"}},

	"ColorCIELab":        {optional: []string{"Name", "ColorSpecification"}},
	"ColorSRGB":          {optional: []string{"Name", "ColorSpecification"}},
	"ColorCMYK":          {optional: []string{"Name", "ColorSpecification"}},
	"ColorCIEDeltaE1976": {optional: []string{"Name", "ColorSpecification"}},
	"ColorCIEDE2000":     {optional: []string{"Name", "ColorSpecification"}},
	"ReflectanceSpectrum": {
		required: []string{"StartWL"},
		optional: []string{"EndWL", "Increment", "MeasureDate", "Name", "ColorSpecification"},
	},
	"TransmittanceSpectrum": {
		required: []string{"StartWL"},
		optional: []string{"EndWL", "Increment", "MeasureDate", "Name", "ColorSpecification"},
	},

	"Quantity":  {optional: []string{"Unit"}},
	"Width":     {optional: []string{"Unit"}},
	"Length":    {optional: []string{"Unit"}},
	"Height":    {optional: []string{"Unit"}},
	"Thickness": {optional: []string{"Unit"}},
	"Gloss":     {optional: []string{"Method"}},
	"Opacity":   {optional: []string{"Method"}},
}

func (s attrSpec) admits(name string) bool {
	for _, a := range s.required {
		if a == name {
			return true
		}
	}
	for _, a := range s.optional {
		if a == name {
			return true
		}
	}
	return false
}

// ---- value rules (scalar kinds, enum domains, numeric bounds) ----

type valueKind int

const (
	kindText valueKind = iota
	kindNonEmptyText
	kindFloat
	kindFloatList
	kindDateTime
	kindBase64
	kindGUID
	kindEnum
)

// valueRule constrains one scalar position. min/max bound kindFloat values
// (and every entry of a kindFloatList when set); minExclusive turns min into
// a strict bound. enum is the domain membership test for kindEnum.
type valueRule struct {
	kind         valueKind
	min, max     *float64
	minExclusive bool
	enum         func(string) bool
	enumName     string
}

func f(v float64) *float64 { return &v }

func enumRule(name string, valid func(string) bool) valueRule {
	return valueRule{kind: kindEnum, enum: valid, enumName: name}
}

// elementValueRules is keyed by "Parent/Child" because a few leaf names
// (Value, CreationDate, Comment) mean different things in different parents.
var elementValueRules = map[string]valueRule{
	"FileInformation/Creator":      {kind: kindText},
	"FileInformation/CreationDate": {kind: kindDateTime},
	"FileInformation/Description":  {kind: kindText},
	"FileInformation/Comment":      {kind: kindText},
	"Object/CreationDate":          {kind: kindDateTime},
	"Object/Comment":               {kind: kindText},

	"ColorCIELab/L": {kind: kindFloat},
	"ColorCIELab/A": {kind: kindFloat},
	"ColorCIELab/B": {kind: kindFloat},

	"ColorSRGB/R": {kind: kindFloat, min: f(SRGBMin), max: f(SRGBMax)},
	"ColorSRGB/G": {kind: kindFloat, min: f(SRGBMin), max: f(SRGBMax)},
	"ColorSRGB/B": {kind: kindFloat, min: f(SRGBMin), max: f(SRGBMax)},

	"ColorCMYK/C":           {kind: kindFloat, min: f(CMYKMin), max: f(CMYKMax)},
	"ColorCMYK/M":           {kind: kindFloat, min: f(CMYKMin), max: f(CMYKMax)},
	"ColorCMYK/Y":           {kind: kindFloat, min: f(CMYKMin), max: f(CMYKMax)},
	"ColorCMYK/K":           {kind: kindFloat, min: f(CMYKMin), max: f(CMYKMax)},
	"ColorCMYK/DeviceClass": enumRule("DeviceClass", func(s string) bool { return DeviceClass(s).Valid() }),

	"ReflectanceSpectrum/Value":   {kind: kindFloatList},
	"TransmittanceSpectrum/Value": {kind: kindFloatList},

	"ColorCIEDeltaE1976/Value": {kind: kindFloat, min: f(0)},
	"ColorCIEDE2000/Value":     {kind: kindFloat, min: f(0)},

	"TristimulusSpec/Illuminant":       enumRule("Illuminant", func(s string) bool { return Illuminant(s).Valid() }),
	"TristimulusSpec/CustomIlluminant": {kind: kindText},
	"TristimulusSpec/Observer":         enumRule("Observer", func(s string) bool { return Observer(s).Valid() }),
	"TristimulusSpec/Method":           enumRule("Method", func(s string) bool { return Method(s).Valid() }),

	"MeasurementSpec/MeasurementType":     enumRule("MeasurementType", func(s string) bool { return MeasurementType(s).Valid() }),
	"MeasurementSpec/LuminanceUnits":      enumRule("LuminanceUnits", func(s string) bool { return LuminanceUnits(s).Valid() }),
	"MeasurementSpec/CalibrationStandard": enumRule("CalibrationStandard", func(s string) bool { return CalibrationStandard(s).Valid() }),
	"SphereGeometry/SphereType":           enumRule("SphereType", func(s string) bool { return SphereType(s).Valid() }),
	"DirectionalGeometry/IlluminationAngle": {kind: kindFloat},
	"DirectionalGeometry/MeasurementAngle":  {kind: kindFloat},
	"Device/Manufacturer":                   {kind: kindText},
	"Device/Model":                          {kind: kindText},
	"Device/SerialNumber":                   {kind: kindText},

	"Profile/ProfileFile": {kind: kindNonEmptyText},
	"Profile/ProfileURI":  {kind: kindNonEmptyText},

	"PhysicalAttributes/TargetType":    enumRule("TargetType", func(s string) bool { return TargetType(s).Valid() }),
	"PhysicalAttributes/FinishType":    enumRule("FinishType", func(s string) bool { return FinishType(s).Valid() }),
	"PhysicalAttributes/SubstrateType": enumRule("SubstrateType", func(s string) bool { return SubstrateType(s).Valid() }),
	"PhysicalAttributes/Quantity":      {kind: kindFloat, min: f(0)},
	"PhysicalAttributes/Width":         {kind: kindFloat, min: f(0)},
	"PhysicalAttributes/Length":        {kind: kindFloat, min: f(0)},
	"PhysicalAttributes/Height":        {kind: kindFloat, min: f(0)},
	"PhysicalAttributes/Thickness":     {kind: kindFloat, min: f(0)},
	"PhysicalAttributes/Gloss":         {kind: kindFloat, min: f(0)},
	"PhysicalAttributes/Opacity":       {kind: kindFloat, min: f(0)},
	"Image/Data":                       {kind: kindBase64},
	"Image/Uri":                        {kind: kindNonEmptyText},
}

// attrValueRules is keyed by "Element/@Attr". Required attributes are also
// non-empty; the empty-string check lives with the structural pass.
var attrValueRules = map[string]valueRule{
	"Object/@ObjectType": {kind: kindNonEmptyText},
	"Object/@Name":       {kind: kindNonEmptyText},
	"Object/@Id":         {kind: kindNonEmptyText},
	"Object/@GUID":       {kind: kindGUID},

	"ColorSpecification/@Id": {kind: kindNonEmptyText},

	"Profile/@Id":        {kind: kindNonEmptyText},
	"Profile/@Direction": enumRule("Direction", func(s string) bool { return ProfileDirection(s).Valid() }),
	"Profile/@Created":   {kind: kindDateTime},

	"ReflectanceSpectrum/@StartWL":       {kind: kindFloat, min: f(MinWavelengthNM), max: f(MaxWavelengthNM)},
	"ReflectanceSpectrum/@EndWL":         {kind: kindFloat, min: f(MinWavelengthNM), max: f(MaxWavelengthNM)},
	"ReflectanceSpectrum/@Increment":     {kind: kindFloat, min: f(0), minExclusive: true},
	"ReflectanceSpectrum/@MeasureDate":   {kind: kindDateTime},
	"TransmittanceSpectrum/@StartWL":     {kind: kindFloat, min: f(MinWavelengthNM), max: f(MaxWavelengthNM)},
	"TransmittanceSpectrum/@EndWL":       {kind: kindFloat, min: f(MinWavelengthNM), max: f(MaxWavelengthNM)},
	"TransmittanceSpectrum/@Increment":   {kind: kindFloat, min: f(0), minExclusive: true},
	"TransmittanceSpectrum/@MeasureDate": {kind: kindDateTime},

	"WavelengthRange/@StartWL":   {kind: kindFloat, min: f(MinWavelengthNM), max: f(MaxWavelengthNM)},
	"WavelengthRange/@Increment": {kind: kindFloat, min: f(0), minExclusive: true},

	"Tag/@Name":             {kind: kindNonEmptyText},
	"Parameter/@Name":       {kind: kindNonEmptyText},
	"CustomAttribute/@Name": {kind: kindNonEmptyText},
}

package cxf

// Numeric bounds the schema puts on colour and spectral values.
const (
	SRGBMin = 0.0
	SRGBMax = 255.0
	CMYKMin = 0.0
	CMYKMax = 100.0

	// Physically plausible wavelength window for spectral data, in nanometres.
	MinWavelengthNM = 100.0
	MaxWavelengthNM = 25000.0
)

// ColorValues is an ordered sequence of colour-value variants. The variant set
// is closed: ColorCIELab, ColorSRGB, ReflectanceSpectrum and
// TransmittanceSpectrum. Order among the sequence is preserved.
type ColorValues struct {
	Values []ColorValue `json:"values"`
}

// ColorValue is the closed variant set admissible inside ColorValues. Variants
// are dispatched by element tag name at decode time and by concrete type at
// encode time.
type ColorValue interface {
	colorValue()
}

// ColorCIELab is a CIE 1976 L*a*b* value.
type ColorCIELab struct {
	Name               string `json:"name,omitempty"`
	ColorSpecification string `json:"colorSpecification,omitempty"`

	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

func (ColorCIELab) colorValue() {}

// ColorSRGB is an sRGB value; channels are schema-bounded to [0,255].
type ColorSRGB struct {
	Name               string `json:"name,omitempty"`
	ColorSpecification string `json:"colorSpecification,omitempty"`

	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

func (ColorSRGB) colorValue() {}

// Spectrum is the shared shape of reflectance and transmittance spectra.
// Samples are stored in measurement order; on the wire they are a single
// whitespace-delimited text block. StartWL must lie inside the plausible
// wavelength window, EndWL (when present) must not precede it, and Increment
// (when present) must be strictly positive.
type Spectrum struct {
	Name               string `json:"name,omitempty"`
	ColorSpecification string `json:"colorSpecification,omitempty"`

	StartWL     float64   `json:"startWL"`
	EndWL       *float64  `json:"endWL,omitempty"`
	Increment   *float64  `json:"increment,omitempty"`
	MeasureDate *DateTime `json:"measureDate,omitempty"`

	Values []float64 `json:"values"`
}

// ReflectanceSpectrum is a reflectance factor spectrum.
type ReflectanceSpectrum struct {
	Spectrum
}

func (ReflectanceSpectrum) colorValue() {}

// TransmittanceSpectrum is a transmittance factor spectrum.
type TransmittanceSpectrum struct {
	Spectrum
}

func (TransmittanceSpectrum) colorValue() {}

// DeviceColorValues is an ordered sequence of device-dependent colour values.
type DeviceColorValues struct {
	Values []DeviceColorValue `json:"values"`
}

// DeviceColorValue is the closed variant set admissible inside
// DeviceColorValues.
type DeviceColorValue interface {
	deviceColorValue()
}

// ColorCMYK is a process-ink value; channels are schema-bounded to [0,100].
type ColorCMYK struct {
	Name               string      `json:"name,omitempty"`
	ColorSpecification string      `json:"colorSpecification,omitempty"`
	DeviceClass        DeviceClass `json:"deviceClass,omitempty"`

	C float64 `json:"c"`
	M float64 `json:"m"`
	Y float64 `json:"y"`
	K float64 `json:"k"`
}

func (ColorCMYK) deviceColorValue() {}

// ColorDifferenceValues is an ordered sequence of delta-colour values.
type ColorDifferenceValues struct {
	Values []ColorDifferenceValue `json:"values"`
}

// ColorDifferenceValue is the closed variant set admissible inside
// ColorDifferenceValues. Delta values reference the ColorSpecification their
// difference was computed under.
type ColorDifferenceValue interface {
	colorDifferenceValue()
}

// ColorCIEDeltaE1976 is a CIE 1976 ΔE*ab difference.
type ColorCIEDeltaE1976 struct {
	Name               string `json:"name,omitempty"`
	ColorSpecification string `json:"colorSpecification,omitempty"`

	Value float64 `json:"value"`
}

func (ColorCIEDeltaE1976) colorDifferenceValue() {}

// ColorCIEDE2000 is a CIEDE2000 difference.
type ColorCIEDE2000 struct {
	Name               string `json:"name,omitempty"`
	ColorSpecification string `json:"colorSpecification,omitempty"`

	Value float64 `json:"value"`
}

func (ColorCIEDE2000) colorDifferenceValue() {}

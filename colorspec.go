package cxf

// ColorSpecification declares the measurement and observation conditions a
// colour value was produced under. Its Id is the key colour values reference
// through their ColorSpecification attribute; every reference in a document
// must resolve to a declared Id.
type ColorSpecification struct {
	ID string `json:"id"`

	TristimulusSpec    *TristimulusSpec    `json:"tristimulusSpec,omitempty"`
	MeasurementSpec    *MeasurementSpec    `json:"measurementSpec,omitempty"`
	PhysicalAttributes *PhysicalAttributes `json:"physicalAttributes,omitempty"`
}

// TristimulusSpec fixes illuminant and observer for colorimetric values.
// Illuminant and Observer are required; CustomIlluminant names the spectral
// power distribution when Illuminant is Custom.
type TristimulusSpec struct {
	Illuminant       Illuminant `json:"illuminant"`
	CustomIlluminant string     `json:"customIlluminant,omitempty"`
	Observer         Observer   `json:"observer"`
	Method           Method     `json:"method,omitempty"`
}

// MeasurementSpec describes how spectral or colorimetric data was measured.
// All fields are optional; Geometry is a closed two-variant choice.
type MeasurementSpec struct {
	MeasurementType     MeasurementType     `json:"measurementType,omitempty"`
	Geometry            Geometry            `json:"geometry,omitempty"`
	WavelengthRange     *WavelengthRange    `json:"wavelengthRange,omitempty"`
	LuminanceUnits      LuminanceUnits      `json:"luminanceUnits,omitempty"`
	CalibrationStandard CalibrationStandard `json:"calibrationStandard,omitempty"`
	Device              *Device             `json:"device,omitempty"`
}

// Geometry is the closed variant set of measurement geometries: integrating
// sphere or directional.
type Geometry interface {
	geometry()
}

// SphereGeometry is integrating-sphere geometry (d/8 and friends).
type SphereGeometry struct {
	SphereType SphereType `json:"sphereType"`
}

func (SphereGeometry) geometry() {}

// DirectionalGeometry is bidirectional geometry given by its illumination and
// measurement angles in degrees.
type DirectionalGeometry struct {
	IlluminationAngle float64 `json:"illuminationAngle"`
	MeasurementAngle  float64 `json:"measurementAngle"`
}

func (DirectionalGeometry) geometry() {}

// WavelengthRange is the sampling grid of a measuring device: first sampled
// wavelength and sampling increment, both in nanometres.
type WavelengthRange struct {
	StartWL   float64 `json:"startWL"`
	Increment float64 `json:"increment"`
}

// Device identifies the measuring instrument.
type Device struct {
	Manufacturer string `json:"manufacturer,omitempty"`
	Model        string `json:"model,omitempty"`
	SerialNumber string `json:"serialNumber,omitempty"`
}

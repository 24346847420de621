package cxf

// Enumerated domains. Each type is a closed string domain; Valid reports
// membership. Values outside the domain are a DomainViolation, never a silent
// default.

// Illuminant is the standard illuminant of a tristimulus specification.
type Illuminant string

const (
	IlluminantA      Illuminant = "A"
	IlluminantC      Illuminant = "C"
	IlluminantD50    Illuminant = "D50"
	IlluminantD55    Illuminant = "D55"
	IlluminantD65    Illuminant = "D65"
	IlluminantD75    Illuminant = "D75"
	IlluminantF2     Illuminant = "F2"
	IlluminantF7     Illuminant = "F7"
	IlluminantF11    Illuminant = "F11"
	IlluminantE      Illuminant = "E"
	IlluminantCustom Illuminant = "Custom"
)

func (v Illuminant) Valid() bool {
	switch v {
	case IlluminantA, IlluminantC, IlluminantD50, IlluminantD55, IlluminantD65,
		IlluminantD75, IlluminantF2, IlluminantF7, IlluminantF11, IlluminantE,
		IlluminantCustom:
		return true
	}
	return false
}

// Observer is the standard colorimetric observer (degrees of visual field).
type Observer string

const (
	Observer2  Observer = "2"
	Observer10 Observer = "10"
)

func (v Observer) Valid() bool { return v == Observer2 || v == Observer10 }

// Method selects the ASTM E308 weighting table used to compute tristimulus
// values from spectral data.
type Method string

const (
	MethodE308Table5 Method = "E308_Table5"
	MethodE308Table6 Method = "E308_Table6"
)

func (v Method) Valid() bool { return v == MethodE308Table5 || v == MethodE308Table6 }

// MeasurementType describes what a measurement specification measured.
type MeasurementType string

const (
	MeasurementSpectrumReflectance       MeasurementType = "Spectrum_Reflectance"
	MeasurementSpectrumTransmittance     MeasurementType = "Spectrum_Transmittance"
	MeasurementColorimetricReflectance   MeasurementType = "Colorimetric_Reflectance"
	MeasurementColorimetricTransmittance MeasurementType = "Colorimetric_Transmittance"
	MeasurementColorimetricEmission      MeasurementType = "Colorimetric_Emission"
)

func (v MeasurementType) Valid() bool {
	switch v {
	case MeasurementSpectrumReflectance, MeasurementSpectrumTransmittance,
		MeasurementColorimetricReflectance, MeasurementColorimetricTransmittance,
		MeasurementColorimetricEmission:
		return true
	}
	return false
}

// SphereType distinguishes specular-included from specular-excluded sphere
// geometry.
type SphereType string

const (
	SphereSPIN SphereType = "SPIN"
	SphereSPEX SphereType = "SPEX"
)

func (v SphereType) Valid() bool { return v == SphereSPIN || v == SphereSPEX }

// LuminanceUnits is the unit of emissive measurements.
type LuminanceUnits string

const (
	LuminanceCandelaM2   LuminanceUnits = "candela_m2"
	LuminanceFootLambert LuminanceUnits = "foot_lambert"
	LuminanceLux         LuminanceUnits = "lux"
)

func (v LuminanceUnits) Valid() bool {
	switch v {
	case LuminanceCandelaM2, LuminanceFootLambert, LuminanceLux:
		return true
	}
	return false
}

// CalibrationStandard names the reflectance calibration standard of the
// measuring device.
type CalibrationStandard string

const (
	CalibrationXRGA  CalibrationStandard = "XRGA"
	CalibrationGMDI  CalibrationStandard = "GMDI"
	CalibrationXRDI  CalibrationStandard = "XRDI"
	CalibrationOther CalibrationStandard = "Other"
)

func (v CalibrationStandard) Valid() bool {
	switch v {
	case CalibrationXRGA, CalibrationGMDI, CalibrationXRDI, CalibrationOther:
		return true
	}
	return false
}

// DeviceClass is the class of device a device-dependent colour was produced
// for or measured with.
type DeviceClass string

const (
	DeviceSpectrophotometer  DeviceClass = "Spectrophotometer"
	DeviceSpectrocolorimeter DeviceClass = "Spectrocolorimeter"
	DeviceColorimeter        DeviceClass = "Colorimeter"
	DeviceDensitometer       DeviceClass = "Densitometer"
	DeviceCamera             DeviceClass = "Camera"
	DeviceOther              DeviceClass = "Other"
)

func (v DeviceClass) Valid() bool {
	switch v {
	case DeviceSpectrophotometer, DeviceSpectrocolorimeter, DeviceColorimeter,
		DeviceDensitometer, DeviceCamera, DeviceOther:
		return true
	}
	return false
}

// ProfileDirection states whether an ICC profile applies to input, output or
// both.
type ProfileDirection string

const (
	DirectionInput  ProfileDirection = "Input"
	DirectionOutput ProfileDirection = "Output"
	DirectionBoth   ProfileDirection = "Both"
)

func (v ProfileDirection) Valid() bool {
	return v == DirectionInput || v == DirectionOutput || v == DirectionBoth
}

// TargetType classifies the physical object a measurement was taken from.
type TargetType string

const (
	TargetReference  TargetType = "Reference"
	TargetSample     TargetType = "Sample"
	TargetProof      TargetType = "Proof"
	TargetProduction TargetType = "Production"
	TargetOther      TargetType = "Other"
)

func (v TargetType) Valid() bool {
	switch v {
	case TargetReference, TargetSample, TargetProof, TargetProduction, TargetOther:
		return true
	}
	return false
}

// FinishType is the surface finish of the measured object.
type FinishType string

const (
	FinishCoated   FinishType = "Coated"
	FinishUncoated FinishType = "Uncoated"
	FinishMatte    FinishType = "Matte"
	FinishPolished FinishType = "Polished"
	FinishGlossy   FinishType = "Glossy"
	FinishSatin    FinishType = "Satin"
	FinishOther    FinishType = "Other"
)

func (v FinishType) Valid() bool {
	switch v {
	case FinishCoated, FinishUncoated, FinishMatte, FinishPolished,
		FinishGlossy, FinishSatin, FinishOther:
		return true
	}
	return false
}

// SubstrateType is the carrier material of the measured object.
type SubstrateType string

const (
	SubstratePaper     SubstrateType = "Paper"
	SubstrateCardboard SubstrateType = "Cardboard"
	SubstratePlastic   SubstrateType = "Plastic"
	SubstrateMetal     SubstrateType = "Metal"
	SubstrateGlass     SubstrateType = "Glass"
	SubstrateTextile   SubstrateType = "Textile"
	SubstrateCeramic   SubstrateType = "Ceramic"
	SubstrateOther     SubstrateType = "Other"
)

func (v SubstrateType) Valid() bool {
	switch v {
	case SubstratePaper, SubstrateCardboard, SubstratePlastic, SubstrateMetal,
		SubstrateGlass, SubstrateTextile, SubstrateCeramic, SubstrateOther:
		return true
	}
	return false
}

package cxf

// PhysicalAttributes describes the physical carrier of a measurement: target
// classification, surface finish, substrate, dimensions and an optional
// embedded image. Every field is optional.
type PhysicalAttributes struct {
	TargetType    TargetType    `json:"targetType,omitempty"`
	FinishType    FinishType    `json:"finishType,omitempty"`
	SubstrateType SubstrateType `json:"substrateType,omitempty"`

	Quantity  *Measurement `json:"quantity,omitempty"`
	Width     *Measurement `json:"width,omitempty"`
	Length    *Measurement `json:"length,omitempty"`
	Height    *Measurement `json:"height,omitempty"`
	Thickness *Measurement `json:"thickness,omitempty"`

	Gloss   *MethodValue `json:"gloss,omitempty"`
	Opacity *MethodValue `json:"opacity,omitempty"`

	CustomAttributes []CustomAttribute `json:"customAttributes,omitempty"`
	Image            *Image            `json:"image,omitempty"`
}

// Measurement is a non-negative magnitude with its unit (for example
// 210 "mm").
type Measurement struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit,omitempty"`
}

// MethodValue is a non-negative magnitude qualified by the measurement method
// that produced it (gloss and opacity use this shape).
type MethodValue struct {
	Value  float64 `json:"value"`
	Method string  `json:"method,omitempty"`
}

// CustomAttribute is a free-form name/value extension.
type CustomAttribute struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

// Image is an embedded image payload, either inline base64 data or a URI; the
// two are a mutually exclusive choice.
type Image struct {
	MimeType string      `json:"mimeType,omitempty"`
	Source   ImageSource `json:"source"`
}

// ImageSource is the closed image-location choice.
type ImageSource interface {
	imageSource()
}

// ImageData is inline image bytes (base64 on the wire).
type ImageData struct {
	Data []byte `json:"data"`
}

func (ImageData) imageSource() {}

// ImageURI locates the image by URI.
type ImageURI struct {
	URI string `json:"uri"`
}

func (ImageURI) imageSource() {}

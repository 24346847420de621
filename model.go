package cxf

// Namespace is the CxF3 core namespace every conformant document declares on
// its root element.
const Namespace = "http://colorexchangeformat.com/CxF3-core"

// Document is the root of a CxF3 object graph (the CxF element). All three
// sections are optional; a nil pointer is the absent state and round-trips as
// no element at all.
type Document struct {
	FileInformation *FileInformation `json:"fileInformation,omitempty"`
	Resources       *Resources       `json:"resources,omitempty"`
	CustomResources *CustomResources `json:"customResources,omitempty"`
}

// FileInformation carries document-level provenance metadata. Every field is
// optional; Tags preserves order and permits duplicate names.
type FileInformation struct {
	Creator      string    `json:"creator,omitempty"`
	CreationDate *DateTime `json:"creationDate,omitempty"`
	Description  string    `json:"description,omitempty"`
	Comment      string    `json:"comment,omitempty"`
	Tags         []Tag     `json:"tags,omitempty"`
}

// Tag is a name/value annotation pair.
type Tag struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

// Resources groups the three top-level collections. For each collection a nil
// pointer means the element is absent, while a pointer to an empty collection
// means an empty container element; the two states are distinct and both
// round-trip.
type Resources struct {
	ObjectCollection             *ObjectCollection             `json:"objectCollection,omitempty"`
	ColorSpecificationCollection *ColorSpecificationCollection `json:"colorSpecificationCollection,omitempty"`
	ProfileCollection            *ProfileCollection            `json:"profileCollection,omitempty"`
}

// ObjectCollection is an ordered sequence of measured or reference objects.
type ObjectCollection struct {
	Objects []Object `json:"objects"`
}

// ColorSpecificationCollection is an ordered sequence of colour
// specifications, keyed by their unique Id.
type ColorSpecificationCollection struct {
	Specifications []ColorSpecification `json:"specifications"`
}

// ProfileCollection is an ordered sequence of ICC profile references.
type ProfileCollection struct {
	Profiles []Profile `json:"profiles"`
}

// Object is a single colour target, sample or patch. ObjectType, Name, ID and
// CreationDate are required; ID must be unique across the document's objects.
// GUID, when present, must be an RFC 4122 UUID.
type Object struct {
	ObjectType   string   `json:"objectType"`
	Name         string   `json:"name"`
	ID           string   `json:"id"`
	GUID         string   `json:"guid,omitempty"`
	CreationDate DateTime `json:"creationDate"`

	Comment               string                 `json:"comment,omitempty"`
	ColorValues           *ColorValues           `json:"colorValues,omitempty"`
	DeviceColorValues     *DeviceColorValues     `json:"deviceColorValues,omitempty"`
	ColorDifferenceValues *ColorDifferenceValues `json:"colorDifferenceValues,omitempty"`
	TagCollection         *TagCollection         `json:"tagCollection,omitempty"`
	PhysicalAttributes    *PhysicalAttributes    `json:"physicalAttributes,omitempty"`
}

// TagCollection is an ordered sequence of tags attached to an Object.
type TagCollection struct {
	Tags []Tag `json:"tags"`
}

// CustomResources is an opaque payload of foreign-namespace elements. It is
// preserved verbatim on round-trip and never interpreted.
type CustomResources struct {
	Elements []ForeignElement `json:"elements"`
}

// ForeignElement is one element of a foreign-namespace subtree.
type ForeignElement struct {
	Space    string           `json:"space"`
	Local    string           `json:"local"`
	Attrs    []ForeignAttr    `json:"attrs,omitempty"`
	Children []ForeignElement `json:"children,omitempty"`
	Text     string           `json:"text,omitempty"`
}

// ForeignAttr is an attribute on a foreign element.
type ForeignAttr struct {
	Space string `json:"space,omitempty"`
	Local string `json:"local"`
	Value string `json:"value"`
}

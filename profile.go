package cxf

// Profile references an ICC profile by embedded file path or by URI; the two
// are a mutually exclusive choice and exactly one must be present.
type Profile struct {
	ID        string           `json:"id"`
	Direction ProfileDirection `json:"direction"`
	Created   *DateTime        `json:"created,omitempty"`

	Source     ProfileSource      `json:"source"`
	Parameters []ProfileParameter `json:"parameters,omitempty"`
}

// ProfileSource is the closed profile-location choice.
type ProfileSource interface {
	profileSource()
}

// ProfileFile locates the profile by file path.
type ProfileFile struct {
	Path string `json:"path"`
}

func (ProfileFile) profileSource() {}

// ProfileURI locates the profile by URI.
type ProfileURI struct {
	URI string `json:"uri"`
}

func (ProfileURI) profileSource() {}

// ProfileParameter is one name/value rendering parameter.
type ProfileParameter struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

package galaxy

// Subject is the science discipline a body's study module teaches.
type Subject string

const (
	SubjectPhysics   Subject = "physics"
	SubjectChemistry Subject = "chemistry"
	SubjectBiology   Subject = "biology"
)

// AllSubjects returns the subjects in display order.
func AllSubjects() []Subject {
	return []Subject{SubjectPhysics, SubjectChemistry, SubjectBiology}
}

// SubjectDisplayName returns the human-readable name for a subject.
func SubjectDisplayName(s Subject) string {
	switch s {
	case SubjectPhysics:
		return "Physics"
	case SubjectChemistry:
		return "Chemistry"
	case SubjectBiology:
		return "Biology"
	default:
		return string(s)
	}
}

// BodyType classifies a celestial body for display.
type BodyType string

const (
	TypeStar        BodyType = "star"
	TypeTerrestrial BodyType = "terrestrial"
	TypeMoon        BodyType = "moon"
	TypeGasGiant    BodyType = "gas-giant"
	TypeIceGiant    BodyType = "ice-giant"
)

// Icon returns the display glyph for the body type.
func (t BodyType) Icon() string {
	switch t {
	case TypeStar:
		return "☀"
	case TypeMoon:
		return "🌙"
	case TypeGasGiant, TypeIceGiant:
		return "🪐"
	default:
		return "🌍"
	}
}

// CelestialBody is one study module on the star map. Bodies form an
// unlock chain: completing a body unlocks the one named by Unlocks.
type CelestialBody struct {
	ID          string
	Name        string
	Subject     Subject
	Type        BodyType
	Description string
	Content     string
	Summary     string
	// Unlocks is the ID of the body this one unlocks when completed,
	// or empty if it ends a chain.
	Unlocks string
}

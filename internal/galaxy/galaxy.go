package galaxy

import (
	"fmt"
	"slices"
	"strings"
)

// atlas holds the body catalog with precomputed indices.
type atlas struct {
	bodies    []CelestialBody
	byID      map[string]*CelestialBody
	bySubject map[Subject][]CelestialBody
	// unlockedBy maps a body ID to the ID of the body that unlocks it.
	unlockedBy map[string]string
}

// a is the package-level atlas singleton, set by init() in seed.go.
var a *atlas

func buildAtlas(bodies []CelestialBody) *atlas {
	at := &atlas{
		bodies:     bodies,
		byID:       make(map[string]*CelestialBody, len(bodies)),
		bySubject:  make(map[Subject][]CelestialBody),
		unlockedBy: make(map[string]string),
	}
	for i := range at.bodies {
		b := &at.bodies[i]
		at.byID[b.ID] = b
		at.bySubject[b.Subject] = append(at.bySubject[b.Subject], *b)
		if b.Unlocks != "" {
			at.unlockedBy[b.Unlocks] = b.ID
		}
	}
	return at
}

// Get returns a body by ID, or an error if not found.
func Get(id string) (CelestialBody, error) {
	b, ok := a.byID[id]
	if !ok {
		return CelestialBody{}, fmt.Errorf("celestial body not found: %q", id)
	}
	return *b, nil
}

// All returns every body in catalog order.
func All() []CelestialBody {
	return slices.Clone(a.bodies)
}

// BySubject returns the bodies teaching the given subject.
func BySubject(s Subject) []CelestialBody {
	return slices.Clone(a.bySubject[s])
}

// NextAfter returns the body unlocked by completing the given one,
// and false when the body ends its chain.
func NextAfter(id string) (CelestialBody, bool) {
	b, ok := a.byID[id]
	if !ok || b.Unlocks == "" {
		return CelestialBody{}, false
	}
	next, ok := a.byID[b.Unlocks]
	if !ok {
		return CelestialBody{}, false
	}
	return *next, true
}

// IsUnlocked reports whether a body can be studied given the set of
// completed body IDs. A body with no predecessor in the unlock chain is
// always available.
func IsUnlocked(id string, completed map[string]bool) bool {
	prev, hasPrev := a.unlockedBy[id]
	if !hasPrev {
		_, exists := a.byID[id]
		return exists
	}
	return completed[prev]
}

// Validate checks the catalog for structural issues.
func Validate() error {
	return validateBodies(a.bodies)
}

// validateBodies performs all structural checks on the given body set.
// Returns a combined error describing all problems found, or nil if valid.
func validateBodies(bodies []CelestialBody) error {
	var errs []string

	idSet := make(map[string]bool, len(bodies))
	for _, b := range bodies {
		if idSet[b.ID] {
			errs = append(errs, fmt.Sprintf("duplicate body ID: %q", b.ID))
		}
		idSet[b.ID] = true
		if b.Content == "" {
			errs = append(errs, fmt.Sprintf("body %q has no study content", b.ID))
		}
	}

	// Dangling unlock targets and double unlocks.
	unlockedBy := make(map[string]string)
	for _, b := range bodies {
		if b.Unlocks == "" {
			continue
		}
		if !idSet[b.Unlocks] {
			errs = append(errs, fmt.Sprintf("body %q unlocks nonexistent body %q", b.ID, b.Unlocks))
			continue
		}
		if prev, dup := unlockedBy[b.Unlocks]; dup {
			errs = append(errs, fmt.Sprintf("body %q unlocked by both %q and %q", b.Unlocks, prev, b.ID))
		}
		unlockedBy[b.Unlocks] = b.ID
	}

	// The unlock chain must not loop back on itself.
	for _, b := range bodies {
		seen := map[string]bool{b.ID: true}
		cur := b.Unlocks
		for cur != "" {
			if seen[cur] {
				errs = append(errs, fmt.Sprintf("unlock cycle detected at body %q", cur))
				break
			}
			seen[cur] = true
			next, ok := bodies[0], false
			for i := range bodies {
				if bodies[i].ID == cur {
					next, ok = bodies[i], true
					break
				}
			}
			if !ok {
				break
			}
			cur = next.Unlocks
		}
	}

	// Every subject needs at least one body.
	subjectSet := make(map[Subject]bool)
	for _, b := range bodies {
		subjectSet[b.Subject] = true
	}
	for _, s := range AllSubjects() {
		if !subjectSet[s] {
			errs = append(errs, fmt.Sprintf("subject %q has no bodies", s))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("galaxy catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

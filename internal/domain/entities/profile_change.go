package entities

// ProfileChange is delivered to observers each time the current profile is set.
// Either side may be nil.
type ProfileChange struct {
	Old *Profile
	New *Profile
}

// Changed reports whether the new profile differs from the old one by value.
func (c ProfileChange) Changed() bool {
	return !c.Old.Equals(c.New)
}

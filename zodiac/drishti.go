package zodiac

// Rasi drishti is the sign-to-sign aspect rule from Jaimini tradition. It
// depends only on modality, never on occupancy:
//
//   - movable signs aspect all fixed signs except the adjacent one
//   - fixed signs aspect all movable signs except the adjacent one
//   - dual signs aspect the other dual signs
//
// "Adjacent" means immediately before or after on the zodiac circle.

// Aspects returns the rasis this sign aspects, in zodiac order.
func (s Sign) Aspects() []Sign {
	var targets []Sign
	for t := Aries; t <= Pisces; t++ {
		if s.AspectsSign(t) {
			targets = append(targets, t)
		}
	}
	return targets
}

// AspectsSign reports whether rasi s casts a sign aspect on rasi t.
// The relation is irreflexive and, for movable and fixed signs, never
// targets an adjacent sign.
func (s Sign) AspectsSign(t Sign) bool {
	if s == t {
		return false
	}
	switch s.Modality() {
	case Movable:
		return t.Modality() == Fixed && !adjacent(s, t)
	case Fixed:
		return t.Modality() == Movable && !adjacent(s, t)
	case Dual:
		return t.Modality() == Dual
	}
	return false
}

func adjacent(a, b Sign) bool {
	d := (int(b) - int(a) + SignCount) % SignCount
	return d == 1 || d == SignCount-1
}

package shamir

// SetIDLen is the number of random bytes identifying a sibling share set.
const SetIDLen = 16

// SetID identifies a group of sibling shares produced by one Split call.
// Combine rejects shares whose SetID values disagree.
type SetID [SetIDLen]byte

// NewSetID draws a fresh random SetID from Reader.
func NewSetID() (SetID, error) {
	var id SetID
	b, err := randomBytes(SetIDLen)
	if err != nil {
		return id, err
	}
	copy(id[:], b)
	return id, nil
}

// RawShare is one share of a split secret: the evaluation point X and the
// polynomial values Y for every byte of the tagged (and optionally
// encrypted) secret, plus the SetID/K/N metadata needed to validate sibling
// consistency at combine time.
type RawShare struct {
	SetID SetID
	K     int
	N     int
	X     byte
	Y     []byte
}

// Zero overwrites the share's payload. RawShare.Y is sensitive until the
// outer pipeline has verified the recovered secret's integrity tag.
func (s *RawShare) Zero() {
	for i := range s.Y {
		s.Y[i] = 0
	}
}

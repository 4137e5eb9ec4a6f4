package wheel

import "fmt"

// Sign is one of the twelve 30° zodiac signs, starting at Aries (0°).
type Sign int

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

// SignCount is the number of zodiac signs.
const SignCount = 12

var signNames = [SignCount]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

func (s Sign) String() string {
	if s < 0 || int(s) >= SignCount {
		return fmt.Sprintf("Sign(%d)", int(s))
	}
	return signNames[s]
}

// MarshalText renders the sign by name.
func (s Sign) MarshalText() ([]byte, error) {
	if s < 0 || int(s) >= SignCount {
		return nil, fmt.Errorf("invalid sign %d", int(s))
	}
	return []byte(signNames[s]), nil
}

// SignOf returns the sign containing the longitude along with the whole
// degrees and minutes elapsed inside it.
func SignOf(longitude float64) (sign Sign, degrees, minutes int) {
	lon := Normalize(longitude)
	idx := int(lon / 30)
	if idx >= SignCount {
		idx = SignCount - 1
	}
	inSign := lon - float64(idx)*30
	degrees = int(inSign)
	minutes = int((inSign - float64(degrees)) * 60)
	if minutes > 59 {
		minutes = 59
	}
	return Sign(idx), degrees, minutes
}

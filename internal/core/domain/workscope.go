package domain

// WorkScope is the 5-level ordinal severity classification of needed work,
// ordered from least to most severe.
type WorkScope int

const (
	ScopeNone WorkScope = iota
	ScopeRepair
	ScopeRefurbish
	ScopeReplace
	ScopeFullRenovation
)

func (s WorkScope) String() string {
	switch s {
	case ScopeNone:
		return "none"
	case ScopeRepair:
		return "repair"
	case ScopeRefurbish:
		return "refurbish"
	case ScopeReplace:
		return "replace"
	case ScopeFullRenovation:
		return "full_renovation"
	default:
		return "none"
	}
}

// MarshalJSON renders the scope as its string name.
func (s WorkScope) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON parses the string name back into the ordinal.
func (s *WorkScope) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"repair"`:
		*s = ScopeRepair
	case `"refurbish"`:
		*s = ScopeRefurbish
	case `"replace"`:
		*s = ScopeReplace
	case `"full_renovation"`:
		*s = ScopeFullRenovation
	default:
		*s = ScopeNone
	}
	return nil
}

// WorkScopeResult classifies each module of a room plus the room overall.
type WorkScopeResult struct {
	Surfaces WorkScope `json:"surfaces"`
	Fixtures WorkScope `json:"fixtures"`
	MEP      WorkScope `json:"mep"`
	Overall  WorkScope `json:"overall"`
}

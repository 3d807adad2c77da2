package types

// TypeFilter restricts matches to one entry classification.
type TypeFilter byte

const (
	// TypeAny places no restriction on the entry type.
	TypeAny TypeFilter = 0
	// TypeFile matches regular files only.
	TypeFile TypeFilter = 'f'
	// TypeDirectory matches directories only.
	TypeDirectory TypeFilter = 'd'
)

// ParseTypeFilter maps a -type argument to a TypeFilter.
func ParseTypeFilter(s string) (TypeFilter, bool) {
	switch s {
	case "f":
		return TypeFile, true
	case "d":
		return TypeDirectory, true
	default:
		return TypeAny, false
	}
}

func (t TypeFilter) String() string {
	switch t {
	case TypeFile:
		return "f"
	case TypeDirectory:
		return "d"
	default:
		return ""
	}
}

type (
	// FilterConfig holds the constraints an entry must satisfy to be printed.
	// A nil pattern means no restriction on that axis. INamePattern is stored
	// already case-folded.
	FilterConfig struct {
		NamePattern  []byte
		INamePattern []byte
		Type         TypeFilter
	}
)

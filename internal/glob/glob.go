// Package glob matches file names against find-style wildcard patterns.
//
// Only two tokens are special: '*' matches any run of bytes (including none)
// and '?' matches exactly one byte. Every other byte matches itself. Matching
// is byte-exact; callers fold case before calling when they need -iname
// semantics.
package glob

// Match reports whether name matches pattern in its entirety.
//
// The matcher backtracks over (name, pattern) positions without memoization,
// so adversarial inputs such as "*a*a*a*a*b" against long runs of 'a' take
// exponential time. File names are short enough that this has not mattered.
func Match(name, pattern []byte) bool {
	return match(name, pattern, 0, 0)
}

// MatchString is Match for strings. Go strings are byte sequences, so no
// decoding or copying happens.
func MatchString(name, pattern string) bool {
	return match(name, pattern, 0, 0)
}

type text interface {
	~string | ~[]byte
}

func match[N, P text](name N, pattern P, ni, pi int) bool {
	if pi == len(pattern) {
		return ni == len(name)
	}

	if pattern[pi] == '*' {
		// Shortest expansion first: let '*' match nothing.
		if match(name, pattern, ni, pi+1) {
			return true
		}
		return ni < len(name) && match(name, pattern, ni+1, pi)
	}

	if ni == len(name) {
		return false
	}

	if pattern[pi] == '?' || pattern[pi] == name[ni] {
		return match(name, pattern, ni+1, pi+1)
	}

	return false
}

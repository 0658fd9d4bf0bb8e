package domain

import (
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// Version is a semantic version. Build metadata is stripped on parse;
// only the pre-release tag participates in ordering.
type Version struct {
	Major int
	Minor int
	Patch int
	Pre   string
}

// ParseVersion parses "major[.minor[.patch]][-pre][+build]".
func ParseVersion(s string) (Version, error) {
	orig := s
	if s == "" {
		return Version{}, Tag(ErrInvalidVersion, "version", orig)
	}

	// Build metadata has no ordering semantics.
	if idx := strings.IndexByte(s, '+'); idx >= 0 {
		s = s[:idx]
	}

	var pre string
	if idx := strings.IndexByte(s, '-'); idx >= 0 {
		s, pre = s[:idx], s[idx+1:]
		if pre == "" {
			return Version{}, Tag(ErrInvalidVersion, "version", orig)
		}
	}

	parts := strings.Split(s, ".")
	if len(parts) > 3 {
		return Version{}, Tag(ErrInvalidVersion, "version", orig)
	}

	nums := [3]int{}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return Version{}, Tag(ErrInvalidVersion, "version", orig)
		}
		nums[i] = n
	}

	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2], Pre: pre}, nil
}

// String returns the canonical "major.minor.patch[-pre]" form.
func (v Version) String() string {
	s := strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor) + "." + strconv.Itoa(v.Patch)
	if v.Pre != "" {
		s += "-" + v.Pre
	}
	return s
}

// Compare returns -1, 0 or 1 ordering v against o per semver precedence.
func (v Version) Compare(o Version) int {
	if c := cmpInt(v.Major, o.Major); c != 0 {
		return c
	}
	if c := cmpInt(v.Minor, o.Minor); c != 0 {
		return c
	}
	if c := cmpInt(v.Patch, o.Patch); c != 0 {
		return c
	}
	return comparePrerelease(v.Pre, o.Pre)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// comparePrerelease orders pre-release tags per the semver spec: a release
// outranks any pre-release; identifiers compare dot-wise, numeric ones
// numerically and below alphanumeric ones.
func comparePrerelease(a, b string) int {
	if a == b {
		return 0
	}
	if a == "" {
		return 1
	}
	if b == "" {
		return -1
	}

	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	for i := 0; i < len(as) && i < len(bs); i++ {
		if as[i] == bs[i] {
			continue
		}
		an, aNum := strconv.Atoi(as[i])
		bn, bNum := strconv.Atoi(bs[i])
		switch {
		case aNum == nil && bNum == nil:
			return cmpInt(an, bn)
		case aNum == nil:
			return -1
		case bNum == nil:
			return 1
		default:
			return strings.Compare(as[i], bs[i])
		}
	}
	return cmpInt(len(as), len(bs))
}

// RangeKind classifies a version range expression.
type RangeKind int

const (
	// RangeLatest selects the highest published version.
	RangeLatest RangeKind = iota
	// RangeExact selects one version exactly.
	RangeExact
	// RangeCaret selects compatible versions up to the next major release.
	RangeCaret
	// RangeTilde selects compatible versions up to the next minor release.
	RangeTilde
)

// VersionRange is a parsed range expression. Only the subset used by
// registry specifiers is supported: exact, caret, tilde and latest.
type VersionRange struct {
	Kind    RangeKind
	Version Version
}

// ParseRange parses a range expression. An empty string means latest.
func ParseRange(s string) (VersionRange, error) {
	switch {
	case s == "" || s == "latest":
		return VersionRange{Kind: RangeLatest}, nil
	case strings.HasPrefix(s, "^"):
		v, err := ParseVersion(s[1:])
		if err != nil {
			return VersionRange{}, err
		}
		return VersionRange{Kind: RangeCaret, Version: v}, nil
	case strings.HasPrefix(s, "~"):
		v, err := ParseVersion(s[1:])
		if err != nil {
			return VersionRange{}, err
		}
		return VersionRange{Kind: RangeTilde, Version: v}, nil
	default:
		v, err := ParseVersion(s)
		if err != nil {
			return VersionRange{}, err
		}
		return VersionRange{Kind: RangeExact, Version: v}, nil
	}
}

// String returns the textual form of the range.
func (r VersionRange) String() string {
	switch r.Kind {
	case RangeLatest:
		return "latest"
	case RangeCaret:
		return "^" + r.Version.String()
	case RangeTilde:
		return "~" + r.Version.String()
	default:
		return r.Version.String()
	}
}

// Matches reports whether v satisfies the range.
func (r VersionRange) Matches(v Version) bool {
	base := r.Version
	switch r.Kind {
	case RangeLatest:
		return true
	case RangeExact:
		return v.Compare(base) == 0
	case RangeCaret:
		if v.Compare(base) < 0 || v.Major != base.Major {
			return false
		}
		// 0.x versions promise compatibility only within a minor line.
		if base.Major == 0 && v.Minor != base.Minor {
			return false
		}
		return true
	case RangeTilde:
		return v.Compare(base) >= 0 && v.Major == base.Major && v.Minor == base.Minor
	}
	return false
}

// ResolveVersion selects the highest published version satisfying the range.
func ResolveVersion(r VersionRange, published []Version) (Version, error) {
	var best Version
	found := false
	for _, v := range published {
		if !r.Matches(v) {
			continue
		}
		if !found || v.Compare(best) > 0 {
			best = v
			found = true
		}
	}
	if !found {
		err := Tag(ErrVersionNotFound, "range", r.String())
		return Version{}, zerr.With(err, "published_count", len(published))
	}
	return best, nil
}

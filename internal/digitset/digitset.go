// Package digitset implements the 9-bit candidate set that the rest of the
// engine is built on: every cell, every sector scan, and every technique
// finder ultimately reads or writes a DigitSet.
package digitset

// DigitSet is an immutable bitmask over the digits 1..9. Bit i (1<=i<=9)
// represents membership of digit i; bit 0 is always zero.
type DigitSet uint16

// All is the DigitSet containing every digit 1..9.
const All DigitSet = 0b1111111110

// Empty is the DigitSet containing no digits.
const Empty DigitSet = 0

// New builds a DigitSet from a list of digits, ignoring anything outside 1..9.
func New(digits ...int) DigitSet {
	var s DigitSet
	for _, d := range digits {
		s = s.Insert(d)
	}
	return s
}

// Has reports whether digit is a member of s.
func (s DigitSet) Has(digit int) bool {
	if digit < 1 || digit > 9 {
		return false
	}
	return s&(1<<uint(digit)) != 0
}

// Insert returns s with digit added.
func (s DigitSet) Insert(digit int) DigitSet {
	if digit < 1 || digit > 9 {
		return s
	}
	return s | (1 << uint(digit))
}

// Remove returns s with digit removed.
func (s DigitSet) Remove(digit int) DigitSet {
	if digit < 1 || digit > 9 {
		return s
	}
	return s &^ (1 << uint(digit))
}

// Count returns the number of digits in s.
func (s DigitSet) Count() int {
	n := 0
	for d := 1; d <= 9; d++ {
		if s.Has(d) {
			n++
		}
	}
	return n
}

// Single returns the sole digit of s and true, iff s has exactly one member.
func (s DigitSet) Single() (int, bool) {
	if s.Count() != 1 {
		return 0, false
	}
	for d := 1; d <= 9; d++ {
		if s.Has(d) {
			return d, true
		}
	}
	return 0, false
}

// Digits returns the members of s in ascending order.
func (s DigitSet) Digits() []int {
	var out []int
	for d := 1; d <= 9; d++ {
		if s.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

// IsEmpty reports whether s has no members.
func (s DigitSet) IsEmpty() bool {
	return s == Empty
}

// Union returns the digits present in s or other.
func (s DigitSet) Union(other DigitSet) DigitSet {
	return s | other
}

// Intersect returns the digits present in both s and other.
func (s DigitSet) Intersect(other DigitSet) DigitSet {
	return s & other
}

// Subtract returns the digits present in s but not in other.
func (s DigitSet) Subtract(other DigitSet) DigitSet {
	return s &^ other
}

// Equal reports whether s and other contain exactly the same digits.
func (s DigitSet) Equal(other DigitSet) bool {
	return s == other
}

// Set is an alias for Insert, kept for call sites that predate the Insert name.
func (s DigitSet) Set(digit int) DigitSet { return s.Insert(digit) }

// Clear is an alias for Remove, kept for call sites that predate the Remove name.
func (s DigitSet) Clear(digit int) DigitSet { return s.Remove(digit) }

// Only is an alias for Single, kept for call sites that predate the Single name.
func (s DigitSet) Only() (int, bool) { return s.Single() }

// ToSlice is an alias for Digits, kept for call sites that predate the Digits name.
func (s DigitSet) ToSlice() []int { return s.Digits() }

// Equals is an alias for Equal, kept for call sites that predate the Equal name.
func (s DigitSet) Equals(other DigitSet) bool { return s.Equal(other) }

// String renders s as e.g. "{1,4,9}" for debugging and explanations.
func (s DigitSet) String() string {
	if s.IsEmpty() {
		return "{}"
	}
	out := make([]byte, 0, 20)
	out = append(out, '{')
	for i, d := range s.Digits() {
		if i > 0 {
			out = append(out, ',')
		}
		out = append(out, byte('0'+d))
	}
	out = append(out, '}')
	return string(out)
}

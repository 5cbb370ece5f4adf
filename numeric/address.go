package numeric

// ZeroPageEffectiveAddr computes the effective address for a zero-page
// base plus an 8-bit index, wrapping within page zero: the high byte of
// the result is always 0.
func ZeroPageEffectiveAddr(base, index Byte) Word {
	return Word(base.Add(index))
}

// PageCrossed reports whether adding index to base changes the high
// byte of the address, the "page crossed" predicate some addressing
// modes use to charge one extra cycle.
func PageCrossed(base Word, index Byte) bool {
	sum := base.Add(index.ToWord())
	return (base & 0xFF00) != (sum & 0xFF00)
}

// IndexedEffectiveAddr returns base+index as a Word along with the
// PageCrossed predicate for that addition.
func IndexedEffectiveAddr(base Word, index Byte) (addr Word, pageCrossed bool) {
	return base.Add(index.ToWord()), PageCrossed(base, index)
}

package set

// compact closes the dead run [runStart, runStart+runLen) by sliding
// every later slot back by runLen, then kills the vacated tail slots so
// nothing past the surviving elements holds a stale reference. It
// returns the index of the first free slot after the shift.
//
// The caller guarantees the run is the final dead run found by a full
// scan, so every slot after it is live; the shift therefore moves live
// elements only past dead slots and their relative order is preserved.
func compact[E comparable](buf *[slotCapacity]slot[E], runStart, runLen int) int {
	for i := runStart + runLen; i < slotCapacity; i++ {
		buf[i-runLen] = buf[i]
	}
	var dead slot[E]
	for i := slotCapacity - runLen; i < slotCapacity; i++ {
		buf[i] = dead
	}
	return slotCapacity - runLen
}

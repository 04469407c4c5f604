package zorder

import "github.com/jimisaacs/spandex/rect"

// mortonKey orders a rectangle by the Z-order curve position of its
// center, masked to 16 bits per axis. The mask means centers outside
// [-32768, 32767] wrap rather than extending the curve; that's fine
// here, since the key only decides splice position in an otherwise
// linearly-scanned store, never correctness of Query or Insert.
func mortonKey(r rect.Rectangle) uint64 {
	cx := uint16(center(r.X1, r.X2))
	cy := uint16(center(r.Y1, r.Y2))
	return interleave(cx, cy)
}

// center picks a representative coordinate for an axis, treating the
// ±infinity sentinels as reaching past any finite partner rather than
// averaging them into a meaningless midpoint.
func center(lo, hi rect.Coord) rect.Coord {
	switch {
	case lo == rect.NegInf && hi == rect.PosInf:
		return 0
	case lo == rect.NegInf:
		return hi
	case hi == rect.PosInf:
		return lo
	default:
		return lo + (hi-lo)/2
	}
}

// interleave bit-interleaves two 16-bit values into a 32-bit Morton
// code (x in the even bits, y in the odd bits).
func interleave(x, y uint16) uint64 {
	return spread(uint32(x)) | (spread(uint32(y)) << 1)
}

// spread inserts a zero bit between each bit of a 16-bit value.
func spread(x uint32) uint64 {
	v := uint64(x)
	v = (v | (v << 16)) & 0x0000FFFF0000FFFF
	v = (v | (v << 8)) & 0x00FF00FF00FF00FF
	v = (v | (v << 4)) & 0x0F0F0F0F0F0F0F0F
	v = (v | (v << 2)) & 0x3333333333333333
	v = (v | (v << 1)) & 0x5555555555555555
	return v
}

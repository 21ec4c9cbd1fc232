package subtitle

// Alignment is a screen anchor bitmask: one optional horizontal bit
// ORed with one optional vertical bit. The zero value means centered
// on both axes.
type Alignment int

const (
	AlignCenter Alignment = 0
	AlignLeft   Alignment = 0x1
	AlignRight  Alignment = 0x2
	AlignTop    Alignment = 0x4
	AlignBottom Alignment = 0x8
)

// DecodeAn maps an SSA "\an" numpad position (1-9) to alignment bits.
// The numpad layout: 1-3 bottom row, 4-6 middle, 7-9 top; within a
// row, left/center/right. Returns false for values outside 1-9.
func DecodeAn(n int) (Alignment, bool) {
	if n < 1 || n > 9 {
		return 0, false
	}
	vertical := [3]Alignment{AlignBottom, 0, AlignTop}
	horizontal := [3]Alignment{AlignLeft, 0, AlignRight}
	id := n - 1
	return vertical[id/3] | horizontal[id%3], true
}

// Horizontal returns only the horizontal bits of the alignment.
func (a Alignment) Horizontal() Alignment {
	return a & (AlignLeft | AlignRight)
}

// Vertical returns only the vertical bits of the alignment.
func (a Alignment) Vertical() Alignment {
	return a & (AlignTop | AlignBottom)
}

// String returns a "vertical-horizontal" description such as
// "bottom-left" or "middle-center".
func (a Alignment) String() string {
	var v, h string
	switch a.Vertical() {
	case AlignTop:
		v = "top"
	case AlignBottom:
		v = "bottom"
	default:
		v = "middle"
	}
	switch a.Horizontal() {
	case AlignLeft:
		h = "left"
	case AlignRight:
		h = "right"
	default:
		h = "center"
	}
	return v + "-" + h
}

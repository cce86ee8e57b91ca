package source

import (
	"fmt"
)

// Row is one raw demo table entry: sixteen 4-bit band values. The
// demo VU level tracks the loudest band of the row.
type Row struct {
	Peaks [NumBands]byte
}

// Demo replays a circular table of pre-baked rows.
//
// The index wraps by masking, so the table length MUST be a power of
// two. That mirrors the original increment-and-mask wrap; behavior
// for other lengths is unspecified there, so non-power-of-two tables
// are rejected at construction instead of silently handled.
type Demo struct {
	rows []Row
	mask uint32
	idx  uint32
}

// NewDemo returns a provider over the builtin pattern table.
func NewDemo() *Demo {
	d, err := NewDemoRows(builtinRows())
	if err != nil {
		// The builtin table is 32 rows; only a bad edit can trip this.
		panic(err)
	}
	return d
}

// NewDemoRows returns a provider over a caller-supplied table.
func NewDemoRows(rows []Row) (*Demo, error) {
	n := len(rows)
	if n == 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("source: demo table length %d is not a power of two", n)
	}
	return &Demo{rows: rows, mask: uint32(n - 1)}, nil
}

// Len returns the table length.
func (d *Demo) Len() int { return len(d.rows) }

// Next returns the frame for the current row and advances the masked
// index. Raw values get the same +1 floor as packet decode: a raw 0
// paints a minimum one-row bar, never an invisible bar. That is the
// intended look, not a default to tune away.
func (d *Demo) Next() Frame {
	f := normalize(d.rows[d.idx])
	d.idx = (d.idx + 1) & d.mask
	return f
}

// FrameAt returns the normalized frame for table row i without
// advancing. Used by the deterministic frame snapshot test.
func (d *Demo) FrameAt(i int) Frame {
	return normalize(d.rows[uint32(i)&d.mask])
}

func normalize(r Row) Frame {
	var f Frame
	var loudest byte
	for i, v := range r.Peaks {
		f.Peaks[i] = v&0x0f + 1
		if v&0x0f > loudest {
			loudest = v & 0x0f
		}
	}
	f.VU = loudest
	if f.VU > MaxVU {
		f.VU = MaxVU
	}
	return f
}

// builtinPatterns is the canned sequence, one row per entry, sixteen
// hex nibbles per row. 32 entries keeps the masked wrap valid.
var builtinPatterns = []string{
	"2468ACEFFECA8642",
	"13579BDFFDB97531",
	"02468ACEECA86420",
	"013579BDDB975310",
	"0123456789ABCDEF",
	"123456789ABCDEFF",
	"23456789ABCDEFFE",
	"3456789ABCDEFFEC",
	"FEDCBA9876543210",
	"EDCBA98765432100",
	"DCBA987654321000",
	"CBA9876543210000",
	"F00F00F00F00F00F",
	"0F00F00F00F00F00",
	"00F00F00F00F00F0",
	"F0F0F0F0F0F0F0F0",
	"0F0F0F0F0F0F0F0F",
	"8888888888888888",
	"4848484848484848",
	"2828282828282828",
	"C84210000001248C",
	"FA8642000002468A",
	"8ACEFFFFFFFFECA8",
	"468ACEFFFFECA864",
	"048C048C048C048C",
	"C840C840C840C840",
	"369C369C369C369C",
	"C963C963C963C963",
	"1248F8421248F842",
	"2481248124812481",
	"0000000000000000",
	"FFFFFFFFFFFFFFFF",
}

func builtinRows() []Row {
	rows := make([]Row, len(builtinPatterns))
	for i, pat := range builtinPatterns {
		if len(pat) != NumBands {
			panic(fmt.Sprintf("source: builtin pattern %d has %d nibbles", i, len(pat)))
		}
		for j, c := range pat {
			rows[i].Peaks[j] = nibble(byte(c))
		}
	}
	return rows
}

func nibble(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		panic(fmt.Sprintf("source: bad pattern nibble %q", c))
	}
}

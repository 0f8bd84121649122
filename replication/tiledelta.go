package replication

import (
	"encoding/binary"
	"fmt"

	"github.com/blazeforge/ember/simerr"
)

// TileSize is the dirty-tile granularity: a 2048x2048 grid is divided
// into 64x64-cell tiles, per spec.md §4.7.
const TileSize = 64

// DirtyMaskRun is one run-length-encoded record in the dirty-tile
// bitmap: value is 0 (clean) or 1 (dirty), run_length counts consecutive
// tiles in row-major tile order.
type DirtyMaskRun struct {
	Value     uint8
	RunLength uint16
}

// TilesAcross returns how many tiles span a grid of the given cell width
// or height, rounding up for a non-multiple-of-TileSize grid.
func TilesAcross(cells int) int {
	return (cells + TileSize - 1) / TileSize
}

// DirtyMask computes, for an W*H phi field compared against a previous
// quantised snapshot of the same size, which tiles changed.
func DirtyMask(prev, cur []int32, w, h int) []bool {
	tilesX := TilesAcross(w)
	tilesY := TilesAcross(h)
	dirty := make([]bool, tilesX*tilesY)

	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			x0, y0 := tx*TileSize, ty*TileSize
			x1 := min(x0+TileSize, w)
			y1 := min(y0+TileSize, h)
			changed := false
			for y := y0; y < y1 && !changed; y++ {
				rowBase := y * w
				for x := x0; x < x1; x++ {
					if prev[rowBase+x] != cur[rowBase+x] {
						changed = true
						break
					}
				}
			}
			dirty[ty*tilesX+tx] = changed
		}
	}
	return dirty
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// EncodeDirtyMaskRLE run-length-encodes a row-major dirty-tile bitmap.
func EncodeDirtyMaskRLE(dirty []bool) []DirtyMaskRun {
	if len(dirty) == 0 {
		return nil
	}
	var runs []DirtyMaskRun
	cur := boolToUint8(dirty[0])
	runLen := uint16(1)
	for i := 1; i < len(dirty); i++ {
		v := boolToUint8(dirty[i])
		if v == cur && runLen < 65535 {
			runLen++
			continue
		}
		runs = append(runs, DirtyMaskRun{Value: cur, RunLength: runLen})
		cur = v
		runLen = 1
	}
	runs = append(runs, DirtyMaskRun{Value: cur, RunLength: runLen})
	return runs
}

// DecodeDirtyMaskRLE expands RLE runs back into a flat bool slice of the
// given total tile count.
func DecodeDirtyMaskRLE(runs []DirtyMaskRun, totalTiles int) ([]bool, error) {
	out := make([]bool, 0, totalTiles)
	for _, r := range runs {
		for i := uint16(0); i < r.RunLength; i++ {
			out = append(out, r.Value != 0)
		}
	}
	if len(out) != totalTiles {
		return nil, simerr.Newf(simerr.IOError, "dirty mask RLE decoded %d tiles, want %d", len(out), totalTiles)
	}
	return out, nil
}

func boolToUint8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// TilePatch holds the changed phi values for one dirty tile.
type TilePatch struct {
	TileIdx  uint16
	PhiValues []int32
}

// ElementChange records a discrete fuel-element state delta for one
// frame, per spec.md §4.7's delta format.
type ElementChange struct {
	ID       uint32
	TempX100 int32
	MoistureX10000 uint16
	Burning  uint8
}

// FrameDelta is the in-memory representation of one replication delta,
// before zstd framing.
type FrameDelta struct {
	FrameNumber uint32
	Dirty       []DirtyMaskRun
	Patches     []TilePatch
	Elements    []ElementChange
}

// EncodeFrameDelta serialises a FrameDelta to the little-endian binary
// layout from spec.md §4.7 (uncompressed; the caller zstd-frames the
// result at level 3).
func EncodeFrameDelta(d FrameDelta) []byte {
	buf := make([]byte, 0, 1024)
	var tmp [4]byte

	binary.LittleEndian.PutUint32(tmp[:], d.FrameNumber)
	buf = append(buf, tmp[:]...)

	binary.LittleEndian.PutUint32(tmp[:], uint32(len(d.Dirty)))
	buf = append(buf, tmp[:]...)
	for _, r := range d.Dirty {
		buf = append(buf, r.Value)
		var rl [2]byte
		binary.LittleEndian.PutUint16(rl[:], r.RunLength)
		buf = append(buf, rl[:]...)
	}

	binary.LittleEndian.PutUint32(tmp[:], uint32(len(d.Patches)))
	buf = append(buf, tmp[:]...)
	for _, p := range d.Patches {
		var idx [2]byte
		binary.LittleEndian.PutUint16(idx[:], p.TileIdx)
		buf = append(buf, idx[:]...)
		binary.LittleEndian.PutUint32(tmp[:], uint32(len(p.PhiValues)))
		buf = append(buf, tmp[:]...)
		for _, v := range p.PhiValues {
			binary.LittleEndian.PutUint32(tmp[:], uint32(v))
			buf = append(buf, tmp[:]...)
		}
	}

	binary.LittleEndian.PutUint32(tmp[:], uint32(len(d.Elements)))
	buf = append(buf, tmp[:]...)
	for _, e := range d.Elements {
		binary.LittleEndian.PutUint32(tmp[:], e.ID)
		buf = append(buf, tmp[:]...)
		binary.LittleEndian.PutUint32(tmp[:], uint32(e.TempX100))
		buf = append(buf, tmp[:]...)
		var mo [2]byte
		binary.LittleEndian.PutUint16(mo[:], e.MoistureX10000)
		buf = append(buf, mo[:]...)
		buf = append(buf, e.Burning)
	}

	return buf
}

// DecodeFrameDelta parses the binary layout written by EncodeFrameDelta.
func DecodeFrameDelta(buf []byte) (FrameDelta, error) {
	var d FrameDelta
	r := &byteReader{buf: buf}

	frameNum, err := r.uint32()
	if err != nil {
		return d, wrapDecodeErr("frame number", err)
	}
	d.FrameNumber = frameNum

	dirtyCount, err := r.uint32()
	if err != nil {
		return d, wrapDecodeErr("dirty run count", err)
	}
	d.Dirty = make([]DirtyMaskRun, dirtyCount)
	for i := range d.Dirty {
		v, err := r.uint8()
		if err != nil {
			return d, wrapDecodeErr("dirty run value", err)
		}
		rl, err := r.uint16()
		if err != nil {
			return d, wrapDecodeErr("dirty run length", err)
		}
		d.Dirty[i] = DirtyMaskRun{Value: v, RunLength: rl}
	}

	patchCount, err := r.uint32()
	if err != nil {
		return d, wrapDecodeErr("patch count", err)
	}
	d.Patches = make([]TilePatch, patchCount)
	for i := range d.Patches {
		idx, err := r.uint16()
		if err != nil {
			return d, wrapDecodeErr("patch tile idx", err)
		}
		n, err := r.uint32()
		if err != nil {
			return d, wrapDecodeErr("patch phi count", err)
		}
		vals := make([]int32, n)
		for j := range vals {
			v, err := r.uint32()
			if err != nil {
				return d, wrapDecodeErr("patch phi value", err)
			}
			vals[j] = int32(v)
		}
		d.Patches[i] = TilePatch{TileIdx: idx, PhiValues: vals}
	}

	elemCount, err := r.uint32()
	if err != nil {
		return d, wrapDecodeErr("element count", err)
	}
	d.Elements = make([]ElementChange, elemCount)
	for i := range d.Elements {
		id, err := r.uint32()
		if err != nil {
			return d, wrapDecodeErr("element id", err)
		}
		temp, err := r.uint32()
		if err != nil {
			return d, wrapDecodeErr("element temp", err)
		}
		moisture, err := r.uint16()
		if err != nil {
			return d, wrapDecodeErr("element moisture", err)
		}
		burning, err := r.uint8()
		if err != nil {
			return d, wrapDecodeErr("element burning flag", err)
		}
		d.Elements[i] = ElementChange{ID: id, TempX100: int32(temp), MoistureX10000: moisture, Burning: burning}
	}

	return d, nil
}

func wrapDecodeErr(field string, cause error) error {
	return simerr.Wrap(simerr.IOError, fmt.Sprintf("decode frame delta: %s", field), cause)
}

// byteReader is a minimal little-endian cursor reader used to keep
// DecodeFrameDelta free of bounds-check boilerplate at each field.
type byteReader struct {
	buf []byte
	pos int
}

func (r *byteReader) uint8() (uint8, error) {
	if r.pos+1 > len(r.buf) {
		return 0, fmt.Errorf("unexpected end of buffer")
	}
	v := r.buf[r.pos]
	r.pos++
	return v, nil
}

func (r *byteReader) uint16() (uint16, error) {
	if r.pos+2 > len(r.buf) {
		return 0, fmt.Errorf("unexpected end of buffer")
	}
	v := binary.LittleEndian.Uint16(r.buf[r.pos:])
	r.pos += 2
	return v, nil
}

func (r *byteReader) uint32() (uint32, error) {
	if r.pos+4 > len(r.buf) {
		return 0, fmt.Errorf("unexpected end of buffer")
	}
	v := binary.LittleEndian.Uint32(r.buf[r.pos:])
	r.pos += 4
	return v, nil
}

package args

import (
	"encoding/binary"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// maxHashDepth bounds how far the hash follows pointers, slices and maps.
// Values that are deeply equal agree on every level, so stopping early keeps
// equal values hashing equally and makes cyclic values terminate.
const maxHashDepth = 16

// Hash returns a hash of the variant, positional values, keyed values and block.
// a.Equal(b) implies a.Hash() == b.Hash().
func (a *Arguments) Hash() uint64 {
	w := walker{memo: map[visit]uint64{}}
	h := newDigest()
	h.writeString(a.variant.String())

	h.writeUint(uint64(len(a.positional)))
	for _, v := range a.positional {
		h.writeUint(w.sum(reflect.ValueOf(v), 0))
	}

	var keyedSum uint64
	for k, v := range a.keyed {
		entry := newDigest()
		entry.writeString(string(k))
		entry.writeUint(w.sum(reflect.ValueOf(v), 0))
		keyedSum += entry.Sum64()
	}
	h.writeUint(uint64(len(a.keyed)))
	h.writeUint(keyedSum)

	h.writeUint(uint64(reflect.ValueOf(a.block).Pointer()))
	return h.Sum64()
}

type digest struct {
	*xxhash.Digest
	buf [8]byte
}

func newDigest() *digest {
	return &digest{Digest: xxhash.New()}
}

func (d *digest) writeUint(u uint64) {
	binary.LittleEndian.PutUint64(d.buf[:], u)
	_, _ = d.Write(d.buf[:])
}

func (d *digest) writeString(s string) {
	d.writeUint(uint64(len(s)))
	_, _ = d.WriteString(s)
}

func (d *digest) writeFloat(f float64) {
	if f == 0 {
		// -0.0 == 0.0
		f = 0
	}
	d.writeUint(math.Float64bits(f))
}

// visit identifies a shared node reached at a given depth.
// The hash of a node depends only on the node and the depth it is reached at,
// so each pair is hashed once however many paths lead to it.
type visit struct {
	ptr   uintptr
	typ   reflect.Type
	len   int
	depth int
}

type walker struct {
	memo map[visit]uint64
}

func visitOf(v reflect.Value, depth int) (visit, bool) {
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice:
		if v.IsNil() || v.Pointer() == 0 {
			return visit{}, false
		}
		n := 0
		if v.Kind() == reflect.Slice {
			n = v.Len()
		}
		return visit{ptr: v.Pointer(), typ: v.Type(), len: n, depth: depth}, true
	default:
		return visit{}, false
	}
}

// sum hashes v structurally, in agreement with reflect.DeepEqual.
// It never calls Interface, so unexported struct fields are hashed too.
func (w *walker) sum(v reflect.Value, depth int) uint64 {
	if !v.IsValid() {
		return 0
	}
	key, shared := visitOf(v, depth)
	if shared {
		if s, ok := w.memo[key]; ok {
			return s
		}
	}
	s := w.compute(v, depth)
	if shared {
		w.memo[key] = s
	}
	return s
}

func (w *walker) compute(v reflect.Value, depth int) uint64 {
	d := newDigest()
	d.writeString(v.Type().String())
	if depth > maxHashDepth {
		return d.Sum64()
	}

	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			d.writeUint(1)
		} else {
			d.writeUint(0)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		d.writeUint(uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		d.writeUint(v.Uint())
	case reflect.Float32, reflect.Float64:
		d.writeFloat(v.Float())
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		d.writeFloat(real(c))
		d.writeFloat(imag(c))
	case reflect.String:
		d.writeString(v.String())
	case reflect.Slice, reflect.Array:
		d.writeUint(uint64(v.Len()))
		for i := 0; i < v.Len(); i++ {
			d.writeUint(w.sum(v.Index(i), depth+1))
		}
	case reflect.Map:
		var entries uint64
		iter := v.MapRange()
		for iter.Next() {
			entry := newDigest()
			entry.writeUint(w.sum(iter.Key(), depth+1))
			entry.writeUint(w.sum(iter.Value(), depth+1))
			entries += entry.Sum64()
		}
		d.writeUint(uint64(v.Len()))
		d.writeUint(entries)
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			d.writeUint(w.sum(v.Field(i), depth+1))
		}
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			d.writeUint(0)
			break
		}
		d.writeUint(w.sum(v.Elem(), depth+1))
	case reflect.Chan, reflect.UnsafePointer:
		d.writeUint(uint64(v.Pointer()))
	case reflect.Func:
		// Non-nil funcs are never deeply equal; the type is enough.
	}
	return d.Sum64()
}

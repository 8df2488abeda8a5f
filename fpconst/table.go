// The fpconst package provides precomputed mathematical constants for
// each of the fract variants.
//
// Tables are built on first access by quantizing the float64 constants
// with FromFloat64(). The accessors return copies, so callers can't
// modify the shared tables.
package fpconst

import "math"
import "sync"

import "github.com/tinne26/fpnum/fract"

// Named constants for a single fixed point variant.
type Table[T fract.Number[T]] struct {
	Pi    T
	E     T
	Sqrt2 T
	Sqrt3 T
	Ln2   T
	Ln3   T
	Ln5   T
	Ln7   T
	Ln10  T
	Phi   T // golden ratio

	// angles, in radians
	Deg30  T
	Deg45  T
	Deg60  T
	Deg90  T
	Deg180 T
	Deg360 T
}

// A name and value pair, as returned by [Table.Entries]().
type Entry[T fract.Number[T]] struct {
	Name  string
	Value T
}

// Creates a table for the given variant. Most of the time you should
// use the tables returned by [FP2I](), [FP4]() and so on, which are
// only computed once.
func NewTable[T fract.Number[T]]() Table[T] {
	var zero T
	return Table[T]{
		Pi:    zero.FromFloat64(math.Pi),
		E:     zero.FromFloat64(math.E),
		Sqrt2: zero.FromFloat64(math.Sqrt2),
		Sqrt3: zero.FromFloat64(math.Sqrt(3)),
		Ln2:   zero.FromFloat64(math.Ln2),
		Ln3:   zero.FromFloat64(math.Log(3)),
		Ln5:   zero.FromFloat64(math.Log(5)),
		Ln7:   zero.FromFloat64(math.Log(7)),
		Ln10:  zero.FromFloat64(math.Ln10),
		Phi:   zero.FromFloat64(math.Phi),

		Deg30:  zero.FromFloat64(math.Pi/6),
		Deg45:  zero.FromFloat64(math.Pi/4),
		Deg60:  zero.FromFloat64(math.Pi/3),
		Deg90:  zero.FromFloat64(math.Pi/2),
		Deg180: zero.FromFloat64(math.Pi),
		Deg360: zero.FromFloat64(2*math.Pi),
	}
}

// Returns all the constants in a stable order.
func (self Table[T]) Entries() []Entry[T] {
	return []Entry[T]{
		{"Pi", self.Pi}, {"E", self.E}, {"Sqrt2", self.Sqrt2}, {"Sqrt3", self.Sqrt3},
		{"Ln2", self.Ln2}, {"Ln3", self.Ln3}, {"Ln5", self.Ln5}, {"Ln7", self.Ln7},
		{"Ln10", self.Ln10}, {"Phi", self.Phi},
		{"Deg30", self.Deg30}, {"Deg45", self.Deg45}, {"Deg60", self.Deg60},
		{"Deg90", self.Deg90}, {"Deg180", self.Deg180}, {"Deg360", self.Deg360},
	}
}

// Returns the constant with the given name (case sensitive, as
// in [Table.Entries]()).
func (self Table[T]) Lookup(name string) (T, bool) {
	for _, entry := range self.Entries() {
		if entry.Name == name { return entry.Value, true }
	}
	var zero T
	return zero, false
}

var (
	fp2iTable = sync.OnceValue(NewTable[fract.FP2I])
	fp2Table  = sync.OnceValue(NewTable[fract.FP2])
	fp4Table  = sync.OnceValue(NewTable[fract.FP4])
	fp6Table  = sync.OnceValue(NewTable[fract.FP6])
	fp8Table  = sync.OnceValue(NewTable[fract.FP8])
)

// Constants for each variant. Safe for concurrent use. Each call
// returns a copy of the shared table.

func FP2I() Table[fract.FP2I] { return fp2iTable() }
func FP2() Table[fract.FP2] { return fp2Table() }
func FP4() Table[fract.FP4] { return fp4Table() }
func FP6() Table[fract.FP6] { return fp6Table() }
func FP8() Table[fract.FP8] { return fp8Table() }

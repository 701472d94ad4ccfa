package canon

import (
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Builder assembles a canonical string key. Every field is tagged and
// length-delimited, so two different sequences of fields never render to
// the same key. The zero value is ready for use.
//
//	key := new(canon.Builder).
//		Int(state.Elevator).
//		SortedStrings(state.Floors[0]...).
//		SortedStrings(state.Floors[1]...).
//		Key()
type Builder struct {
	sb strings.Builder
}

// Int appends an integer field.
func (b *Builder) Int(v int) *Builder {
	b.sb.WriteByte('i')
	b.sb.WriteString(strconv.Itoa(v))
	b.sb.WriteByte(';')
	return b
}

// Bool appends a boolean field.
func (b *Builder) Bool(v bool) *Builder {
	if v {
		b.sb.WriteString("b1;")
	} else {
		b.sb.WriteString("b0;")
	}
	return b
}

// Text appends a string field.
func (b *Builder) Text(s string) *Builder {
	b.sb.WriteByte('s')
	b.sb.WriteString(strconv.Itoa(len(s)))
	b.sb.WriteByte(':')
	b.sb.WriteString(s)
	return b
}

// Ints appends an ordered list of integers.
func (b *Builder) Ints(vs ...int) *Builder {
	b.open(len(vs))
	for _, v := range vs {
		b.Int(v)
	}
	b.sb.WriteByte(']')
	return b
}

// SortedInts appends vs as a multiset: order is discarded, duplicates kept.
// vs itself is not modified.
func (b *Builder) SortedInts(vs ...int) *Builder {
	sorted := slices.Clone(vs)
	slices.Sort(sorted)
	return b.Ints(sorted...)
}

// Strings appends an ordered list of strings.
func (b *Builder) Strings(vs ...string) *Builder {
	b.open(len(vs))
	for _, v := range vs {
		b.Text(v)
	}
	b.sb.WriteByte(']')
	return b
}

// SortedStrings appends vs as a multiset: order is discarded, duplicates kept.
func (b *Builder) SortedStrings(vs ...string) *Builder {
	sorted := slices.Clone(vs)
	slices.Sort(sorted)
	return b.Strings(sorted...)
}

// StringSet appends vs as a set: order and duplicates are discarded.
func (b *Builder) StringSet(vs ...string) *Builder {
	set := lo.Uniq(vs)
	slices.Sort(set)
	return b.Strings(set...)
}

// Key returns the key built so far.
func (b *Builder) Key() string { return b.sb.String() }

func (b *Builder) open(n int) {
	b.sb.WriteByte('[')
	b.sb.WriteString(strconv.Itoa(n))
	b.sb.WriteByte('|')
}

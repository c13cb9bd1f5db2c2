package model

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

// Kind discriminates the variants of a [Key].
type Kind uint8

const (
	// KindFrame keys a frame joint by a running integer.
	KindFrame Kind = iota + 1
	// KindAnchor keys an anchor-line joint by anchor index and offset.
	KindAnchor
	// KindName keys a component by its name.
	KindName
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindFrame:
		return "frame"
	case KindAnchor:
		return "anchor"
	case KindName:
		return "name"
	default:
		return "invalid"
	}
}

// Key identifies a node or an edge. The zero Key is invalid and marks
// "no endpoint". Keys are comparable and usable as map keys.
type Key struct {
	kind   Kind
	num    int
	offset int
	name   string
}

// FrameKey returns the key of frame joint n.
func FrameKey(n int) Key {
	return Key{kind: KindFrame, num: n}
}

// AnchorKey returns the key of a joint on anchor line anchor. offset is the
// distance in whole metres between the joint and the seabed end of the line,
// so the seabed joint has offset 0 and keys sort from the seabed upward.
func AnchorKey(anchor, offset int) Key {
	return Key{kind: KindAnchor, num: anchor, offset: offset}
}

// NameKey returns the key of a named component.
func NameKey(name string) Key {
	return Key{kind: KindName, name: name}
}

// Kind returns the key variant.
func (k Key) Kind() Kind { return k.kind }

// IsZero reports whether k is the zero Key.
func (k Key) IsZero() bool { return k.kind == 0 }

// Int returns the frame joint number or the anchor index.
func (k Key) Int() int { return k.num }

// Offset returns the anchor-line offset. It is 0 for other kinds.
func (k Key) Offset() int { return k.offset }

// Name returns the component name. It is empty for other kinds.
func (k Key) Name() string { return k.name }

// String returns the display label.
//
// Anchor joints print as anchor + offset/1000 with up to three decimals,
// e.g. 1.045 for the joint 45 m above the seabed on anchor 1. Two anchor keys
// may share a label when an offset reaches 1000 m. The tagname written for a
// joint is [Node.Label], which rounds the unrounded offset and can differ
// from this string in the last digit.
func (k Key) String() string {
	switch k.kind {
	case KindFrame:
		return strconv.Itoa(k.num)
	case KindAnchor:
		frac := strings.TrimRight(fmt.Sprintf("%03d", k.offset%1000), "0")
		if frac == "" {
			frac = "0"
		}
		return strconv.Itoa(k.num+k.offset/1000) + "." + frac
	case KindName:
		return k.name
	default:
		return ""
	}
}

// Compare orders keys by kind, then number, then offset, then name.
// It returns -1, 0 or +1.
func (k Key) Compare(o Key) int {
	if c := cmp.Compare(k.kind, o.kind); c != 0 {
		return c
	}
	if c := cmp.Compare(k.num, o.num); c != 0 {
		return c
	}
	if c := cmp.Compare(k.offset, o.offset); c != 0 {
		return c
	}
	return strings.Compare(k.name, o.name)
}

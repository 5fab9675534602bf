package xpath

import (
	"strconv"
	"strings"

	"github.com/arjunvale/domselect/internal/store"
	"github.com/arjunvale/domselect/internal/textutil"
)

// valueKind tags Value's variant, the same flat-record pattern
// internal/store.Node uses for its own Kind-tagged fields: an XPath
// expression evaluates to exactly one of a node-set, an attribute-set (the
// document model has no separate attribute-node ids, so the attribute
// axis produces its own carrier type), a string, a number, or a boolean.
type valueKind int

const (
	vkNodeSet valueKind = iota
	vkAttrSet
	vkString
	vkNumber
	vkBool
)

// AttrRef names one attribute reached via the attribute axis: the element
// it belongs to plus the (name, value) pair itself.
type AttrRef struct {
	Elem  int
	Name  string
	Value string
}

// Value is an XPath expression's result. Only the field matching Kind is
// meaningful.
type Value struct {
	Kind  valueKind
	Nodes []int
	Attrs []AttrRef
	Str   string
	Num   float64
	Bool  bool
}

func nodeSetValue(nodes []int) Value { return Value{Kind: vkNodeSet, Nodes: nodes} }
func attrSetValue(attrs []AttrRef) Value { return Value{Kind: vkAttrSet, Attrs: attrs} }
func stringValue(s string) Value     { return Value{Kind: vkString, Str: s} }
func numberValue(n float64) Value    { return Value{Kind: vkNumber, Num: n} }
func boolValue(b bool) Value         { return Value{Kind: vkBool, Bool: b} }

// IsNodeSet reports whether v carries a node-set or attribute-set — the
// two "first-class selection result" variants, as opposed to a scalar.
func (v Value) IsNodeSet() bool { return v.Kind == vkNodeSet || v.Kind == vkAttrSet }

// Len reports the size of a node-set/attribute-set value.
func (v Value) Len() int {
	switch v.Kind {
	case vkNodeSet:
		return len(v.Nodes)
	case vkAttrSet:
		return len(v.Attrs)
	default:
		return 0
	}
}

// ToBool applies XPath's boolean() coercion.
func (v Value) ToBool() bool {
	switch v.Kind {
	case vkNodeSet, vkAttrSet:
		return v.Len() > 0
	case vkString:
		return v.Str != ""
	case vkNumber:
		return v.Num != 0 && !isNaN(v.Num)
	default:
		return v.Bool
	}
}

// ToNumber applies XPath's number() coercion.
func (v Value) ToNumber() float64 {
	switch v.Kind {
	case vkNumber:
		return v.Num
	case vkBool:
		if v.Bool {
			return 1
		}
		return 0
	case vkString:
		n, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
		if err != nil {
			return nan()
		}
		return n
	default:
		return strToNumber(v.ToString(nil))
	}
}

func strToNumber(s string) float64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nan()
	}
	return n
}

// ToString applies XPath's string() coercion. doc is required to compute
// the string-value of node-set/attribute-set results and may be nil for
// scalar values.
func (v Value) ToString(doc *store.Document) string {
	switch v.Kind {
	case vkString:
		return v.Str
	case vkNumber:
		return formatNumber(v.Num)
	case vkBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case vkNodeSet:
		if len(v.Nodes) == 0 {
			return ""
		}
		return textutil.Concat(doc, v.Nodes[0])
	case vkAttrSet:
		if len(v.Attrs) == 0 {
			return ""
		}
		return v.Attrs[0].Value
	default:
		return ""
	}
}

func formatNumber(n float64) string {
	if isNaN(n) {
		return "NaN"
	}
	if n == float64(int64(n)) {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}

func nan() float64 { var z float64; return z / z }
func isNaN(f float64) bool { return f != f }

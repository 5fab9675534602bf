package matcher

import (
	"strings"

	"github.com/arjunvale/domselect/internal/selector"
	"github.com/arjunvale/domselect/internal/store"
)

// AttrOp enumerates the attribute comparison operators.
type AttrOp int

const (
	// AttrPresent matches any element that has the attribute at all,
	// regardless of value.
	AttrPresent AttrOp = iota
	AttrEquals       // =
	AttrIncludesWord // ~=  whitespace-separated word
	AttrDashPrefix   // |=  value or value followed by "-"
	AttrPrefix       // ^=
	AttrSuffix       // $=
	AttrSubstring    // *=
)

// Attribute matches an element carrying an attribute satisfying
// (Name, Op, Value) under the given value case sensitivity. Name
// comparison is case-insensitive in HTML documents and case-sensitive in
// XML documents, regardless of CaseSensitiveValue.
type Attribute struct {
	Name               string
	Op                 AttrOp
	Value              string
	CaseSensitiveValue bool
}

func (m Attribute) Match(doc *store.Document, node int, _ *selector.Context) (bool, error) {
	n, err := doc.Get(node)
	if err != nil {
		return false, err
	}
	if !n.IsElement() {
		return false, nil
	}
	v, ok := n.Attr(m.Name, doc.Mode() == store.ModeXML)
	if !ok {
		return false, nil
	}
	if m.Op == AttrPresent {
		return true, nil
	}
	av, mv := v, m.Value
	if !m.CaseSensitiveValue {
		av, mv = strings.ToLower(av), strings.ToLower(mv)
	}
	switch m.Op {
	case AttrEquals:
		return av == mv, nil
	case AttrIncludesWord:
		if strings.ContainsAny(mv, " \t\n\r\f") || mv == "" {
			// A target value containing whitespace can never equal a
			// single whitespace-separated word, so it matches nothing.
			return false, nil
		}
		for _, word := range strings.Fields(av) {
			if word == mv {
				return true, nil
			}
		}
		return false, nil
	case AttrDashPrefix:
		return av == mv || strings.HasPrefix(av, mv+"-"), nil
	case AttrPrefix:
		return mv != "" && strings.HasPrefix(av, mv), nil
	case AttrSuffix:
		return mv != "" && strings.HasSuffix(av, mv), nil
	case AttrSubstring:
		return mv != "" && strings.Contains(av, mv), nil
	default:
		return false, nil
	}
}

func (m Attribute) Combinator() selector.Combinator { return selector.NoCombinator }
func (m Attribute) Filters() []selector.Selector    { return nil }
func (m Attribute) Validate() error                 { return nil }

// ID is sugar over an Attribute matcher on the "id" attribute.
func ID(value string) Attribute {
	return Attribute{Name: "id", Op: AttrEquals, Value: value, CaseSensitiveValue: true}
}

// Class is sugar over an Attribute matcher on the "class" attribute,
// splitting on whitespace as AttrIncludesWord.
func Class(value string) Attribute {
	return Attribute{Name: "class", Op: AttrIncludesWord, Value: value, CaseSensitiveValue: true}
}

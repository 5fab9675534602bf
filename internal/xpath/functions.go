package xpath

import (
	"strings"

	"github.com/arjunvale/domselect/internal/store"
)

// eval dispatches a FunctionCall to one of the core functions: position(),
// last(), count(), name(), local-name(), not(), true(), false(), string(),
// contains(), starts-with(), normalize-space().
func (f funcCall) eval(c *evalCtx) (Value, error) {
	args := f.args
	switch f.name {
	case "position":
		if err := arity(f.name, args, 0); err != nil {
			return Value{}, err
		}
		return numberValue(float64(c.ctx.Position())), nil
	case "last":
		if err := arity(f.name, args, 0); err != nil {
			return Value{}, err
		}
		return numberValue(float64(c.ctx.Last())), nil
	case "count":
		if err := arity(f.name, args, 1); err != nil {
			return Value{}, err
		}
		v, err := args[0].eval(c)
		if err != nil {
			return Value{}, err
		}
		if !v.IsNodeSet() {
			return Value{}, &Eval{Msg: "count() requires a node-set argument"}
		}
		return numberValue(float64(v.Len())), nil
	case "name", "local-name":
		if len(args) > 1 {
			return Value{}, &Eval{Msg: f.name + "() takes 0 or 1 arguments"}
		}
		node := c.node
		if len(args) == 1 {
			v, err := args[0].eval(c)
			if err != nil {
				return Value{}, err
			}
			if v.Kind == vkAttrSet {
				if len(v.Attrs) == 0 {
					return stringValue(""), nil
				}
				return stringValue(qualifiedAttrName(f.name, v.Attrs[0])), nil
			}
			if v.Kind != vkNodeSet || len(v.Nodes) == 0 {
				return stringValue(""), nil
			}
			node = v.Nodes[0]
		}
		return stringValue(nodeName(c.doc(), f.name, node)), nil
	case "not":
		if err := arity(f.name, args, 1); err != nil {
			return Value{}, err
		}
		v, err := args[0].eval(c)
		if err != nil {
			return Value{}, err
		}
		return boolValue(!v.ToBool()), nil
	case "true":
		if err := arity(f.name, args, 0); err != nil {
			return Value{}, err
		}
		return boolValue(true), nil
	case "false":
		if err := arity(f.name, args, 0); err != nil {
			return Value{}, err
		}
		return boolValue(false), nil
	case "string":
		if len(args) > 1 {
			return Value{}, &Eval{Msg: "string() takes 0 or 1 arguments"}
		}
		if len(args) == 0 {
			return stringValue(nodeStringValue(c.doc(), c.node)), nil
		}
		v, err := args[0].eval(c)
		if err != nil {
			return Value{}, err
		}
		return stringValue(v.ToString(c.doc())), nil
	case "contains":
		if err := arity(f.name, args, 2); err != nil {
			return Value{}, err
		}
		a, b, err := twoStrings(c, args)
		if err != nil {
			return Value{}, err
		}
		return boolValue(strings.Contains(a, b)), nil
	case "starts-with":
		if err := arity(f.name, args, 2); err != nil {
			return Value{}, err
		}
		a, b, err := twoStrings(c, args)
		if err != nil {
			return Value{}, err
		}
		return boolValue(strings.HasPrefix(a, b)), nil
	case "normalize-space":
		if len(args) > 1 {
			return Value{}, &Eval{Msg: "normalize-space() takes 0 or 1 arguments"}
		}
		var s string
		if len(args) == 1 {
			v, err := args[0].eval(c)
			if err != nil {
				return Value{}, err
			}
			s = v.ToString(c.doc())
		} else {
			s = nodeStringValue(c.doc(), c.node)
		}
		return stringValue(strings.Join(strings.Fields(s), " ")), nil
	default:
		return Value{}, &Eval{Msg: "unknown function " + f.name + "()"}
	}
}

func arity(name string, args []Expr, want int) error {
	if len(args) != want {
		return &Eval{Msg: name + "() takes exactly " + itoa(want) + " argument(s)"}
	}
	return nil
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	digits := []byte{}
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}

func twoStrings(c *evalCtx, args []Expr) (string, string, error) {
	av, err := args[0].eval(c)
	if err != nil {
		return "", "", err
	}
	bv, err := args[1].eval(c)
	if err != nil {
		return "", "", err
	}
	return av.ToString(c.doc()), bv.ToString(c.doc()), nil
}

// nodeName implements name()/local-name(): an element's tag (qualified
// with its namespace for name(), bare for local-name()), a processing
// instruction's target, or "" for every other kind — the document model
// carries no separate attribute-node id, so attribute results are named
// via qualifiedAttrName instead.
func nodeName(doc *store.Document, which string, node int) string {
	if node == virtualRoot {
		return ""
	}
	n := doc.MustGet(node)
	switch n.Kind {
	case store.KindElement:
		if which == "name" && n.Namespace != "" {
			return n.Namespace + ":" + n.Tag
		}
		return n.Tag
	case store.KindProcessingInstruction:
		return n.Target
	default:
		return ""
	}
}

func qualifiedAttrName(which string, a AttrRef) string {
	return a.Name
}

package vdom

import (
	"errors"
	"fmt"
)

// ErrInvalidElementType is returned by CreateElement for types the host
// cannot render.
var ErrInvalidElementType = errors.New("vdom: invalid element type")

// FuncComponentType is a function component: it renders from props alone.
type FuncComponentType func(props Props) *VNode

// CreateElement is the native element constructor. typ may be a tag name, a
// ComponentType, a FuncComponentType (or a plain func(Props) *VNode), a
// func() *VNode, or a constructed Component. The remaining arguments are
// props (Props, map[string]any, Attr, []Attr, EventHandler) and children.
func CreateElement(typ any, args ...any) (*VNode, error) {
	switch t := typ.(type) {
	case string:
		if t == "" {
			return nil, fmt.Errorf("%w: empty tag name", ErrInvalidElementType)
		}
		return createElement(t, args), nil

	case ComponentType:
		props, key := resolveProps(t.Statics().DefaultProps(), args)
		return &VNode{Kind: KindComponent, Type: t, Props: props, Key: key}, nil

	case FuncComponentType:
		return funcElement(t, args), nil

	case func(Props) *VNode:
		return funcElement(t, args), nil

	case func() *VNode:
		return &VNode{Kind: KindComponent, Comp: Func(t)}, nil

	case Component:
		return &VNode{Kind: KindComponent, Comp: t}, nil

	case nil:
		return nil, fmt.Errorf("%w: nil", ErrInvalidElementType)

	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidElementType, typ)
	}
}

// IsElementType reports whether CreateElement accepts typ as is.
func IsElementType(typ any) bool {
	switch t := typ.(type) {
	case string:
		return t != ""
	case ComponentType, FuncComponentType, func(Props) *VNode, func() *VNode, Component:
		return true
	}
	return false
}

func funcElement(fn func(Props) *VNode, args []any) *VNode {
	props, key := resolveProps(nil, args)
	return &VNode{
		Kind:  KindComponent,
		Comp:  Func(func() *VNode { return fn(props) }),
		Props: props,
		Key:   key,
	}
}

// resolveProps collects props and children for a component element.
// Children land in props["children"]; defaults fill keys left unset.
func resolveProps(defaults Props, args []any) (Props, string) {
	props := Props{}
	var children []*VNode

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
		case Props:
			for k, val := range v {
				props[k] = val
			}
		case map[string]any:
			for k, val := range v {
				props[k] = val
			}
		case Attr:
			if v.Key != "" {
				props[v.Key] = v.Value
			}
		case []Attr:
			for _, a := range v {
				if a.Key != "" {
					props[a.Key] = a.Value
				}
			}
		case EventHandler:
			props[v.Event] = v.Handler
		default:
			children = appendChildren(children, []any{v})
		}
	}

	var key string
	if k, ok := props["key"]; ok {
		key, _ = k.(string)
		delete(props, "key")
	}
	if len(children) > 0 {
		props["children"] = children
	}
	for k, v := range defaults {
		if _, ok := props[k]; !ok {
			props[k] = v
		}
	}
	return props, key
}

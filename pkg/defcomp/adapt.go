package defcomp

import (
	"sort"

	"github.com/vango-dev/defkit/pkg/vdom"
)

// Adapt builds a component type from a definition. def may be a
// *Definition, a Definition or a RenderFunc. It fails with an
// *InvalidDefinitionError when the definition is nil, has no usable
// getElement, or holds a property that cannot be classified.
func Adapt(def any) (*Class, error) {
	switch d := def.(type) {
	case nil:
		return nil, missingDefinition()
	case *Definition:
		if d == nil || *d == nil {
			return nil, missingDefinition()
		}
		return adaptDefinition(*d)
	case Definition:
		if d == nil {
			return nil, missingDefinition()
		}
		return adaptDefinition(d)
	case RenderFunc:
		if d == nil {
			return nil, missingDefinition()
		}
		return adaptFunc(d), nil
	default:
		return nil, invalid(CodeMissingRender, KeyGetElement,
			"getElement must be a func(*Instance) *vdom.VNode, got %T", def)
	}
}

func missingDefinition() error {
	return invalid(CodeMissingDefinition, "", "the component definition is missing")
}

func newClass(render RenderFunc) *Class {
	return &Class{
		statics: vdom.Statics{},
		render:  render,
		methods: map[string]Method{},
	}
}

// adaptFunc uses a bare render function as getElement. The function's name
// becomes the display name.
func adaptFunc(render RenderFunc) *Class {
	c := newClass(render)
	if name := funcName(render); name != "" {
		c.statics[vdom.StaticDisplayName] = name
	}
	return c
}

func adaptDefinition(def Definition) (*Class, error) {
	value, ok := def[KeyGetElement]
	if !ok || value == nil {
		return nil, invalid(CodeMissingRender, KeyGetElement,
			"getElement is missing from the component definition")
	}
	render, ok := value.(RenderFunc)
	if !ok || render == nil {
		return nil, invalid(CodeMissingRender, KeyGetElement,
			"getElement must be a func(*Instance) *vdom.VNode, got %T", value)
	}

	c := newClass(render)

	if value := def[KeySetupComponent]; value != nil {
		setup, ok := value.(func(*Instance))
		if !ok {
			return nil, invalid(CodeBadSetup, KeySetupComponent,
				"setupComponent must be a func(*Instance), got %T", value)
		}
		c.setup = setup
	}

	if value := def[KeyGetNextState]; value != nil {
		next, ok := value.(func(*Instance, vdom.Props) vdom.State)
		if !ok {
			return nil, invalid(CodeBadNextState, KeyGetNextState,
				"getNextState must be a func(*Instance, vdom.Props) vdom.State, got %T", value)
		}
		if next != nil {
			c.lifecycle.ComponentWillReceiveProps = func(inst vdom.Instance, nextProps vdom.Props) {
				if state := next(self(inst), nextProps); len(state) > 0 {
					inst.Base().SetState(state)
				}
			}
		}
	}

	keys := make([]string, 0, len(def))
	for key := range def {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := def[key]
		switch {
		case staticKeys[key]:
			c.statics[key] = value
		case lifecycleKeys[key]:
			if err := c.attachLifecycle(key, value); err != nil {
				return nil, err
			}
		case adapterKeys[key]:
		default:
			m, err := bindable(key, value)
			if err != nil {
				return nil, err
			}
			c.methods[key] = m
		}
	}

	return c, nil
}

// attachLifecycle wraps a hook into a forwarder on the shared lifecycle
// table. Forwarders pass the instance as the hook's first argument. Nil
// hooks are skipped.
func (c *Class) attachLifecycle(key string, value any) error {
	if value == nil {
		return nil
	}
	lc := &c.lifecycle
	var ok bool

	switch key {
	case vdom.HookGetChildContext:
		var fn func(*Instance) map[string]any
		if fn, ok = value.(func(*Instance) map[string]any); ok && fn != nil {
			lc.GetChildContext = func(inst vdom.Instance) map[string]any { return fn(self(inst)) }
		}
	case vdom.HookComponentWillMount:
		var fn func(*Instance)
		if fn, ok = value.(func(*Instance)); ok && fn != nil {
			lc.ComponentWillMount = func(inst vdom.Instance) { fn(self(inst)) }
		}
	case vdom.HookComponentDidMount:
		var fn func(*Instance)
		if fn, ok = value.(func(*Instance)); ok && fn != nil {
			lc.ComponentDidMount = func(inst vdom.Instance) { fn(self(inst)) }
		}
	case vdom.HookComponentWillUnmount:
		var fn func(*Instance)
		if fn, ok = value.(func(*Instance)); ok && fn != nil {
			lc.ComponentWillUnmount = func(inst vdom.Instance) { fn(self(inst)) }
		}
	case vdom.HookShouldComponentUpdate:
		var fn func(*Instance, vdom.Props, vdom.State) bool
		if fn, ok = value.(func(*Instance, vdom.Props, vdom.State) bool); ok && fn != nil {
			lc.ShouldComponentUpdate = func(inst vdom.Instance, p vdom.Props, s vdom.State) bool {
				return fn(self(inst), p, s)
			}
		}
	case vdom.HookComponentWillUpdate:
		var fn func(*Instance, vdom.Props, vdom.State)
		if fn, ok = value.(func(*Instance, vdom.Props, vdom.State)); ok && fn != nil {
			lc.ComponentWillUpdate = func(inst vdom.Instance, p vdom.Props, s vdom.State) { fn(self(inst), p, s) }
		}
	case vdom.HookComponentDidUpdate:
		var fn func(*Instance, vdom.Props, vdom.State)
		if fn, ok = value.(func(*Instance, vdom.Props, vdom.State)); ok && fn != nil {
			lc.ComponentDidUpdate = func(inst vdom.Instance, p vdom.Props, s vdom.State) { fn(self(inst), p, s) }
		}
	}

	if !ok {
		return invalid(CodeBadLifecycle, key,
			"lifecycle method %q must be a %s, got %T", key, lifecycleSignature(key), value)
	}
	return nil
}

func lifecycleSignature(key string) string {
	switch key {
	case vdom.HookGetChildContext:
		return "func(*Instance) map[string]any"
	case vdom.HookShouldComponentUpdate:
		return "func(*Instance, vdom.Props, vdom.State) bool"
	case vdom.HookComponentWillUpdate, vdom.HookComponentDidUpdate:
		return "func(*Instance, vdom.Props, vdom.State)"
	default:
		return "func(*Instance)"
	}
}

// bindable converts a property to an instance method.
func bindable(key string, value any) (Method, error) {
	switch fn := value.(type) {
	case Method:
		if fn != nil {
			return fn, nil
		}
	case func(*Instance):
		if fn != nil {
			return func(my *Instance, _ ...any) any {
				fn(my)
				return nil
			}, nil
		}
	}
	return nil, invalid(CodeUnbindable, key,
		"unable to bind property %q; it must be a func(*Instance, ...any) any or func(*Instance), got %T", key, value)
}

// self recovers the adapted instance the host passes back to a hook.
func self(inst vdom.Instance) *Instance {
	return inst.(*Instance)
}

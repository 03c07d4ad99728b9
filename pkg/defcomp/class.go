package defcomp

import (
	"fmt"
	"sort"

	"github.com/vango-dev/defkit/pkg/vdom"
)

// Class is an adapted component type. It implements vdom.ComponentType and
// is never modified after Adapt returns it.
type Class struct {
	statics   vdom.Statics
	lifecycle vdom.Lifecycle
	render    RenderFunc
	setup     func(*Instance)
	methods   map[string]Method
}

var _ vdom.ComponentType = (*Class)(nil)

// Statics returns a copy of the type's statics.
func (c *Class) Statics() vdom.Statics {
	out := make(vdom.Statics, len(c.statics))
	for k, v := range c.statics {
		out[k] = v
	}
	return out
}

// Lifecycle returns the shared hook table. Callers must not modify it.
func (c *Class) Lifecycle() *vdom.Lifecycle {
	return &c.lifecycle
}

// DisplayName returns the displayName static.
func (c *Class) DisplayName() string {
	return c.statics.DisplayName()
}

// Methods returns the names of the instance methods in sorted order.
func (c *Class) Methods() []string {
	names := make([]string, 0, len(c.methods))
	for name := range c.methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New implements vdom.ComponentType.
func (c *Class) New(props vdom.Props, context map[string]any) vdom.Instance {
	return c.Construct(props, context)
}

// Construct creates an instance: the base is constructed first, then every
// method is bound, then setupComponent runs.
func (c *Class) Construct(props vdom.Props, context map[string]any) *Instance {
	inst := &Instance{class: c}
	inst.ComponentBase.Construct(props, context)

	inst.methods = make(map[string]BoundMethod, len(c.methods))
	for name, m := range c.methods {
		inst.methods[name] = func(args ...any) any {
			return m(inst, args...)
		}
	}

	if c.setup != nil {
		c.setup(inst)
	}
	return inst
}

// Instance is a mounted adapted component.
type Instance struct {
	vdom.ComponentBase

	class   *Class
	methods map[string]BoundMethod
	fields  map[string]any
}

// Render calls the definition's getElement with the instance.
func (i *Instance) Render() *vdom.VNode {
	return i.class.render(i)
}

// Class returns the type the instance was constructed from.
func (i *Instance) Class() *Class {
	return i.class
}

// Method returns the method bound to this instance, or nil.
func (i *Instance) Method(name string) BoundMethod {
	return i.methods[name]
}

// Call invokes a bound method. It panics if the method does not exist.
func (i *Instance) Call(name string, args ...any) any {
	m, ok := i.methods[name]
	if !ok {
		panic(fmt.Sprintf("defcomp: %s has no method %q", i.describe(), name))
	}
	return m(args...)
}

// Get returns an instance field set with Set.
func (i *Instance) Get(key string) any {
	return i.fields[key]
}

// Set stores an instance field. Fields hold per-instance references such as
// timers or cached callbacks and are not part of state.
func (i *Instance) Set(key string, value any) {
	if i.fields == nil {
		i.fields = make(map[string]any)
	}
	i.fields[key] = value
}

func (i *Instance) describe() string {
	if name := i.class.DisplayName(); name != "" {
		return name
	}
	return "component"
}

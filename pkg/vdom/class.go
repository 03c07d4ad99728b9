package vdom

// State holds a class component's mutable state.
type State map[string]any

// Recognized static names. The host reads displayName, defaultProps and
// contextTypes; the rest are carried for introspection.
const (
	StaticDisplayName       = "displayName"
	StaticDefaultProps      = "defaultProps"
	StaticPropTypes         = "propTypes"
	StaticContextTypes      = "contextTypes"
	StaticChildContextTypes = "childContextTypes"
)

// Recognized lifecycle hook names, one per Lifecycle field.
const (
	HookGetChildContext           = "getChildContext"
	HookComponentWillMount        = "componentWillMount"
	HookComponentDidMount         = "componentDidMount"
	HookComponentWillReceiveProps = "componentWillReceiveProps"
	HookShouldComponentUpdate     = "shouldComponentUpdate"
	HookComponentWillUpdate       = "componentWillUpdate"
	HookComponentDidUpdate        = "componentDidUpdate"
	HookComponentWillUnmount      = "componentWillUnmount"
)

// Statics is the static configuration published by a ComponentType.
type Statics map[string]any

// DisplayName returns the displayName static, or "" if unset or not a string.
func (s Statics) DisplayName() string {
	name, _ := s[StaticDisplayName].(string)
	return name
}

// DefaultProps returns the defaultProps static.
func (s Statics) DefaultProps() Props {
	return asProps(s[StaticDefaultProps])
}

// ContextTypes returns the contextTypes static.
func (s Statics) ContextTypes() map[string]any {
	switch v := s[StaticContextTypes].(type) {
	case map[string]any:
		return v
	case Props:
		return v
	}
	return nil
}

func asProps(v any) Props {
	switch p := v.(type) {
	case Props:
		return p
	case map[string]any:
		return p
	}
	return nil
}

// Lifecycle is the shared hook table of a ComponentType. Every hook takes the
// instance it runs for as its first argument. Nil hooks are skipped.
type Lifecycle struct {
	GetChildContext           func(inst Instance) map[string]any
	ComponentWillMount        func(inst Instance)
	ComponentDidMount         func(inst Instance)
	ComponentWillReceiveProps func(inst Instance, nextProps Props)
	ShouldComponentUpdate     func(inst Instance, nextProps Props, nextState State) bool
	ComponentWillUpdate       func(inst Instance, nextProps Props, nextState State)
	ComponentDidUpdate        func(inst Instance, prevProps Props, prevState State)
	ComponentWillUnmount      func(inst Instance)
}

// ComponentType is a class-style component. The host calls New once per
// mount and drives the resulting instance through the Lifecycle hooks.
type ComponentType interface {
	Statics() Statics
	Lifecycle() *Lifecycle
	New(props Props, context map[string]any) Instance
}

// Instance is a mounted class component.
type Instance interface {
	Component
	Base() *ComponentBase
}

// ComponentBase holds the host-managed part of a class component instance.
// Implementations embed it and return it from Base.
type ComponentBase struct {
	Props   Props
	State   State
	Context map[string]any

	batching bool
	pending  State
}

// Construct initializes the base. It must run before any other
// initialization of the instance.
func (b *ComponentBase) Construct(props Props, context map[string]any) {
	if props == nil {
		props = Props{}
	}
	b.Props = props
	b.State = State{}
	b.Context = context
	b.batching = false
	b.pending = nil
}

// Base returns the receiver. It lets embedding types satisfy Instance.
func (b *ComponentBase) Base() *ComponentBase {
	return b
}

// SetState shallow merges partial into the state. Existing keys not present
// in partial are kept. During an update the merge is deferred until the
// update commits.
func (b *ComponentBase) SetState(partial State) {
	if len(partial) == 0 {
		return
	}
	if b.batching {
		if b.pending == nil {
			b.pending = State{}
		}
		for k, v := range partial {
			b.pending[k] = v
		}
		return
	}
	b.State = mergeState(b.State, partial)
}

// Children returns the child nodes passed to the element.
func (b *ComponentBase) Children() []*VNode {
	children, _ := b.Props["children"].([]*VNode)
	return children
}

func mergeState(prev, partial State) State {
	next := make(State, len(prev)+len(partial))
	for k, v := range prev {
		next[k] = v
	}
	for k, v := range partial {
		next[k] = v
	}
	return next
}

// Mount constructs an instance of typ and runs componentWillMount. The
// context is masked to the type's contextTypes when declared.
func Mount(typ ComponentType, props Props, context map[string]any) Instance {
	inst := typ.New(props, MaskContext(typ.Statics(), context))
	if hook := typ.Lifecycle().ComponentWillMount; hook != nil {
		hook(inst)
	}
	return inst
}

// DidMount runs componentDidMount once the instance output is in place.
func DidMount(typ ComponentType, inst Instance) {
	if hook := typ.Lifecycle().ComponentDidMount; hook != nil {
		hook(inst)
	}
}

// Update delivers nextProps to a mounted instance. It returns false when
// shouldComponentUpdate rejected the update; props and state are committed
// either way.
func Update(typ ComponentType, inst Instance, nextProps Props) bool {
	base := inst.Base()
	lc := typ.Lifecycle()
	if nextProps == nil {
		nextProps = Props{}
	}

	prevProps, prevState := base.Props, base.State

	if lc.ComponentWillReceiveProps != nil {
		base.batching = true
		lc.ComponentWillReceiveProps(inst, nextProps)
		base.batching = false
	}
	nextState := prevState
	if len(base.pending) > 0 {
		nextState = mergeState(prevState, base.pending)
	}
	base.pending = nil

	if lc.ShouldComponentUpdate != nil && !lc.ShouldComponentUpdate(inst, nextProps, nextState) {
		base.Props, base.State = nextProps, nextState
		return false
	}
	if lc.ComponentWillUpdate != nil {
		lc.ComponentWillUpdate(inst, nextProps, nextState)
	}
	base.Props, base.State = nextProps, nextState
	if lc.ComponentDidUpdate != nil {
		lc.ComponentDidUpdate(inst, prevProps, prevState)
	}
	return true
}

// Unmount runs componentWillUnmount.
func Unmount(typ ComponentType, inst Instance) {
	if hook := typ.Lifecycle().ComponentWillUnmount; hook != nil {
		hook(inst)
	}
}

// ChildContext returns the context visible to the children of inst: the
// parent context extended with getChildContext output.
func ChildContext(typ ComponentType, inst Instance, parent map[string]any) map[string]any {
	hook := typ.Lifecycle().GetChildContext
	if hook == nil {
		return parent
	}
	extra := hook(inst)
	if len(extra) == 0 {
		return parent
	}
	merged := make(map[string]any, len(parent)+len(extra))
	for k, v := range parent {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}

// MaskContext keeps only the context keys declared in contextTypes. Types
// without contextTypes receive no context.
func MaskContext(statics Statics, context map[string]any) map[string]any {
	types := statics.ContextTypes()
	if len(types) == 0 || len(context) == 0 {
		return nil
	}
	masked := make(map[string]any, len(types))
	for key := range types {
		if v, ok := context[key]; ok {
			masked[key] = v
		}
	}
	return masked
}

package defcomp

import (
	"reflect"
	"runtime"
	"strings"

	"github.com/vango-dev/defkit/pkg/vdom"
)

// Definition describes a component by named properties. Pass it by pointer:
// the element factory caches adapted components by that pointer.
type Definition map[string]any

// Adapter hook names.
const (
	KeyGetElement     = "getElement"
	KeySetupComponent = "setupComponent"
	KeyGetNextState   = "getNextState"
)

// Hook and method shapes accepted in a Definition.
type (
	// RenderFunc is the getElement hook, and the bare function form of a
	// definition.
	RenderFunc = func(my *Instance) *vdom.VNode

	// Method is an instance method. It receives the instance it is bound to.
	Method = func(my *Instance, args ...any) any

	// BoundMethod is a Method bound to one instance.
	BoundMethod = func(args ...any) any
)

var staticKeys = map[string]bool{
	vdom.StaticDisplayName:       true,
	vdom.StaticDefaultProps:      true,
	vdom.StaticPropTypes:         true,
	vdom.StaticContextTypes:      true,
	vdom.StaticChildContextTypes: true,
}

// lifecycleKeys are the host hooks a definition may provide directly.
// componentWillReceiveProps is driven by getNextState instead.
var lifecycleKeys = map[string]bool{
	vdom.HookGetChildContext:       true,
	vdom.HookComponentWillMount:    true,
	vdom.HookComponentDidMount:     true,
	vdom.HookShouldComponentUpdate: true,
	vdom.HookComponentWillUpdate:   true,
	vdom.HookComponentDidUpdate:    true,
	vdom.HookComponentWillUnmount:  true,
}

var adapterKeys = map[string]bool{
	KeyGetElement:     true,
	KeySetupComponent: true,
	KeyGetNextState:   true,
}

// IsStatic reports whether name is copied onto the component type.
func IsStatic(name string) bool { return staticKeys[name] }

// IsLifecycle reports whether name is a host lifecycle hook.
func IsLifecycle(name string) bool { return lifecycleKeys[name] }

// IsAdapterHook reports whether name is one of getElement, setupComponent
// and getNextState.
func IsAdapterHook(name string) bool { return adapterKeys[name] }

// funcName returns the declared name of fn, or "" for closures.
func funcName(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return ""
	}
	rf := runtime.FuncForPC(v.Pointer())
	if rf == nil {
		return ""
	}
	name := rf.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	// Closures are named func1, func1.2, ... and method values end in -fm.
	if strings.Trim(strings.TrimPrefix(name, "func"), "0123456789") == "" {
		return ""
	}
	return strings.TrimSuffix(name, "-fm")
}

// Package defcomp builds vdom class components from plain definitions.
//
// A Definition is a map from property name to value. Each property is
// classified into exactly one category:
//
//   - statics: displayName, defaultProps, propTypes, contextTypes,
//     childContextTypes. Copied verbatim onto the component type.
//   - lifecycle hooks: getChildContext, componentWillMount,
//     componentDidMount, shouldComponentUpdate, componentWillUpdate,
//     componentDidUpdate, componentWillUnmount. Attached to the type's shared
//     lifecycle table; each receives the instance as its first argument.
//   - adapter hooks: getElement (required), setupComponent, getNextState.
//   - instance methods: anything else. Bound to every instance so the bound
//     copy can be passed around as a plain callback.
//
// A bare RenderFunc is accepted in place of a Definition and used as
// getElement.
//
//	counter := &defcomp.Definition{
//	    "displayName": "Counter",
//	    "setupComponent": func(my *defcomp.Instance) {
//	        my.SetState(vdom.State{"count": 0})
//	    },
//	    "increment": func(my *defcomp.Instance, args ...any) any {
//	        my.SetState(vdom.State{"count": my.State["count"].(int) + 1})
//	        return nil
//	    },
//	    "getElement": func(my *defcomp.Instance) *vdom.VNode {
//	        return vdom.Button(vdom.OnClick(my.Method("increment")),
//	            vdom.Textf("%d", my.State["count"]))
//	    },
//	}
//
//	node, err := defcomp.CreateElement(counter, vdom.Props{"step": 1})
//
// The element factory adapts each *Definition at most once and reuses the
// resulting *Class for every later element built from the same pointer.
// Tag names and host component values pass straight through to
// vdom.CreateElement.
package defcomp

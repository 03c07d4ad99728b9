// Package vtest provides testing helpers for class components.
//
// The vtest package reduces boilerplate when testing components by mounting
// them the way the renderer does and asserting on the HTML they produce.
//
// # Quick Start
//
//	func TestCounter(t *testing.T) {
//	    h := vtest.Mount(t, counter, vdom.Props{"start": 2})
//	    h.ExpectContains("<span>2</span>")
//	    h.SetProps(vdom.Props{"start": 5})
//	    h.ExpectContains("<span>5</span>")
//	    h.Unmount()
//	}
//
// # Fluent Context Builder
//
// Components that declare contextTypes read context supplied by an
// ancestor. The context builder stands in for that ancestor:
//
//	ctx := vtest.NewCtx().
//	    With("theme", "dark").
//	    With("locale", "en").
//	    Build()
//	h := vtest.MountContext(t, label, nil, ctx)
//
// # Render Assertions
//
// Assert on rendered HTML output of any node:
//
//	vtest.ExpectContains(t, node, "Welcome")
//	vtest.ExpectNotContains(t, node, "Login")
package vtest

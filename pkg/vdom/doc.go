// Package vdom provides the virtual DOM and component host used by defkit.
//
// VNode is the fundamental building block representing elements, text,
// fragments, components, and raw HTML. Props holds attributes and event
// handlers. Attr and EventHandler are used to build Props.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	)
//
// # Class Components
//
// A ComponentType is a class-style component: the host instantiates it once
// per mount, the instance embeds ComponentBase for props, state and context,
// and the type publishes a shared Lifecycle table of hooks. CreateElement is
// the native element constructor; it accepts a tag name, a ComponentType, a
// function component, or an already constructed Component.
//
// Mount, Update and Unmount drive an instance through its lifecycle. The
// render package mounts class components while rendering to HTML.
package vdom

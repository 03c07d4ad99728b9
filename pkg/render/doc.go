// Package render provides server-side rendering of vdom trees to HTML.
//
// Class components are mounted while rendering: the renderer constructs an
// instance, runs componentWillMount, renders its output and threads the
// getChildContext result down to descendants. componentDidMount is not run
// since nothing is attached to a live document.
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(node)
//
// All text content is escaped. Raw HTML can be inserted using KindRaw nodes,
// but should only be used with trusted content.
package render

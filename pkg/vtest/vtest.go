package vtest

import (
	"strings"
	"testing"

	"github.com/vango-dev/defkit/pkg/render"
	"github.com/vango-dev/defkit/pkg/vdom"
)

// CtxBuilder allows fluent construction of a parent context.
type CtxBuilder struct {
	ctx map[string]any
}

// NewCtx creates a new context builder for testing.
func NewCtx() *CtxBuilder {
	return &CtxBuilder{ctx: make(map[string]any)}
}

// With sets a context value.
//
// Example:
//
//	ctx := vtest.NewCtx().With("theme", "dark").Build()
func (b *CtxBuilder) With(key string, val any) *CtxBuilder {
	b.ctx[key] = val
	return b
}

// Build returns the final context for use in tests.
func (b *CtxBuilder) Build() map[string]any {
	return b.ctx
}

// Harness drives a mounted class component through its lifecycle.
type Harness struct {
	t       *testing.T
	typ     vdom.ComponentType
	inst    vdom.Instance
	context map[string]any
	mounted bool
}

// Mount mounts typ with props and runs componentDidMount.
// Default props are applied as CreateElement would.
func Mount(t *testing.T, typ vdom.ComponentType, props vdom.Props) *Harness {
	t.Helper()
	return MountContext(t, typ, props, nil)
}

// MountContext is like Mount with a parent context.
func MountContext(t *testing.T, typ vdom.ComponentType, props vdom.Props, ctx map[string]any) *Harness {
	t.Helper()
	node, err := vdom.CreateElement(typ, props)
	if err != nil {
		t.Fatalf("vtest: CreateElement: %v", err)
	}
	h := &Harness{t: t, typ: typ, context: ctx}
	h.inst = vdom.Mount(typ, node.Props, ctx)
	vdom.DidMount(typ, h.inst)
	h.mounted = true
	return h
}

// Instance returns the mounted instance.
func (h *Harness) Instance() vdom.Instance {
	return h.inst
}

// SetProps updates the instance with next and reports whether it re-rendered.
func (h *Harness) SetProps(next vdom.Props) bool {
	h.t.Helper()
	if !h.mounted {
		h.t.Fatal("vtest: SetProps after Unmount")
	}
	return vdom.Update(h.typ, h.inst, next)
}

// Unmount runs componentWillUnmount.
func (h *Harness) Unmount() {
	h.t.Helper()
	if !h.mounted {
		h.t.Fatal("vtest: Unmount called twice")
	}
	vdom.Unmount(h.typ, h.inst)
	h.mounted = false
}

// ChildContext returns the context the instance provides to its children.
func (h *Harness) ChildContext() map[string]any {
	return vdom.ChildContext(h.typ, h.inst, h.context)
}

// HTML renders the instance's current output.
func (h *Harness) HTML() string {
	h.t.Helper()
	html, err := render.NewRenderer(render.RendererConfig{}).RenderToString(h.inst.Render())
	if err != nil {
		h.t.Fatalf("vtest: render: %v", err)
	}
	return html
}

// ExpectContains asserts that the current output contains expected.
func (h *Harness) ExpectContains(expected string) {
	h.t.Helper()
	if html := h.HTML(); !strings.Contains(html, expected) {
		h.t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// RenderToString renders a VNode and returns the HTML string.
// This is useful for asserting on rendered output.
//
// Example:
//
//	html := vtest.RenderToString(node)
//	if !strings.Contains(html, "expected text") {
//	    t.Error("missing expected text")
//	}
func RenderToString(node *vdom.VNode) string {
	r := render.NewRenderer(render.RendererConfig{})
	html, err := r.RenderToString(node)
	if err != nil {
		return ""
	}
	return html
}

// ExpectContains asserts that rendered output contains expected substring.
func ExpectContains(t *testing.T, node *vdom.VNode, expected string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that rendered output does not contain substring.
func ExpectNotContains(t *testing.T, node *vdom.VNode, unexpected string) {
	t.Helper()
	html := RenderToString(node)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectElement asserts that rendered output contains a specific tag.
func ExpectElement(t *testing.T, node *vdom.VNode, tag string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, "<"+tag) {
		t.Errorf("expected rendered output to contain <%s> element, got:\n%s", tag, truncate(html, 500))
	}
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

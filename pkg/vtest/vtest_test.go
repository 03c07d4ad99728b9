package vtest

import (
	"testing"

	"github.com/vango-dev/defkit/pkg/defcomp"
	"github.com/vango-dev/defkit/pkg/vdom"
)

func TestHarnessLifecycle(t *testing.T) {
	var hooks []string
	class, err := defcomp.Adapt(&defcomp.Definition{
		"defaultProps":         vdom.Props{"label": "none"},
		"componentDidMount":    func(*defcomp.Instance) { hooks = append(hooks, "didMount") },
		"componentWillUnmount": func(*defcomp.Instance) { hooks = append(hooks, "willUnmount") },
		"getElement": func(my *defcomp.Instance) *vdom.VNode {
			return vdom.Span(vdom.Class("tag"), my.Props["label"].(string))
		},
	})
	if err != nil {
		t.Fatalf("Adapt: %v", err)
	}

	h := Mount(t, class, nil)
	h.ExpectContains(`<span class="tag">none</span>`)

	if !h.SetProps(vdom.Props{"label": "go"}) {
		t.Error("SetProps should re-render")
	}
	h.ExpectContains(">go<")
	h.Unmount()

	if len(hooks) != 2 || hooks[0] != "didMount" || hooks[1] != "willUnmount" {
		t.Errorf("hooks = %v", hooks)
	}
}

func TestMountContext(t *testing.T) {
	class, err := defcomp.Adapt(&defcomp.Definition{
		"contextTypes": map[string]any{"theme": "string"},
		"getElement": func(my *defcomp.Instance) *vdom.VNode {
			return vdom.Textf("theme=%v locale=%v", my.Context["theme"], my.Context["locale"])
		},
	})
	if err != nil {
		t.Fatalf("Adapt: %v", err)
	}

	ctx := NewCtx().With("theme", "dark").With("locale", "en").Build()
	h := MountContext(t, class, nil, ctx)
	h.ExpectContains("theme=dark locale=&lt;nil&gt;")
}

func TestRenderAssertions(t *testing.T) {
	node := vdom.Div(vdom.Button("Save"))
	ExpectContains(t, node, "Save")
	ExpectNotContains(t, node, "Cancel")
	ExpectElement(t, node, "button")
}

func TestHarnessChildContext(t *testing.T) {
	class, err := defcomp.Adapt(&defcomp.Definition{
		"getChildContext": func(my *defcomp.Instance) map[string]any {
			return map[string]any{"theme": my.Props["theme"]}
		},
		"getElement": func(my *defcomp.Instance) *vdom.VNode { return nil },
	})
	if err != nil {
		t.Fatalf("Adapt: %v", err)
	}

	h := MountContext(t, class, vdom.Props{"theme": "dark"}, NewCtx().With("locale", "en").Build())
	ctx := h.ChildContext()
	if ctx["theme"] != "dark" || ctx["locale"] != "en" {
		t.Errorf("ChildContext() = %v", ctx)
	}
}

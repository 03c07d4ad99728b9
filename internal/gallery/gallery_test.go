package gallery

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vango-dev/defkit/pkg/defcomp"
	"github.com/vango-dev/defkit/pkg/render"
	"github.com/vango-dev/defkit/pkg/vdom"
	"github.com/vango-dev/defkit/pkg/vtest"
)

func newGallery(t *testing.T) (*Gallery, *defcomp.Factory) {
	t.Helper()
	f := defcomp.NewFactory(defcomp.WithMetrics(prometheus.NewRegistry()))
	g, err := New(f)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g, f
}

func renderElement(t *testing.T, g *Gallery, name string, props vdom.Props) string {
	t.Helper()
	node, err := g.Element(name, props)
	if err != nil {
		t.Fatalf("Element(%s): %v", name, err)
	}
	html, err := render.NewRenderer(render.RendererConfig{}).RenderToString(node)
	if err != nil {
		t.Fatalf("RenderToString: %v", err)
	}
	return html
}

func TestNames(t *testing.T) {
	g, _ := newGallery(t)
	want := []string{"counter", "greeting", "themed", "todos"}
	got := g.Names()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestElements(t *testing.T) {
	g, _ := newGallery(t)

	tests := []struct {
		name  string
		props vdom.Props
		want  []string
	}{
		{"greeting", nil, []string{`<p class="greeting">Hello, world!</p>`}},
		{"greeting", vdom.Props{"name": "Ada"}, []string{"Hello, Ada!"}},
		{"counter", vdom.Props{"start": "3"}, []string{`<span>3</span>`, `data-on-click="true"`}},
		{"todos", nil, []string{"Hello, you!", "Nothing to do."}},
		{"todos", vdom.Props{"items": "milk, eggs"}, []string{"<li>milk</li>", "<li>eggs</li>"}},
		{"themed", vdom.Props{"theme": "dark"}, []string{`data-theme="dark"`, `class="label label-dark"`, "themed text"}},
		{"themed", nil, []string{`class="label label-light"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := renderElement(t, g, tt.name, tt.props)
			for _, want := range tt.want {
				if !strings.Contains(html, want) {
					t.Errorf("output missing %q:\n%s", want, html)
				}
			}
		})
	}
}

func TestElementUnknown(t *testing.T) {
	g, _ := newGallery(t)
	if _, err := g.Element("missing", nil); err == nil {
		t.Error("Element(missing) should fail")
	}
}

func TestCounterLifecycle(t *testing.T) {
	g, _ := newGallery(t)

	node, err := g.Element("counter", nil)
	if err != nil {
		t.Fatalf("Element: %v", err)
	}
	h := vtest.Mount(t, node.Type, vdom.Props{"start": 2, "step": 5})
	h.ExpectContains("<span>2</span>")

	if got := h.Instance().(*defcomp.Instance).Call("increment"); got != 7 {
		t.Errorf("increment() = %v, want 7", got)
	}

	h.SetProps(vdom.Props{"start": 2, "step": 5})
	h.ExpectContains("<span>7</span>")

	h.SetProps(vdom.Props{"start": 10, "step": 5})
	h.ExpectContains("<span>10</span>")
	h.Unmount()
}

func TestThemedLabelReadsContext(t *testing.T) {
	g, _ := newGallery(t)

	node, err := g.factory.CreateElement(g.label, vdom.Props{"text": "hi"})
	if err != nil {
		t.Fatalf("CreateElement: %v", err)
	}
	ctx := vtest.NewCtx().With("theme", "dark").With("unrelated", 1).Build()
	h := vtest.MountContext(t, node.Type, node.Props, ctx)
	h.ExpectContains(`<span class="label label-dark">hi</span>`)

	if got := h.Instance().Base().Context; len(got) != 1 {
		t.Errorf("context = %v, want only the declared theme key", got)
	}
}

func TestDefinitionsAdaptOnce(t *testing.T) {
	g, f := newGallery(t)

	for i := 0; i < 3; i++ {
		renderElement(t, g, "todos", nil)
		renderElement(t, g, "themed", nil)
	}

	// todos, ThemeProvider and ThemedLabel; the greeting was adapted up front.
	if f.Store().Len() != 3 {
		t.Errorf("Store().Len() = %d, want 3", f.Store().Len())
	}
	if node, _ := g.Element("greeting", nil); node.Type.Statics().DisplayName() != "Greeting" {
		t.Errorf("greeting display name = %q", node.Type.Statics().DisplayName())
	}
}

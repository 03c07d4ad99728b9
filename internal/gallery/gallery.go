// Package gallery holds sample component definitions used by the defkit CLI.
// Together they exercise every definition category: statics, lifecycle
// hooks, adapter hooks and instance methods.
package gallery

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/vango-dev/defkit/pkg/defcomp"
	"github.com/vango-dev/defkit/pkg/vdom"
)

// Gallery builds sample elements through a factory.
type Gallery struct {
	factory  *defcomp.Factory
	greeting *defcomp.Class
	counter  *defcomp.Definition
	todos    *defcomp.Definition
	provider *defcomp.Definition
	label    *defcomp.Definition
}

// Greeting renders a greeting for props["name"].
func Greeting(my *defcomp.Instance) *vdom.VNode {
	name, _ := my.Props["name"].(string)
	if name == "" {
		name = "world"
	}
	return vdom.P(vdom.Class("greeting"), vdom.Textf("Hello, %s!", name))
}

// New creates a gallery whose definitions are resolved through f.
func New(f *defcomp.Factory) (*Gallery, error) {
	greeting, err := defcomp.Adapt(Greeting)
	if err != nil {
		return nil, err
	}
	g := &Gallery{factory: f, greeting: greeting}

	g.counter = &defcomp.Definition{
		"displayName":  "Counter",
		"defaultProps": vdom.Props{"start": 0, "step": 1},
		"setupComponent": func(my *defcomp.Instance) {
			my.SetState(vdom.State{"count": toInt(my.Props["start"])})
		},
		"getNextState": func(my *defcomp.Instance, next vdom.Props) vdom.State {
			if toInt(next["start"]) == toInt(my.Props["start"]) {
				return nil
			}
			return vdom.State{"count": toInt(next["start"])}
		},
		"increment": func(my *defcomp.Instance, args ...any) any {
			count := toInt(my.State["count"]) + toInt(my.Props["step"])
			my.SetState(vdom.State{"count": count})
			return count
		},
		"getElement": func(my *defcomp.Instance) *vdom.VNode {
			return vdom.Div(vdom.Class("counter"),
				vdom.Span(vdom.Textf("%d", toInt(my.State["count"]))),
				vdom.Button(vdom.OnClick(my.Method("increment")), "+"),
			)
		},
	}

	g.todos = &defcomp.Definition{
		"displayName":  "TodoList",
		"defaultProps": vdom.Props{"owner": "you"},
		"getElement": func(my *defcomp.Instance) *vdom.VNode {
			items := toStrings(my.Props["items"])
			return vdom.Section(vdom.Class("todos"),
				g.mustElement(g.greeting, vdom.Props{"name": my.Props["owner"]}),
				vdom.If(len(items) == 0, vdom.P("Nothing to do.")),
				vdom.Ul(vdom.Range(items, func(item string, i int) *vdom.VNode {
					return vdom.Li(vdom.Key(i), item)
				})),
			)
		},
	}

	g.provider = &defcomp.Definition{
		"displayName":       "ThemeProvider",
		"defaultProps":      vdom.Props{"theme": "light"},
		"childContextTypes": map[string]any{"theme": "string"},
		"getChildContext": func(my *defcomp.Instance) map[string]any {
			return map[string]any{"theme": my.Props["theme"]}
		},
		"getElement": func(my *defcomp.Instance) *vdom.VNode {
			return vdom.Div(vdom.Data("theme", fmt.Sprint(my.Props["theme"])), my.Children())
		},
	}

	g.label = &defcomp.Definition{
		"displayName":  "ThemedLabel",
		"contextTypes": map[string]any{"theme": "string"},
		"getElement": func(my *defcomp.Instance) *vdom.VNode {
			theme, _ := my.Context["theme"].(string)
			return vdom.Span(vdom.Class("label", "label-"+theme), fmt.Sprint(my.Props["text"]))
		},
	}

	return g, nil
}

// Names returns the sample names accepted by Element.
func (g *Gallery) Names() []string {
	names := []string{"counter", "greeting", "themed", "todos"}
	sort.Strings(names)
	return names
}

// Element creates the named sample with props.
func (g *Gallery) Element(name string, props vdom.Props) (*vdom.VNode, error) {
	switch name {
	case "greeting":
		return g.factory.CreateElement(g.greeting, props)
	case "counter":
		return g.factory.CreateElement(g.counter, props)
	case "todos":
		return g.factory.CreateElement(g.todos, props)
	case "themed":
		text := props["text"]
		if text == nil {
			text = "themed text"
		}
		label, err := g.factory.CreateElement(g.label, vdom.Props{"text": text})
		if err != nil {
			return nil, err
		}
		return g.factory.CreateElement(g.provider, props.Clone(), label)
	default:
		return nil, fmt.Errorf("unknown component %q", name)
	}
}

// mustElement is used inside render functions, where every type is known
// to be valid.
func (g *Gallery) mustElement(typ any, args ...any) *vdom.VNode {
	node, err := g.factory.CreateElement(typ, args...)
	if err != nil {
		panic(err)
	}
	return node
}

func toInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	case string:
		i, _ := strconv.Atoi(n)
		return i
	}
	return 0
}

func toStrings(v any) []string {
	switch s := v.(type) {
	case []string:
		return s
	case string:
		if s == "" {
			return nil
		}
		parts := strings.Split(s, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return nil
}

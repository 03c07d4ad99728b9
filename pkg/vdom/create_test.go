package vdom

import (
	"errors"
	"testing"
)

type testClass struct {
	statics   Statics
	lifecycle Lifecycle
	render    func(inst *testInstance) *VNode
}

type testInstance struct {
	ComponentBase
	class *testClass
}

func (c *testClass) Statics() Statics      { return c.statics }
func (c *testClass) Lifecycle() *Lifecycle { return &c.lifecycle }

func (c *testClass) New(props Props, context map[string]any) Instance {
	inst := &testInstance{class: c}
	inst.Construct(props, context)
	return inst
}

func (i *testInstance) Render() *VNode {
	if i.class.render == nil {
		return nil
	}
	return i.class.render(i)
}

func TestCreateElementTag(t *testing.T) {
	node, err := CreateElement("section", Class("x"), "body")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if node.Kind != KindElement || node.Tag != "section" {
		t.Errorf("node = %+v", node)
	}
	if len(node.Children) != 1 {
		t.Errorf("Children len = %d, want 1", len(node.Children))
	}
}

func TestCreateElementClass(t *testing.T) {
	typ := &testClass{statics: Statics{
		StaticDefaultProps: Props{"size": "m", "label": "default"},
	}}

	node, err := CreateElement(typ, Props{"label": "ok", "key": "k1"}, P(), "text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if node.Kind != KindComponent || node.Type != ComponentType(typ) {
		t.Fatalf("node = %+v", node)
	}
	if node.Key != "k1" {
		t.Errorf("Key = %q, want k1", node.Key)
	}
	if node.Props["label"] != "ok" {
		t.Errorf("label = %v, want ok", node.Props["label"])
	}
	if node.Props["size"] != "m" {
		t.Errorf("size = %v, want default m", node.Props["size"])
	}
	children, _ := node.Props["children"].([]*VNode)
	if len(children) != 2 {
		t.Errorf("children len = %d, want 2", len(children))
	}
}

func TestCreateElementFunctions(t *testing.T) {
	fn := FuncComponentType(func(props Props) *VNode {
		return Text(props["name"].(string))
	})

	node, err := CreateElement(fn, Props{"name": "ada"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := node.Comp.Render().Text; got != "ada" {
		t.Errorf("render = %q, want ada", got)
	}

	node, err = CreateElement(func() *VNode { return Text("bare") })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := node.Comp.Render().Text; got != "bare" {
		t.Errorf("render = %q, want bare", got)
	}
}

func TestCreateElementInvalid(t *testing.T) {
	tests := []struct {
		name string
		typ  any
	}{
		{"nil", nil},
		{"empty tag", ""},
		{"number", 42},
		{"map", map[string]any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CreateElement(tt.typ)
			if !errors.Is(err, ErrInvalidElementType) {
				t.Errorf("err = %v, want ErrInvalidElementType", err)
			}
			if IsElementType(tt.typ) {
				t.Errorf("IsElementType(%v) = true", tt.typ)
			}
		})
	}
}

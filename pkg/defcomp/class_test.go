package defcomp

import (
	"testing"

	"github.com/vango-dev/defkit/pkg/vdom"
)

func counterDefinition() *Definition {
	return &Definition{
		"displayName": "Counter",
		KeySetupComponent: func(my *Instance) {
			my.SetState(vdom.State{"count": 0})
		},
		"bump": func(my *Instance, args ...any) any {
			step := 1
			if len(args) > 0 {
				step = args[0].(int)
			}
			next := my.State["count"].(int) + step
			my.SetState(vdom.State{"count": next})
			return next
		},
		KeyGetElement: func(my *Instance) *vdom.VNode {
			return vdom.Span(vdom.Textf("%d", my.State["count"]))
		},
	}
}

func TestInstanceDetachedMethod(t *testing.T) {
	class, err := Adapt(counterDefinition())
	if err != nil {
		t.Fatalf("Adapt: %v", err)
	}

	a := class.Construct(nil, nil)
	b := class.Construct(nil, nil)

	bump := a.Method("bump")
	if bump == nil {
		t.Fatal("bump is not bound")
	}
	if got := bump(); got != 1 {
		t.Errorf("bump() = %v, want 1", got)
	}
	bump(5)

	if a.State["count"] != 6 {
		t.Errorf("a.count = %v, want 6", a.State["count"])
	}
	if b.State["count"] != 0 {
		t.Errorf("b.count = %v, want 0; methods must bind per instance", b.State["count"])
	}
	if got := b.Call("bump", 2); got != 2 {
		t.Errorf("b.Call(bump, 2) = %v, want 2", got)
	}
	if got := a.Render().Children[0].Text; got != "6" {
		t.Errorf("Render() = %q, want 6", got)
	}
}

func TestInstanceConstructionOrder(t *testing.T) {
	var steps []string
	def := &Definition{
		"ping": func(my *Instance) {
			steps = append(steps, "ping")
		},
		KeySetupComponent: func(my *Instance) {
			if my.Props["id"] != "x" {
				t.Error("base must be constructed before setupComponent")
			}
			if my.Method("ping") == nil {
				t.Fatal("methods must be bound before setupComponent")
			}
			my.Call("ping")
			steps = append(steps, "setup")
			my.Set("timer", "t-1")
		},
		KeyGetElement: render("x"),
	}

	class, err := Adapt(def)
	if err != nil {
		t.Fatalf("Adapt: %v", err)
	}
	inst := class.Construct(vdom.Props{"id": "x"}, nil)

	if len(steps) != 2 || steps[0] != "ping" || steps[1] != "setup" {
		t.Errorf("steps = %v", steps)
	}
	if inst.Get("timer") != "t-1" {
		t.Errorf("Get(timer) = %v", inst.Get("timer"))
	}
	if inst.Class() != class {
		t.Error("Class() should return the constructing class")
	}
}

func TestInstanceCallUnknownPanics(t *testing.T) {
	class, _ := Adapt(&Definition{"displayName": "Empty", KeyGetElement: render("x")})
	inst := class.Construct(nil, nil)

	defer func() {
		if recover() == nil {
			t.Error("Call of an unknown method should panic")
		}
	}()
	inst.Call("missing")
}

func TestNextStateMergesState(t *testing.T) {
	class, err := Adapt(&Definition{
		KeyGetNextState: func(my *Instance, next vdom.Props) vdom.State {
			if next["skip"] == true {
				return nil
			}
			return vdom.State{"count": 1}
		},
		KeyGetElement: render("x"),
	})
	if err != nil {
		t.Fatalf("Adapt: %v", err)
	}

	inst := class.Construct(vdom.Props{}, nil)
	inst.SetState(vdom.State{"other": "kept", "count": 0})

	vdom.Update(class, inst, vdom.Props{"v": 2})
	if inst.State["count"] != 1 {
		t.Errorf("count = %v, want 1", inst.State["count"])
	}
	if inst.State["other"] != "kept" {
		t.Errorf("other = %v, want kept", inst.State["other"])
	}

	before := inst.State
	class.Lifecycle().ComponentWillReceiveProps(inst, vdom.Props{"skip": true})
	if len(inst.State) != len(before) {
		t.Errorf("empty next state must not change state: %v", inst.State)
	}
}

func TestLifecycleForwarders(t *testing.T) {
	var got []string
	var seen *Instance
	record := func(name string) func(*Instance) {
		return func(my *Instance) {
			seen = my
			got = append(got, name)
		}
	}

	class, err := Adapt(&Definition{
		"componentWillMount":   record("willMount"),
		"componentDidMount":    record("didMount"),
		"componentWillUnmount": record("willUnmount"),
		"getChildContext": func(my *Instance) map[string]any {
			return map[string]any{"owner": my.Props["id"]}
		},
		"shouldComponentUpdate": func(my *Instance, next vdom.Props, state vdom.State) bool {
			got = append(got, "should")
			return next["id"] != "frozen"
		},
		"componentWillUpdate": func(my *Instance, next vdom.Props, state vdom.State) {
			got = append(got, "willUpdate")
		},
		"componentDidUpdate": func(my *Instance, prev vdom.Props, state vdom.State) {
			got = append(got, "didUpdate:"+prev["id"].(string))
		},
		KeyGetElement: render("x"),
	})
	if err != nil {
		t.Fatalf("Adapt: %v", err)
	}

	inst := vdom.Mount(class, vdom.Props{"id": "a"}, nil)
	vdom.DidMount(class, inst)
	if seen != inst.(*Instance) {
		t.Error("hooks must receive the instance")
	}

	ctx := vdom.ChildContext(class, inst, nil)
	if ctx["owner"] != "a" {
		t.Errorf("child context = %v", ctx)
	}

	vdom.Update(class, inst, vdom.Props{"id": "b"})
	vdom.Update(class, inst, vdom.Props{"id": "frozen"})
	vdom.Unmount(class, inst)

	want := []string{"willMount", "didMount", "should", "willUpdate", "didUpdate:a", "should", "willUnmount"}
	if len(got) != len(want) {
		t.Fatalf("hooks = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("hooks[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestLifecycleSharedAcrossInstances(t *testing.T) {
	class, _ := Adapt(&Definition{
		"componentWillMount": func(my *Instance) { my.Set("mounted", true) },
		KeyGetElement:        render("x"),
	})

	a := vdom.Mount(class, nil, nil).(*Instance)
	b := class.Construct(nil, nil)

	if a.Get("mounted") != true {
		t.Error("a should be mounted")
	}
	if b.Get("mounted") != nil {
		t.Error("the hook must run against the instance it was given")
	}
}

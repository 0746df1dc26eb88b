package command

import "testing"

func TestHashIsStableDjb2(t *testing.T) {
	h := Hash("exit")
	var want uint32 = 5381
	for i := 0; i < len("exit"); i++ {
		want = want*33 + uint32("exit"[i])
	}
	if h != want {
		t.Fatalf("Hash(%q) = %d, want %d", "exit", h, want)
	}
}

func TestHashDistinguishesDifferentNames(t *testing.T) {
	if Hash("forward-char") == Hash("backward-char") {
		t.Fatalf("expected distinct hashes for distinct names")
	}
}

func TestRegisterAndLookupByName(t *testing.T) {
	r := NewRegistry()
	called := false
	r.Register(&Command{Name: "noop", Func: func(ctx *Context) int {
		called = true
		return 0
	}})

	cmd, ok := r.Lookup("noop")
	if !ok {
		t.Fatalf("expected to find registered command")
	}
	cmd.Func(&Context{})
	if !called {
		t.Fatalf("expected the command function to run")
	}
}

func TestLookupByHashMatchesLookupByName(t *testing.T) {
	r := NewRegistry()
	r.Register(&Command{Name: "exit", Func: func(ctx *Context) int { return 0 }})

	byName, _ := r.Lookup("exit")
	byHash, ok := r.LookupByHash(Hash("exit"))
	if !ok || byHash != byName {
		t.Fatalf("expected LookupByHash to find the same command as Lookup")
	}
}

func TestExecuteReturnsStatusAndFoundFlag(t *testing.T) {
	r := NewRegistry()
	r.Register(&Command{Name: "fails", Func: func(ctx *Context) int { return 1 }})

	status, found := r.Execute("fails", nil, nil, nil)
	if !found {
		t.Fatalf("expected command to be found")
	}
	if status != 1 {
		t.Fatalf("expected non-zero status, got %d", status)
	}

	_, found = r.Execute("missing", nil, nil, nil)
	if found {
		t.Fatalf("expected missing command to report not found")
	}
}

func TestExecutePassesArgvThrough(t *testing.T) {
	r := NewRegistry()
	r.Register(&Command{Name: "echo-argv", Func: func(ctx *Context) int {
		if ctx.Argv.Len() != 1 {
			return 1
		}
		v, _ := ctx.Argv.At(0)
		if v != "hello" {
			return 2
		}
		return 0
	}})

	argv := NewArgVector()
	argv.Push("hello")

	status, found := r.Execute("echo-argv", nil, nil, argv)
	if !found || status != 0 {
		t.Fatalf("unexpected execute result: status=%d found=%v", status, found)
	}
}

func TestRegisterManyRegistersAll(t *testing.T) {
	r := NewRegistry()
	r.RegisterMany(
		&Command{Name: "a", Func: func(ctx *Context) int { return 0 }},
		&Command{Name: "b", Func: func(ctx *Context) int { return 0 }},
	)
	if _, ok := r.Lookup("a"); !ok {
		t.Fatalf("expected a to be registered")
	}
	if _, ok := r.Lookup("b"); !ok {
		t.Fatalf("expected b to be registered")
	}
}

func TestForEachVisitsEveryCommand(t *testing.T) {
	r := NewRegistry()
	r.RegisterMany(
		&Command{Name: "a", Func: func(ctx *Context) int { return 0 }},
		&Command{Name: "b", Func: func(ctx *Context) int { return 0 }},
	)
	seen := make(map[string]bool)
	r.ForEach(func(cmd *Command) { seen[cmd.Name] = true })
	if !seen["a"] || !seen["b"] {
		t.Fatalf("expected ForEach to visit both commands, got %v", seen)
	}
}

func TestArgVectorRespectsCapacity(t *testing.T) {
	a := NewArgVector()
	for i := 0; i < MaxArgv; i++ {
		if !a.Push("x") {
			t.Fatalf("push %d should have succeeded", i)
		}
	}
	if a.Push("overflow") {
		t.Fatalf("expected push beyond capacity to fail")
	}
	if a.Len() != MaxArgv {
		t.Fatalf("expected length %d, got %d", MaxArgv, a.Len())
	}
}

func TestArgVectorPopReturnsLastPushed(t *testing.T) {
	a := NewArgVector()
	a.Push("first")
	a.Push("second")
	v, ok := a.Pop()
	if !ok || v != "second" {
		t.Fatalf("expected to pop %q, got %q ok=%v", "second", v, ok)
	}
	if a.Len() != 1 {
		t.Fatalf("expected length 1 after pop, got %d", a.Len())
	}
}

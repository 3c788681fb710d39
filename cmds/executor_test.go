package cmds

import (
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var a int
	executor.Define("+a", Func(func() {
		a = 42
	}))
	executor.Define("a", Func(func(i int) {
		a = i
	}))

	if err := executor.Execute([]string{
		"+a",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 42 {
		t.Fatal()
	}

	if err := executor.Execute([]string{
		"a", "1",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 1 {
		t.Fatal()
	}

	err := executor.Execute([]string{
		"foo",
	})
	if !strings.Contains(err.Error(), "unknown command: foo") {
		t.Fatalf("got %v", err)
	}

}

func TestSubCommands(t *testing.T) {
	executor := NewExecutor()
	var bar, baz int
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
			bar = 1
		}),
		"baz": Func(func(i int) {
			baz = i
		}),
	}))

	if err := executor.Execute([]string{
		"foo",
		"bar",
	}); err != nil {
		t.Fatal(err)
	}
	if bar != 1 {
		t.Fatal()
	}

	if err := executor.Execute([]string{
		"foo",
		"baz", "7",
	}); err != nil {
		t.Fatal(err)
	}
	if baz != 7 {
		t.Fatal()
	}
}

func TestOptionalPointerArg(t *testing.T) {
	executor := NewExecutor()
	var got *int
	executor.Define("n", Func(func(v *int) {
		got = v
	}))

	if err := executor.Execute([]string{
		"n", "3",
	}); err != nil {
		t.Fatal(err)
	}
	if got == nil || *got != 3 {
		t.Fatalf("got %v", got)
	}

	if err := executor.Execute([]string{
		"n",
	}); err != nil {
		t.Fatal(err)
	}
	if got == nil || *got != 0 {
		t.Fatalf("got %v", got)
	}
}

func TestBoolArg(t *testing.T) {
	executor := NewExecutor()
	var flag bool
	executor.Define("b", Func(func(v bool) {
		flag = v
	}))

	if err := executor.Execute([]string{
		"b", "yes",
	}); err != nil {
		t.Fatal(err)
	}
	if !flag {
		t.Fatal()
	}

	if err := executor.Execute([]string{
		"b", "no",
	}); err != nil {
		t.Fatal(err)
	}
	if flag {
		t.Fatal()
	}
}

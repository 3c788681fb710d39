package debugs

import (
	"testing"

	"github.com/reusee/rei/reivm"
	"github.com/reusee/rei/traces"
	"go.starlark.net/starlark"
)

func TestToStarlarkValue(t *testing.T) {
	type testStruct struct {
		Exported   string
		unexported int
	}

	ptrStruct := &testStruct{
		Exported:   "hello",
		unexported: 42,
	}

	testCases := []struct {
		name     string
		input    any
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"bool true", true, starlark.True},
		{"bytes", []byte("abc"), starlark.Bytes("abc")},
		{"string", "hello", starlark.String("hello")},
		{"int", int(42), starlark.MakeInt(42)},
		{"int32", int32(42), starlark.MakeInt(42)},
		{"int64", int64(42), starlark.MakeInt64(42)},
		{"uint16", uint16(42), starlark.MakeUint(42)},
		{"uint64", uint64(42), starlark.MakeUint64(42)},
		{"float64", float64(3.14), starlark.Float(3.14)},
		{"[]any", []any{1, "a", true}, starlark.NewList([]starlark.Value{starlark.MakeInt(1), starlark.String("a"), starlark.True})},
		{"map[string]any", map[string]any{"a": 1, "b": "c"}, func() starlark.Value {
			d := starlark.NewDict(2)
			d.SetKey(starlark.String("a"), starlark.MakeInt(1))
			d.SetKey(starlark.String("b"), starlark.String("c"))
			return d
		}()},
		{"[]int", []int{1, 2, 3}, starlark.NewList([]starlark.Value{starlark.MakeInt(1), starlark.MakeInt(2), starlark.MakeInt(3)})},
		{"struct", testStruct{Exported: "hello", unexported: 42}, func() starlark.Value {
			d := starlark.NewDict(1)
			d.SetKey(starlark.String("Exported"), starlark.String("hello"))
			return d
		}()},
		{"pointer to struct", ptrStruct, func() starlark.Value {
			d := starlark.NewDict(1)
			d.SetKey(starlark.String("Exported"), starlark.String("hello"))
			return d
		}()},
		{"nil pointer", (*testStruct)(nil), starlark.None},
		{"nil trace", (*traces.StackTrace)(nil), starlark.None},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := toStarlarkValue(tc.input)
			equal, err := starlark.Equal(actual, tc.expected)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if !equal {
				t.Errorf("toStarlarkValue(%#v) = %v, want %v", tc.input, actual, tc.expected)
			}
		})
	}

	t.Run("panic on unsupported type", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("toStarlarkValue did not panic on unsupported type")
			}
		}()
		toStarlarkValue(make(chan bool))
	})
}

func TestStackTraceToStarlark(t *testing.T) {
	v := new(reivm.VM)
	v.CurrentFun = &reivm.Function{
		Name:   "main",
		Script: &reivm.Script{ID: 3, Name: "main.rei"},
		Lines: []reivm.LineEntry{
			{IP: 0, Line: 7, Column: 2},
		},
	}
	v.IP = 1

	value := toStarlarkValue(traces.CaptureTop(v, 10, 0))
	list, ok := value.(*starlark.List)
	if !ok {
		t.Fatalf("expected list, got %T", value)
	}
	if list.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", list.Len())
	}
	entry, ok := list.Index(0).(*starlark.Dict)
	if !ok {
		t.Fatalf("expected dict, got %T", list.Index(0))
	}
	name, found, err := entry.Get(starlark.String("FunctionName"))
	if err != nil || !found {
		t.Fatalf("FunctionName not found: %v", err)
	}
	if name != starlark.String("main") {
		t.Fatalf("got %v", name)
	}
	line, found, err := entry.Get(starlark.String("Line"))
	if err != nil || !found {
		t.Fatalf("Line not found: %v", err)
	}
	if equal, err := starlark.Equal(line, starlark.MakeInt(7)); err != nil || !equal {
		t.Fatalf("got %v", line)
	}
}

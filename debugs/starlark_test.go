package debugs

import (
	"errors"
	"testing"

	"github.com/reusee/intcode/intvm"
	"go.starlark.net/starlark"
)

func TestToStarlarkValue(t *testing.T) {
	type registers struct {
		IP           int64
		RelativeBase int64
		hidden       int
	}

	inst, err := intvm.Decode(1002)
	if err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		name     string
		input    any
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"bool", true, starlark.True},
		{"string", "day9", starlark.String("day9")},
		{"int", 42, starlark.MakeInt(42)},
		{"int64", int64(1125899906842624), starlark.MakeInt64(1125899906842624)},
		{"uint8", uint8(7), starlark.MakeInt(7)},
		{"float", 0.5, starlark.Float(0.5)},
		{"bytes", []byte("ab"), starlark.Bytes("ab")},
		{"memory", intvm.Memory{1, -2}, starlark.NewList([]starlark.Value{starlark.MakeInt(1), starlark.MakeInt(-2)})},
		{"queue", []int64{5}, starlark.NewList([]starlark.Value{starlark.MakeInt(5)})},
		{"opcode", intvm.OpAdjustBase, starlark.String("arb")},
		{"instruction", inst, starlark.String("mul pos imm pos")},
		{"error", errors.New("boom"), starlark.String("boom")},
		{"struct", registers{IP: 4, RelativeBase: -1, hidden: 1}, func() starlark.Value {
			d := starlark.NewDict(2)
			d.SetKey(starlark.String("IP"), starlark.MakeInt(4))
			d.SetKey(starlark.String("RelativeBase"), starlark.MakeInt(-1))
			return d
		}()},
		{"map", map[string]int{"a": 1}, func() starlark.Value {
			d := starlark.NewDict(1)
			d.SetKey(starlark.String("a"), starlark.MakeInt(1))
			return d
		}()},
		{"pointer", &registers{IP: 1}, func() starlark.Value {
			d := starlark.NewDict(2)
			d.SetKey(starlark.String("IP"), starlark.MakeInt(1))
			d.SetKey(starlark.String("RelativeBase"), starlark.MakeInt(0))
			return d
		}()},
		{"nil pointer", (*registers)(nil), starlark.None},
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

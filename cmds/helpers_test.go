package cmds

import (
	"fmt"
	"testing"
)

func execute(t *testing.T, args ...string) {
	t.Helper()
	if err := GlobalExecutor.Execute(args); err != nil {
		t.Fatal(err)
	}
}

func TestVar(t *testing.T) {
	memory := Var[int]("TestVar-memory")
	file := Var[string]("TestVar-file")
	execute(t,
		"TestVar-memory", "4096",
		"TestVar-file", "day9.txt",
	)
	if *memory != 4096 {
		t.Fatal()
	}
	if *file != "day9.txt" {
		t.Fatal()
	}
	execute(t,
		"TestVar-memory.",
	)
	if *memory != 0 {
		t.Fatal()
	}
}

func TestSwitch(t *testing.T) {
	strict := Switch("TestSwitch")
	execute(t,
		"TestSwitch",
	)
	if *strict != true {
		t.Fatal()
	}
	execute(t,
		"!TestSwitch",
	)
	if *strict != false {
		t.Fatal()
	}
}

func TestCollect(t *testing.T) {
	inputs := Collect[int64]("TestCollect")
	execute(t,
		"TestCollect", "5",
		"TestCollect", "-1",
	)
	if str := fmt.Sprintf("%v", *inputs); str != "[5 -1]" {
		t.Fatalf("got %s", str)
	}
}

func TestSliceVar(t *testing.T) {
	phases := Var[[]int64]("TestSliceVar")
	execute(t,
		"TestSliceVar", "9, 8,7,6,5",
	)
	if str := fmt.Sprintf("%v", *phases); str != "[9 8 7 6 5]" {
		t.Fatalf("got %s", str)
	}
	if err := GlobalExecutor.Execute([]string{
		"TestSliceVar", "9,x",
	}); err == nil {
		t.Fatal("should error")
	}
}

func TestTypedVar(t *testing.T) {
	type Glyph string
	v := Var[Glyph]("TestTypedVar")
	execute(t,
		"TestTypedVar", "#",
	)
	if *v != "#" {
		t.Fatal()
	}
}

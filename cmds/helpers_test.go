package cmds

import "testing"

func TestVarSwitchCollect(t *testing.T) {
	num := Var[int]("-test-num")
	flag := Switch("-test-flag")
	names := Collect[string]("-test-name")

	if err := Execute([]string{
		"-test-num", "42",
		"-test-flag",
		"-test-name", "a",
		"-test-name", "b",
	}); err != nil {
		t.Fatal(err)
	}

	if *num != 42 {
		t.Fatalf("got %v", *num)
	}
	if !*flag {
		t.Fatal()
	}
	if len(*names) != 2 || (*names)[0] != "a" || (*names)[1] != "b" {
		t.Fatalf("got %v", *names)
	}

	if err := Execute([]string{
		"-test-num.",
		"!-test-flag",
	}); err != nil {
		t.Fatal(err)
	}
	if *num != 0 {
		t.Fatalf("got %v", *num)
	}
	if *flag {
		t.Fatal()
	}
}

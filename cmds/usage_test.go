package cmds

import (
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
		}).Desc("BAR"),
		"baz": Sub(map[string]*Command{
			"qux": Func(func() {}).Desc("QUX"),
		}).Desc("BAZ"),
	}).Desc("FOO"))
	executor.Define("num", Func(func(int, string) {}).Desc("NUM"))

	buf := new(strings.Builder)
	executor.PrintUsage(buf)
	usage := buf.String()
	for _, expected := range []string{
		"-h, help, -help, --help\tprint this usage\n",
		"foo\tFOO\n",
		"  bar\tBAR\n",
		"  baz\tBAZ\n",
		"    qux\tQUX\n",
		"num <int> <string>\tNUM\n",
	} {
		if !strings.Contains(usage, expected) {
			t.Fatalf("missing %q in:\n%s", expected, usage)
		}
	}
	if strings.Count(usage, "print this usage") != 1 {
		t.Fatalf("aliases printed twice:\n%s", usage)
	}
}

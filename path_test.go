package jdom

import "testing"

func TestBuildPath(t *testing.T) {
	if got := BuildPath("config", "server", "port"); got != "config.server.port" {
		t.Errorf("BuildPath returned %q", got)
	}
	if got := BuildPath("single"); got != "single" {
		t.Errorf("BuildPath returned %q", got)
	}
	if got := BuildPath(); got != "" {
		t.Errorf("BuildPath returned %q", got)
	}

	obj := NewObject().Object()
	if err := obj.DotSetNumber(BuildPath("a", "b"), 7); err != nil {
		t.Fatalf("DotSet failed: %v", err)
	}
	if obj.DotGetNumber("a.b") != 7 {
		t.Error("Built path did not address the member")
	}
}

func TestSplitPath(t *testing.T) {
	head, rest, hasDot := splitPath("a.b.c")
	if head != "a" || rest != "b.c" || !hasDot {
		t.Errorf("splitPath(a.b.c) = %q %q %v", head, rest, hasDot)
	}
	head, rest, hasDot = splitPath("leaf")
	if head != "leaf" || rest != "" || hasDot {
		t.Errorf("splitPath(leaf) = %q %q %v", head, rest, hasDot)
	}
}

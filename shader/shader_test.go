package shader

import (
	"strings"
	"testing"
)

func TestSafeStringAppendsTerminator(t *testing.T) {
	source := "#version 330 core\nvoid main() {}\n"
	safe := safeString(source)
	if !strings.HasSuffix(safe, "\x00") {
		t.Error("expected a null terminator")
	}
	if len(safe) != len(source)+1 {
		t.Errorf("length %d, expected %d", len(safe), len(source)+1)
	}
	if safe[:len(source)] != source {
		t.Error("source must not be altered before the terminator")
	}
}

func TestSafeStringAlreadyTerminated(t *testing.T) {
	source := "void main() {}\x00"
	if safe := safeString(source); safe != source {
		t.Errorf("already terminated source was altered to %q", safe)
	}
}

package renderer

import (
	"strings"
	"testing"

	"github.com/go-gl/gl/v3.3-core/gl"
)

func TestNullTerminate(t *testing.T) {
	got := nullTerminate("void main() {}")
	if !strings.HasSuffix(got, "\x00") {
		t.Error("source not null terminated")
	}
	if strings.Count(got, "\x00") != 1 {
		t.Errorf("want exactly one trailing null, got %d", strings.Count(got, "\x00"))
	}

	again := nullTerminate(got)
	if again != got {
		t.Error("already terminated source was modified")
	}
}

func TestStageName(t *testing.T) {
	if got := stageName(gl.VERTEX_SHADER); got != "vertex" {
		t.Errorf("stageName(VERTEX_SHADER) = %q", got)
	}
	if got := stageName(gl.FRAGMENT_SHADER); got != "fragment" {
		t.Errorf("stageName(FRAGMENT_SHADER) = %q", got)
	}
	if got := stageName(0x1234); got != "0x1234" {
		t.Errorf("stageName(0x1234) = %q", got)
	}
}

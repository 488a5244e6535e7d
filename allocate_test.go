package sitecapture

import (
	"testing"

	"github.com/chromedp/chromedp"
)

func TestEnvEnabled(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"false", false},
		{"true", true},
		{"1", true},
	}
	for _, test := range tests {
		t.Setenv("SITECAPTURE_DEBUG", test.value)
		if got := DebugEnabled(); got != test.want {
			t.Errorf("SITECAPTURE_DEBUG=%q: want %v, got %v", test.value, test.want, got)
		}
	}
}

func TestAllocatorOptions(t *testing.T) {
	base := len(chromedp.DefaultExecAllocatorOptions) + 2

	// without an override, finding the binary is left to chromedp
	t.Setenv("SITECAPTURE_EXEC_PATH", "")
	t.Setenv("SITECAPTURE_NO_SANDBOX", "")
	if got := execPath(); got != "" {
		t.Fatalf("want no exec path, got %q", got)
	}
	if got, want := len(AllocatorOptions()), base; got != want {
		t.Errorf("want %d options without overrides, got %d", want, got)
	}

	t.Setenv("SITECAPTURE_EXEC_PATH", "/opt/chrome/chrome")
	if got := execPath(); got != "/opt/chrome/chrome" {
		t.Fatalf("want exec path from the environment, got %q", got)
	}

	t.Setenv("SITECAPTURE_NO_SANDBOX", "false")
	if got, want := len(AllocatorOptions()), base+1; got != want {
		t.Errorf("want %d options, got %d", want, got)
	}

	t.Setenv("SITECAPTURE_NO_SANDBOX", "true")
	if got, want := len(AllocatorOptions()), base+2; got != want {
		t.Errorf("want %d options with the sandbox disabled, got %d", want, got)
	}
}

package misc

import "testing"

func TestBuildInfo(t *testing.T) {
	if GetAppName() != "cssfold" {
		t.Errorf("unexpected app name %q", GetAppName())
	}
	if GetVersion() == "" {
		t.Error("version must never be empty")
	}
	if GetGitHash() == "" {
		t.Error("git hash must never be empty")
	}

	old := version
	t.Cleanup(func() { version = old })
	version = "1.2.3"
	if GetVersion() != "1.2.3" {
		t.Errorf("expected link time version, got %q", GetVersion())
	}
}

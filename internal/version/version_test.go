package version

import "testing"

func TestDefaults(t *testing.T) {
	if Version == "" {
		t.Error("Version must have a default value")
	}
	// GitCommit and BuildDate are optional ldflags injections.
	_ = GitCommit
	_ = BuildDate
}

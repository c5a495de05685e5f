package version

import (
	"runtime"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	info := Get()
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
	assert.NotEmpty(t, info.Commit)
	assert.NotEmpty(t, info.Date)
}

func TestApplyBuildSettings(t *testing.T) {
	settings := []debug.BuildSetting{
		{Key: "vcs.revision", Value: "0123456789abcdef"},
		{Key: "vcs.time", Value: "2026-01-01T00:00:00Z"},
		{Key: "vcs.modified", Value: "true"},
	}

	var fromVCS Info
	applyBuildSettings(&fromVCS, settings)
	assert.Equal(t, "0123456789abcdef", fromVCS.Commit)
	assert.Equal(t, "2026-01-01T00:00:00Z", fromVCS.Date)
	assert.True(t, fromVCS.Modified)

	// Link-time values win
	linked := Info{Commit: "abc1234", Date: "2026-02-02"}
	applyBuildSettings(&linked, settings)
	assert.Equal(t, "abc1234", linked.Commit)
	assert.Equal(t, "2026-02-02", linked.Date)
}

func TestInfoString(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{
			name: "dev build",
			info: Info{Version: "dev", Commit: "unknown", Date: "unknown"},
			want: "autodeconstruct dev (unknown, built unknown)",
		},
		{
			name: "tagged build",
			info: Info{Version: "v1.2.0", Commit: "abc1234def", Date: "2026-01-01"},
			want: "autodeconstruct v1.2.0 (abc1234, built 2026-01-01)",
		},
		{
			name: "dirty tree",
			info: Info{Version: "dev", Commit: "abc1234", Date: "2026-01-01", Modified: true},
			want: "autodeconstruct dev (abc1234+dirty, built 2026-01-01)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.String())
		})
	}
}

package pulse

import (
	"testing"

	"github.com/oliverbestmann/webgpu/wgpu"
)

func TestLogLevelOf(t *testing.T) {
	tests := []struct {
		name string
		want wgpu.LogLevel
	}{
		{"off", wgpu.LogLevelOff},
		{"error", wgpu.LogLevelError},
		{"WARN", wgpu.LogLevelWarn},
		{"info", wgpu.LogLevelInfo},
		{" debug ", wgpu.LogLevelDebug},
		{"Trace", wgpu.LogLevelTrace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := logLevelOf(tt.name)
			if !ok {
				t.Fatalf("expected %q to be a known level", tt.name)
			}

			if got != tt.want {
				t.Errorf("logLevelOf(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}

	for _, name := range []string{"", "verbose", "warning"} {
		if _, ok := logLevelOf(name); ok {
			t.Errorf("expected %q to be rejected", name)
		}
	}
}

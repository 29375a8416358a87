package settings

import (
	"testing"
	"time"
)

func TestAPIConfig_Timeout(t *testing.T) {
	if got := (APIConfig{}).Timeout(); got != 10*time.Second {
		t.Fatalf("Timeout() = %v, want 10s", got)
	}
	if got := (APIConfig{TimeoutSeconds: 3}).Timeout(); got != 3*time.Second {
		t.Fatalf("Timeout() = %v, want 3s", got)
	}
}

func TestAPIConfig_Async(t *testing.T) {
	tests := []struct {
		mode string
		want bool
	}{
		{mode: FetchAsync, want: true},
		{mode: FetchSync, want: false},
		{mode: "", want: true},
	}
	for _, tt := range tests {
		if got := (APIConfig{FetchMode: tt.mode}).Async(); got != tt.want {
			t.Errorf("Async(%q) = %v, want %v", tt.mode, got, tt.want)
		}
	}
}

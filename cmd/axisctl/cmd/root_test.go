package cmd

import (
	"testing"

	axerror "github.com/mkoester/axisctl/core/error"
)

func TestScriptCommand(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"Plain path stays unquoted", "./scripts/startup.mcl", "FILE ./scripts/startup.mcl"},
		{"Space forces quoting", "/opt/axis ctl/init.mcl", `FILE "/opt/axis ctl/init.mcl"`},
		{"Tab forces quoting", "a\tb.mcl", "FILE \"a\tb.mcl\""},
		{"Backslashes pass through untouched", `C:\axis\init.mcl`, `FILE C:\axis\init.mcl`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, err := scriptCommand(tt.path)
			if err != nil {
				t.Fatalf("scriptCommand failed: %v", err)
			}
			if line != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, line)
			}
		})
	}

	t.Run("Double quote in the path is rejected", func(t *testing.T) {
		_, err := scriptCommand(`/tmp/"odd".mcl`)
		if !axerror.HasCode(err, axerror.CodeScriptError) {
			t.Errorf("Expected SCRIPT_ERROR, got %v", err)
		}
	})
}

package interp

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantName string
		wantArgs []string
	}{
		{
			name:     "empty_line",
			line:     "",
			wantName: "",
			wantArgs: nil,
		},
		{
			name:     "whitespace_only",
			line:     "   \t  ",
			wantName: "",
			wantArgs: nil,
		},
		{
			name:     "bare_command",
			line:     "quit",
			wantName: "quit",
			wantArgs: nil,
		},
		{
			name:     "command_with_args",
			line:     "touch report.txt backup.txt",
			wantName: "touch",
			wantArgs: []string{"report.txt", "backup.txt"},
		},
		{
			name:     "leading_whitespace",
			line:     "   greet",
			wantName: "greet",
			wantArgs: nil,
		},
		{
			name:     "trailing_whitespace",
			line:     "greet   ",
			wantName: "greet",
			wantArgs: nil,
		},
		{
			name:     "runs_of_whitespace_collapse",
			line:     "touch   report.txt",
			wantName: "touch",
			wantArgs: []string{"report.txt"},
		},
		{
			name:     "tabs_between_tokens",
			line:     "set\tkey\tvalue",
			wantName: "set",
			wantArgs: []string{"key", "value"},
		},
		{
			name:     "mixed_whitespace",
			line:     " \t move \t a1 \t b2 ",
			wantName: "move",
			wantArgs: []string{"a1", "b2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotName, gotArgs := Tokenize(tt.line)

			if gotName != tt.wantName {
				t.Errorf("name = %q, want %q", gotName, tt.wantName)
			}

			if len(gotArgs) != len(tt.wantArgs) {
				t.Fatalf("args = %v, want %v", gotArgs, tt.wantArgs)
			}
			if len(tt.wantArgs) > 0 && !reflect.DeepEqual(gotArgs, tt.wantArgs) {
				t.Errorf("args = %v, want %v", gotArgs, tt.wantArgs)
			}
		})
	}
}

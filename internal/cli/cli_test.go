package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/specialistvlad/automata/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		want       *app.Config
		wantExit   bool
		wantCode   int
		wantErrMsg string
		wantOutput string
	}{
		{
			name: "positional path with defaults",
			args: []string{"examples"},
			want: &app.Config{DefinitionsPath: "examples", LogFormat: "text", LogLevel: "info", WorkerCount: 4, TraceNamespace: "/"},
		},
		{
			name: "long flag wins over shorthand and positional",
			args: []string{"-defs", "a", "-d", "b", "c"},
			want: &app.Config{DefinitionsPath: "a", LogFormat: "text", LogLevel: "info", WorkerCount: 4, TraceNamespace: "/"},
		},
		{
			name: "all options",
			args: []string{
				"-d", "defs", "-log-format", "JSON", "-log-level", "DEBUG", "-workers", "8", "-show",
				"-emit-dir", "out", "-trace-url", "http://localhost:3000", "-trace-namespace", "/viz",
			},
			want: &app.Config{
				DefinitionsPath: "defs", LogFormat: "json", LogLevel: "debug", WorkerCount: 8, Show: true,
				EmitDir: "out", TraceURL: "http://localhost:3000", TraceNamespace: "/viz",
			},
		},
		{
			name:       "no path prints usage",
			args:       []string{},
			wantExit:   true,
			wantOutput: "Usage:",
		},
		{
			name:       "help",
			args:       []string{"-h"},
			wantExit:   true,
			wantOutput: "DEFINITIONS_PATH",
		},
		{
			name:       "unknown flag",
			args:       []string{"-nope"},
			wantCode:   2,
			wantErrMsg: "flag provided but not defined: -nope",
		},
		{
			name:       "bad log format",
			args:       []string{"-log-format", "xml", "defs"},
			wantCode:   2,
			wantErrMsg: "invalid log-format",
		},
		{
			name:       "bad log level",
			args:       []string{"-log-level", "trace", "defs"},
			wantCode:   2,
			wantErrMsg: "invalid log-level",
		},
		{
			name:       "zero workers",
			args:       []string{"-workers", "0", "defs"},
			wantCode:   2,
			wantErrMsg: "WorkerCount must be at least 1",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			cfg, exit, err := Parse(tc.args, &out)

			if tc.wantErrMsg != "" {
				var exitErr *ExitError
				require.True(t, errors.As(err, &exitErr), "expected *ExitError, got %v", err)
				assert.Equal(t, tc.wantCode, exitErr.Code)
				assert.Contains(t, exitErr.Message, tc.wantErrMsg)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantExit, exit)
			assert.Equal(t, tc.want, cfg)
			if tc.wantOutput != "" {
				assert.Contains(t, out.String(), tc.wantOutput)
			}
		})
	}
}

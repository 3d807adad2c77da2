package options

import (
	"strings"
	"testing"

	"github.com/taigrr/gofind/internal/types"
)

func TestParse_Empty(t *testing.T) {
	res := Parse(nil)

	if res.Config.NamePattern != nil || res.Config.INamePattern != nil || res.Config.Type != types.TypeAny {
		t.Errorf("Parse(nil).Config = %+v, want zero value", res.Config)
	}
	if len(res.Diagnostics) != 0 {
		t.Errorf("Parse(nil).Diagnostics = %v, want empty", res.Diagnostics)
	}
}

func TestParse_AllOptions(t *testing.T) {
	res := Parse([]string{"-name", "*.txt", "-iname", "FiLe*", "-type", "f"})

	if string(res.Config.NamePattern) != "*.txt" {
		t.Errorf("NamePattern = %q, want %q", res.Config.NamePattern, "*.txt")
	}
	if string(res.Config.INamePattern) != "file*" {
		t.Errorf("INamePattern = %q, want %q", res.Config.INamePattern, "file*")
	}
	if res.Config.Type != types.TypeFile {
		t.Errorf("Type = %v, want f", res.Config.Type)
	}
}

func TestParse_NamePatternKeepsCase(t *testing.T) {
	res := Parse([]string{"-name", "FILE3.txt"})

	if string(res.Config.NamePattern) != "FILE3.txt" {
		t.Errorf("NamePattern = %q, want %q", res.Config.NamePattern, "FILE3.txt")
	}
}

func TestParse_LastOneWins(t *testing.T) {
	res := Parse([]string{"-name", "a", "-type", "f", "-name", "b", "-type", "d"})

	if string(res.Config.NamePattern) != "b" {
		t.Errorf("NamePattern = %q, want %q", res.Config.NamePattern, "b")
	}
	if res.Config.Type != types.TypeDirectory {
		t.Errorf("Type = %v, want d", res.Config.Type)
	}
}

func TestParse_InvalidType(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantType types.TypeFilter
	}{
		{"unknown letter", []string{"-type", "x"}, types.TypeAny},
		{"word", []string{"-type", "file"}, types.TypeAny},
		{"empty", []string{"-type", ""}, types.TypeAny},
		{"keeps earlier valid", []string{"-type", "d", "-type", "l"}, types.TypeDirectory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Parse(tt.args)
			if res.Config.Type != tt.wantType {
				t.Errorf("Type = %v, want %v", res.Config.Type, tt.wantType)
			}
			if len(res.Diagnostics) != 1 {
				t.Fatalf("Diagnostics = %v, want one entry", res.Diagnostics)
			}
			if !strings.HasPrefix(res.Diagnostics[0], "find: invalid argument to '-type': ") {
				t.Errorf("Diagnostics[0] = %q", res.Diagnostics[0])
			}
		})
	}
}

func TestParse_MissingValueIgnored(t *testing.T) {
	res := Parse([]string{"-type", "d", "-name"})

	if res.Config.NamePattern != nil {
		t.Errorf("NamePattern = %q, want nil", res.Config.NamePattern)
	}
	if res.Config.Type != types.TypeDirectory {
		t.Errorf("Type = %v, want d", res.Config.Type)
	}
}

func TestParse_UnknownArgumentsIgnored(t *testing.T) {
	res := Parse([]string{"-print", "-maxdepth", "2", "-name", "x"})

	if string(res.Config.NamePattern) != "x" {
		t.Errorf("NamePattern = %q, want %q", res.Config.NamePattern, "x")
	}
	if len(res.Diagnostics) != 0 {
		t.Errorf("Diagnostics = %v, want empty", res.Diagnostics)
	}
}

func TestParse_ValueIsNotReinterpreted(t *testing.T) {
	res := Parse([]string{"-name", "-type", "d"})

	if string(res.Config.NamePattern) != "-type" {
		t.Errorf("NamePattern = %q, want %q", res.Config.NamePattern, "-type")
	}
	if res.Config.Type != types.TypeAny {
		t.Errorf("Type = %v, want unset", res.Config.Type)
	}
}

func TestFromParams(t *testing.T) {
	t.Run("all fields", func(t *testing.T) {
		cfg, err := FromParams(types.FindParams{Path: ".", Name: "*.go", IName: "README*", Type: "f"})
		if err != nil {
			t.Fatalf("FromParams() error = %v", err)
		}
		if string(cfg.NamePattern) != "*.go" {
			t.Errorf("NamePattern = %q, want %q", cfg.NamePattern, "*.go")
		}
		if string(cfg.INamePattern) != "readme*" {
			t.Errorf("INamePattern = %q, want %q", cfg.INamePattern, "readme*")
		}
		if cfg.Type != types.TypeFile {
			t.Errorf("Type = %v, want f", cfg.Type)
		}
	})

	t.Run("empty fields are unset", func(t *testing.T) {
		cfg, err := FromParams(types.FindParams{Path: "."})
		if err != nil {
			t.Fatalf("FromParams() error = %v", err)
		}
		if cfg.NamePattern != nil || cfg.INamePattern != nil || cfg.Type != types.TypeAny {
			t.Errorf("FromParams() = %+v, want zero value", cfg)
		}
	})

	t.Run("invalid type", func(t *testing.T) {
		_, err := FromParams(types.FindParams{Path: ".", Type: "l"})
		if err == nil {
			t.Fatal("FromParams() error = nil, want error for type l")
		}
		if !strings.Contains(err.Error(), `invalid type "l"`) {
			t.Errorf("FromParams() error = %q, want mention of the invalid type", err)
		}
	})
}

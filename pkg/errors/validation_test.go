package errors

import (
	"math"
	"strings"
	"testing"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid relative", "models/frame.toml", false},
		{"valid absolute", "/srv/amoor/frame.yaml", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 5000), true},
		{"null byte", "foo\x00bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidatePath(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidPath)
			}
		})
	}
}

func TestConfigFormat(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"frame.toml", "toml", false},
		{"frame.TOML", "toml", false},
		{"frame.yaml", "yaml", false},
		{"dir/frame.yml", "yaml", false},
		{"frame.xlsx", "", true},
		{"frame", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := ConfigFormat(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ConfigFormat(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ConfigFormat(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestValidateFinite(t *testing.T) {
	if err := ValidateFinite("depth", 5); err != nil {
		t.Errorf("ValidateFinite(5) = %v, want nil", err)
	}
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		err := ValidateFinite("depth", v)
		if err == nil {
			t.Errorf("ValidateFinite(%v) = nil, want error", v)
			continue
		}
		if !strings.Contains(err.Error(), "depth") {
			t.Errorf("error %q should name the quantity", err)
		}
	}
}

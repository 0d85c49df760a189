package errors

import (
	"strings"
	"testing"
)

func TestValidateKey(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "path", false},
		{"valid underscore", "root_module", false},
		{"valid with dash", "build-dir", false},
		{"valid unicode", "chemin", false},

		{"empty", "", true},
		{"too long", strings.Repeat("k", 300), true},
		{"null byte", "pa\x00th", true},
		{"newline", "pa\nth", true},
		{"tab", "pa\tth", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateKey(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateKey(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidKey) {
				t.Errorf("ValidateKey(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidKey)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"default file", "rust-project.json", false},
		{"relative nested", "kernel/rust-project.json", false},
		{"absolute", "/src/linux/rust-project.json", false},
		{"parent dir", "../rust-project.json", false},

		{"empty", "", true},
		{"blank", "   ", true},
		{"dot", ".", true},
		{"dotdot", "..", true},
		{"trailing slash", "kernel/", true},
		{"null byte", "rust\x00.json", true},
		{"control char", "rust\x01.json", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

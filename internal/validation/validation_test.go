package validation_test

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/voice-ledger/internal/validation"

	"github.com/stretchr/testify/assert"
)

func TestIsValidInputFile(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "transcripts.csv")
	assert.NoError(t, os.WriteFile(testFile, []byte("transcript\n"), 0600))

	tests := []struct {
		name        string
		path        string
		expectError bool
		errContains string
	}{
		{name: "Existing file", path: testFile},
		{name: "Directory", path: tmpDir, expectError: true, errContains: "is a directory"},
		{name: "Non-existent path", path: filepath.Join(tmpDir, "missing.csv"), expectError: true, errContains: "path does not exist"},
		{name: "Empty path", path: "", expectError: true, errContains: "empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.IsValidInputFile(tt.path)
			if tt.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsValidOutputPath(t *testing.T) {
	tmpDir := t.TempDir()
	blocker := filepath.Join(tmpDir, "file.txt")
	assert.NoError(t, os.WriteFile(blocker, []byte("x"), 0600))

	tests := []struct {
		name        string
		path        string
		expectError bool
		errContains string
	}{
		{name: "New file in existing directory", path: filepath.Join(tmpDir, "out.csv")},
		{name: "New file in missing directories", path: filepath.Join(tmpDir, "a", "b", "out.csv")},
		{name: "Overwrite existing file", path: blocker},
		{name: "Directory", path: tmpDir, expectError: true, errContains: "is a directory"},
		{name: "Parent is a file", path: filepath.Join(blocker, "out.csv"), expectError: true, errContains: "not a directory"},
		{name: "Empty path", path: "", expectError: true, errContains: "empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.IsValidOutputPath(tt.path)
			if tt.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsValidFilePermissions(t *testing.T) {
	tests := []struct {
		name        string
		mode        os.FileMode
		expectError bool
	}{
		{"Owner only", 0600, false},
		{"World readable", 0644, false},
		{"Group writable", 0664, true},
		{"World writable", 0646, true},
		{"Everything", 0777, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.IsValidFilePermissions(tt.mode)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

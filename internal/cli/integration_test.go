package cli_test

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI runs the command with stdin and returns stdout, stderr and the run error.
func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := exec.Command("go", append([]string{"run", "../../main.go"}, args...)...)
	cmd.Stdin = strings.NewReader(stdin)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

const sampleJSON = `{
	"name": "John Doe",
	"age": 30,
	"email": "john.doe@example.com",
	"address": {
		"street": "123 Main St",
		"city": "Anytown",
		"zip": "12345"
	},
	"phones": [
		{"type": "home", "number": "555-1234"},
		{"type": "work", "number": "555-5678"}
	],
	"active": true
}`

// TestCLI_FileInputOutput tests the CLI with file input and output
func TestCLI_FileInputOutput(t *testing.T) {
	tempDir := t.TempDir()
	jsonFile := filepath.Join(tempDir, "test.json")
	require.NoError(t, os.WriteFile(jsonFile, []byte(sampleJSON), 0644))
	outputFile := filepath.Join(tempDir, "output.go")

	_, stderr, err := runCLI(t, "", "-i", jsonFile, "-o", outputFile, "-p", "testpackage")
	require.NoError(t, err, "CLI command failed: %s", stderr)

	generatedCode, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	code := string(generatedCode)

	assert.Contains(t, code, "package testpackage")
	assert.Contains(t, code, "type AutoGenerated struct")
	assert.Regexp(t, `Name\s+string\s+\x60json:"name"\x60`, code)
	assert.Regexp(t, `Age\s+int64\s+\x60json:"age"\x60`, code)
	assert.Regexp(t, `Address\s+Address\s+\x60json:"address"\x60`, code)
	assert.Regexp(t, `Phones\s+\[\]Phone\s+\x60json:"phones"\x60`, code)
	assert.Regexp(t, `Active\s+bool\s+\x60json:"active"\x60`, code)

	assert.Contains(t, code, "type Address struct")
	assert.Regexp(t, `Zip\s+string\s+\x60json:"zip"\x60`, code)
	assert.Contains(t, code, "type Phone struct")
	assert.Regexp(t, `Number\s+string\s+\x60json:"number"\x60`, code)

	assert.Less(t, strings.Index(code, "type AutoGenerated struct"), strings.Index(code, "type Address struct"))
	assert.Less(t, strings.Index(code, "type Address struct"), strings.Index(code, "type Phone struct"))
}

// TestCLI_PositionalFile tests passing the input file as an argument
func TestCLI_PositionalFile(t *testing.T) {
	jsonFile := filepath.Join(t.TempDir(), "test.json")
	require.NoError(t, os.WriteFile(jsonFile, []byte(`{"ok": true}`), 0644))

	stdout, stderr, err := runCLI(t, "", jsonFile, "-l", "typescript")
	require.NoError(t, err, "CLI command failed: %s", stderr)
	assert.Equal(t, "export interface AutoGenerated {\n\tok: boolean;\n}\n", stdout)
}

// TestCLI_StdinStdout tests the CLI with stdin input and stdout output
func TestCLI_StdinStdout(t *testing.T) {
	stdout, stderr, err := runCLI(t, `{"name": "Jane Smith", "age": 25, "active": true}`)
	require.NoError(t, err, "CLI command failed: %s", stderr)

	assert.Contains(t, stdout, "type AutoGenerated struct")
	assert.NotContains(t, stdout, "package")
	assert.Regexp(t, `Name\s+string\s+\x60json:"name"\x60`, stdout)
	assert.Regexp(t, `Age\s+int64\s+\x60json:"age"\x60`, stdout)
}

// TestCLI_Languages tests every target language through the binary
func TestCLI_Languages(t *testing.T) {
	tests := []struct {
		language string
		contains []string
	}{
		{"rust", []string{"pub struct AutoGenerated {", "\tpub phones: Vec<Phone>,", "pub struct Phone {"}},
		{"scala", []string{"case class AutoGenerated(", "\t\tphones: Seq[Phone],", "case class Address("}},
		{"java", []string{"public class AutoGenerated {", "\tpublic Long age;", "\tpublic List<Phone> phones;"}},
		{"ts", []string{"export interface AutoGenerated {", "\tphones: Phone[];", "\tzip: string;"}},
		{"py", []string{"from __future__ import annotations", "from pydantic import BaseModel, ConfigDict, Field", "class AutoGenerated(BaseModel):", "    phones: list[Phone]", "    zip: str"}},
	}

	for _, tt := range tests {
		t.Run(tt.language, func(t *testing.T) {
			stdout, stderr, err := runCLI(t, sampleJSON, "--language", tt.language)
			require.NoError(t, err, "CLI command failed: %s", stderr)
			for _, s := range tt.contains {
				assert.Contains(t, stdout, s)
			}
			assert.True(t, strings.HasPrefix(strings.TrimLeft(stdout, "\n"), strings.TrimSpace(tt.contains[0])), stdout)
		})
	}
}

// TestCLI_UnsupportedLanguage tests the error for an unknown language
func TestCLI_UnsupportedLanguage(t *testing.T) {
	_, stderr, err := runCLI(t, `{"a": 1}`, "-l", "cobol")
	require.Error(t, err)
	assert.Contains(t, stderr, "Language error")
	assert.Contains(t, stderr, "Hint: supported languages: go, java, python, rust, scala, typescript")
}

// TestCLI_ListLanguages tests --list-languages
func TestCLI_ListLanguages(t *testing.T) {
	stdout, _, err := runCLI(t, "", "--list-languages")
	require.NoError(t, err)
	assert.Equal(t, "go\njava\npython\nrust\nscala\ntypescript\n", stdout)
}

// TestCLI_CustomRootName tests the CLI with a custom root struct name
func TestCLI_CustomRootName(t *testing.T) {
	stdout, _, err := runCLI(t, `{"name": "Test User", "email": "test@example.com"}`, "-r", "User")
	require.NoError(t, err)

	assert.Contains(t, stdout, "type User struct")
	assert.Regexp(t, `Email\s+string\s+\x60json:"email"\x60`, stdout)
}

// TestCLI_ArrayInput tests the CLI with a JSON array input
func TestCLI_ArrayInput(t *testing.T) {
	jsonContent := `[
		{"id": 1, "name": "Item 1"},
		{"id": 2, "name": "Item 2"}
	]`

	stdout, stderr, err := runCLI(t, jsonContent, "-r", "items")
	require.NoError(t, err, "CLI command failed: %s", stderr)
	assert.Contains(t, stdout, "type Item struct")
	assert.Regexp(t, `Id\s+int64\s+\x60json:"id"\x60`, stdout)
}

// TestCLI_PrimitiveArray tests that a bare primitive array yields no types
func TestCLI_PrimitiveArray(t *testing.T) {
	stdout, stderr, err := runCLI(t, `[1, 2, 3]`)
	require.NoError(t, err, "CLI command failed: %s", stderr)
	assert.Empty(t, strings.TrimSpace(stdout))
	assert.Contains(t, stderr, "document produced no records")
}

// TestCLI_NoFormatting tests --no-format keeps the raw rendering
func TestCLI_NoFormatting(t *testing.T) {
	stdout, _, err := runCLI(t, `{"name": "test"}`, "--no-format")
	require.NoError(t, err)
	assert.Contains(t, stdout, "\tName\tstring\t\t`json:\"name\"`")
}

// TestCLI_ConfigFile tests a config file given with --config
func TestCLI_ConfigFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "json2types.yml")
	require.NoError(t, os.WriteFile(configFile, []byte("language: rust\nroot_name: Payload\n"), 0644))

	stdout, stderr, err := runCLI(t, `{"id": 1}`, "--config", configFile)
	require.NoError(t, err, "CLI command failed: %s", stderr)
	assert.Equal(t, "pub struct Payload {\n\tpub id: i64,\n}\n", stdout)

	stdout, _, err = runCLI(t, `{"id": 1}`, "--config", configFile, "-l", "go")
	require.NoError(t, err)
	assert.Contains(t, stdout, "type Payload struct")
}

// TestCLI_InvalidJSON tests the CLI with invalid JSON input
func TestCLI_InvalidJSON(t *testing.T) {
	_, stderr, err := runCLI(t, `{"name": "Invalid JSON", "missing": "closing brace"`)
	assert.Error(t, err)
	assert.Contains(t, stderr, "JSON parsing error")
}

// TestCLI_MultipleDocuments tests that two root values are rejected
func TestCLI_MultipleDocuments(t *testing.T) {
	_, stderr, err := runCLI(t, `{"a": 1} {"b": 2}`)
	assert.Error(t, err)
	assert.Contains(t, stderr, "multiple JSON values")
}

// TestCLI_EmptyInput tests the CLI with empty input
func TestCLI_EmptyInput(t *testing.T) {
	_, stderr, err := runCLI(t, "")
	assert.Error(t, err)
	assert.Contains(t, stderr, "empty")
}

// TestCLI_Version tests the version flag
func TestCLI_Version(t *testing.T) {
	stdout, _, err := runCLI(t, "", "-v")
	require.NoError(t, err)
	assert.Contains(t, stdout, "json2types version")
}

// TestCLI_Help tests the help flag
func TestCLI_Help(t *testing.T) {
	stdout, _, err := runCLI(t, "", "--help")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Usage: json2types")
	assert.Contains(t, stdout, "--language")
	assert.Contains(t, stdout, "--list-languages")
}

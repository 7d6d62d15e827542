package cli

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestRegisterToggleFlagParsesValues(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		defaultValue bool
		arguments    []string
		expected     bool
		expectError  bool
	}{
		{
			name:         "defaults_to_false",
			defaultValue: false,
			arguments:    []string{},
			expected:     false,
			expectError:  false,
		},
		{
			name:         "defaults_to_true",
			defaultValue: true,
			arguments:    []string{},
			expected:     true,
			expectError:  false,
		},
		{
			name:         "sets_true_without_value",
			defaultValue: false,
			arguments:    []string{"--feature"},
			expected:     true,
			expectError:  false,
		},
		{
			name:         "sets_false_with_equals",
			defaultValue: true,
			arguments:    []string{"--feature=false"},
			expected:     false,
			expectError:  false,
		},
		{
			name:         "sets_false_with_no_literal",
			defaultValue: true,
			arguments:    []string{"--feature", "no"},
			expected:     false,
			expectError:  false,
		},
		{
			name:         "sets_true_with_on_literal",
			defaultValue: false,
			arguments:    []string{"--feature", "on"},
			expected:     true,
			expectError:  false,
		},
		{
			name:         "ignores_non_boolean_trailing_value",
			defaultValue: false,
			arguments:    []string{"--feature", "maybe"},
			expected:     true,
			expectError:  false,
		},
		{
			name:         "rejects_invalid_equals_value",
			defaultValue: false,
			arguments:    []string{"--feature=maybe"},
			expected:     false,
			expectError:  true,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			command := &cobra.Command{Use: "toggle-test"}
			flagValue := !testCase.defaultValue
			registerToggleFlag(command.Flags(), &flagValue, "feature", testCase.defaultValue, "toggle feature behaviour")
			normalizedArguments := normalizeToggleFlagArguments(command, testCase.arguments)
			parseErr := command.ParseFlags(normalizedArguments)
			if testCase.expectError {
				if parseErr == nil {
					t.Fatalf("expected parse error for arguments %v", testCase.arguments)
				}
				return
			}
			if parseErr != nil {
				t.Fatalf("unexpected parse error: %v", parseErr)
			}
			if flagValue != testCase.expected {
				t.Fatalf("expected %t, got %t", testCase.expected, flagValue)
			}
		})
	}
}

// TestNormalizeToggleFlagArgumentsCollectsSubcommandFlags verifies that flags
// registered on child commands are rewritten when normalizing root arguments.
func TestNormalizeToggleFlagArgumentsCollectsSubcommandFlags(t *testing.T) {
	t.Parallel()

	rootCommand := &cobra.Command{Use: "root"}
	childCommand := &cobra.Command{Use: "child"}
	rootCommand.AddCommand(childCommand)
	var childToggle bool
	registerToggleFlag(childCommand.Flags(), &childToggle, "summary", false, "toggle summary")

	normalized := normalizeToggleFlagArguments(rootCommand, []string{"child", "--summary", "yes", "extra"})
	expected := []string{"child", "--summary=yes", "extra"}
	if len(normalized) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, normalized)
	}
	for argumentIndex, expectedArgument := range expected {
		if normalized[argumentIndex] != expectedArgument {
			t.Fatalf("argument %d: expected %q, got %q", argumentIndex, expectedArgument, normalized[argumentIndex])
		}
	}
}

// TestNormalizeToggleFlagArgumentsStopsAtDoubleDash verifies literals after the
// terminator stay positional.
func TestNormalizeToggleFlagArgumentsStopsAtDoubleDash(t *testing.T) {
	t.Parallel()

	command := &cobra.Command{Use: "toggle-test"}
	var flagValue bool
	registerToggleFlag(command.Flags(), &flagValue, "feature", false, "toggle feature behaviour")

	normalized := normalizeToggleFlagArguments(command, []string{"--", "--feature", "yes"})
	expected := []string{"--", "--feature", "yes"}
	for argumentIndex, expectedArgument := range expected {
		if normalized[argumentIndex] != expectedArgument {
			t.Fatalf("argument %d: expected %q, got %q", argumentIndex, expectedArgument, normalized[argumentIndex])
		}
	}
}

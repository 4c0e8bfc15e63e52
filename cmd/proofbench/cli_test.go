package main

import (
	"strings"
	"testing"
)

// helpText returns the overall usage listing as a string.
func helpText() string {
	var sb strings.Builder
	printUsage(&sb)
	return sb.String()
}

// longHelpText returns the long help for a named command.
func longHelpText(name string) string {
	var sb strings.Builder
	printCommandHelp(&sb, name)
	return sb.String()
}

// The help listing is derived from the commands slice — every registered
// command name and short description appears in the overall help output.
func TestHelpContainsAllCommands(t *testing.T) {
	help := helpText()
	for _, cmd := range commands {
		if !strings.Contains(help, cmd.name) {
			t.Errorf("help output missing command %q", cmd.name)
		}
		if !strings.Contains(help, cmd.short) {
			t.Errorf("help output missing short description for %q", cmd.name)
		}
	}
}

func TestHelpContainsUsageHeader(t *testing.T) {
	help := helpText()
	if !strings.Contains(help, "Usage:") {
		t.Error("help output missing 'Usage:' header")
	}
	if !strings.Contains(help, "proofbench") {
		t.Error("help output missing program name 'proofbench'")
	}
}

func TestLongHelpForKnownCommands(t *testing.T) {
	for _, cmd := range commands {
		long := longHelpText(cmd.name)
		if !strings.Contains(long, cmd.usage) {
			t.Errorf("long help for %q missing usage line %q", cmd.name, cmd.usage)
		}
	}
}

func TestLongHelpUnknownCommand(t *testing.T) {
	long := longHelpText("nonexistent")
	if !strings.Contains(long, "unknown command") {
		t.Errorf("long help for unknown command = %q", long)
	}
}

func TestDispatchUnknownCommand(t *testing.T) {
	err := dispatch([]string{"nonexistent"})
	if err == nil {
		t.Fatal("dispatch accepted unknown command")
	}
	if !strings.Contains(err.Error(), "nonexistent") {
		t.Errorf("error %q does not name the unknown command", err)
	}
}

func TestDispatchNoArgs(t *testing.T) {
	if err := dispatch(nil); err != nil {
		t.Errorf("dispatch with no args: %v", err)
	}
}

// ---------------------------------------------------------------------------
// Registry loading
// ---------------------------------------------------------------------------

func TestLoadRegistry_BuiltinSet(t *testing.T) {
	reg, err := loadRegistry("")
	if err != nil {
		t.Fatalf("loadRegistry: %v", err)
	}
	if reg.Len() != 3 {
		t.Errorf("built-in registry has %d profiles, want 3", reg.Len())
	}
}

func TestLoadRegistry_MissingFile(t *testing.T) {
	if _, err := loadRegistry("/does/not/exist.yaml"); err == nil {
		t.Fatal("loadRegistry accepted missing definitions file")
	}
}

func TestRunEvaluate_MissingName(t *testing.T) {
	if err := runEvaluate(nil); err == nil {
		t.Fatal("runEvaluate accepted empty arguments")
	}
}

func TestRunEvaluate_UnknownProfile(t *testing.T) {
	err := runEvaluate([]string{"no-such-profile"})
	if err == nil {
		t.Fatal("runEvaluate accepted unknown profile")
	}
	if !strings.Contains(err.Error(), "no-such-profile") {
		t.Errorf("error %q does not name the profile", err)
	}
}

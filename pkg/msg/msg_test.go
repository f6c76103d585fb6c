package msg

import (
	"errors"
	"strings"
	"testing"
)

func TestGetMessage_EmbeddedDefaults(t *testing.T) {
	got := GetMessage("catalog.fetch-stations", "automatic", "SU")
	want := "Fetching station catalog for station type automatic and region SU"
	if got != want {
		t.Errorf("GetMessage() = %q, want %q", got, want)
	}
}

func TestGetMessage_Arguments(t *testing.T) {
	if err := Load(strings.NewReader("test:\n  line: \"{0}|{1}|{2}|{3}\"\n")); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	got := GetMessage("test.line", 3, errors.New("boom"), []string{"A713"}, 1.5)
	want := `3|boom|["A713"]|1.5`
	if got != want {
		t.Errorf("GetMessage() = %q, want %q", got, want)
	}
}

func TestGetMessage_Missing(t *testing.T) {
	if got := GetMessage("does.not.exist"); got != "Message not found: does.not.exist" {
		t.Errorf("GetMessage() = %q", got)
	}
}

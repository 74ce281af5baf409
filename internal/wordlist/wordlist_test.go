package wordlist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/verte-zerg/slowtype/internal/model"
)

func TestLoadWordsSkipsBlankAndComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("# mine\nkeyboard\n\n  rhythm  \n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	words, err := LoadWords(path)
	if err != nil {
		t.Fatalf("LoadWords failed: %v", err)
	}
	if len(words) != 2 || words[0] != "keyboard" || words[1] != "rhythm" {
		t.Fatalf("unexpected words: %v", words)
	}
}

func TestLoadWordsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, []byte("\n# nothing\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadWords(path); err == nil {
		t.Fatalf("expected error for empty list")
	}
}

func TestSplit(t *testing.T) {
	kept, rejected := Split([]string{"go", "go", "co-op", "rust"}, FilterForLang(model.LangEnglish))
	if len(kept) != 2 || kept[0] != "go" || kept[1] != "rust" {
		t.Fatalf("unexpected kept: %v", kept)
	}
	if len(rejected) != 1 || rejected[0] != "co-op" {
		t.Fatalf("unexpected rejected: %v", rejected)
	}
}

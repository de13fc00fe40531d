package ocr

import (
	"strings"
	"testing"
)

func TestCleanNormalizesWhitespace(t *testing.T) {
	in := "CALZONE   MENU\n\n\n\nChicken\tTeriyaki   259/-\n"
	got := Clean(in)
	if got != "CALZONE MENU\n\nChicken Teriyaki 259/-" {
		t.Fatalf("got %q", got)
	}
}

func TestCleanDropsRecognizerGarbage(t *testing.T) {
	got := Clean("Pasta�� 180/-\fExtra cheese 40/-")
	if strings.ContainsAny(got, "�\f") {
		t.Fatalf("artifacts survived: %q", got)
	}
}

func TestCleanCapsLength(t *testing.T) {
	long := strings.Repeat("Menu line with a price 120/-\n", 2000)
	got := Clean(long)
	if len(got) > maxPromptChars {
		t.Fatalf("output too long: %d", len(got))
	}
}

func TestScanExtensionFilter(t *testing.T) {
	if !IsValidImage("menu.JPG") || !IsValidImage("menu.webp") {
		t.Fatalf("valid extensions rejected")
	}
	if IsValidImage("menu.pdf") || IsValidImage("notes.txt") || IsValidImage("menu") {
		t.Fatalf("invalid extensions accepted")
	}
}

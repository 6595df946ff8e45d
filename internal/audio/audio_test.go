package audio

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestSaveAndOpen(t *testing.T) {
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	payload := []byte("fake mp3 bytes")
	name, size, err := s.Save(bytes.NewReader(payload), "audio/mpeg")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if size != int64(len(payload)) {
		t.Errorf("size = %d, want %d", size, len(payload))
	}
	if !strings.HasSuffix(name, ".mp3") {
		t.Errorf("stored name %q missing extension", name)
	}

	f, err := s.Open(name)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	got, _ := io.ReadAll(f)
	if !bytes.Equal(got, payload) {
		t.Error("stored bytes differ from upload")
	}
}

func TestSave_UnsupportedType(t *testing.T) {
	s, _ := NewStore(t.TempDir())
	_, _, err := s.Save(strings.NewReader("x"), "application/pdf")
	if !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("err = %v, want ErrUnsupportedType", err)
	}
}

func TestOpen_RejectsPathTraversal(t *testing.T) {
	s, _ := NewStore(t.TempDir())
	for _, name := range []string{"../secret.mp3", "a/b.mp3", "."} {
		if _, err := s.Open(name); err == nil {
			t.Errorf("Open(%q) accepted a non-bare name", name)
		}
	}
}

func TestRemove_MissingIsNoop(t *testing.T) {
	s, _ := NewStore(t.TempDir())
	if err := s.Remove("does-not-exist.mp3"); err != nil {
		t.Errorf("remove missing: %v", err)
	}
}

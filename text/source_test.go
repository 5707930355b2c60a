package text

import (
	"errors"
	"testing"
)

func TestNewSource_EmptyData(t *testing.T) {
	_, err := NewSource(nil)
	if !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewSource(nil) = %v, want ErrEmptyFontData", err)
	}
	_, err = NewSource([]byte{})
	if !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewSource(empty) = %v, want ErrEmptyFontData", err)
	}
}

func TestNewSource_InvalidData(t *testing.T) {
	_, err := NewSource([]byte("definitely not a font"))
	if err == nil {
		t.Fatal("NewSource accepted garbage data")
	}
	if errors.Is(err, ErrEmptyFontData) {
		t.Error("garbage data reported as empty")
	}
}

func TestNewSourceFromFile_Missing(t *testing.T) {
	_, err := NewSourceFromFile("testdata/no-such-font.ttf")
	if err == nil {
		t.Fatal("NewSourceFromFile succeeded for a missing file")
	}
}

func TestSource_FaceNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Face on a nil Source did not panic")
		}
	}()
	var s *Source
	s.Face(12)
}

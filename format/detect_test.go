package format

import "testing"

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{PDF, "PDF"},
		{Image, "Image"},
		{Snapshot, "Snapshot"},
		{Unknown, "Unknown"},
		{Format(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"drawing.pdf", PDF},
		{"drawing.PDF", PDF},
		{"scan.png", Image},
		{"scan.jpg", Image},
		{"scan.jpeg", Image},
		{"scan.tiff", Image},
		{"session.json", Snapshot},
		{"drawing.dwg", Unknown},
		{"drawing", Unknown},
	}

	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestDetectFromMagic(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"pdf", []byte("%PDF-1.7\n"), PDF},
		{"png", []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A}, Image},
		{"jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE0}, Image},
		{"tiff little-endian", []byte{'I', 'I', 0x2A, 0x00}, Image},
		{"tiff big-endian", []byte{'M', 'M', 0x00, 0x2A}, Image},
		{"snapshot", []byte(`{"pages":[{"width":612}]}`), Snapshot},
		{"snapshot with leading whitespace", []byte("\n  {\"pages\":[]}"), Snapshot},
		{"json without pages", []byte(`{"title":"notes"}`), Unknown},
		{"short", []byte("%P"), Unknown},
		{"garbage", []byte("hello world"), Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFromMagic(tt.data); got != tt.want {
				t.Errorf("DetectFromMagic(%q) = %v, want %v", tt.data, got, tt.want)
			}
		})
	}
}

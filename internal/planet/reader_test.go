package planet

import "testing"

func TestWordReaderSigned(t *testing.T) {
	r := &wordReader{data: []byte{0x01, 0x02, 0xFF, 0xFE, 0x80, 0x00}}

	tests := []struct {
		name     string
		expected int
	}{
		{"positive word", 258},
		{"negative word", -2},
		{"minimum word", -32768},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.word(); got != tc.expected {
				t.Errorf("word() = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestWordReaderPastEnd(t *testing.T) {
	r := &wordReader{data: []byte{0x00, 0x2A, 0x01}}

	if got := r.word(); got != 42 {
		t.Errorf("word() = %d, expected 42", got)
	}
	// A single trailing byte cannot form a word.
	if got := r.word(); got != 0 {
		t.Errorf("word() past end = %d, expected 0", got)
	}
	if got := r.word(); got != 0 {
		t.Errorf("word() past end = %d, expected 0", got)
	}
}

func TestWordReaderSkip(t *testing.T) {
	r := &wordReader{data: []byte{0x00, 0x01, 0x00, 0x02, 0x00, 0x03}}
	r.skip(2)
	if got := r.word(); got != 3 {
		t.Errorf("word() after skip(2) = %d, expected 3", got)
	}
}

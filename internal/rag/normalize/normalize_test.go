package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "already normalized",
			input: "The cat sat on the mat. The dog ran in the park.",
			want:  "The cat sat on the mat. The dog ran in the park.",
		},
		{
			name:  "windows line endings",
			input: "line one\r\nline two",
			want:  "line one line two",
		},
		{
			name:  "form feed and nul",
			input: "page one\fpage two\x00end",
			want:  "page one page two end",
		},
		{
			name:  "whitespace runs",
			input: "  too   many\t\tspaces \n here  ",
			want:  "too many spaces here",
		},
		{
			name:  "only whitespace",
			input: " \r\n\t\f ",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Text(tt.input))
		})
	}
}

func TestFingerprint(t *testing.T) {
	a := Fingerprint("The cat sat on the mat.")
	b := Fingerprint("The cat sat on the mat.")
	c := Fingerprint("The dog ran in the park.")

	assert.Equal(t, a, b, "same content must produce the same fingerprint")
	assert.NotEqual(t, a, c, "different content must produce different fingerprints")
	assert.Len(t, a, 32, "fingerprint is an md5 hex digest")
}

func TestFingerprintIgnoresOriginalFormatting(t *testing.T) {
	// Two uploads whose extracted text differs only in line endings and
	// whitespace collapse to the same fingerprint after normalization.
	a := Fingerprint(Text("The cat sat on the mat.\r\nThe dog ran in the park."))
	b := Fingerprint(Text("The cat sat on the mat.\nThe  dog ran in the park. "))
	assert.Equal(t, a, b)
}

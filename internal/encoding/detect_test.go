package encoding_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/MrJamesThe3rd/cashup/internal/encoding"
)

const roster = "Name;Rank;Email\nZoë Müller;Senior;zoe@example.com\nRené Botha;Junior;\n"

func mustEncode(t *testing.T, enc interface{ Bytes([]byte) ([]byte, error) }, s string) []byte {
	t.Helper()

	b, err := enc.Bytes([]byte(s))
	require.NoError(t, err)

	return b
}

func TestDecode(t *testing.T) {
	type testCase struct {
		name        string
		input       []byte
		wantCharset string
	}

	tests := []testCase{
		{
			name:        "UTF8Passthrough",
			input:       []byte(roster),
			wantCharset: encoding.UTF8,
		},
		{
			name:        "UTF8BOMStripped",
			input:       append([]byte{0xEF, 0xBB, 0xBF}, roster...),
			wantCharset: encoding.UTF8,
		},
		{
			name:        "UTF16LE",
			input:       mustEncode(t, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder(), roster),
			wantCharset: encoding.UTF16LE,
		},
		{
			name:        "UTF16BE",
			input:       mustEncode(t, unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder(), roster),
			wantCharset: encoding.UTF16BE,
		},
		{
			name:        "Windows1252",
			input:       mustEncode(t, charmap.Windows1252.NewEncoder(), roster),
			wantCharset: encoding.Windows1252,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, charset, err := encoding.Decode(bytes.NewReader(tt.input))
			require.NoError(t, err)

			got, err := io.ReadAll(r)
			require.NoError(t, err)

			assert.Equal(t, roster, string(got))
			assert.Equal(t, tt.wantCharset, charset)
		})
	}
}

func TestDecode_Empty(t *testing.T) {
	r, charset, err := encoding.Decode(bytes.NewReader(nil))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)

	assert.Empty(t, got)
	assert.Equal(t, encoding.UTF8, charset)
}

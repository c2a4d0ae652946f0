package encoding_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carteira-app/carteira/internal/encoding"
)

func decode(t *testing.T, input []byte) string {
	t.Helper()

	r, err := encoding.NewUTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(got)
}

func TestNewUTF8Reader_UTF8Passthrough(t *testing.T) {
	input := "data,categoria,título,valor\n2024-03-15,Alimentação,Café,12.50\n"
	assert.Equal(t, input, decode(t, []byte(input)))
}

func TestNewUTF8Reader_StripsUTF8BOM(t *testing.T) {
	content := "data,categoria,título,valor\n"
	input := append([]byte{0xEF, 0xBB, 0xBF}, content...)
	assert.Equal(t, content, decode(t, input))
}

func TestNewUTF8Reader_Windows1252(t *testing.T) {
	// "Operação" in Windows-1252: ç = 0xE7, ã = 0xE3.
	input := []byte{'O', 'p', 'e', 'r', 'a', 0xE7, 0xE3, 'o', ';', 'V', 'a', 'l', 'o', 'r', '\n'}
	assert.Equal(t, "Operação;Valor\n", decode(t, input))
}

func TestNewUTF8Reader_UTF16LE(t *testing.T) {
	// "Valor" as UTF-16 LE with BOM.
	input := []byte{0xFF, 0xFE, 'V', 0, 'a', 0, 'l', 0, 'o', 0, 'r', 0}
	assert.Equal(t, "Valor", decode(t, input))
}

func TestNewUTF8Reader_Empty(t *testing.T) {
	assert.Empty(t, decode(t, nil))
}

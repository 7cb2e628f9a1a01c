package iocli

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Проверяем что NewStdio возвращает валидный объект
func TestNewStdio(t *testing.T) {
	stdio := NewStdio()
	assert.NotNil(t, stdio)
}

func TestPrintlnAndPrintf(t *testing.T) {
	var out bytes.Buffer
	stdio := NewStdioWith(strings.NewReader(""), &out)

	stdio.Println("hello", "world")
	stdio.Printf("test %d %s\n", 1, "abc")
	_, err := stdio.Write([]byte("raw"))
	require.NoError(t, err)

	assert.Equal(t, "hello world\ntest 1 abc\nraw", out.String())
}

func TestReadInput(t *testing.T) {
	var out bytes.Buffer
	stdio := NewStdioWith(strings.NewReader("  user input \nsecond\n"), &out)

	first, err := stdio.ReadInput("Prompt: ")
	require.NoError(t, err)
	assert.Equal(t, "user input", first)

	// Буфер общий: следующая строка не теряется
	second, err := stdio.ReadInput("Again: ")
	require.NoError(t, err)
	assert.Equal(t, "second", second)

	assert.Equal(t, "Prompt: Again: ", out.String())
}

func TestReadInput_LastLineWithoutNewline(t *testing.T) {
	stdio := NewStdioWith(strings.NewReader("1234"), io.Discard)

	value, err := stdio.ReadInput("PIN: ")
	require.NoError(t, err)
	assert.Equal(t, "1234", value)

	_, err = stdio.ReadInput("PIN: ")
	assert.ErrorIs(t, err, io.EOF)
}

// Pipe не терминал: PIN читается как обычная строка
func TestReadPassword_FromPipe(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()

	go func() {
		_, _ = w.Write([]byte("9876\n"))
		_ = w.Close()
	}()

	var out bytes.Buffer
	stdio := NewStdioWith(r, &out)

	pin, err := stdio.ReadPassword("Sync PIN: ")
	require.NoError(t, err)
	assert.Equal(t, "9876", pin)
	assert.Equal(t, "Sync PIN: ", out.String())
}

package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func reader(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer

	text, err := GetSimpleText(reader("  hello world  \n"), "Enter something", &out)
	require.NoError(t, err)
	require.Equal(t, "hello world", text)
	require.Contains(t, out.String(), "Enter something")
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	var out bytes.Buffer

	text, err := GetSimpleText(reader("no newline"), "p", &out)
	require.NoError(t, err)
	require.Equal(t, "no newline", text)
}

func TestGetTextWithDefault(t *testing.T) {
	var out bytes.Buffer

	// Empty reply keeps the default.
	text, err := GetTextWithDefault(reader("\n"), "First name", "Janet", &out)
	require.NoError(t, err)
	require.Equal(t, "Janet", text)
	require.Contains(t, out.String(), "[Janet]")

	// A reply overrides it.
	text, err = GetTextWithDefault(reader("Emma\n"), "First name", "Janet", &out)
	require.NoError(t, err)
	require.Equal(t, "Emma", text)
}

func TestGetPassword_UsesSeam(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("pistol"), nil }
	t.Cleanup(func() { readPassword = orig })

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	require.Equal(t, []byte("pistol"), pw)
	require.Contains(t, out.String(), "Enter password:")
}

func TestConfirm(t *testing.T) {
	var out bytes.Buffer

	require.True(t, Confirm(reader("y\n"), "Sure?", &out))
	require.True(t, Confirm(reader("YES\n"), "Sure?", &out))
	require.False(t, Confirm(reader("n\n"), "Sure?", &out))
	require.False(t, Confirm(reader("\n"), "Sure?", &out), "default is no")
	require.False(t, Confirm(reader(""), "Sure?", &out), "EOF is no")
	require.Contains(t, out.String(), "[y/N]")
}

package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	out := &bytes.Buffer{}
	reader := bufio.NewReader(strings.NewReader("  alice  \n"))

	got, err := GetSimpleText(reader, "Username", out)
	require.NoError(t, err)
	assert.Equal(t, "alice", got)
	assert.Contains(t, out.String(), "Username")
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	out := &bytes.Buffer{}
	reader := bufio.NewReader(strings.NewReader("bob"))

	got, err := GetSimpleText(reader, "Username", out)
	require.NoError(t, err)
	assert.Equal(t, "bob", got)
}

func TestGetSimpleText_EmptyInputErrors(t *testing.T) {
	out := &bytes.Buffer{}
	reader := bufio.NewReader(strings.NewReader(""))

	_, err := GetSimpleText(reader, "Username", out)
	assert.Error(t, err)
}

func TestGetInt(t *testing.T) {
	out := &bytes.Buffer{}

	got, err := GetInt(bufio.NewReader(strings.NewReader("21\n")), "Max days", out)
	require.NoError(t, err)
	assert.Equal(t, 21, got)

	_, err = GetInt(bufio.NewReader(strings.NewReader("lots\n")), "Max days", out)
	assert.Error(t, err)
}

func TestGetInt64(t *testing.T) {
	out := &bytes.Buffer{}

	got, err := GetInt64(bufio.NewReader(strings.NewReader("42\n")), "Id", out)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got)
}

func TestGetPassword(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("s3cret"), nil }
	t.Cleanup(func() { readPassword = orig })

	out := &bytes.Buffer{}
	pw, err := GetPassword(out)
	require.NoError(t, err)
	assert.Equal(t, []byte("s3cret"), pw)
	assert.Contains(t, out.String(), "Enter password")
}

package command

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"newline", "hunter2\nrest", "hunter2"},
		{"crlf", "hunter2\r\n", "hunter2"},
		{"eof", "hunter2", "hunter2"},
		{"backspace", "huntx\ber2\n", "hunter2"},
		{"empty line", "\n", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readLine(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestReadLine_EmptyInput(t *testing.T) {
	_, err := readLine(strings.NewReader(""))
	assert.ErrorIs(t, err, io.EOF)
}

func TestCheckPassword(t *testing.T) {
	assert.Error(t, checkPassword(nil))
	assert.Error(t, checkPassword([]byte(strings.Repeat("x", 73))))
	assert.NoError(t, checkPassword([]byte(strings.Repeat("x", 72))))
}

func TestRootCommand_Tree(t *testing.T) {
	root := RootCommand()
	for _, path := range [][]string{
		{"user", "create"},
		{"user", "promote"},
		{"sessions", "purge"},
		{"sessions", "revoke"},
	} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}

package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI with a fast KDF against dir. stdin feeds the
// passphrase prompt when no -p flag is given.
func run(t *testing.T, dir, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--home", dir, "--kdf", "pbkdf2"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestCLI_AddListGet(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "", "-p", "master", "add", "email", "s3cr3t")
	require.NoError(t, err)
	_, err = run(t, dir, "", "-p", "master", "add", "bank", "1234")
	require.NoError(t, err)

	out, err := run(t, dir, "", "-p", "master", "list")
	require.NoError(t, err)
	assert.Equal(t, "email\nbank\n", out)

	out, err = run(t, dir, "", "-p", "master", "get", "email")
	require.NoError(t, err)
	assert.Equal(t, "s3cr3t\n", out)
}

func TestCLI_PassphraseFromStdin(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "master\n", "add", "email", "s3cr3t")
	require.NoError(t, err)

	out, err := run(t, dir, "master", "get", "email")
	require.NoError(t, err)
	assert.Equal(t, "s3cr3t\n", out)
}

func TestCLI_DuplicateAddFails(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "", "-p", "master", "add", "email", "one")
	require.NoError(t, err)
	_, err = run(t, dir, "", "-p", "master", "add", "email", "two")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	out, err := run(t, dir, "", "-p", "master", "get", "email")
	require.NoError(t, err)
	assert.Equal(t, "one\n", out)
}

func TestCLI_UpdateRemove(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "", "-p", "m", "add", "a", "1")
	require.NoError(t, err)
	_, err = run(t, dir, "", "-p", "m", "update", "a", "2")
	require.NoError(t, err)

	out, err := run(t, dir, "", "-p", "m", "get", "a")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)

	_, err = run(t, dir, "", "-p", "m", "rm", "a")
	require.NoError(t, err)
	_, err = run(t, dir, "", "-p", "m", "remove", "a")
	assert.Error(t, err)
	_, err = run(t, dir, "", "-p", "m", "update", "a", "3")
	assert.Error(t, err)

	out, err = run(t, dir, "", "-p", "m", "list")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCLI_Generate(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "", "-p", "m", "add", "-g", "20", "wifi")
	require.NoError(t, err)
	generated := strings.TrimSpace(out)
	assert.Len(t, generated, 20)

	out, err = run(t, dir, "", "-p", "m", "get", "wifi")
	require.NoError(t, err)
	assert.Equal(t, generated+"\n", out)

	_, err = run(t, dir, "", "-p", "m", "add", "-g", "4", "short")
	assert.Error(t, err)
	_, err = run(t, dir, "", "-p", "m", "add", "-g", "20", "both", "given")
	assert.Error(t, err)
	_, err = run(t, dir, "", "-p", "m", "add", "none")
	assert.Error(t, err)
}

func TestCLI_WrongPassphrase(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "", "-p", "right", "add", "a", "1")
	require.NoError(t, err)

	_, err = run(t, dir, "", "-p", "wrong", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "passphrase")
}

func TestCLI_RejectsUnsafeFields(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "", "-p", "m", "add", "multi\r\nline", "x")
	assert.Error(t, err)
	_, err = run(t, dir, "", "-p", "m", "add", "label", " padded ")
	assert.Error(t, err)
}

func TestCLI_InvalidFlags(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "", "-p", "m", "--cipher", "rot13", "list")
	assert.Error(t, err)
	_, err = run(t, dir, "", "-p", "m", "get")
	assert.Error(t, err)
}

func TestCLI_ChaChaStore(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "", "-p", "m", "--cipher", "chacha20poly1305", "add", "a", "1")
	require.NoError(t, err)

	out, err := run(t, dir, "", "-p", "m", "--cipher", "chacha20poly1305", "get", "a")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)

	_, err = run(t, dir, "", "-p", "m", "get", "a")
	assert.Error(t, err, "aes-cbc cannot read a chacha20poly1305 file")
}

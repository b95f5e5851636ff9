package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes rootCmd with args and returns stdout and stderr separately.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		configPath, tokenizerName, logLevel = "", "", ""
		useMySQL, printBody, rank = false, false, false
	})
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

var dogs = []string{
	"dog dog dog monkey bird",
	"dog cat cat fox",
	"dog raccoon fox",
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	for _, name := range []string{"config", "tokenizer", "log-level", "mysql", "body"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), "flag %s should exist", name)
	}
}

func TestSearchCmd(t *testing.T) {
	stdout, stderr, err := run(t, append([]string{"search", "dog"}, dogs...)...)
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n2\n", stdout)
	assert.Empty(t, stderr)
}

func TestSearchCmd_Body(t *testing.T) {
	stdout, _, err := run(t, "search", "--body", "Taisuke", "I am Taisuke", "you are not")
	require.NoError(t, err)
	assert.Equal(t, "0\tI am Taisuke\n", stdout)
}

func TestSearchCmd_NotFound(t *testing.T) {
	stdout, stderr, err := run(t, "search", "foo", "that that is is that that is not is not is that it it is")
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Equal(t, "term not found: foo\n", stderr)
}

func TestSearchCmd_InvalidArguments(t *testing.T) {
	_, _, err := run(t, "search", "dog")
	assert.ErrorIs(t, err, ErrInvalidArguments)

	_, _, err = run(t, "search")
	assert.ErrorIs(t, err, ErrInvalidArguments)
}

func TestAndCmd(t *testing.T) {
	stdout, _, err := run(t, append([]string{"and", "dog fox"}, dogs...)...)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n", stdout)
}

func TestAndCmd_Rank(t *testing.T) {
	// catのtfが高い1番が先頭
	stdout, _, err := run(t, "and", "--rank", "cat", "cat dog", "cat cat cat dog", "bird", "fish", "cow")
	require.NoError(t, err)
	assert.Equal(t, "1\n0\n", stdout)
}

func TestOrCmd(t *testing.T) {
	stdout, _, err := run(t, append([]string{"or", "monkey raccoon"}, dogs...)...)
	require.NoError(t, err)
	assert.Equal(t, "0\n2\n", stdout)
}

func TestPhraseCmd(t *testing.T) {
	stdout, stderr, err := run(t, append([]string{"phrase", "cat fox"}, dogs...)...)
	require.NoError(t, err)
	assert.Equal(t, "1\n", stdout)
	assert.Empty(t, stderr)

	stdout, stderr, err = run(t, append([]string{"phrase", "fox cat"}, dogs...)...)
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Equal(t, "term not found: fox cat\n", stderr)
}

func TestPositionsCmd(t *testing.T) {
	stdout, _, err := run(t, "positions", "Taisuke", "I am Taisuke")
	require.NoError(t, err)
	assert.Equal(t, "0: [2]\n", stdout)

	stdout, _, err = run(t, append([]string{"positions", "dog"}, dogs...)...)
	require.NoError(t, err)
	assert.Equal(t, "0: [0 1 2]\n1: [0]\n2: [0]\n", stdout)
}

func TestDumpCmd(t *testing.T) {
	stdout, _, err := run(t, "dump", "I am Taisuke")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Taisuke")
	assert.Contains(t, stdout, "Postings")

	_, _, err = run(t, "dump")
	assert.ErrorIs(t, err, ErrInvalidArguments)
}

func TestUnknownTokenizer(t *testing.T) {
	_, _, err := run(t, "search", "--tokenizer", "bigram", "dog", "dog")
	assert.ErrorContains(t, err, "unknown tokenizer type")
}

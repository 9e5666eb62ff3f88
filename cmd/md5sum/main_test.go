package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"gotest.tools/assert"
	is "gotest.tools/assert/cmp"
)

func runMain(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestArgs(t *testing.T) {
	code, out, _ := runMain(t, "", "", "abc", "The quick brown fox jumps over the lazy dog")
	assert.Equal(t, code, exitOK)
	assert.Equal(t, out, ""+
		"d41d8cd98f00b204e9800998ecf8427e\n"+
		"900150983cd24fb0d6963f7d28e17f72\n"+
		"9e107d9d372bb6826bd81d3542a419d6\n")
}

func TestStdin(t *testing.T) {
	code, out, _ := runMain(t, "hello\n")
	assert.Equal(t, code, exitOK)
	assert.Equal(t, out, "b1946ac92492d2347c6235b4d2611184\n")
}

func TestStdinTrim(t *testing.T) {
	for _, in := range []string{"hello\n", "hello\r\n", "hello"} {
		code, out, _ := runMain(t, in, "-trim")
		assert.Equal(t, code, exitOK)
		assert.Equal(t, out, "5d41402abc4b2a76b9719d911017c592\n")
	}
}

func TestStdinEmpty(t *testing.T) {
	code, out, _ := runMain(t, "")
	assert.Equal(t, code, exitOK)
	assert.Equal(t, out, "d41d8cd98f00b204e9800998ecf8427e\n")
}

func TestPrefix(t *testing.T) {
	code, out, _ := runMain(t, "", "-prefix", "abc")
	assert.Equal(t, code, exitOK)
	assert.Equal(t, out, "MD5 Hash: 900150983cd24fb0d6963f7d28e17f72\n")
}

func TestCheck(t *testing.T) {
	code, _, _ := runMain(t, "", "-check", "900150983CD24FB0D6963F7D28E17F72", "abc")
	assert.Equal(t, code, exitOK)

	code, _, stderr := runMain(t, "", "-check", "d41d8cd98f00b204e9800998ecf8427e", "abc")
	assert.Equal(t, code, exitMismatch)
	assert.Assert(t, is.Contains(stderr, "digest mismatch"))

	code, _, _ = runMain(t, "", "-check", "nothex", "abc")
	assert.Equal(t, code, exitUsage)

	code, _, _ = runMain(t, "", "-check", "d41d8cd98f00b204e9800998ecf8427e", "a", "b")
	assert.Equal(t, code, exitUsage)
}

func TestStats(t *testing.T) {
	code, out, _ := runMain(t, "", "-stats", strings.Repeat("a", 55), strings.Repeat("a", 56))
	assert.Equal(t, code, exitOK)
	assert.Assert(t, is.Contains(out, "ef1772b6dff9a122358552954ad0df65"))
	assert.Assert(t, is.Contains(out, "3b0c8ac703f828b04c6c197006d17218"))
	assert.Assert(t, is.Contains(out, "Blocks"))
}

func TestUsage(t *testing.T) {
	code, _, _ := runMain(t, "", "-nope")
	assert.Equal(t, code, exitUsage)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestReadFailure(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(nil, failingReader{}, &stdout, &stderr)
	assert.Equal(t, code, exitRead)
	assert.Assert(t, is.Contains(stderr.String(), "boom"))
	assert.Equal(t, stdout.String(), "")
}

func TestTrimNewline(t *testing.T) {
	assert.DeepEqual(t, trimNewline([]byte("a\n\n")), []byte("a\n"))
	assert.DeepEqual(t, trimNewline([]byte("a")), []byte("a"))
	assert.DeepEqual(t, trimNewline([]byte("\r\n")), []byte{})
}

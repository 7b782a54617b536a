package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeDict(t *testing.T, dir string, words ...string) string {
	t.Helper()
	path := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(words, "\n")), 0o644))
	return path
}

func sampleInput() string {
	var curve []string
	for x := 0; x <= 80; x += 4 {
		curve = append(curve, `{"x":`+strconv.Itoa(x)+`,"y":0,"t":`+strconv.Itoa(x*4)+`}`)
	}
	return `{"keys":[` +
		`{"x":0,"y":0,"w":40,"h":40,"k":"h"},` +
		`{"x":40,"y":0,"w":40,"h":40,"k":"i"},` +
		`{"x":80,"y":0,"w":40,"h":40,"k":"o"}` +
		`],"curve":[` + strings.Join(curve, ",") + `]}`
}

func TestRun_OneShotFindsWord(t *testing.T) {
	dict := writeDict(t, t.TempDir(), "hi", "hio", "oh")
	var stdout, stderr bytes.Buffer
	code := run([]string{"-dict", dict, "-mode", "oneshot"}, strings.NewReader(sampleInput()), &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	require.Contains(t, stdout.String(), `"hio"`)
}

func TestRun_IncrementalFindsWord(t *testing.T) {
	dict := writeDict(t, t.TempDir(), "hi", "hio", "oh")
	var stdout, stderr bytes.Buffer
	code := run([]string{"-dict", dict, "-mode", "incremental"}, strings.NewReader(sampleInput()), &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	require.Contains(t, stdout.String(), `"hio"`)
}

func TestRun_MissingDictIsUsageError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-mode", "oneshot"}, strings.NewReader(sampleInput()), &stdout, &stderr)

	require.Equal(t, 1, code)
	require.Contains(t, stderr.String(), "-dict is required")
}

func TestRun_UnknownModeIsError(t *testing.T) {
	dict := writeDict(t, t.TempDir(), "hio")
	var stdout, stderr bytes.Buffer
	code := run([]string{"-dict", dict, "-mode", "bogus"}, strings.NewReader(sampleInput()), &stdout, &stderr)

	require.Equal(t, 1, code)
	require.Contains(t, stderr.String(), "unknown -mode")
}


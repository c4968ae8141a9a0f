package contents

import (
	"bytes"
	"compress/gzip"
	"io"
	"testing"

	"github.com/ulikunitz/xz"
)

const sampleIndex = "usr/bin/zsh shells/zsh\nusr/bin/rsync net/rsync\n"

func TestNewReader_Gzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(sampleIndex)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	assertReads(t, &buf, "Contents-amd64.gz", sampleIndex)
}

func TestNewReader_Xz(t *testing.T) {
	var buf bytes.Buffer
	xw, err := xz.NewWriter(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := xw.Write([]byte(sampleIndex)); err != nil {
		t.Fatal(err)
	}
	if err := xw.Close(); err != nil {
		t.Fatal(err)
	}

	assertReads(t, &buf, "Contents-amd64.xz", sampleIndex)
}

func TestNewReader_Plain(t *testing.T) {
	assertReads(t, bytes.NewReader([]byte(sampleIndex)), "Contents-amd64", sampleIndex)
}

func TestNewReader_CorruptGzip(t *testing.T) {
	_, err := NewReader(bytes.NewReader([]byte("not a gzip stream")), "Contents-amd64.gz")
	if err == nil {
		t.Fatal("expected error for corrupt gzip stream")
	}
}

func assertReads(t *testing.T, r io.Reader, name, want string) {
	t.Helper()
	rc, err := NewReader(r, name)
	if err != nil {
		t.Fatalf("NewReader(%s) failed: %v", name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("reading %s: %v", name, err)
	}
	if string(data) != want {
		t.Errorf("read %q, want %q", data, want)
	}
}

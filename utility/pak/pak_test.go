// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package pak_test

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"
	"time"

	"github.com/devblok/texel/utility/pak"
)

var (
	testString1 = "idunvovkjnreovmegihjbrqlkmfrjnb"
	testString2 = "idunvovkjnreovmsdvwrvnervnreegihjbrqlkmfrjnb"
)

func buildTestArchive(t *testing.T) []byte {
	t.Helper()

	builder := pak.NewBuilder(pak.Header{
		Author:      "devblok",
		DateCreated: time.Now().Unix(),
		Version:     1,
	})
	if err := builder.Add("test", strings.NewReader(testString1)); err != nil {
		t.Fatal(err)
	}
	if err := builder.Add("test2", strings.NewReader(testString2)); err != nil {
		t.Fatal(err)
	}

	buf := bytes.NewBuffer([]byte{})
	if written, err := builder.WriteTo(buf); err != nil {
		t.Fatal(err)
	} else {
		t.Logf("written %d", written)
	}
	return buf.Bytes()
}

func TestCreateAndRead(t *testing.T) {
	ar, err := pak.Open(bytes.NewReader(buildTestArchive(t)))
	if err != nil {
		t.Fatal(err)
	}

	f, err := ar.Open("test")
	if err != nil {
		t.Fatal(err)
	}
	if f.Size() != int64(len(testString1)) {
		t.Errorf("size %d in index, expected %d", f.Size(), len(testString1))
	}

	result := make([]byte, len(testString1))
	if _, err := f.Read(result); err != nil {
		t.Fatal(err)
	}
	if string(result) != testString1 {
		t.Error("test string does not match up")
	}
}

func TestCreateAndReadAll(t *testing.T) {
	ar, err := pak.Open(bytes.NewReader(buildTestArchive(t)))
	if err != nil {
		t.Fatal(err)
	}

	for name, expected := range map[string]string{
		"test":  testString1,
		"test2": testString2,
	} {
		contents, err := ar.ReadAll(name)
		if err != nil {
			t.Fatal(err)
		}
		if string(contents) != expected {
			t.Errorf("%s: contents do not match up", name)
		}
	}
}

func TestHeaderIndex(t *testing.T) {
	ar, err := pak.Open(bytes.NewReader(buildTestArchive(t)))
	if err != nil {
		t.Fatal(err)
	}

	header := ar.Header()
	if header.Author != "devblok" {
		t.Errorf("author %q survived badly", header.Author)
	}
	if len(header.Index) != 2 {
		t.Errorf("expected 2 index entries, got %d", len(header.Index))
	}
}

func TestOpenMissingEntry(t *testing.T) {
	ar, err := pak.Open(bytes.NewReader(buildTestArchive(t)))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ar.Open("does-not-exist"); err != pak.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestOpenNotAnArchive(t *testing.T) {
	junk := bytes.Repeat([]byte("junkdata"), 64)
	if _, err := pak.Open(bytes.NewReader(junk)); err != pak.ErrFileFormat {
		t.Errorf("expected ErrFileFormat, got %v", err)
	}
}

func TestOpenTruncated(t *testing.T) {
	whole := buildTestArchive(t)
	for _, size := range []int{0, 2, pak.MagicLength, pak.MagicLength + 3, pak.MagicLength + pak.HeaderSizeNumberLength + 1} {
		if _, err := pak.Open(bytes.NewReader(whole[:size])); err != pak.ErrFileFormat {
			t.Errorf("%d byte prefix: expected ErrFileFormat, got %v", size, err)
		}
	}
}

func TestOpenOversizedHeaderLength(t *testing.T) {
	// A valid magic followed by an absurd header length must be
	// rejected before any allocation happens.
	for _, length := range []int64{1 << 62, 1 << 40, pak.MaxHeaderSize + 1, -5} {
		crafted := []byte{'P', 'A', 'K', 0}
		sizeField := make([]byte, binary.MaxVarintLen64)
		binary.PutVarint(sizeField, length)
		crafted = append(crafted, sizeField...)

		if _, err := pak.Open(bytes.NewReader(crafted)); err != pak.ErrFileFormat {
			t.Errorf("header length %d: expected ErrFileFormat, got %v", length, err)
		}
	}
}

// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Command texpak builds, lists and extracts pak asset archives.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"os/user"
	"path/filepath"
	"time"

	"github.com/devblok/texel/utility/pak"
)

func init() {
	u, err := user.Current()
	if err != nil {
		currentUserName = "unknown"
		return
	}
	currentUserName = u.Name
}

var (
	currentUserName string
	version         = flag.Int64("version", 1, "Archive version number to create it with")
	compress        = flag.String("c", "", "Compress the given file/folder")
	list            = flag.Bool("l", false, "List the contents of the archive")
	extract         = flag.String("e", "", "Extract the file given")
	dstFile         = flag.String("f", "out.pak", "Archive file to operate on")
	outFile         = flag.String("o", "", "Output path for extraction, defaults to the entry name")
)

func main() {
	var opMade bool
	flag.Parse()

	if *extract != "" && *compress != "" {
		fail(errors.New("only one operation at a time"))
	}

	if *compress != "" {
		opMade = true
		if err := compressFiles(); err != nil {
			fail(err)
		}
	}

	if *list {
		opMade = true
		if err := listContents(); err != nil {
			fail(err)
		}
	}

	if *extract != "" {
		opMade = true
		if err := extractFile(); err != nil {
			fail(err)
		}
	}

	if !opMade {
		flag.PrintDefaults()
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func compressFiles() error {
	if _, err := os.Stat(*dstFile); err == nil {
		return errors.New("destination file exists, will not overwrite")
	}

	var filesToCompress []string
	if err := filepath.Walk(*compress, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		filesToCompress = append(filesToCompress, path)
		return nil
	}); err != nil {
		return err
	}

	builder := pak.NewBuilder(pak.Header{
		Author:      currentUserName,
		DateCreated: time.Now().Unix(),
		Version:     *version,
	})

	for _, ftc := range filesToCompress {
		f, err := os.Open(ftc)
		if err != nil {
			return err
		}
		name, err := filepath.Rel(*compress, ftc)
		if err != nil {
			name = ftc
		}
		if err := builder.Add(filepath.ToSlash(name), f); err != nil {
			f.Close()
			return err
		}
		f.Close()
	}

	dst, err := os.Create(*dstFile)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = builder.WriteTo(dst)
	return err
}

func openArchive() (*pak.Archive, *os.File, error) {
	f, err := os.Open(*dstFile)
	if err != nil {
		return nil, nil, err
	}
	ar, err := pak.Open(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return ar, f, nil
}

func listContents() error {
	ar, f, err := openArchive()
	if err != nil {
		return err
	}
	defer f.Close()

	header := ar.Header()
	fmt.Printf("%s, version %d, created %s\n", header.Author, header.Version, time.Unix(header.DateCreated, 0))
	for _, e := range header.Index {
		fmt.Printf("%12d %12d  %s\n", e.Size, e.CompressedSize, e.Name)
	}
	return nil
}

func extractFile() error {
	ar, f, err := openArchive()
	if err != nil {
		return err
	}
	defer f.Close()

	contents, err := ar.ReadAll(*extract)
	if err != nil {
		return err
	}

	out := *outFile
	if out == "" {
		out = filepath.Base(*extract)
	}
	return ioutil.WriteFile(out, contents, 0644)
}

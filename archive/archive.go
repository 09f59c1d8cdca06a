// Package archive bundles a fastlane metadata directory into a .tar.xz file.
package archive

import (
	"archive/tar"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/ulikunitz/xz"
)

// epoch is used for every entry so identical trees give identical archives.
var epoch = time.Unix(0, 0).UTC()

// Summary describes a written archive.
type Summary struct {
	Path    string   `json:"path"`
	Entries []string `json:"entries"`
	Bytes   int64    `json:"bytes"`
}

// Implementation names the xz encoder in use.
func Implementation() string {
	return "Pure Go (ulikunitz/xz)"
}

// Pack writes every regular file below srcDir to dest as an xz-compressed
// tarball. Entry names are slash-separated paths relative to srcDir, in
// sorted order. dest itself is skipped when it lies inside srcDir.
// The archive is written next to dest and renamed into place, so dest is
// left untouched when packing fails.
func Pack(srcDir, dest string) (*Summary, error) {
	files, err := collect(srcDir, dest)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	out, err := os.CreateTemp(dir, "."+filepath.Base(dest)+".*")
	if err != nil {
		return nil, err
	}
	tmp := out.Name()
	defer func() {
		out.Close()
		os.Remove(tmp)
	}()

	summary, err := write(out, srcDir, files)
	if err != nil {
		return nil, err
	}
	summary.Path = dest

	if err := out.Close(); err != nil {
		return nil, err
	}
	if err := os.Chmod(tmp, 0644); err != nil {
		return nil, err
	}
	if err := os.Rename(tmp, dest); err != nil {
		return nil, err
	}
	return summary, nil
}

func write(w io.Writer, srcDir string, files []string) (*Summary, error) {
	xw, err := xz.NewWriter(w)
	if err != nil {
		return nil, fmt.Errorf("xz writer: %w", err)
	}
	tw := tar.NewWriter(xw)

	summary := &Summary{Entries: make([]string, 0, len(files))}
	for _, rel := range files {
		n, err := addFile(tw, filepath.Join(srcDir, rel), filepath.ToSlash(rel))
		if err != nil {
			return nil, fmt.Errorf("add %s: %w", rel, err)
		}
		summary.Entries = append(summary.Entries, filepath.ToSlash(rel))
		summary.Bytes += n
	}

	if err := tw.Close(); err != nil {
		return nil, err
	}
	if err := xw.Close(); err != nil {
		return nil, err
	}
	return summary, nil
}

func collect(srcDir, dest string) ([]string, error) {
	absDest, err := filepath.Abs(dest)
	if err != nil {
		return nil, err
	}

	var files []string
	err = filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if abs, err := filepath.Abs(path); err == nil && abs == absDest {
			return nil
		}
		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// openEntry opens a file for adding to the archive.
var openEntry = os.Open

func addFile(tw *tar.Writer, path, name string) (int64, error) {
	f, err := openEntry(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return 0, err
	}
	hdr := &tar.Header{
		Typeflag: tar.TypeReg,
		Name:     name,
		Mode:     0644,
		Size:     info.Size(),
		ModTime:  epoch,
	}
	if err := tw.WriteHeader(hdr); err != nil {
		return 0, err
	}
	return io.Copy(tw, f)
}

// List returns the entry names of an archive written by Pack.
func List(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	xr, err := xz.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("xz reader: %w", err)
	}
	tr := tar.NewReader(xr)

	var names []string
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		names = append(names, hdr.Name)
	}
	return names, nil
}

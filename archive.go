package main

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ulikunitz/xz"
)

// listArchive lists the members of an archive source whose names match
// the spec's pattern. Every named member is considered, directory
// entries included. Non-tar archives are treated as zip, which also
// covers .jar.
func listArchive(spec sourceSpec) ([]entry, error) {
	if isTarName(spec.location) {
		return listTar(spec)
	}
	return listZip(spec)
}

func isTarName(name string) bool {
	for _, suffix := range []string{".tar", ".tar.gz", ".tgz", ".tar.xz", ".txz"} {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

func listZip(spec sourceSpec) ([]entry, error) {
	r, err := zip.OpenReader(spec.location)
	if err != nil {
		return nil, fmt.Errorf("opening archive %s: %w", spec.location, err)
	}
	defer r.Close()
	var found []entry
	for _, member := range r.File {
		if spec.pattern.MatchString(member.Name) {
			found = append(found, entry{
				path:     member.Name,
				contents: zipContents{archive: spec.location, member: member.Name},
			})
		}
	}
	return found, nil
}

// zipContents re-opens the archive and reads one member. Opening on
// demand keeps at most one archive handle live per read, however many
// members are embedded.
type zipContents struct {
	archive, member string
}

func (z zipContents) readAll() ([]byte, error) {
	r, err := zip.OpenReader(z.archive)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	for _, member := range r.File {
		if member.Name != z.member {
			continue
		}
		rc, err := member.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("member %q vanished from %s", z.member, z.archive)
}

// listTar scans the tar stream once, collecting the names of matching
// members. The stream cannot be rewound, so members are read later by
// re-scanning the archive from the start.
func listTar(spec sourceSpec) ([]entry, error) {
	f, dec, err := openTar(spec.location)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var found []entry
	tr := tar.NewReader(dec)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return found, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading archive %s: %w", spec.location, err)
		}
		if spec.pattern.MatchString(hdr.Name) {
			found = append(found, entry{
				path:     hdr.Name,
				contents: tarContents{archive: spec.location, member: hdr.Name},
			})
		}
	}
}

// openTar opens a tar archive and wraps it in the decompressor its
// name implies. The caller closes the returned file; the decompressors
// used here need no close of their own.
func openTar(name string) (*os.File, io.Reader, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	var r io.Reader = f
	switch {
	case strings.HasSuffix(name, ".tar.gz") || strings.HasSuffix(name, ".tgz"):
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, nil, fmt.Errorf("opening archive %s: %w", name, err)
		}
		r = gz
	case strings.HasSuffix(name, ".tar.xz") || strings.HasSuffix(name, ".txz"):
		xr, err := xz.NewReader(f)
		if err != nil {
			f.Close()
			return nil, nil, fmt.Errorf("opening archive %s: %w", name, err)
		}
		r = xr
	}
	return f, r, nil
}

// tarContents re-scans the archive for one member and reads it to
// exhaustion. If the archive names a member more than once, the first
// occurrence wins.
type tarContents struct {
	archive, member string
}

func (t tarContents) readAll() ([]byte, error) {
	f, dec, err := openTar(t.archive)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tr := tar.NewReader(dec)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if hdr.Name == t.member {
			return io.ReadAll(tr)
		}
	}
	return nil, fmt.Errorf("member %q vanished from %s", t.member, t.archive)
}

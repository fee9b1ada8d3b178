package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// A sourceSpec is one <location>:<pattern> argument: a directory or
// archive to scan, and a regular expression selecting entries by their
// path relative to that source.
type sourceSpec struct {
	location string
	pattern  *regexp.Regexp
}

// parseSpecs splits each argument at the first colon and compiles its
// pattern. The pattern may itself contain colons. All patterns are
// compiled up front, before anything is opened.
func parseSpecs(args []string) ([]sourceSpec, error) {
	specs := make([]sourceSpec, 0, len(args))
	for _, arg := range args {
		parts := strings.SplitN(arg, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("%q must be of the form <location>:<pattern>", arg)
		}
		pattern, err := compileMatch(parts[1])
		if err != nil {
			return nil, fmt.Errorf("bad pattern in %q: %v", arg, err)
		}
		specs = append(specs, sourceSpec{location: parts[0], pattern: pattern})
	}
	return specs, nil
}

// compileMatch compiles a selection pattern. The match is anchored at
// the start of the path but trailing content is allowed, so existing
// patterns without an explicit $ keep matching longer paths.
func compileMatch(pattern string) (*regexp.Regexp, error) {
	return regexp.Compile("^(?:" + pattern + ")")
}

// contents is deferred access to one entry's bytes. readAll opens the
// underlying file or archive member on demand, reads it to exhaustion
// and releases the handle before returning, on error paths included.
type contents interface {
	readAll() ([]byte, error)
}

// An entry is a single file selected for embedding.
type entry struct {
	path     string // relative to the source root, slash-separated
	contents contents
}

// enumerate lists the entries selected by all specs, sorted by relative
// path so the generated output is deterministic. Sources are
// independent: an entry selected by more than one spec appears once per
// spec.
func enumerate(specs []sourceSpec) ([]entry, error) {
	var entries []entry
	for _, spec := range specs {
		fi, err := os.Stat(spec.location)
		if err != nil {
			return nil, err
		}
		var found []entry
		if fi.IsDir() {
			found, err = walkDir(spec)
		} else {
			found, err = listArchive(spec)
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, found...)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].path < entries[j].path
	})
	return entries, nil
}

// walkDir recursively collects the files beneath a directory source
// whose root-relative path matches the spec's pattern.
func walkDir(spec sourceSpec) ([]entry, error) {
	var found []entry
	err := filepath.WalkDir(spec.location, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(spec.location, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if spec.pattern.MatchString(rel) {
			found = append(found, entry{path: rel, contents: fileContents{name: p}})
		}
		return nil
	})
	return found, err
}

// fileContents reads one file under a directory source.
type fileContents struct {
	name string
}

func (f fileContents) readAll() ([]byte, error) {
	file, err := os.Open(f.name)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentifier(t *testing.T) {
	cases := []struct {
		path, want string
	}{
		{"a/b/My.File$1.class", "My_File_1_class"},
		{"a/b/c/One.class", "One_class"},
		{"One.class", "One_class"},
		{"a/b/NoExt", "NoExt"},
		{"dir/sub/archive.tar.gz", "archive_tar_gz"},
		{"$$.x", "___x"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, identifier(c.path), "path %q", c.path)
	}
}

func TestExtension(t *testing.T) {
	cases := []struct {
		path, want string
	}{
		{"a/b/file.bin", "bin"},
		{"a/b/NoExt", ""},
		{"a/b/One.class", "class"},
		{"dir/archive.tar.gz", "gz"},
		{"a/b/.hidden", ""},
		{"a/b/..x", ""},
		{"a/b/.hidden.txt", "txt"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, extension(c.path), "path %q", c.path)
	}
}

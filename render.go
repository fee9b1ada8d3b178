package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// generate runs the pipeline end to end: enumerate and sort the
// entries selected by specs, then write the generated source to
// outPath, replacing whatever was there. A failure part way through
// leaves a partial file; the next successful run overwrites it.
func generate(outPath string, specs []sourceSpec) error {
	entries, err := enumerate(specs)
	if err != nil {
		return err
	}
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err := render(w, entries); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Escapes path text for use inside a C++ string literal. Error
// messages keep the raw path.
var literalEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// render writes the generated source: a byte array and a path constant
// per entry, then one table describing every entry in the same order.
// Entries must already be sorted.
func render(w io.Writer, entries []entry) error {
	for _, e := range entries {
		data, err := e.contents.readAll()
		if err != nil {
			return fmt.Errorf("reading %s: %w", e.path, err)
		}
		name := identifier(e.path)
		fmt.Fprintf(w, "static constexpr uint8 k%s[] = { ", name)
		for _, b := range data {
			fmt.Fprintf(w, "%d, ", b)
		}
		fmt.Fprintf(w, "};\n")
		fmt.Fprintf(w, "static constexpr char k%s_path[] = \"%s\";\n",
			name, literalEscaper.Replace(e.path))
	}

	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "static constexpr struct {\n")
	fmt.Fprintf(w, "  const char* path;\n")
	fmt.Fprintf(w, "  const char* extension;\n")
	fmt.Fprintf(w, "  const uint8* data;\n")
	fmt.Fprintf(w, "  int data_size;\n")
	fmt.Fprintf(w, "} kBinaryFiles[] = {\n")
	for _, e := range entries {
		name := identifier(e.path)
		fmt.Fprintf(w, "  {\n")
		fmt.Fprintf(w, "    k%s_path,\n", name)
		fmt.Fprintf(w, "    \"%s\",\n", extension(e.path))
		fmt.Fprintf(w, "    k%s,\n", name)
		fmt.Fprintf(w, "    arraysize(k%s)\n", name)
		fmt.Fprintf(w, "  },\n")
	}
	fmt.Fprintf(w, "};\n")
	return nil
}

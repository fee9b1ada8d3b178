package main

import (
	"fmt"
	"os"
)

const usageText = `Usage: embedgen <output-file> <location>:<pattern> [<location>:<pattern> ...]

Generates a C++ source fragment that statically embeds the raw bytes of
the selected files, so resources (such as Java .class files) can be
baked into a binary with no runtime filesystem access.

Each <location> is either a directory or an archive. Zip archives
(including .jar) are read through their central directory; .tar,
.tar.gz/.tgz and .tar.xz/.txz archives are scanned sequentially.
<pattern> is a regular expression matched against entry-relative paths.
The match is anchored at the start of the path only, so trailing
content is allowed unless the pattern ends with $. Only the first colon
separates <location> from <pattern>; the pattern itself may contain
colons.

For example:

    embedgen out.inl '/tmp/file.jar:^(a/b/c|home)/.*\.(class|bin)$'

produces something like:

    static constexpr uint8 kOne_class[] = { 71, 73, 72, };
    static constexpr char kOne_class_path[] = "a/b/c/One.class";
    static constexpr uint8 kTwo_class[] = { 65, 66, 67, };
    static constexpr char kTwo_class_path[] = "home/Two.class";

    static constexpr struct {
      const char* path;
      const char* extension;
      const uint8* data;
      int data_size;
    } kBinaryFiles[] = {
      {
        kOne_class_path,
        "class",
        kOne_class,
        arraysize(kOne_class)
      },
      {
        kTwo_class_path,
        "class",
        kTwo_class,
        arraysize(kTwo_class)
      },
    };

The output file is overwritten on every run.
`

func chkfatal(context string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", context, err)
		os.Exit(1)
	}
}

func usageErr(info string) {
	fmt.Fprintln(os.Stderr, info)
	fmt.Fprintln(os.Stderr)
	fmt.Fprint(os.Stderr, usageText)
	os.Exit(1)
}

func isHelpFlag(arg string) bool {
	switch arg {
	case "-h", "--help", "-?", "--?":
		return true
	}
	return false
}

func main() {
	args := os.Args[1:]
	if len(args) > 0 && isHelpFlag(args[0]) {
		fmt.Fprint(os.Stderr, usageText)
		os.Exit(1)
	}
	if len(args) < 2 {
		usageErr("Expected an output file and at least one <location>:<pattern> spec.")
	}

	specs, err := parseSpecs(args[1:])
	chkfatal("parsing input specs", err)

	chkfatal("generating "+args[0], generate(args[0], specs))
}

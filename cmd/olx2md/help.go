package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: olx2md <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert an OLX course export to a single Markdown document.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Course export directory, course/<name>.xml pointer file,")
	fmt.Fprintln(w, "           or a .tar.gz archive of the export")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory")
	fmt.Fprintln(w, "  -c, --config <path>       Config file path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Images:")
	fmt.Fprintln(w, "      --images-dir <name>   Directory name for copied images")
	fmt.Fprintln(w, "      --no-images           Skip copying static images")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output modes:")
	fmt.Fprintln(w, "      --html-preview        Write an HTML preview next to the output")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed diagnostics")
	fmt.Fprintln(w, "      --version             Print version and exit")
}

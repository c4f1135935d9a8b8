package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the olx2md command.
type cliFlags struct {
	output    string
	config    string
	imagesDir string
	noImages  bool
	preview   bool
	verbose   bool
	version   bool
}

// parseFlags parses command-line flags and returns positional args.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("olx2md", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.StringVarP(&f.config, "config", "c", "", "config file path")
	fs.StringVar(&f.imagesDir, "images-dir", "", "directory name for copied images")
	fs.BoolVar(&f.noImages, "no-images", false, "skip copying static images")
	fs.BoolVar(&f.preview, "html-preview", false, "write an HTML preview next to the output")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed diagnostics")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

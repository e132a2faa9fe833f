// genfig reads every .log, .xyz and .com file in a directory and
// reports the geometry found in each
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"bwestbro.com/geom"
)

// Flags
var (
	configFile = flag.String("config", "", "TOML config file")
	dir        = flag.String("dir", "", "directory to search for geometries")
	workers    = flag.Int("j", 0, "number of files to parse at once")
	strict     = flag.Bool("strict", false,
		"treat skipped atom records as failures")
	verbose = flag.Bool("v", false, "print every skipped record")
)

// applyFlags overrides the fields of conf with the flags that were set
// on the command line
func applyFlags(conf *Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dir":
			conf.Dir = *dir
		case "j":
			conf.Workers = *workers
		case "strict":
			conf.Strict = *strict
		case "v":
			conf.Verbose = *verbose
		}
	})
}

func main() {
	flag.Parse()
	conf, err := LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("loading config: %v\n", err)
	}
	applyFlags(&conf)
	if args := flag.Args(); len(args) > 0 {
		conf.Dir = args[0]
	}
	files, err := geom.FindFiles(conf.Dir)
	if err != nil {
		log.Fatalf("searching %s: %v\n", conf.Dir, err)
	}
	if len(files) == 0 {
		log.Fatalf("no %s files found in %s\n",
			strings.Join(geom.Extensions(), ", "), conf.Dir)
	}
	var failed int
	for _, res := range geom.ParseAll(files, conf.Workers) {
		if !Report(os.Stdout, res, conf.Strict, conf.Verbose) {
			failed++
		}
		fmt.Println()
	}
	if failed > 0 {
		log.Printf("%d of %d files failed\n", failed, len(files))
		os.Exit(1)
	}
}

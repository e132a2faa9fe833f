package main

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Dir     string
	Workers int
	Strict  bool
	Verbose bool
}

// LoadConfig reads a TOML config from filename over the defaults
func LoadConfig(filename string) (Config, error) {
	// Defaults
	conf := Config{
		Dir:     ".",
		Workers: 1,
	}
	if filename == "" {
		return conf, nil
	}
	f, err := os.Open(filename)
	if err != nil {
		return conf, err
	}
	defer f.Close()
	cont, err := io.ReadAll(f)
	if err != nil {
		return conf, err
	}
	err = toml.Unmarshal(cont, &conf)
	return conf, err
}

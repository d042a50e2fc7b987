package main

import "errors"

type Config struct {
	InPath    string
	OutDir    string
	Overwrite bool
	JSONOut   bool
	Quiet     bool
}

func (c Config) Validate() error {
	if c.InPath == "" {
		return errors.New("missing -in")
	}
	return nil
}

func defaultConfig() Config {
	return Config{}
}

// Package config handles configuration loading, parsing, and validation
// from a YAML file and RECRUIT_-prefixed environment variables.
package config

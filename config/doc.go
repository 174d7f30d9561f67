// Package config loads textdigest settings from a YAML file and
// validates them at the boundary, so that only enumerated
// algorithms and formats reach the digest pipeline.
package config

package config

import (
	"os"
)

// Environment names the deployment the process runs in. It decides where
// settings are read from.
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

// DetectEnvironment reads CI and ENV. CI=true wins over ENV; an unset or
// unknown ENV means development.
func DetectEnvironment() Environment {
	if os.Getenv("CI") == "true" {
		return CI
	}
	switch Environment(os.Getenv("ENV")) {
	case Production:
		return Production
	case Test:
		return Test
	default:
		return Development
	}
}

// source picks the settings lookup for the environment. CI reads plain
// variables, production reads only mounted secrets, and local runs prefer a
// secret file but fall back to the variable.
func (e Environment) source() source {
	switch e {
	case CI:
		return os.Getenv
	case Production:
		return readSecretFor
	default:
		return secretOrEnv
	}
}

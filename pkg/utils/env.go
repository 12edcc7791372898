package utils

import (
	"fmt"
	"os"

	"github.com/gohornet/hexutil/pkg/hex"
)

// LoadStringFromEnvironment loads a string from the given environment variable.
func LoadStringFromEnvironment(name string) (string, error) {

	str, exists := os.LookupEnv(name)
	if !exists {
		return "", fmt.Errorf("environment variable '%s' not set", name)
	}

	if len(str) == 0 {
		return "", fmt.Errorf("environment variable '%s' not set", name)
	}

	return str, nil
}

// LoadHexFromEnvironment loads a hex encoded value of type V from the given environment variable.
func LoadHexFromEnvironment[V any, P hex.HexPtr[V]](name string) (V, error) {

	str, err := LoadStringFromEnvironment(name)
	if err != nil {
		var empty V
		return empty, err
	}

	value, err := hex.Parse[V, P](str)
	if err != nil {
		return value, fmt.Errorf("environment variable '%s' contains an invalid value: %w", name, err)
	}

	return value, nil
}

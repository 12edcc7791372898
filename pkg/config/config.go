package config

import (
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap/zapcore"

	"github.com/iotaledger/hive.go/configuration"
	"github.com/iotaledger/hive.go/logger"

	"github.com/gohornet/hexutil/pkg/basicauth"
	"github.com/gohornet/hexutil/pkg/model/hexid"
)

const (
	// CfgConfigFilePath is the path to the JSON config file.
	CfgConfigFilePath = "config"
	// CfgLoggerLevel defines the logger's level
	CfgLoggerLevel = "logger.level"
	// CfgLoggerEncoding defines the logger's encoding ("console" or "json")
	CfgLoggerEncoding = "logger.encoding"
	// CfgLoggerOutputPaths defines where the logger writes to
	CfgLoggerOutputPaths = "logger.outputPaths"
	// CfgToolsOutputJSON defines whether the tools print their results as JSON
	CfgToolsOutputJSON = "tools.outputJSON"
	// CfgToolsSaltLength defines the length of generated password salts in bytes
	CfgToolsSaltLength = "tools.saltLength"
	// CfgToolsPublicKey defines the hex encoded public key used by tools if none was passed
	CfgToolsPublicKey = "tools.publicKey"

	// DefaultConfigFilePath is used if no config file path was given.
	DefaultConfigFilePath = "config.json"
)

var (
	// ErrInvalidLoggerEncoding is returned if the logger encoding is neither "console" nor "json".
	ErrInvalidLoggerEncoding = errors.New("invalid logger encoding")
	// ErrInvalidSaltLength is returned if the configured salt length is not positive.
	ErrInvalidSaltLength = errors.New("salt length must be greater than zero")
)

// LoggerConfig configures the logger.
type LoggerConfig struct {
	Level    string
	Encoding string
}

// ToolsConfig configures the command line tools.
type ToolsConfig struct {
	OutputJSON bool
	SaltLength int
	// PublicKey is used by tools that need a key if none was passed.
	PublicKey *hexid.PublicKey
}

// Config is the configuration of the hexutil tools.
type Config struct {
	Logger LoggerConfig
	Tools  ToolsConfig
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Logger: LoggerConfig{
			Level:    "info",
			Encoding: "console",
		},
		Tools: ToolsConfig{
			OutputJSON: false,
			SaltLength: basicauth.SaltLength,
		},
	}
}

// FlagSet returns the flags of the config values. The defaults of the flags are the default config values.
func FlagSet() *flag.FlagSet {
	defaults := Default()

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.StringP(CfgConfigFilePath, "c", DefaultConfigFilePath, "file path of the config file")
	fs.String(CfgLoggerLevel, defaults.Logger.Level, "the logger's level")
	fs.String(CfgLoggerEncoding, defaults.Logger.Encoding, "the logger's encoding (console or json)")
	fs.Bool(CfgToolsOutputJSON, defaults.Tools.OutputJSON, "format output of the tools as JSON")
	fs.Int(CfgToolsSaltLength, defaults.Tools.SaltLength, "the length of generated password salts in bytes")
	fs.String(CfgToolsPublicKey, "", "the hex encoded public key used by tools if none was passed")
	return fs
}

// LoadConfigFile loads the config file given by the flags of fs and applies the flags on top of it.
// A missing config file is only an error if its path was set explicitly.
func LoadConfigFile(fs *flag.FlagSet) (*configuration.Configuration, error) {
	filePath, err := fs.GetString(CfgConfigFilePath)
	if err != nil {
		return nil, err
	}

	config := configuration.New()

	if err := config.LoadFile(filePath); err != nil {
		if fs.Changed(CfgConfigFilePath) || !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("loading config file failed: %w", err)
		}
	}

	if err := config.LoadFlagSet(fs); err != nil {
		return nil, err
	}

	if err := config.SetDefault(logger.ConfigurationKeyDisableCaller, true); err != nil {
		return nil, err
	}

	// stdout is reserved for the output of the tools
	if err := config.SetDefault(CfgLoggerOutputPaths, []string{"stderr"}); err != nil {
		return nil, err
	}

	return config, nil
}

// New creates the Config from the loaded configuration and validates it.
func New(config *configuration.Configuration) (*Config, error) {
	c := &Config{
		Logger: LoggerConfig{
			Level:    config.String(CfgLoggerLevel),
			Encoding: config.String(CfgLoggerEncoding),
		},
		Tools: ToolsConfig{
			OutputJSON: config.Bool(CfgToolsOutputJSON),
			SaltLength: config.Int(CfgToolsSaltLength),
		},
	}

	if pubKeyHex := config.String(CfgToolsPublicKey); len(pubKeyHex) > 0 {
		pubKey, err := hexid.PublicKeyFromHex(pubKeyHex)
		if err != nil {
			return nil, fmt.Errorf("invalid '%s': %w", CfgToolsPublicKey, err)
		}
		c.Tools.PublicKey = &pubKey
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Logger.Level); err != nil {
		return err
	}

	switch c.Logger.Encoding {
	case "console", "json":
	default:
		return fmt.Errorf("%w: %s", ErrInvalidLoggerEncoding, c.Logger.Encoding)
	}

	if c.Tools.SaltLength <= 0 {
		return ErrInvalidSaltLength
	}

	return nil
}

package utils_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iotaledger/hive.go/configuration"
	"github.com/iotaledger/hive.go/logger"

	"github.com/gohornet/hexutil/pkg/hex"
	"github.com/gohornet/hexutil/pkg/model/hexid"
	"github.com/gohornet/hexutil/pkg/utils"
)

func TestLoadHexFromEnvironment(t *testing.T) {
	const envKey = "HEXUTIL_TEST_BLOCK_ID"

	_, err := utils.LoadHexFromEnvironment[hexid.BlockID](envKey)
	assert.Error(t, err)

	blockID := hexid.BlockID{1, 2, 3}
	t.Setenv(envKey, blockID.ToHex())

	loaded, err := utils.LoadHexFromEnvironment[hexid.BlockID](envKey)
	require.NoError(t, err)
	assert.Equal(t, blockID, loaded)

	t.Setenv(envKey, "800")
	_, err = utils.LoadHexFromEnvironment[hexid.BlockID](envKey)
	assert.ErrorIs(t, err, hex.ErrLength)
}

func TestTOMLFile(t *testing.T) {
	type config struct {
		Name    string          `toml:"name"`
		Issuer  hexid.PublicKey `toml:"issuer"`
		Parents hexid.BlockIDs  `toml:"parents"`
	}

	filename := filepath.Join(t.TempDir(), "config.toml")

	cfg := &config{
		Name:    "test",
		Issuer:  hexid.PublicKey{0xff},
		Parents: hexid.BlockIDs{{1}, {2}},
	}
	require.NoError(t, utils.WriteTOMLToFile(filename, cfg, 0o600, "# generated"))

	loaded := &config{}
	require.NoError(t, utils.ReadTOMLFromFile(filename, loaded))
	assert.Equal(t, cfg, loaded)

	assert.Error(t, utils.ReadTOMLFromFile(filepath.Join(t.TempDir(), "missing.toml"), loaded))
}

func TestWrappedLogger(t *testing.T) {
	config := configuration.New()
	require.NoError(t, config.SetDefault("logger.level", "debug"))
	require.NoError(t, config.SetDefault("logger.outputPaths", []string{"stderr"}))
	require.NoError(t, utils.InitGlobalLogger(config))

	// only the first initialization configures the logger
	require.NoError(t, utils.InitGlobalLogger(configuration.New()))

	wrapped := utils.NewWrappedLogger(logger.NewLogger("test"))
	assert.NotNil(t, wrapped.Logger())
	assert.NotNil(t, wrapped.LoggerNamed("sub"))
	wrapped.LogDebugf("decoded %d bytes", 4)

	// logging without a logger is a no-op
	empty := utils.NewWrappedLogger(nil)
	assert.Nil(t, empty.LoggerNamed("sub"))
	empty.LogErrorf("ignored")
}

package toolset

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/gohornet/hexutil/pkg/config"
	"github.com/gohornet/hexutil/pkg/utils"
)

const (
	ToolHexEncode   = "hex-encode"
	ToolHexDecode   = "hex-decode"
	ToolHexSplit    = "hex-split"
	ToolEd25519Addr = "ed25519addr"
	ToolPwdHash     = "pwdhash"
	ToolRefEncode   = "reference-encode"
	ToolRefDecode   = "reference-decode"
)

const (
	FlagToolOutputJSON = "json"
	FlagToolText       = "text"
	FlagToolHex        = "hex"
	FlagToolSeparator  = "separator"
	FlagToolPublicKey  = "publicKey"
	FlagToolPassword   = "password"
	FlagToolFile       = "file"
	FlagToolOutputFile = "out"

	FlagToolDescriptionOutputJSON = "format output as JSON"
)

type toolFunc func(t *Toolset, args []string) error

var tools = map[string]struct {
	description string
	run         toolFunc
}{
	ToolHexEncode:   {"encodes text to a hex string", hexEncode},
	ToolHexDecode:   {"decodes a hex string", hexDecode},
	ToolHexSplit:    {"encodes each of the separated values to a hex string", hexSplit},
	ToolEd25519Addr: {"generates an ed25519 address from a hex encoded public key", ed25519Address},
	ToolPwdHash:     {"generates a scrypt hash from your password and salt", hashPasswordAndSalt},
	ToolRefEncode:   {"serializes a reference from a TOML file to a hex string", referenceEncode},
	ToolRefDecode:   {"deserializes a reference from a hex string to TOML", referenceDecode},
}

// Toolset runs the command line tools.
type Toolset struct {
	*utils.WrappedLogger

	cfg    *config.Config
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// New creates a Toolset that prints to stdout and stderr.
func New(cfg *config.Config, log *utils.WrappedLogger) *Toolset {
	if log == nil {
		log = utils.NewWrappedLogger(nil)
	}

	return &Toolset{
		WrappedLogger: log,
		cfg:           cfg,
		stdin:         os.Stdin,
		stdout:        os.Stdout,
		stderr:        os.Stderr,
	}
}

// WithIO replaces the input and output of the Toolset.
func (t *Toolset) WithIO(stdin io.Reader, stdout io.Writer, stderr io.Writer) *Toolset {
	t.stdin = stdin
	t.stdout = stdout
	t.stderr = stderr
	return t
}

// ShouldHandleTools checks if tools were requested.
func ShouldHandleTools(args []string) bool {
	_, found := toolArgs(args)
	return found
}

func toolArgs(args []string) ([]string, bool) {
	for i, arg := range args {
		if strings.ToLower(arg) == "tool" || strings.ToLower(arg) == "tools" {
			return args[i:], true
		}
	}
	return nil, false
}

// HandleTools runs the tool named in args and returns the exit code.
func (t *Toolset) HandleTools(args []string) int {
	args, found := toolArgs(args)
	if !found {
		t.listTools()
		return 1
	}

	if len(args) == 1 {
		t.listTools()
		return 1
	}

	name := strings.ToLower(args[1])
	tool, exists := tools[name]
	if !exists {
		fmt.Fprint(t.stderr, "tool not found.\n\n")
		t.listTools()
		return 1
	}

	t.LogDebugf("running tool %s", name)
	if err := tool.run(t, args[2:]); err != nil {
		t.LogDebugf("tool %s failed: %+v", name, err)
		fmt.Fprintf(t.stderr, "\nerror: %s\n", err)
		return 1
	}

	return 0
}

func (t *Toolset) listTools() {
	names := make([]string, 0, len(tools))
	for name := range tools {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(t.stderr, "%-18s %s\n", fmt.Sprintf("%s:", name), tools[name].description)
	}
}

func (t *Toolset) newFlagSet(name string, example string) (*flag.FlagSet, *bool) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(t.stderr)
	outputJSON := fs.Bool(FlagToolOutputJSON, t.cfg.Tools.OutputJSON, FlagToolDescriptionOutputJSON)

	fs.Usage = func() {
		fmt.Fprintf(t.stderr, "Usage of %s:\n", name)
		fs.PrintDefaults()
		if example != "" {
			fmt.Fprintf(t.stderr, "\nexample: %s %s\n", name, example)
		}
	}
	return fs, outputJSON
}

func (t *Toolset) printJSON(obj interface{}) error {
	output, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return err
	}

	fmt.Fprintln(t.stdout, string(output))
	return nil
}

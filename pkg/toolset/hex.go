package toolset

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/gohornet/hexutil/pkg/hex"
)

// text is the hex capable result of the hex tools.
type text []byte

func (b text) ToHex() string {
	return hex.ToHex(b)
}

func (b *text) FromHex(hexStr string) error {
	decoded, err := hex.FromHex(hexStr)
	if err != nil {
		return err
	}
	*b = decoded
	return nil
}

func (b text) MarshalText() ([]byte, error) {
	return hex.MarshalText(b)
}

func (t *Toolset) readInput(fs interface{ Args() []string }, flagValue string) (string, error) {
	if len(flagValue) > 0 {
		return flagValue, nil
	}

	if len(fs.Args()) > 0 {
		return strings.Join(fs.Args(), " "), nil
	}

	input, err := io.ReadAll(t.stdin)
	if err != nil {
		return "", errors.Wrap(err, "reading input failed")
	}
	return strings.TrimRight(string(input), "\r\n"), nil
}

func hexEncode(t *Toolset, args []string) error {

	fs, outputJSON := t.newFlagSet(ToolHexEncode, "--text hornet")
	textFlag := fs.String(FlagToolText, "", "the text to encode (optional). Can also be passed as argument or via stdin.")

	if err := fs.Parse(args); err != nil {
		return err
	}

	input, err := t.readInput(fs, *textFlag)
	if err != nil {
		return err
	}

	encoded := text(input)
	t.LogDebugf("encoded %d bytes", len(encoded))

	if *outputJSON {
		result := struct {
			Text string `json:"text"`
			Hex  text   `json:"hex"`
		}{
			Text: input,
			Hex:  encoded,
		}
		return t.printJSON(result)
	}

	fmt.Fprintln(t.stdout, encoded.ToHex())
	return nil
}

func hexDecode(t *Toolset, args []string) error {

	fs, outputJSON := t.newFlagSet(ToolHexDecode, "--hex 0x686f726e6574")
	hexFlag := fs.String(FlagToolHex, "", "the hex string to decode (optional). Can also be passed as argument or via stdin.")

	if err := fs.Parse(args); err != nil {
		return err
	}

	input, err := t.readInput(fs, *hexFlag)
	if err != nil {
		return err
	}

	decoded, err := hex.Parse[text](input)
	if err != nil {
		return err
	}
	t.LogDebugf("decoded %d bytes", len(decoded))

	if *outputJSON {
		bytes := make([]int, len(decoded))
		for i, b := range decoded {
			bytes[i] = int(b)
		}

		result := struct {
			Hex   text   `json:"hex"`
			Text  string `json:"text"`
			Bytes []int  `json:"bytes"`
		}{
			Hex:   decoded,
			Text:  string(decoded),
			Bytes: bytes,
		}
		return t.printJSON(result)
	}

	fmt.Fprintln(t.stdout, "Text:", string(decoded))
	fmt.Fprintln(t.stdout, "Bytes:", []byte(decoded))
	return nil
}

func hexSplit(t *Toolset, args []string) error {

	fs, outputJSON := t.newFlagSet(ToolHexSplit, "--text hornet,bee")
	textFlag := fs.String(FlagToolText, "", "the separated values to encode (optional). Can also be passed as argument or via stdin.")
	separatorFlag := fs.String(FlagToolSeparator, ",", "the separator of the values")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if len(*separatorFlag) == 0 {
		return fmt.Errorf("'%s' not specified", FlagToolSeparator)
	}

	input, err := t.readInput(fs, *textFlag)
	if err != nil {
		return err
	}

	values := strings.Split(input, *separatorFlag)
	byteArrays := make([][]byte, len(values))
	for i, value := range values {
		byteArrays[i] = []byte(value)
	}

	hexStrings := hex.ToHexMultiple(byteArrays)

	if *outputJSON {
		return t.printJSON(hexStrings)
	}

	for _, hexStr := range hexStrings {
		fmt.Fprintln(t.stdout, hexStr)
	}
	return nil
}

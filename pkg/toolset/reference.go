package toolset

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"github.com/gohornet/hexutil/pkg/hex"
	"github.com/gohornet/hexutil/pkg/model/hexid"
	"github.com/gohornet/hexutil/pkg/utils"
)

const (
	referenceFileHeader = "# reference decoded by hexutil"
)

func referenceEncode(t *Toolset, args []string) error {

	fs, outputJSON := t.newFlagSet(ToolRefEncode, fmt.Sprintf("--%s reference.toml", FlagToolFile))
	fileFlag := fs.String(FlagToolFile, "", "the TOML file containing the reference")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if len(*fileFlag) == 0 {
		fs.Usage()
		return fmt.Errorf("'%s' not specified", FlagToolFile)
	}

	ref := &hexid.Reference{}
	if err := utils.ReadTOMLFromFile(*fileFlag, ref); err != nil {
		return errors.Wrap(err, "loading reference failed")
	}

	data, err := ref.Serialize()
	if err != nil {
		return errors.Wrap(err, "serializing reference failed")
	}
	t.LogDebugf("serialized reference with %d parents to %d bytes", len(ref.Parents), len(data))

	if *outputJSON {
		result := struct {
			Reference  *hexid.Reference `json:"reference"`
			Serialized text             `json:"serialized"`
		}{
			Reference:  ref,
			Serialized: data,
		}
		return t.printJSON(result)
	}

	fmt.Fprintln(t.stdout, text(data).ToHex())
	return nil
}

func referenceDecode(t *Toolset, args []string) error {

	fs, outputJSON := t.newFlagSet(ToolRefDecode, fmt.Sprintf("--%s [SERIALIZED_REFERENCE] --%s reference.toml", FlagToolHex, FlagToolOutputFile))
	hexFlag := fs.String(FlagToolHex, "", "the hex encoded serialized reference (optional). Can also be passed as argument or via stdin.")
	outFlag := fs.String(FlagToolOutputFile, "", "write the reference to this TOML file instead of stdout (optional)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	input, err := t.readInput(fs, *hexFlag)
	if err != nil {
		return err
	}

	data, err := hex.FromHex(input)
	if err != nil {
		return err
	}

	ref := &hexid.Reference{}
	if _, err := ref.Deserialize(data); err != nil {
		return errors.Wrap(err, "deserializing reference failed")
	}

	if len(*outFlag) > 0 {
		if err := utils.WriteTOMLToFile(*outFlag, ref, 0o600, referenceFileHeader); err != nil {
			return errors.Wrap(err, "writing reference failed")
		}
		t.LogInfof("reference written to %s", *outFlag)
		return nil
	}

	if *outputJSON {
		return t.printJSON(ref)
	}

	return toml.NewEncoder(t.stdout).Encode(ref)
}

package toolset

import (
	"fmt"

	"github.com/gohornet/hexutil/pkg/model/hexid"
)

func (t *Toolset) printEd25519Info(pubKey hexid.PublicKey, outputJSON bool) error {

	type keys struct {
		PublicKey      hexid.PublicKey `json:"publicKey"`
		Ed25519Address hexid.Address   `json:"ed25519"`
	}

	k := keys{
		PublicKey:      pubKey,
		Ed25519Address: pubKey.Address(),
	}

	if outputJSON {
		return t.printJSON(k)
	}

	fmt.Fprintf(t.stdout, "Your ed25519 public key: %s\nYour ed25519 address:    %s\n", k.PublicKey.ToHex(), k.Ed25519Address.ToHex())

	return nil
}

func ed25519Address(t *Toolset, args []string) error {

	fs, outputJSON := t.newFlagSet(ToolEd25519Addr, fmt.Sprintf("--%s [PUB_KEY]", FlagToolPublicKey))
	publicKeyFlag := fs.String(FlagToolPublicKey, "", "an ed25519 public key (hex encoded)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if len(*publicKeyFlag) == 0 {
		if t.cfg.Tools.PublicKey == nil {
			return fmt.Errorf("'%s' not specified", FlagToolPublicKey)
		}
		t.LogInfof("using public key from config")
		return t.printEd25519Info(*t.cfg.Tools.PublicKey, *outputJSON)
	}

	pubKey, err := hexid.PublicKeyFromHex(*publicKeyFlag)
	if err != nil {
		return fmt.Errorf("can't decode '%s': %w", FlagToolPublicKey, err)
	}

	return t.printEd25519Info(pubKey, *outputJSON)
}

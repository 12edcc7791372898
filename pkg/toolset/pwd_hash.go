package toolset

import (
	"bytes"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/gohornet/hexutil/pkg/basicauth"
	"github.com/gohornet/hexutil/pkg/utils"
)

const (
	passwordEnvKey = "HEXUTIL_TOOL_PASSWORD"
)

func readPasswordFromEnv() ([]byte, error) {
	passwordEnv, err := utils.LoadStringFromEnvironment(passwordEnvKey)
	if err != nil {
		return nil, err
	}
	return []byte(passwordEnv), nil
}

func (t *Toolset) readPasswordFromStdin() ([]byte, error) {
	var password []byte

	// get terminal state to be able to restore it in case of an interrupt
	originalTerminalState, err := term.GetState(int(syscall.Stdin))
	if err != nil {
		return nil, errors.New("failed to get terminal state")
	}

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt)
	defer signal.Stop(signalChan)
	go func() {
		if _, ok := <-signalChan; !ok {
			return
		}
		// reset the terminal to the original state if we receive an interrupt
		_ = term.Restore(int(syscall.Stdin), originalTerminalState)
		fmt.Fprintln(t.stdout, "\naborted... Bye!")
		os.Exit(1)
	}()

	fmt.Fprint(t.stdout, "Enter a password: ")
	password, err = term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return nil, errors.Wrap(err, "read password failed")
	}

	fmt.Fprint(t.stdout, "\nRe-enter your password: ")
	passwordReenter, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return nil, errors.Wrap(err, "read password failed")
	}

	if !bytes.Equal(password, passwordReenter) {
		return nil, errors.New("re-entered password doesn't match")
	}
	fmt.Fprintln(t.stdout)
	return password, nil
}

func hashPasswordAndSalt(t *Toolset, args []string) error {

	fs, outputJSON := t.newFlagSet(ToolPwdHash, "")
	passwordFlag := fs.String(FlagToolPassword, "", fmt.Sprintf("password to hash (optional). Can also be passed as %s environment variable.", passwordEnvKey))

	if err := fs.Parse(args); err != nil {
		return err
	}

	// Check if all parameters were parsed
	if fs.NArg() != 0 {
		fs.Usage()
		return errors.New("too many arguments")
	}

	var password []byte

	if p, err := readPasswordFromEnv(); err == nil {
		// Password passed over the environment
		password = p
	} else if len(*passwordFlag) > 0 {
		// Password passed over flag
		password = []byte(*passwordFlag)
	} else {
		// Read from stdin
		p, err := t.readPasswordFromStdin()
		if err != nil {
			return err
		}
		password = p
	}

	passwordSalt, err := basicauth.SaltGenerator(t.cfg.Tools.SaltLength)
	if err != nil {
		return errors.Wrap(err, "generating random salt failed")
	}

	passwordKey, err := basicauth.DerivePasswordKey(password, passwordSalt)
	if err != nil {
		return errors.Wrap(err, "deriving password key failed")
	}

	if *outputJSON {
		result := struct {
			Password text `json:"passwordHash"`
			Salt     text `json:"passwordSalt"`
		}{
			Password: passwordKey,
			Salt:     passwordSalt,
		}
		return t.printJSON(result)
	}

	fmt.Fprintf(t.stdout, "\nSuccess!\nYour hash: %s\nYour salt: %s\n", text(passwordKey).ToHex(), text(passwordSalt).ToHex())

	return nil
}

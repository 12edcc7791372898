package basicauth

import (
	"bytes"
	"crypto/rand"

	"github.com/pkg/errors"
	"golang.org/x/crypto/scrypt"

	"github.com/gohornet/hexutil/pkg/hex"
)

const (
	// PasswordKeyLength is the length of a derived password key in bytes.
	PasswordKeyLength = 32
	// SaltLength is the default length of a generated password salt in bytes.
	SaltLength = 32
)

var (
	// ErrEmptyUsername is returned if no username was given.
	ErrEmptyUsername = errors.New("username must not be empty")
	// ErrEmptySalt is returned if the decoded password salt is empty.
	ErrEmptySalt = errors.New("password salt must not be empty")
)

// SaltGenerator generates a crypto-secure random salt.
func SaltGenerator(length int) ([]byte, error) {
	salt := make([]byte, length)

	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}

	return salt, nil
}

// DerivePasswordKey calculates the key based on password and salt.
func DerivePasswordKey(password []byte, salt []byte) ([]byte, error) {

	dk, err := scrypt.Key(password, salt, 1<<15, 8, 1, PasswordKeyLength)
	if err != nil {
		return nil, err
	}

	return dk, err
}

// VerifyPassword verifies if the password is correct.
func VerifyPassword(password []byte, salt []byte, storedPasswordKey []byte) (bool, error) {

	dk, err := DerivePasswordKey(password, salt)
	if err != nil {
		return false, err
	}

	return bytes.Equal(dk, storedPasswordKey), nil
}

type BasicAuth struct {
	username     string
	passwordHash [PasswordKeyLength]byte
	passwordSalt []byte
}

// NewBasicAuth creates a BasicAuth from the hex encoded password hash and salt.
func NewBasicAuth(username string, passwordHashHex string, passwordSaltHex string) (*BasicAuth, error) {
	if len(username) == 0 {
		return nil, ErrEmptyUsername
	}

	auth := &BasicAuth{username: username}

	if err := hex.DecodeFixed(passwordHashHex, auth.passwordHash[:]); err != nil {
		return nil, errors.Wrapf(err, "password hash must be %d bytes hex encoded", PasswordKeyLength)
	}

	passwordSalt, err := hex.FromHex(passwordSaltHex)
	if err != nil {
		return nil, errors.Wrap(err, "password salt must be hex encoded")
	}
	if len(passwordSalt) == 0 {
		return nil, ErrEmptySalt
	}
	auth.passwordSalt = passwordSalt

	return auth, nil
}

func (b *BasicAuth) VerifyUsernameAndPassword(username string, password string) bool {
	if username != b.username {
		return false
	}

	// error is ignored because it returns false in case it can't be derived
	valid, _ := VerifyPassword([]byte(password), b.passwordSalt, b.passwordHash[:])
	return valid
}

// Package tron implements read-only access to the notice contract through a
// TronGrid-compatible HTTP API.
package tron

import (
	"crypto/sha256"
	"encoding/hex"
	"math/big"
	"strings"

	domainerrors "noticetrack/internal/domain/errors"

	"github.com/pkg/errors"
)

const (
	// addressPrefixByte is the TRON mainnet address version byte (0x41).
	addressPrefixByte = 0x41

	addressLength         = 21 // version byte + 20-byte body
	addressChecksumLength = 4

	base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
)

//nolint:gochecknoglobals // Lookup table built once from the alphabet.
var base58Index = func() [256]int8 {
	var idx [256]int8
	for i := range idx {
		idx[i] = -1
	}
	for i, c := range base58Alphabet {
		idx[c] = int8(i)
	}

	return idx
}()

// ValidateAddress rejects syntactically invalid base58check TRON addresses
// before any I/O happens.
func ValidateAddress(address string) error {
	if _, err := decodeAddress(address); err != nil {
		return domainerrors.ErrInvalidAddress.WrapMessage(err.Error())
	}

	return nil
}

// decodeAddress decodes a base58check address into its 21 raw bytes.
func decodeAddress(address string) ([]byte, error) {
	if address == "" {
		return nil, errors.New("empty address")
	}
	if !strings.HasPrefix(address, "T") {
		return nil, errors.Errorf("address %q does not start with T", address)
	}

	decoded, err := base58Decode(address)
	if err != nil {
		return nil, err
	}
	if len(decoded) != addressLength+addressChecksumLength {
		return nil, errors.Errorf("address decodes to %d bytes, want %d", len(decoded), addressLength+addressChecksumLength)
	}

	payload := decoded[:addressLength]
	checksum := decoded[addressLength:]
	if payload[0] != addressPrefixByte {
		return nil, errors.Errorf("address version byte 0x%02x, want 0x41", payload[0])
	}

	expected := doubleSHA256(payload)[:addressChecksumLength]
	for i := range checksum {
		if checksum[i] != expected[i] {
			return nil, errors.New("address checksum mismatch")
		}
	}

	return payload, nil
}

// encodeAddress encodes 21 raw address bytes back to base58check.
func encodeAddress(raw []byte) string {
	checksum := doubleSHA256(raw)[:addressChecksumLength]
	payload := make([]byte, 0, len(raw)+addressChecksumLength)
	payload = append(payload, raw...)
	payload = append(payload, checksum...)

	return base58Encode(payload)
}

// addressParam ABI-encodes an address as one left-padded 32-byte word,
// using the 20-byte body without the version byte.
func addressParam(address string) (string, error) {
	raw, err := decodeAddress(address)
	if err != nil {
		return "", err
	}

	word := make([]byte, wordSize)
	copy(word[wordSize-(addressLength-1):], raw[1:])

	return hex.EncodeToString(word), nil
}

func doubleSHA256(data []byte) []byte {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])

	return second[:]
}

func base58Decode(encoded string) ([]byte, error) {
	value := new(big.Int)
	radix := big.NewInt(58)

	for _, c := range []byte(encoded) {
		digit := base58Index[c]
		if digit < 0 {
			return nil, errors.Errorf("invalid base58 character %q", c)
		}
		value.Mul(value, radix)
		value.Add(value, big.NewInt(int64(digit)))
	}

	decoded := value.Bytes()

	// Leading '1' characters encode leading zero bytes.
	leadingZeros := 0
	for i := 0; i < len(encoded) && encoded[i] == '1'; i++ {
		leadingZeros++
	}

	result := make([]byte, leadingZeros+len(decoded))
	copy(result[leadingZeros:], decoded)

	return result, nil
}

func base58Encode(data []byte) string {
	value := new(big.Int).SetBytes(data)
	radix := big.NewInt(58)
	mod := new(big.Int)

	var out []byte
	for value.Sign() > 0 {
		value.DivMod(value, radix, mod)
		out = append(out, base58Alphabet[mod.Int64()])
	}

	for _, b := range data {
		if b != 0 {
			break
		}
		out = append(out, base58Alphabet[0])
	}

	// Reverse in place.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return string(out)
}

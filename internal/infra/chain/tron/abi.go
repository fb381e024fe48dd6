package tron

import (
	"encoding/hex"
	"math"
	"math/big"

	"github.com/pkg/errors"
)

// wordSize is the width of one ABI-encoded value.
const wordSize = 32

// uintParam ABI-encodes an unsigned integer as one 32-byte word.
func uintParam(v uint64) string {
	word := make([]byte, wordSize)
	new(big.Int).SetUint64(v).FillBytes(word)

	return hex.EncodeToString(word)
}

// resultWords splits a constant_result hex payload into 32-byte words.
func resultWords(result string) ([][]byte, error) {
	raw, err := hex.DecodeString(result)
	if err != nil {
		return nil, errors.Wrap(err, "decode constant result")
	}
	if len(raw)%wordSize != 0 {
		return nil, errors.Errorf("constant result length %d is not word aligned", len(raw))
	}

	words := make([][]byte, 0, len(raw)/wordSize)
	for i := 0; i < len(raw); i += wordSize {
		words = append(words, raw[i:i+wordSize])
	}

	return words, nil
}

// wordUint64 normalizes an unbounded ABI integer word to uint64. Values that
// do not fit are rejected rather than truncated; downstream components
// serialize ids and timestamps to JSON and must never see arbitrary-precision
// numerics.
func wordUint64(word []byte) (uint64, error) {
	value := new(big.Int).SetBytes(word)
	if !value.IsUint64() {
		return 0, errors.Errorf("value %s exceeds uint64", value.String())
	}

	return value.Uint64(), nil
}

// wordInt64 normalizes an ABI integer word to int64, for unix timestamps.
func wordInt64(word []byte) (int64, error) {
	v, err := wordUint64(word)
	if err != nil {
		return 0, err
	}
	if v > math.MaxInt64 {
		return 0, errors.Errorf("value %d exceeds int64", v)
	}

	return int64(v), nil
}

// wordBool interprets an ABI boolean word.
func wordBool(word []byte) bool {
	for _, b := range word {
		if b != 0 {
			return true
		}
	}

	return false
}

// wordAddress converts the trailing 20 bytes of a word back to a base58check
// address. The zero address becomes an empty string.
func wordAddress(word []byte) string {
	body := word[wordSize-(addressLength-1):]

	zero := true
	for _, b := range body {
		if b != 0 {
			zero = false

			break
		}
	}
	if zero {
		return ""
	}

	raw := make([]byte, 0, addressLength)
	raw = append(raw, addressPrefixByte)
	raw = append(raw, body...)

	return encodeAddress(raw)
}

package tron

import (
	"testing"

	domainerrors "noticetrack/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Addresses derived from fixed 20-byte bodies (0x11…, 0x22…).
const (
	testRecipientAddress = "TBXSw8fM4jpQkGc6zZjsVABFpVN7UvXPdV"
	testSenderAddress    = "TD5gsCwxykWsLN9aPrq2TAfNjByuZKYp4E"
	testContractAddress  = "TEdvoHEatmDKvTh3o9vBRB9Vdtbhn4QFhy"
)

func TestValidateAddress_Valid(t *testing.T) {
	for _, addr := range []string{testRecipientAddress, testSenderAddress, testContractAddress} {
		assert.NoError(t, ValidateAddress(addr))
	}
}

func TestValidateAddress_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		address string
	}{
		{name: "empty", address: ""},
		{name: "missing T prefix", address: "BXSw8fM4jpQkGc6zZjsVABFpVN7UvXPdV"},
		{name: "bad base58 character", address: "TBXSw8fM4jpQkGc6zZjsVABFpVN70vXPdV"},
		{name: "truncated", address: "TBXSw8fM4jpQ"},
		{name: "checksum mismatch", address: "TBXSw8fM4jpQkGc6zZjsVABFpVN7UvXPdW"},
		{name: "ethereum style hex", address: "0x1111111111111111111111111111111111111111"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAddress(tt.address)
			require.Error(t, err)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "INVALID_ADDRESS", appErr.ErrorCode())
		})
	}
}

func TestAddressRoundTrip(t *testing.T) {
	raw, err := decodeAddress(testRecipientAddress)
	require.NoError(t, err)
	assert.Len(t, raw, addressLength)
	assert.Equal(t, byte(addressPrefixByte), raw[0])

	assert.Equal(t, testRecipientAddress, encodeAddress(raw))
}

func TestAddressParam_PadsToOneWord(t *testing.T) {
	param, err := addressParam(testRecipientAddress)
	require.NoError(t, err)
	require.Len(t, param, wordSize*2)

	// 12 zero bytes of padding, then the 20-byte body.
	assert.Equal(t, "000000000000000000000000", param[:24])
	assert.Equal(t, "1111111111111111111111111111111111111111", param[24:])
}

func TestWordAddress_RoundTripsThroughParam(t *testing.T) {
	param, err := addressParam(testSenderAddress)
	require.NoError(t, err)

	words, err := resultWords(param)
	require.NoError(t, err)
	require.Len(t, words, 1)

	assert.Equal(t, testSenderAddress, wordAddress(words[0]))
}

func TestWordAddress_ZeroIsEmpty(t *testing.T) {
	assert.Equal(t, "", wordAddress(make([]byte, wordSize)))
}

package token

import (
	"crypto/ed25519"
	"encoding/binary"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgramKeys(t *testing.T) {
	assert.Equal(t, "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA", base58.Encode(ProgramKey))
	assert.Equal(t, "ATokenGPvbdGVxr1b2hvZbsiqW5xWH25efTNsLJA8knL", base58.Encode(AssociatedTokenAccountProgramKey))
}

func TestInitializeMint(t *testing.T) {
	keys := generateKeys(t, 3)

	instruction := InitializeMint(keys[0], keys[1], nil, 6)

	assert.EqualValues(t, ProgramKey, instruction.Program)

	require.Len(t, instruction.Data, 1+1+32+1)
	assert.Equal(t, byte(CommandInitializeMint), instruction.Data[0])
	assert.Equal(t, byte(6), instruction.Data[1])
	assert.EqualValues(t, keys[1], instruction.Data[2:34])
	assert.Equal(t, byte(0), instruction.Data[34])

	require.Len(t, instruction.Accounts, 1)
	assert.EqualValues(t, keys[0], instruction.Accounts[0].PublicKey)
	assert.False(t, instruction.Accounts[0].IsSigner)
	assert.True(t, instruction.Accounts[0].IsWritable)
}

func TestInitializeMint_FreezeAuthority(t *testing.T) {
	keys := generateKeys(t, 3)

	instruction := InitializeMint(keys[0], keys[1], keys[2], 9)

	require.Len(t, instruction.Data, 1+1+32+1+32)
	assert.Equal(t, byte(1), instruction.Data[34])
	assert.EqualValues(t, keys[2], instruction.Data[35:67])
}

func TestMintTo(t *testing.T) {
	keys := generateKeys(t, 3)

	instruction := MintTo(keys[0], keys[1], keys[2], 1)

	assert.EqualValues(t, ProgramKey, instruction.Program)

	expected := make([]byte, 9)
	expected[0] = byte(CommandMintTo)
	binary.LittleEndian.PutUint64(expected[1:], 1)
	assert.Equal(t, expected, instruction.Data)

	require.Len(t, instruction.Accounts, 3)

	assert.EqualValues(t, keys[0], instruction.Accounts[0].PublicKey)
	assert.False(t, instruction.Accounts[0].IsSigner)
	assert.True(t, instruction.Accounts[0].IsWritable)

	assert.EqualValues(t, keys[1], instruction.Accounts[1].PublicKey)
	assert.False(t, instruction.Accounts[1].IsSigner)
	assert.True(t, instruction.Accounts[1].IsWritable)

	assert.EqualValues(t, keys[2], instruction.Accounts[2].PublicKey)
	assert.True(t, instruction.Accounts[2].IsSigner)
	assert.False(t, instruction.Accounts[2].IsWritable)
}

func TestTransfer(t *testing.T) {
	keys := generateKeys(t, 3)

	instruction := Transfer(keys[0], keys[1], keys[2], 123456789)

	assert.EqualValues(t, ProgramKey, instruction.Program)

	expected := make([]byte, 9)
	expected[0] = byte(CommandTransfer)
	binary.LittleEndian.PutUint64(expected[1:], 123456789)
	assert.Equal(t, expected, instruction.Data)

	require.Len(t, instruction.Accounts, 3)

	assert.EqualValues(t, keys[0], instruction.Accounts[0].PublicKey)
	assert.False(t, instruction.Accounts[0].IsSigner)
	assert.True(t, instruction.Accounts[0].IsWritable)

	assert.EqualValues(t, keys[1], instruction.Accounts[1].PublicKey)
	assert.False(t, instruction.Accounts[1].IsSigner)
	assert.True(t, instruction.Accounts[1].IsWritable)

	assert.EqualValues(t, keys[2], instruction.Accounts[2].PublicKey)
	assert.True(t, instruction.Accounts[2].IsSigner)
	assert.False(t, instruction.Accounts[2].IsWritable)
}

func generateKeys(t *testing.T, amount int) []ed25519.PublicKey {
	keys := make([]ed25519.PublicKey, amount)

	for i := 0; i < amount; i++ {
		pub, _, err := ed25519.GenerateKey(nil)
		require.NoError(t, err)
		keys[i] = pub
	}

	return keys
}

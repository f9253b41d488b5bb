package token

import (
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenwire/solforge/pkg/solana"
)

func TestGetAssociatedAccount(t *testing.T) {
	// Values taken from the spl reference implementation.
	wallet, err := base58.Decode("4uQeVj5tqViQh7yWWGStvkEG1Zmhx6uasJtWCJziofM")
	require.NoError(t, err)
	mint, err := base58.Decode("8opHzTAnfzRpPEx21XtnrVTX28YQuCpAjcn1PczScKh")
	require.NoError(t, err)
	addr, err := base58.Decode("H7MQwEzt97tUJryocn3qaEoy2ymWstwyEk1i9Yv3EmuZ")
	require.NoError(t, err)

	actual, _, err := GetAssociatedAccount(wallet, mint)
	require.NoError(t, err)
	assert.EqualValues(t, addr, actual)
}

func TestGetAssociatedAccount_Deterministic(t *testing.T) {
	keys := generateKeys(t, 2)

	addr, bump, err := GetAssociatedAccount(keys[0], keys[1])
	require.NoError(t, err)

	again, bumpAgain, err := GetAssociatedAccount(keys[0], keys[1])
	require.NoError(t, err)

	assert.EqualValues(t, addr, again)
	assert.Equal(t, bump, bumpAgain)
	assert.False(t, solana.IsOnCurve(addr))
}

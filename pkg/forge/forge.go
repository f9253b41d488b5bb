// Package forge maps typed operation requests onto unsigned ledger
// instructions. Each operation kind carries its own parameter record,
// validates its business rules, and produces the shared
// solana.Instruction result.
package forge

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"

	"github.com/lumenwire/solforge/pkg/keys"
	"github.com/lumenwire/solforge/pkg/solana"
	"github.com/lumenwire/solforge/pkg/solana/system"
	"github.com/lumenwire/solforge/pkg/solana/token"
)

// ErrDomain is the class for business-rule violations: non-positive
// amounts, out-of-range decimals, identical source and destination, and
// bump-range exhaustion. Specific failures wrap it.
var ErrDomain = errors.New("domain rule violation")

// MaxMintDecimals bounds the decimals accepted when initializing a mint.
const MaxMintDecimals = 9

// Kind tags an operation.
type Kind uint8

const (
	KindTransferLamports Kind = iota
	KindInitializeMint
	KindMintTo
	KindTransferTokens
	KindDeriveAssociatedAccount
)

func (k Kind) String() string {
	switch k {
	case KindTransferLamports:
		return "transfer_lamports"
	case KindInitializeMint:
		return "initialize_mint"
	case KindMintTo:
		return "mint_to"
	case KindTransferTokens:
		return "transfer_tokens"
	case KindDeriveAssociatedAccount:
		return "derive_associated_account"
	}
	return "unknown"
}

// Operation is one instruction-producing request. Build validates the
// parameters and constructs the instruction atomically; on error no bytes
// are produced.
type Operation interface {
	Kind() Kind
	Build() (solana.Instruction, error)
}

func domainErrorf(format string, args ...interface{}) error {
	return errors.Wrap(ErrDomain, fmt.Sprintf(format, args...))
}

// TransferLamports moves native currency between two wallet accounts.
type TransferLamports struct {
	From     *keys.Key
	To       *keys.Key
	Lamports uint64
}

func (op *TransferLamports) Kind() Kind {
	return KindTransferLamports
}

func (op *TransferLamports) Build() (solana.Instruction, error) {
	if op.Lamports == 0 {
		return solana.Instruction{}, domainErrorf("lamports must be positive")
	}
	if bytes.Equal(op.From.ToBytes(), op.To.ToBytes()) {
		return solana.Instruction{}, domainErrorf("sender and recipient are the same account")
	}

	return system.Transfer(op.From.ToBytes(), op.To.ToBytes(), op.Lamports), nil
}

// InitializeMint initializes a new token mint. FreezeAuthority is
// optional.
type InitializeMint struct {
	Mint            *keys.Key
	MintAuthority   *keys.Key
	FreezeAuthority *keys.Key
	Decimals        uint8
}

func (op *InitializeMint) Kind() Kind {
	return KindInitializeMint
}

func (op *InitializeMint) Build() (solana.Instruction, error) {
	if op.Decimals > MaxMintDecimals {
		return solana.Instruction{}, domainErrorf("decimals must be at most %d", MaxMintDecimals)
	}

	var freezeAuthority []byte
	if op.FreezeAuthority != nil {
		freezeAuthority = op.FreezeAuthority.ToBytes()
	}

	return token.InitializeMint(op.Mint.ToBytes(), op.MintAuthority.ToBytes(), freezeAuthority, op.Decimals), nil
}

// MintTo mints new tokens to a token account.
type MintTo struct {
	Mint        *keys.Key
	Destination *keys.Key
	Authority   *keys.Key
	Amount      uint64
}

func (op *MintTo) Kind() Kind {
	return KindMintTo
}

func (op *MintTo) Build() (solana.Instruction, error) {
	if op.Amount == 0 {
		return solana.Instruction{}, domainErrorf("amount must be positive")
	}

	return token.MintTo(op.Mint.ToBytes(), op.Destination.ToBytes(), op.Authority.ToBytes(), op.Amount), nil
}

// TransferTokens moves tokens between the associated token accounts of
// two wallets. Both the source and destination token accounts are derived
// from the respective wallet and the mint.
type TransferTokens struct {
	Owner       *keys.Key
	Destination *keys.Key
	Mint        *keys.Key
	Amount      uint64
}

func (op *TransferTokens) Kind() Kind {
	return KindTransferTokens
}

func (op *TransferTokens) Build() (solana.Instruction, error) {
	if op.Amount == 0 {
		return solana.Instruction{}, domainErrorf("amount must be positive")
	}

	source, _, err := token.GetAssociatedAccount(op.Owner.ToBytes(), op.Mint.ToBytes())
	if err != nil {
		return solana.Instruction{}, wrapDerivationError(err)
	}

	dest, _, err := token.GetAssociatedAccount(op.Destination.ToBytes(), op.Mint.ToBytes())
	if err != nil {
		return solana.Instruction{}, wrapDerivationError(err)
	}

	if bytes.Equal(source, dest) {
		return solana.Instruction{}, domainErrorf("source and destination resolve to the same token account")
	}

	return token.Transfer(source, dest, op.Owner.ToBytes(), op.Amount), nil
}

// DeriveAssociatedAccount computes the associated token account address
// for an owner wallet and mint. It produces no instruction.
type DeriveAssociatedAccount struct {
	Owner *keys.Key
	Mint  *keys.Key
}

// AssociatedAccount is the derived address along with the bump seed that
// forced it off the curve.
type AssociatedAccount struct {
	Address *keys.Key
	Bump    uint8
}

func (op *DeriveAssociatedAccount) Kind() Kind {
	return KindDeriveAssociatedAccount
}

func (op *DeriveAssociatedAccount) Derive() (*AssociatedAccount, error) {
	addr, bump, err := token.GetAssociatedAccount(op.Owner.ToBytes(), op.Mint.ToBytes())
	if err != nil {
		return nil, wrapDerivationError(err)
	}

	address, err := keys.NewKeyFromBytes(addr)
	if err != nil {
		return nil, err
	}

	return &AssociatedAccount{
		Address: address,
		Bump:    bump,
	}, nil
}

func wrapDerivationError(err error) error {
	if errors.Is(err, solana.ErrNoViableBump) {
		return errors.Wrap(ErrDomain, err.Error())
	}
	return err
}

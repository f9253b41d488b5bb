package server

import (
	"github.com/lumenwire/solforge/pkg/codec"
	"github.com/lumenwire/solforge/pkg/solana"
)

// apiResponse is the uniform envelope every endpoint returns.
type apiResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type keypairResponse struct {
	Pubkey string `json:"pubkey"`
	Secret string `json:"secret"`
}

type createTokenRequest struct {
	MintAuthority   string `json:"mintAuthority"`
	Mint            string `json:"mint"`
	FreezeAuthority string `json:"freezeAuthority"`
	Decimals        uint8  `json:"decimals"`
}

type mintTokenRequest struct {
	Mint        string `json:"mint"`
	Destination string `json:"destination"`
	Authority   string `json:"authority"`
	Amount      uint64 `json:"amount"`
}

type tokenAddressRequest struct {
	Owner string `json:"owner"`
	Mint  string `json:"mint"`
}

type tokenAddressResponse struct {
	Address string `json:"address"`
	Bump    uint8  `json:"bump"`
}

type signMessageRequest struct {
	Message string `json:"message"`
	Secret  string `json:"secret"`
}

type signMessageResponse struct {
	Signature string `json:"signature"`
	PublicKey string `json:"publicKey"`
	Message   string `json:"message"`
}

type verifyMessageRequest struct {
	Message   string `json:"message"`
	Signature string `json:"signature"`
	Pubkey    string `json:"pubkey"`
}

type verifyMessageResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
	Pubkey  string `json:"pubkey"`
}

type sendSolRequest struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Lamports uint64 `json:"lamports"`
}

type sendTokenRequest struct {
	Destination string `json:"destination"`
	Mint        string `json:"mint"`
	Owner       string `json:"owner"`
	Amount      uint64 `json:"amount"`
}

type accountMetaJSON struct {
	Pubkey     string `json:"pubkey"`
	IsSigner   bool   `json:"isSigner"`
	IsWritable bool   `json:"isWritable"`
}

type instructionResponse struct {
	ProgramID       string            `json:"programId"`
	Accounts        []accountMetaJSON `json:"accounts"`
	InstructionData string            `json:"instructionData"`
}

func newInstructionResponse(instruction solana.Instruction) instructionResponse {
	accounts := make([]accountMetaJSON, len(instruction.Accounts))
	for i, account := range instruction.Accounts {
		accounts[i] = accountMetaJSON{
			Pubkey:     codec.EncodeBase58(account.PublicKey),
			IsSigner:   account.IsSigner,
			IsWritable: account.IsWritable,
		}
	}

	return instructionResponse{
		ProgramID:       codec.EncodeBase58(instruction.Program),
		Accounts:        accounts,
		InstructionData: codec.EncodeBase64(instruction.Data),
	}
}

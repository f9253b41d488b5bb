package server

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"

	"github.com/lumenwire/solforge/pkg/codec"
	"github.com/lumenwire/solforge/pkg/forge"
	"github.com/lumenwire/solforge/pkg/keys"
)

func (s *Server) ping(w http.ResponseWriter, r *http.Request) {
	s.writeData(w, "pong")
}

func (s *Server) generateKeypair(w http.ResponseWriter, r *http.Request) {
	kp, err := keys.GenerateKeypair()
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeData(w, keypairResponse{
		Pubkey: kp.PublicKey().ToBase58(),
		Secret: kp.SecretKeyBase58(),
	})
}

func (s *Server) createToken(w http.ResponseWriter, r *http.Request) {
	var req createTokenRequest
	if !s.decode(w, r, &req) {
		return
	}

	mint, err := keys.ParsePublicKey(req.Mint)
	if err != nil {
		s.writeError(w, errors.Wrap(err, "invalid mint"))
		return
	}

	mintAuthority, err := keys.ParsePublicKey(req.MintAuthority)
	if err != nil {
		s.writeError(w, errors.Wrap(err, "invalid mint authority"))
		return
	}

	op := &forge.InitializeMint{
		Mint:          mint,
		MintAuthority: mintAuthority,
		Decimals:      req.Decimals,
	}

	if req.FreezeAuthority != "" {
		op.FreezeAuthority, err = keys.ParsePublicKey(req.FreezeAuthority)
		if err != nil {
			s.writeError(w, errors.Wrap(err, "invalid freeze authority"))
			return
		}
	}

	s.buildAndWrite(w, op)
}

func (s *Server) mintToken(w http.ResponseWriter, r *http.Request) {
	var req mintTokenRequest
	if !s.decode(w, r, &req) {
		return
	}

	mint, err := keys.ParsePublicKey(req.Mint)
	if err != nil {
		s.writeError(w, errors.Wrap(err, "invalid mint"))
		return
	}

	destination, err := keys.ParsePublicKey(req.Destination)
	if err != nil {
		s.writeError(w, errors.Wrap(err, "invalid destination"))
		return
	}

	authority, err := keys.ParsePublicKey(req.Authority)
	if err != nil {
		s.writeError(w, errors.Wrap(err, "invalid authority"))
		return
	}

	s.buildAndWrite(w, &forge.MintTo{
		Mint:        mint,
		Destination: destination,
		Authority:   authority,
		Amount:      req.Amount,
	})
}

func (s *Server) deriveTokenAddress(w http.ResponseWriter, r *http.Request) {
	var req tokenAddressRequest
	if !s.decode(w, r, &req) {
		return
	}

	owner, err := keys.ParsePublicKey(req.Owner)
	if err != nil {
		s.writeError(w, errors.Wrap(err, "invalid owner"))
		return
	}

	mint, err := keys.ParsePublicKey(req.Mint)
	if err != nil {
		s.writeError(w, errors.Wrap(err, "invalid mint"))
		return
	}

	derived, err := (&forge.DeriveAssociatedAccount{Owner: owner, Mint: mint}).Derive()
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeData(w, tokenAddressResponse{
		Address: derived.Address.ToBase58(),
		Bump:    derived.Bump,
	})
}

func (s *Server) signMessage(w http.ResponseWriter, r *http.Request) {
	var req signMessageRequest
	if !s.decode(w, r, &req) {
		return
	}

	if req.Message == "" {
		s.writeError(w, errors.New("message is required"))
		return
	}

	kp, err := keys.ParseKeypair(req.Secret)
	if err != nil {
		s.writeError(w, errors.Wrap(err, "invalid secret key"))
		return
	}

	signature := kp.Sign([]byte(req.Message))

	s.writeData(w, signMessageResponse{
		Signature: codec.EncodeBase64(signature),
		PublicKey: kp.PublicKey().ToBase58(),
		Message:   req.Message,
	})
}

func (s *Server) verifyMessage(w http.ResponseWriter, r *http.Request) {
	var req verifyMessageRequest
	if !s.decode(w, r, &req) {
		return
	}

	pubkey, err := keys.ParsePublicKey(req.Pubkey)
	if err != nil {
		s.writeError(w, errors.Wrap(err, "invalid public key"))
		return
	}

	signature, err := codec.DecodeBase64(req.Signature)
	if err != nil {
		s.writeError(w, errors.Wrap(err, "invalid signature"))
		return
	}

	s.writeData(w, verifyMessageResponse{
		Valid:   keys.Verify(pubkey, []byte(req.Message), signature),
		Message: req.Message,
		Pubkey:  req.Pubkey,
	})
}

func (s *Server) sendSol(w http.ResponseWriter, r *http.Request) {
	var req sendSolRequest
	if !s.decode(w, r, &req) {
		return
	}

	from, err := keys.ParsePublicKey(req.From)
	if err != nil {
		s.writeError(w, errors.Wrap(err, "invalid from address"))
		return
	}

	to, err := keys.ParsePublicKey(req.To)
	if err != nil {
		s.writeError(w, errors.Wrap(err, "invalid to address"))
		return
	}

	s.buildAndWrite(w, &forge.TransferLamports{
		From:     from,
		To:       to,
		Lamports: req.Lamports,
	})
}

func (s *Server) sendToken(w http.ResponseWriter, r *http.Request) {
	var req sendTokenRequest
	if !s.decode(w, r, &req) {
		return
	}

	owner, err := keys.ParsePublicKey(req.Owner)
	if err != nil {
		s.writeError(w, errors.Wrap(err, "invalid owner"))
		return
	}

	destination, err := keys.ParsePublicKey(req.Destination)
	if err != nil {
		s.writeError(w, errors.Wrap(err, "invalid destination"))
		return
	}

	mint, err := keys.ParsePublicKey(req.Mint)
	if err != nil {
		s.writeError(w, errors.Wrap(err, "invalid mint"))
		return
	}

	s.buildAndWrite(w, &forge.TransferTokens{
		Owner:       owner,
		Destination: destination,
		Mint:        mint,
		Amount:      req.Amount,
	})
}

func (s *Server) buildAndWrite(w http.ResponseWriter, op forge.Operation) {
	instruction, err := op.Build()
	if err != nil {
		s.log.WithError(err).WithField("kind", op.Kind()).Debug("operation rejected")
		s.writeError(w, err)
		return
	}

	s.writeData(w, newInstructionResponse(instruction))
}

// decode reads the JSON request body. It reports false after writing an
// error response if the body isn't valid JSON for the target type.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeJSON(w, http.StatusBadRequest, apiResponse{
			Success: false,
			Error:   errors.Wrap(err, "invalid request body").Error(),
		})
		return false
	}
	return true
}

func (s *Server) writeData(w http.ResponseWriter, data interface{}) {
	s.writeJSON(w, http.StatusOK, apiResponse{
		Success: true,
		Data:    data,
	})
}

// writeError reports a handled failure. The envelope carries the message;
// the status stays 200 because the request itself was well-formed.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	s.writeJSON(w, http.StatusOK, apiResponse{
		Success: false,
		Error:   err.Error(),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.WithError(err).Warn("failed to write response")
	}
}

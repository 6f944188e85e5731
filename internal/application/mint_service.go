package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"subname-minter/internal/application/port"
	"subname-minter/internal/domain"
	"subname-minter/internal/domain/entity"
	"subname-minter/internal/domain/mint"
	"subname-minter/internal/domain/repository"
	domainService "subname-minter/internal/domain/service"
	"subname-minter/internal/pkg/apperrors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Compile-time check
var _ port.MintService = (*MintService)(nil)

// Search results recorded in metrics.
const (
	resultAvailable = "available"
	resultTaken     = "taken"
	resultUnknown   = "unknown"
)

// MintServiceParams groups the dependencies of a MintService.
type MintServiceParams struct {
	Sessions  repository.SessionRepository
	Networks  *NetworkChecker
	Backend   domainService.MintBackend
	Directory domainService.SubnameDirectory
	// Signer is the wallet used by backends that require one. It may be nil.
	Signer      domainService.Wallet
	Network     entity.NetworkContext
	Parent      string
	ExpiryYears int
	// StrictSuggestions looks up every suggestion instead of copying the primary result.
	StrictSuggestions bool
	DirectoryPageSize int
	Metrics           port.MintMetrics
	Logger            *zap.Logger
}

// MintService runs searches and mint attempts against one active network and one backend.
type MintService struct {
	*NetworkChecker
	sessions    repository.SessionRepository
	backend     domainService.MintBackend
	directory   domainService.SubnameDirectory
	signer      domainService.Wallet
	network     entity.NetworkContext
	parent      string
	expiryYears int
	strict      bool
	pageSize    int
	metrics     port.MintMetrics
	now         func() time.Time
	logger      *zap.Logger
}

// NewMintService creates a MintService.
func NewMintService(p MintServiceParams) *MintService {
	metrics := p.Metrics
	if metrics == nil {
		metrics = port.NopMetrics{}
	}
	pageSize := p.DirectoryPageSize
	if pageSize <= 0 {
		pageSize = 20
	}
	return &MintService{
		NetworkChecker: p.Networks,
		sessions:       p.Sessions,
		backend:        p.Backend,
		directory:      p.Directory,
		signer:         p.Signer,
		network:        p.Network,
		parent:         p.Parent,
		expiryYears:    p.ExpiryYears,
		strict:         p.StrictSuggestions,
		pageSize:       pageSize,
		metrics:        metrics,
		now:            time.Now,
		logger:         p.Logger.Named("MintService"),
	}
}

// OpenSession starts a session. Without an explicit address the signer's account is used.
func (s *MintService) OpenSession(ctx context.Context, req port.ConnectRequest) (entity.Session, error) {
	wallet := entity.WalletState{ChainID: req.ChainID}
	switch {
	case req.Address != "":
		if !common.IsHexAddress(req.Address) {
			return entity.Session{}, fmt.Errorf("%w: %q is not an address", domain.ErrInvalidInput, req.Address)
		}
		wallet.Address = common.HexToAddress(req.Address)
	case s.signer != nil:
		wallet.Address = s.signer.Address()
		if wallet.ChainID == 0 {
			wallet.ChainID = s.signer.ChainID()
		}
	}
	if wallet.ChainID == 0 && wallet.Connected() {
		wallet.ChainID = s.network.ChainID
	}

	session := entity.Session{
		ID:        uuid.NewString(),
		Wallet:    wallet,
		Status:    entity.StatusIdle,
		CreatedAt: s.now().UTC(),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return entity.Session{}, err
	}

	s.logger.Info("Session opened",
		zap.String("session", session.ID),
		zap.String("wallet", wallet.Address.Hex()),
		zap.Uint64("chainId", wallet.ChainID))
	return session, nil
}

func (s *MintService) Session(ctx context.Context, id string) (entity.Session, error) {
	return s.sessions.Get(ctx, id)
}

// Search checks label and builds its suggestions. When availability cannot be determined the
// result carries no suggestions and the error wraps domain.ErrAvailabilityUnknown.
func (s *MintService) Search(ctx context.Context, sessionID, label string) (entity.SearchResult, error) {
	logger := s.logger.With(zap.String("session", sessionID), zap.String("query", label))

	candidate, err := entity.NewNameCandidate(label, s.parent)
	if err != nil {
		return entity.SearchResult{Query: label}, err
	}

	generation, err := s.sessions.NextGeneration(ctx, sessionID)
	if err != nil {
		return entity.SearchResult{Query: label}, err
	}

	result := entity.SearchResult{
		Query:      label,
		Primary:    candidate.FullName(),
		Generation: generation,
	}

	available, checkErr := s.backend.CheckAvailability(ctx, candidate)
	result.Availability = entity.AvailabilityFrom(available, checkErr)
	s.metrics.AvailabilityChecked(s.backend.Kind(), string(result.Availability))

	if checkErr != nil {
		logger.Warn("Availability check failed", zap.Error(checkErr))
		result.Suggestions = []entity.Suggestion{}
		if !errors.Is(checkErr, domain.ErrAvailabilityUnknown) {
			checkErr = fmt.Errorf("%w: %v", domain.ErrAvailabilityUnknown, checkErr)
		}
	} else {
		candidates := mint.Suggest(candidate)
		result.Suggestions = mint.Annotate(candidates, result.Availability)
		if s.strict {
			s.checkSuggestions(ctx, result.Suggestions)
		}
	}

	stored, err := s.sessions.StoreSearch(ctx, sessionID, result)
	if err != nil {
		return result, err
	}
	if !stored {
		logger.Debug("Dropping superseded search result", zap.Uint64("generation", generation))
		return result, fmt.Errorf("%w: search for %q", domain.ErrStaleRequest, label)
	}

	logger.Debug("Search finished",
		zap.String("primary", result.Primary),
		zap.String("availability", string(result.Availability)))
	return result, checkErr
}

// checkSuggestions replaces the copied availability of every alternate with its own answer.
// Alternates that cannot be checked are left unmintable.
func (s *MintService) checkSuggestions(ctx context.Context, suggestions []entity.Suggestion) {
	for i := 1; i < len(suggestions); i++ {
		available, err := s.backend.CheckAvailability(ctx, suggestions[i].Candidate)
		availability := entity.AvailabilityFrom(available, err)
		s.metrics.AvailabilityChecked(s.backend.Kind(), string(availability))
		if err != nil {
			s.logger.Debug("Suggestion check failed", zap.String("name", suggestions[i].Name), zap.Error(err))
		}
		suggestions[i].Taken = availability != entity.AvailabilityAvailable
		suggestions[i].Checked = err == nil
		suggestions[i].Mintable = availability.Mintable()
	}
}

// Mint runs one attempt for cmd.Label. Wallet checks happen before any remote call; at most one
// attempt per session runs at a time.
func (s *MintService) Mint(ctx context.Context, sessionID string, cmd port.MintCommand) (outcome entity.MintOutcome, err error) {
	started := s.now()
	outcome = entity.MintOutcome{Backend: s.backend.Kind(), Status: entity.StatusIdle}

	candidate, err := entity.NewNameCandidate(cmd.Label, s.parent)
	if err != nil {
		return s.fail(outcome, err), err
	}
	outcome.Name = candidate.FullName()

	acquired, err := s.sessions.TryAcquire(ctx, sessionID)
	if err != nil {
		return s.fail(outcome, err), err
	}
	if !acquired {
		err = fmt.Errorf("%w: session %s", domain.ErrBusy, sessionID)
		return s.fail(outcome, err), err
	}

	logger := s.logger.With(zap.String("session", sessionID), zap.String("name", outcome.Name))
	defer func() {
		if err != nil {
			outcome = s.fail(outcome, err)
		}
		if relErr := s.sessions.Release(context.WithoutCancel(ctx), sessionID, outcome); relErr != nil {
			logger.Error("Failed to release session", zap.Error(relErr))
		}
		s.metrics.MintFinished(s.backend.Kind(), metricOutcome(outcome), s.now().Sub(started))
	}()

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return outcome, err
	}

	req, err := s.mintRequest(session, candidate, cmd.Owner)
	if err != nil {
		logger.Info("Mint refused before any remote call", zap.Error(err))
		return outcome, err
	}

	available, err := s.backend.CheckAvailability(ctx, candidate)
	s.metrics.AvailabilityChecked(s.backend.Kind(), string(entity.AvailabilityFrom(available, err)))
	if err != nil {
		if !errors.Is(err, domain.ErrAvailabilityUnknown) {
			err = fmt.Errorf("%w: %v", domain.ErrAvailabilityUnknown, err)
		}
		return outcome, err
	}
	if !available {
		return outcome, fmt.Errorf("%w: %s", domain.ErrNameTaken, candidate.FullName())
	}

	quote, err := s.backend.MintParameters(ctx, req)
	if err != nil {
		logger.Info("Mint parameters refused", zap.Error(err))
		return outcome, err
	}
	outcome.Estimate = quote.Estimate
	if outcome.Estimate == nil && quote.Params.Price != nil {
		outcome.Estimate = entity.NewPriceEstimate(quote.Params.Price, quote.Params.Fee)
	}

	tx, err := s.backend.Assemble(quote, s.network)
	switch {
	case errors.Is(err, domainService.ErrNoTransaction):
		tx = nil
	case err != nil:
		logger.Error("Failed to assemble mint call", zap.Error(err))
		return outcome, fmt.Errorf("%w: %v", apperrors.ErrInternal, err)
	}

	onStatus := func(status entity.MintStatus) {
		if setErr := s.sessions.SetStatus(context.WithoutCancel(ctx), sessionID, status); setErr != nil {
			logger.Warn("Failed to record mint status", zap.String("status", string(status)), zap.Error(setErr))
		}
	}

	submitted, err := s.backend.Submit(ctx, req, tx, s.signer, onStatus)
	estimate := outcome.Estimate
	outcome = submitted
	outcome.Estimate = estimate
	if outcome.Name == "" {
		outcome.Name = candidate.FullName()
	}
	if outcome.Backend == "" {
		outcome.Backend = s.backend.Kind()
	}
	if err != nil {
		return outcome, err
	}

	logger.Info("Mint submitted",
		zap.String("backend", outcome.Backend),
		zap.String("txHash", outcome.TxHash))
	return outcome, nil
}

// mintRequest validates the session wallet against the backend and builds the request.
func (s *MintService) mintRequest(session entity.Session, candidate entity.NameCandidate, ownerHex string) (entity.MintRequest, error) {
	if !session.Wallet.Connected() {
		return entity.MintRequest{}, fmt.Errorf("%w: no wallet connected", domain.ErrWalletNotReady)
	}

	if s.backend.RequiresSigner() {
		if err := CheckWallet(s.signer, s.network); err != nil {
			return entity.MintRequest{}, err
		}
		if s.signer.Address() != session.Wallet.Address {
			return entity.MintRequest{}, fmt.Errorf("%w: session wallet %s cannot sign here",
				domain.ErrWalletNotReady, session.Wallet.Address.Hex())
		}
		if session.Wallet.ChainID != s.network.ChainID {
			return entity.MintRequest{}, fmt.Errorf("%w: wallet is on chain %d, %s is chain %d",
				domain.ErrWrongNetwork, session.Wallet.ChainID, s.network.Name, s.network.ChainID)
		}
	}

	owner := session.Wallet.Address
	if ownerHex = strings.TrimSpace(ownerHex); ownerHex != "" {
		if !common.IsHexAddress(ownerHex) {
			return entity.MintRequest{}, fmt.Errorf("%w: owner %q is not an address", domain.ErrInvalidInput, ownerHex)
		}
		owner = common.HexToAddress(ownerHex)
	}

	return entity.MintRequest{
		Candidate:   candidate,
		Minter:      session.Wallet.Address,
		Owner:       owner,
		ExpiryYears: s.expiryYears,
		Network:     s.network,
	}, nil
}

// fail fills the display fields of outcome from err.
func (s *MintService) fail(outcome entity.MintOutcome, err error) entity.MintOutcome {
	outcome.Kind = domain.Classify(err)
	outcome.Message = domain.UserMessage(err)
	return outcome
}

func metricOutcome(outcome entity.MintOutcome) string {
	if outcome.Kind != domain.KindNone {
		return string(outcome.Kind)
	}
	return string(outcome.Status)
}

// SubnamesByOwner lists one page of the parent's directory subnames owned by owner. Pages start at 1.
func (s *MintService) SubnamesByOwner(ctx context.Context, owner string, page int) (entity.SubnamePage, error) {
	if s.directory == nil {
		return entity.SubnamePage{}, fmt.Errorf("%w: no subname directory configured", domain.ErrProviderUnreachable)
	}
	if !common.IsHexAddress(owner) {
		return entity.SubnamePage{}, fmt.Errorf("%w: owner %q is not an address", domain.ErrInvalidInput, owner)
	}
	if page < 1 {
		page = 1
	}
	return s.directory.ListByOwner(ctx, s.parent, common.HexToAddress(owner), page, s.pageSize)
}

// TextRecord reads one text record of a directory subname.
func (s *MintService) TextRecord(ctx context.Context, fullName, key string) (string, error) {
	if s.directory == nil {
		return "", fmt.Errorf("%w: no subname directory configured", domain.ErrProviderUnreachable)
	}
	fullName = strings.ToLower(strings.TrimSpace(fullName))
	key = strings.TrimSpace(key)
	if fullName == "" || key == "" {
		return "", fmt.Errorf("%w: name and key are required", domain.ErrInvalidInput)
	}
	return s.directory.TextRecord(ctx, fullName, key)
}

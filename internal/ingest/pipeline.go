package ingest

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cesargomez89/mixmemory/internal/library"
	"github.com/cesargomez89/mixmemory/internal/logger"
	"github.com/cesargomez89/mixmemory/internal/network"
)

// Store is the persistence surface the pipeline needs: snapshot saves after
// each session and the session ledger backing incremental updates.
type Store interface {
	SaveSnapshot(lib *library.Library, net *network.Network) error
	RecordSessionProcessed(sessionID string, processedDate time.Time, runID string) error
	WasSessionProcessed(sessionID string) (bool, error)
}

// Result summarizes one ingestion run.
type Result struct {
	SessionsMerged  int
	SessionsSkipped int
	PromptsAsked    int
	EdgesAdded      int
	Cancelled       bool
}

// Pipeline merges play sessions into the library and network. It mutates the
// library and network it was given and checkpoints them through the store
// after every completed session.
type Pipeline struct {
	lib     *library.Library
	net     *network.Network
	store   Store
	confirm Confirmer
	log     *logger.Logger
	runID   string
	now     func() time.Time
}

func NewPipeline(lib *library.Library, net *network.Network, store Store, confirm Confirmer, log *logger.Logger) *Pipeline {
	runID := uuid.NewString()
	return &Pipeline{
		lib:     lib,
		net:     net,
		store:   store,
		confirm: confirm,
		log:     log.WithComponent("ingest").WithRun(runID),
		runID:   runID,
		now:     time.Now,
	}
}

// LoadFromSessions merges every session on or after minDate. The ledger is
// written but not consulted: this is the full-load pathway for first-time
// population or a rebuild. A zero minDate admits everything.
func (p *Pipeline) LoadFromSessions(sessions []Session, minDate time.Time) (Result, error) {
	return p.run(sessions, minDate, false)
}

// UpdateFromSessions is the incremental pathway: same date filter, but
// sessions already in the ledger are skipped outright, so repeated runs over
// overlapping file sets never re-ask the user.
func (p *Pipeline) UpdateFromSessions(sessions []Session, minDate time.Time) (Result, error) {
	return p.run(sessions, minDate, true)
}

func (p *Pipeline) run(sessions []Session, minDate time.Time, consultLedger bool) (Result, error) {
	var res Result

	for _, session := range sessions {
		if !minDate.IsZero() && session.Date.Before(minDate) {
			res.SessionsSkipped++
			continue
		}
		if consultLedger {
			processed, err := p.store.WasSessionProcessed(session.ID)
			if err != nil {
				return res, err
			}
			if processed {
				p.log.Debug("session already surveyed, skipping", "session", session.ID)
				res.SessionsSkipped++
				continue
			}
		}

		prompts, added, err := p.mergeSession(session)
		res.PromptsAsked += prompts
		res.EdgesAdded += added

		if errors.Is(err, ErrSurveyCancelled) {
			// Keep what the user already confirmed. The interrupted
			// session stays out of the ledger so it can be resumed.
			p.log.Info("survey cancelled, saving confirmed transitions",
				"session", session.ID, "edges_added", res.EdgesAdded)
			res.Cancelled = true
			if saveErr := p.store.SaveSnapshot(p.lib, p.net); saveErr != nil {
				return res, saveErr
			}
			return res, nil
		}
		if err != nil {
			return res, err
		}

		if err := p.store.RecordSessionProcessed(session.ID, p.now(), p.runID); err != nil {
			return res, err
		}
		if err := p.store.SaveSnapshot(p.lib, p.net); err != nil {
			return res, err
		}
		res.SessionsMerged++
		p.log.Info("session merged",
			"session", session.ID, "prompts", prompts, "edges_added", added)
	}

	return res, nil
}

// mergeSession surveys every candidate pair of one session. Duplicate
// consecutive entries and already-recorded transitions are skipped without a
// prompt; the duplicate check sees edges confirmed earlier in this run.
func (p *Pipeline) mergeSession(session Session) (prompts, added int, err error) {
	for _, pair := range session.Pairs() {
		source := p.lib.GetOrCreate(pair[0].Artist, pair[0].Title)
		dest := p.lib.GetOrCreate(pair[1].Artist, pair[1].Title)

		if source.ID == dest.ID {
			continue
		}
		if p.net.HasEdge(source.ID, dest.ID) {
			continue
		}

		prompts++
		ok, err := p.confirm.Confirm(fmt.Sprintf("%s -> %s", source, dest))
		if err != nil {
			return prompts, added, err
		}
		if !ok {
			// A no is final for this pair within this run.
			continue
		}
		if p.net.AddEdge(source.ID, dest.ID) {
			added++
		}
	}
	return prompts, added, nil
}

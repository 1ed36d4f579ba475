package loader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/programme-lv/leaderboard/logger"
	"github.com/programme-lv/leaderboard/s3bucket"
	"github.com/programme-lv/leaderboard/scoring"
	"golang.org/x/sync/errgroup"
)

type Resource string

const (
	ResourceParticipants Resource = "participants"
	ResourceAttempts     Resource = "attempts"
)

type Loader struct {
	participants Source
	attempts     Source
}

func New(participants Source, attempts Source) *Loader {
	return &Loader{
		participants: participants,
		attempts:     attempts,
	}
}

// LoadAll fetches both resources concurrently. If either fails the other
// request is cancelled and the first *LoadError is returned.
func (l *Loader) LoadAll(ctx context.Context) (scoring.Snapshot, error) {
	var participants []scoring.Participant
	var attempts []scoring.Attempt

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		participants, err = load[scoring.Participant](gctx, ResourceParticipants, l.participants)
		return err
	})
	g.Go(func() error {
		var err error
		attempts, err = load[scoring.Attempt](gctx, ResourceAttempts, l.attempts)
		return err
	})
	if err := g.Wait(); err != nil {
		return scoring.Snapshot{}, err
	}

	return scoring.NewSnapshot(participants, attempts), nil
}

func load[T any](ctx context.Context, resource Resource, src Source) ([]T, error) {
	ctx = logger.WithResource(ctx, string(resource))
	log := logger.FromContext(ctx)

	start := time.Now()
	log.Debug("fetching resource", "source", src.String())

	body, err := src.Fetch(ctx)
	if err != nil {
		loadErr := classify(resource, err)
		log.Warn("failed to fetch resource", "source", src.String(), "kind", loadErr.Kind, "error", err)
		return nil, loadErr
	}

	records, err := decodeRecords[T](body)
	if err != nil {
		log.Warn("failed to parse resource", "source", src.String(), "error", err)
		return nil, &LoadError{Resource: resource, Kind: KindParse, Err: err}
	}

	log.Debug("fetched resource", "records", len(records), "bytes", len(body), "took", time.Since(start))
	return records, nil
}

func decodeRecords[T any](body []byte) ([]T, error) {
	values, err := recordValues(body)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(values))
	for i, raw := range values {
		var rec T
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func classify(resource Resource, err error) *LoadError {
	var httpStatus *StatusError
	if errors.As(err, &httpStatus) {
		return &LoadError{Resource: resource, Kind: KindStatus, StatusCode: httpStatus.StatusCode, Err: err}
	}
	var s3Status *s3bucket.StatusError
	if errors.As(err, &s3Status) {
		return &LoadError{Resource: resource, Kind: KindStatus, StatusCode: s3Status.StatusCode, Err: err}
	}
	return &LoadError{Resource: resource, Kind: KindNetwork, Err: err}
}

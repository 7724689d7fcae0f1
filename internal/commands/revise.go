package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/gofrs/flock"
	"github.com/wot-oss/pkgcoll/internal/commands/validate"
	"github.com/wot-oss/pkgcoll/internal/config"
	"github.com/wot-oss/pkgcoll/internal/model"
	"github.com/wot-oss/pkgcoll/internal/utils"
)

const lockRetryDelay = 13 * time.Millisecond

var (
	ErrCollectionLocked   = errors.New("could not acquire lock on collection file")
	ErrRevisionOutOfRange = errors.New("revision cannot be incremented")
)

type ReviseOptions struct {
	// Author replaces the generatedBy author when not nil
	Author *model.Author
	Indent string
}

type ReviseCommand struct {
	now         func() time.Time
	lockTimeout time.Duration
}

func NewReviseCommand(now func() time.Time, lockTimeout time.Duration) *ReviseCommand {
	if now == nil {
		now = time.Now
	}
	if lockTimeout <= 0 {
		lockTimeout = config.DefaultLockTimeout
	}
	return &ReviseCommand{
		now:         now,
		lockTimeout: lockTimeout,
	}
}

// Revise rewrites the collection in the named file as a new revision: the revision is incremented (starting at 1
// if absent) and generatedAt is set to the current time. Everything else is kept.
// The file is locked while being revised and replaced atomically.
func (c *ReviseCommand) Revise(ctx context.Context, filename string, opts ReviseOptions) (model.Collection, error) {
	log := slog.Default()

	unlock, err := c.lock(ctx, filename)
	defer unlock()
	if err != nil {
		return model.Collection{}, err
	}

	abs, raw, err := utils.ReadRequiredFile(filename)
	if err != nil {
		return model.Collection{}, err
	}
	old, err := validate.ValidateSupportedCollection(raw)
	if err != nil {
		return model.Collection{}, err
	}

	revised, err := Revised(*old, c.now(), opts.Author)
	if err != nil {
		return model.Collection{}, err
	}

	stat, err := os.Stat(abs)
	if err != nil {
		return model.Collection{}, err
	}
	err = utils.AtomicWriteFile(abs, EncodeCollection(revised, opts.Indent), stat.Mode().Perm())
	if err != nil {
		return model.Collection{}, fmt.Errorf("could not write %s: %w", abs, err)
	}
	log.Info("revised package collection", "file", abs, "revision", *revised.Revision)
	return revised, nil
}

// Revised builds the next revision of old. old must have a supported format version.
// Returns ErrRevisionOutOfRange if the revision of old is already the largest int.
func Revised(old model.Collection, now time.Time, author *model.Author) (model.Collection, error) {
	rev := 1
	if old.Revision != nil {
		if *old.Revision == math.MaxInt {
			return model.Collection{}, fmt.Errorf("%w: %d", ErrRevisionOutOfRange, *old.Revision)
		}
		rev = *old.Revision + 1
	}
	opts := []model.CollectionOption{
		model.WithRevision(rev),
		model.WithGeneratedAt(now),
	}
	if old.Description != nil {
		opts = append(opts, model.WithDescription(*old.Description))
	}
	if old.Keywords != nil {
		opts = append(opts, model.WithKeywords(old.Keywords...))
	}
	if author == nil {
		author = old.GeneratedBy
	}
	if author != nil {
		opts = append(opts, model.WithGeneratedBy(*author))
	}
	return model.NewCollection(old.Title, old.Packages, old.FormatVersion, opts...), nil
}

type unlockFunc func()

func (c *ReviseCommand) lock(ctx context.Context, filename string) (unlockFunc, error) {
	fl := flock.New(filename + ".lock")
	ctx, cancel := context.WithTimeout(ctx, c.lockTimeout)
	unlock := func() {
		cancel()
		_ = fl.Unlock()
	}
	locked, err := fl.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return unlock, fmt.Errorf("%w: %w", ErrCollectionLocked, err)
	}
	if !locked {
		return unlock, ErrCollectionLocked
	}
	return unlock, nil
}

package state

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jonwraymond/checkops/atomicfile"
	"github.com/jonwraymond/checkops/observe"
)

const (
	dirPerm  fs.FileMode = 0o700
	filePerm fs.FileMode = 0o640
)

// StoreConfig configures a Store. Zero values select the defaults.
type StoreConfig struct {
	// Prefix is the state directory prefix. Defaults to ResolvePrefix
	// applied to Lookup and Privileged.
	Prefix string

	// Lookup reads environment variables. Defaults to os.LookupEnv.
	Lookup func(string) (string, bool)

	// UID returns the user id used in state paths. Defaults to EffectiveUID.
	UID func() int

	// Clock returns the current time. Defaults to time.Now.
	Clock func() time.Time

	// Digest derives key names. Defaults to SHA256.
	Digest Digest

	// Logger receives diagnostics. Defaults to a no-op logger.
	Logger observe.Logger
}

// Store reads and writes state files below a prefix directory.
//
// Contract:
// - Concurrency: safe for concurrent use; writers to one key race and the last wins.
// - Errors: Read never fails, unusable state reads as absent.
type Store struct {
	prefix string
	uid    func() int
	clock  func() time.Time
	digest Digest
	logger observe.Logger
}

// NewStore creates a Store from cfg.
func NewStore(cfg StoreConfig) (*Store, error) {
	if cfg.Lookup == nil {
		cfg.Lookup = os.LookupEnv
	}
	if cfg.Prefix == "" {
		cfg.Prefix = ResolvePrefix(cfg.Lookup, Privileged())
	}
	if cfg.UID == nil {
		cfg.UID = EffectiveUID
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.Digest == nil {
		cfg.Digest = SHA256
	} else if _, err := NewDigest(cfg.Digest); err != nil {
		return nil, err
	}
	if cfg.Logger == nil {
		cfg.Logger = observe.NopLogger()
	}

	return &Store{
		prefix: cfg.Prefix,
		uid:    cfg.UID,
		clock:  cfg.Clock,
		digest: cfg.Digest,
		logger: cfg.Logger,
	}, nil
}

// Prefix returns the directory below which state files are stored.
func (s *Store) Prefix() string {
	return s.prefix
}

// NewKey creates the key for one plugin invocation. An empty explicitName
// derives the name from argv.
func (s *Store) NewKey(pluginName, explicitName string, dataVersion int, argv []string) (Key, error) {
	if err := validatePluginName(pluginName); err != nil {
		return Key{}, err
	}

	name, err := DeriveKeyName(explicitName, argv, s.digest)
	if err != nil {
		return Key{}, err
	}

	return Key{
		Name:        name,
		PluginName:  pluginName,
		DataVersion: dataVersion,
		Path:        filepath.Join(s.prefix, strconv.Itoa(s.uid()), pluginName, name),
	}, nil
}

// Read returns the stored record for key. It reports false when the file
// is missing, unreadable, or holds no usable state for key.DataVersion.
func (s *Store) Read(ctx context.Context, key Key) (*Record, bool) {
	fields := []observe.Field{{Key: "path", Value: key.Path}}

	f, err := os.Open(key.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug(ctx, "no previous state", fields...)
		} else {
			s.logger.Warn(ctx, "state file unreadable", append(fields, observe.Field{Key: "error", Value: err})...)
		}
		return nil, false
	}
	defer f.Close()

	rec, err := readRecord(f, key.DataVersion, s.clock())
	if err != nil {
		if isStale(err) {
			s.logger.Debug(ctx, "discarding previous state", append(fields, observe.Field{Key: "reason", Value: err})...)
		} else {
			s.logger.Warn(ctx, "state file unreadable", append(fields, observe.Field{Key: "error", Value: err})...)
		}
		return nil, false
	}
	return rec, true
}

// Write replaces the state for key. A zero ts means now. The payload must
// fit on one line of at most MaxPayload bytes and must not start with '#'.
func (s *Store) Write(ctx context.Context, key Key, ts time.Time, payload string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validatePayload(payload); err != nil {
		return err
	}
	if ts.IsZero() {
		ts = s.clock()
	}

	dir := filepath.Dir(key.Path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrStateDirectory, dir, err)
	}

	err := atomicfile.Publish(key.Path, filePerm, func(w io.Writer) error {
		return writeRecord(w, key.DataVersion, ts, payload)
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStateWriteFailure, err)
	}

	s.logger.Debug(ctx, "state written",
		observe.Field{Key: "path", Value: key.Path},
		observe.Field{Key: "timestamp", Value: ts.Unix()},
	)
	return nil
}

// isStale reports whether err only means the file holds no usable state,
// as opposed to an I/O failure.
func isStale(err error) bool {
	return errors.Is(err, errFormatVersion) ||
		errors.Is(err, errDataVersion) ||
		errors.Is(err, errFutureTimestamp) ||
		errors.Is(err, errNoPayload)
}

func validatePluginName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator) {
		return fmt.Errorf("%w: %q", ErrInvalidPluginName, name)
	}
	return nil
}

package storage

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"sync/atomic"

	"github.com/dgraph-io/badger/v4"
	"github.com/hailam/chessmg/internal/board"
)

const keyPrefix = "moves/"

// Options configures a MoveCache.
type Options struct {
	// Dir is the database directory. Empty means CacheDir().
	Dir string
	// InMemory keeps the database in memory only; Dir is ignored.
	InMemory bool
	// Logger receives badger warnings and errors. Nil means the standard logger.
	Logger *log.Logger
	// Verbose also forwards badger info and debug lines.
	Verbose bool
}

// CacheStats counts lookups served by Moves.
type CacheStats struct {
	Hits   uint64
	Misses uint64
}

// MoveCache wraps BadgerDB to persist pseudo-legal move lists keyed by
// position key.
type MoveCache struct {
	db     *badger.DB
	hits   atomic.Uint64
	misses atomic.Uint64
}

// Open opens (or creates) a move cache.
func Open(o Options) (*MoveCache, error) {
	logger := o.Logger
	if logger == nil {
		logger = log.New(os.Stderr, "", log.LstdFlags)
	}

	var opts badger.Options
	if o.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		dir := o.Dir
		if dir == "" {
			var err error
			if dir, err = CacheDir(); err != nil {
				return nil, fmt.Errorf("resolve cache dir: %w", err)
			}
		}
		opts = badger.DefaultOptions(dir)
	}
	opts.Logger = badgerLogger{l: logger, verbose: o.Verbose}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open move cache: %w", err)
	}

	return &MoveCache{db: db}, nil
}

// Close closes the database
func (c *MoveCache) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

func cacheKey(key uint64) []byte {
	k := make([]byte, len(keyPrefix)+8)
	copy(k, keyPrefix)
	binary.BigEndian.PutUint64(k[len(keyPrefix):], key)
	return k
}

// fingerprint is the first four FEN fields of pos, the same fields the
// key covers. It is stored next to the moves so a key collision reads as
// a miss.
func fingerprint(pos *board.Position) string {
	return strings.Join(strings.Fields(pos.FEN())[:4], " ")
}

// encodeEntry lays out an entry as a big-endian uint16 fingerprint length,
// the fingerprint, then one little-endian uint32 per move.
func encodeEntry(fp string, moves []board.Move) []byte {
	data := make([]byte, 2+len(fp)+4*len(moves))
	binary.BigEndian.PutUint16(data, uint16(len(fp)))
	copy(data[2:], fp)
	body := data[2+len(fp):]
	for i, m := range moves {
		binary.LittleEndian.PutUint32(body[4*i:], m.Pack())
	}
	return data
}

func decodeEntry(data []byte) (fp string, moves []board.Move, err error) {
	if len(data) < 2 || len(data) < 2+int(binary.BigEndian.Uint16(data)) {
		return "", nil, fmt.Errorf("%w: truncated entry of %d bytes", board.ErrInvalidMoveCode, len(data))
	}
	n := int(binary.BigEndian.Uint16(data))
	fp, body := string(data[2:2+n]), data[2+n:]
	if len(body)%4 != 0 {
		return "", nil, fmt.Errorf("%w: move data length %d is not a multiple of 4", board.ErrInvalidMoveCode, len(body))
	}
	moves = make([]board.Move, 0, len(body)/4)
	for i := 0; i < len(body); i += 4 {
		m, err := board.UnpackMove(binary.LittleEndian.Uint32(body[i:]))
		if err != nil {
			return "", nil, err
		}
		moves = append(moves, m)
	}
	return fp, moves, nil
}

// Get returns the stored moves for pos. found is false when nothing is
// stored or the stored entry belongs to a different position with the
// same key.
func (c *MoveCache) Get(pos *board.Position) (moves []board.Move, found bool, err error) {
	want := fingerprint(pos)
	err = c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(cacheKey(pos.Key()))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			fp, decoded, err := decodeEntry(val)
			if err != nil {
				return err
			}
			if fp == want {
				moves, found = decoded, true
			}
			return nil
		})
	})
	return moves, found, err
}

// Put stores moves for pos, replacing any previous entry under its key.
func (c *MoveCache) Put(pos *board.Position, moves []board.Move) error {
	data := encodeEntry(fingerprint(pos), moves)
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(cacheKey(pos.Key()), data)
	})
}

// Moves returns the pseudo-legal moves of pos, generating and storing
// them on a cache miss.
func (c *MoveCache) Moves(pos *board.Position) ([]board.Move, error) {
	moves, found, err := c.Get(pos)
	if err != nil {
		return nil, err
	}
	if found {
		c.hits.Add(1)
		return moves, nil
	}

	c.misses.Add(1)
	moves = pos.GeneratePseudoLegalMoves().Slice()
	if err := c.Put(pos, moves); err != nil {
		return nil, err
	}
	return moves, nil
}

// Stats returns the hit and miss counts of Moves.
func (c *MoveCache) Stats() CacheStats {
	return CacheStats{Hits: c.hits.Load(), Misses: c.misses.Load()}
}

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/g-m-twostay/splay-rank/Trees"
	"github.com/urfave/cli/v2"
)

var errCorrupt = errors.New("tree invariants violated")

// tokens reads whitespace separated unsigned integers.
type tokens struct {
	sc   *bufio.Scanner
	read int
}

func newTokens(r io.Reader) *tokens {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &tokens{sc: sc}
}

func (t *tokens) next(what string) (uint32, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return 0, fmt.Errorf("reading %s: %w", what, err)
		}
		return 0, fmt.Errorf("reading %s: %w after %d values", what, io.ErrUnexpectedEOF, t.read)
	}
	v, err := strconv.ParseUint(t.sc.Text(), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", what, err)
	}
	t.read++
	return uint32(v), nil
}

// list reads exactly n values.
func (t *tokens) list(n int, what string) ([]uint32, error) {
	vs := make([]uint32, 0, min(n, 1<<16))
	for i := range n {
		v, err := t.next(fmt.Sprintf("%s %d", what, i))
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
	return vs, nil
}

func openInput(cctx *cli.Context) (io.ReadCloser, error) {
	if p := cctx.String("input"); p != "" {
		return os.Open(p)
	}
	if cctx.App.Reader != nil {
		return io.NopCloser(cctx.App.Reader), nil
	}
	return io.NopCloser(os.Stdin), nil
}

// session holds what both commands share: input, logger and output.
type session struct {
	logger *slog.Logger
	in     *tokens
	out    *bufio.Writer
	verify bool
	close  func() error
}

func newSession(cctx *cli.Context) (*session, error) {
	r, err := openInput(cctx)
	if err != nil {
		return nil, err
	}
	return &session{
		logger: configLogger(cctx, cctx.App.ErrWriter),
		in:     newTokens(bufio.NewReader(r)),
		out:    bufio.NewWriter(cctx.App.Writer),
		verify: cctx.Bool("verify"),
		close:  r.Close,
	}, nil
}

func (s *session) writeUint(v uint32) {
	var buf [11]byte
	s.out.Write(strconv.AppendUint(buf[:0], uint64(v), 10))
	s.out.WriteByte('\n')
}

func (s *session) check(tree *Trees.SplayTree[uint32], i int) error {
	if s.verify && tree.Corrupt() {
		s.logger.Error("tree corrupt", "query", i, "tree", tree.String())
		return fmt.Errorf("query %d: %w", i, errCorrupt)
	}
	return nil
}

func runRank(cctx *cli.Context) error {
	s, err := newSession(cctx)
	if err != nil {
		return err
	}
	defer s.close()

	n, err := s.in.next("n")
	if err != nil {
		return err
	}
	m, err := s.in.next("m")
	if err != nil {
		return err
	}
	keys, err := s.in.list(int(m), "key")
	if err != nil {
		return err
	}
	start := time.Now()
	tree, err := Trees.Build[uint32](int(n))
	if err != nil {
		return err
	}
	for i, k := range keys {
		r, err := tree.SelectRankAndDelete(k)
		if err != nil {
			return fmt.Errorf("query %d: %w", i, err)
		}
		s.logger.Debug("deleted key", "query", i, "key", k, "rank", r)
		if err := s.check(tree, i); err != nil {
			return err
		}
		s.writeUint(r)
	}
	if err := s.out.Flush(); err != nil {
		return err
	}
	s.logger.Info("ranked deletions", "n", n, "m", m, "remaining", tree.Size(), "depth", tree.MaxDepth(), "elapsed", time.Since(start))
	return nil
}

func runDecode(cctx *cli.Context) error {
	s, err := newSession(cctx)
	if err != nil {
		return err
	}
	defer s.close()

	n, err := s.in.next("n")
	if err != nil {
		return err
	}
	var ranks []uint32
	for i := 0; i < int(n); i++ {
		r, err := s.in.next(fmt.Sprintf("rank %d", i))
		if errors.Is(err, io.ErrUnexpectedEOF) {
			break
		} else if err != nil {
			return err
		}
		ranks = append(ranks, r)
	}
	start := time.Now()
	tree, err := Trees.Build[uint32](int(n))
	if err != nil {
		return err
	}
	for i, r := range ranks {
		k, err := tree.DeleteKth(r)
		if err != nil {
			return fmt.Errorf("query %d: %w", i, err)
		}
		s.logger.Debug("decoded rank", "query", i, "rank", r, "key", k)
		if err := s.check(tree, i); err != nil {
			return err
		}
		s.writeUint(k)
	}
	if err := s.out.Flush(); err != nil {
		return err
	}
	s.logger.Info("decoded ranks", "n", n, "ranks", len(ranks), "elapsed", time.Since(start))
	return nil
}

// SPDX-License-Identifier: MIT

// Package graphio: the wire codec. Header and edge section are manual
// XDR, the same scheme syncthing uses for its protocol structs: a
// Marshaller writing into a pre-sized buffer, an Unmarshaller consuming
// a byte slice, with the error carried on the codec value.

package graphio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/calmh/xdr"
	"github.com/pierrec/lz4/v4"

	"github.com/katalvlaran/swgraph/core"
)

const (
	// Magic identifies an swgraph stream: "SWG1" big-endian.
	Magic uint32 = 0x53574731

	// FormatVersion is the current wire format revision.
	FormatVersion uint32 = 1

	flagDirected   uint32 = 1 << 0
	flagCompressed uint32 = 1 << 1

	headerSize = 4 + 4 + 4 + 8 + 8 // magic, version, flags, n, edge count
	edgeSize   = 8 + 8 + 8         // from, to, weight bits
	edgeChunk  = 4096              // edges decoded per batch on Read
)

var (
	// ErrBadMagic indicates the stream is not an swgraph file.
	ErrBadMagic = errors.New("graphio: bad magic")

	// ErrBadVersion indicates a format revision this package cannot read.
	ErrBadVersion = errors.New("graphio: unsupported format version")

	// ErrCorrupt indicates internally inconsistent header fields.
	ErrCorrupt = errors.New("graphio: corrupt header")

	// ErrTruncated indicates the stream ended before the declared edge count.
	ErrTruncated = errors.New("graphio: truncated stream")

	// ErrNilGraph indicates a nil graph passed to Write.
	ErrNilGraph = errors.New("graphio: graph is nil")
)

// Write encodes g onto w: header first, then the edge section in the
// graph's column-major enumeration order.
// Complexity: O(nnz).
func Write(w io.Writer, g *core.Graph, opts ...Option) error {
	if g == nil {
		return ErrNilGraph
	}
	o := gatherOptions(opts...)
	edges := g.Edges()

	flags := uint32(0)
	if g.Directed() {
		flags |= flagDirected
	}
	if o.compress {
		flags |= flagCompressed
	}

	hm := &xdr.Marshaller{Data: make([]byte, headerSize)}
	hm.MarshalUint32(Magic)
	hm.MarshalUint32(FormatVersion)
	hm.MarshalUint32(flags)
	hm.MarshalUint64(uint64(g.VertexCount()))
	hm.MarshalUint64(uint64(len(edges)))
	if hm.Error != nil {
		return fmt.Errorf("graphio: marshal header: %w", hm.Error)
	}
	if _, err := w.Write(hm.Data); err != nil {
		return fmt.Errorf("graphio: write header: %w", err)
	}

	em := &xdr.Marshaller{Data: make([]byte, len(edges)*edgeSize)}
	for _, e := range edges {
		em.MarshalUint64(uint64(e.From))
		em.MarshalUint64(uint64(e.To))
		em.MarshalUint64(math.Float64bits(e.Weight))
	}
	if em.Error != nil {
		return fmt.Errorf("graphio: marshal edges: %w", em.Error)
	}

	if !o.compress {
		if _, err := w.Write(em.Data); err != nil {
			return fmt.Errorf("graphio: write edges: %w", err)
		}

		return nil
	}

	lw := lz4.NewWriter(w)
	if _, err := lw.Write(em.Data); err != nil {
		return fmt.Errorf("graphio: compress edges: %w", err)
	}
	if err := lw.Close(); err != nil {
		return fmt.Errorf("graphio: flush lz4 frame: %w", err)
	}

	return nil
}

// Read decodes a graph from r. The reconstructed graph has the exact
// vertex count, edge set and weights of the written one.
// Complexity: O(nnz) decode + store rebuild.
func Read(r io.Reader) (*core.Graph, error) {
	hdr := make([]byte, headerSize)
	if _, err := io.ReadFull(r, hdr); err != nil {
		return nil, fmt.Errorf("graphio: read header: %w", errors.Join(ErrTruncated, err))
	}

	hu := &xdr.Unmarshaller{Data: hdr}
	magic := hu.UnmarshalUint32()
	version := hu.UnmarshalUint32()
	flags := hu.UnmarshalUint32()
	n := hu.UnmarshalUint64()
	count := hu.UnmarshalUint64()
	if hu.Error != nil {
		return nil, fmt.Errorf("graphio: unmarshal header: %w", hu.Error)
	}
	if magic != Magic {
		return nil, fmt.Errorf("graphio: got 0x%08x: %w", magic, ErrBadMagic)
	}
	if version != FormatVersion {
		return nil, fmt.Errorf("graphio: version %d: %w", version, ErrBadVersion)
	}
	// A simple graph cannot hold more than n² edges, and no writer of
	// this format can emit more edge bytes than an int addresses; a
	// header claiming either is corrupt, not merely large.
	if n > math.MaxInt32 || count > n*n || count > math.MaxInt/edgeSize {
		return nil, fmt.Errorf("graphio: n=%d edges=%d: %w", n, count, ErrCorrupt)
	}

	payload := r
	if flags&flagCompressed != 0 {
		payload = lz4.NewReader(r)
	}

	var (
		g   *core.Graph
		err error
	)
	if flags&flagDirected != 0 {
		g, err = core.NewDirected(int(n))
	} else {
		g, err = core.NewUndirected(int(n))
	}
	if err != nil {
		return nil, err
	}

	// Decode in fixed-size batches so the buffer stays bounded no matter
	// what edge count the header declares.
	buf := make([]byte, 0, edgeChunk*edgeSize)
	for i := uint64(0); i < count; {
		batch := count - i
		if batch > edgeChunk {
			batch = edgeChunk
		}
		b := buf[:int(batch)*edgeSize]
		if _, rErr := io.ReadFull(payload, b); rErr != nil {
			return nil, fmt.Errorf("graphio: read edges: %w", errors.Join(ErrTruncated, rErr))
		}

		eu := &xdr.Unmarshaller{Data: b}
		for end := i + batch; i < end; i++ {
			from := int(eu.UnmarshalUint64())
			to := int(eu.UnmarshalUint64())
			weight := math.Float64frombits(eu.UnmarshalUint64())
			if eu.Error != nil {
				return nil, fmt.Errorf("graphio: unmarshal edge %d: %w", i, eu.Error)
			}
			if _, err = g.AddEdge(from, to, weight); err != nil {
				return nil, fmt.Errorf("graphio: edge %d (%d,%d): %w", i, from, to, err)
			}
		}
	}

	return g, nil
}

// WriteFile encodes g into path, creating or truncating the file.
func WriteFile(path string, g *core.Graph, opts ...Option) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphio: create %s: %w", path, err)
	}
	if err = Write(f, g, opts...); err != nil {
		_ = f.Close()

		return err
	}

	return f.Close()
}

// ReadFile decodes a graph from path.
func ReadFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f)
}

package reactionio

import (
	"bufio"
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rxncluster/engine/graph"
	"github.com/rxncluster/engine/internal/telemetry"
	"github.com/rxncluster/engine/reaction"
)

// Load decodes a gzip-compressed, newline-delimited JSON reaction archive
// from r into a slice of records, in archive order. Records missing an id
// are assigned a fresh github.com/google/uuid string so they remain stable
// for the lifetime of the process (not persisted back to the archive).
//
// A line that fails to decode, or whose edges reference a vertex the line
// never declares, is logged at warn level and skipped — it does not abort
// the read. Only a truncated underlying gzip stream returns an error
// (wrapping ErrTruncatedArchive).
func Load(r io.Reader, logger *zap.Logger) ([]*reaction.Record, error) {
	logger = telemetry.NewLogger(logger)

	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("reactionio: open archive: %w", errors.Join(ErrTruncatedArchive, err))
	}
	defer gz.Close()

	var records []*reaction.Record
	scanner := bufio.NewScanner(gz)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		rec, err := decodeLine(line)
		if err != nil {
			logger.Warn("skipping malformed reaction record",
				zap.Int("line", lineNo), zap.Error(err))
			continue
		}
		records = append(records, rec)
	}

	if err := scanner.Err(); err != nil {
		return records, fmt.Errorf("reactionio: read archive: %w", errors.Join(ErrTruncatedArchive, err))
	}

	return records, nil
}

// decodeLine turns one archive line into a Record, or ErrMalformedRecord.
func decodeLine(line []byte) (*reaction.Record, error) {
	var wire wireReaction
	if err := json.Unmarshal(line, &wire); err != nil {
		return nil, fmt.Errorf("reactionio: decode: %w", errors.Join(ErrMalformedRecord, err))
	}

	its := graph.New()
	for _, wv := range wire.Vertices {
		if err := its.AddVertex(graph.NewVertex(wv.ID, wv.Element, wv.Charge)); err != nil {
			return nil, fmt.Errorf("reactionio: vertex %q: %w", wv.ID, errors.Join(ErrMalformedRecord, err))
		}
	}
	for _, we := range wire.Edges {
		order := graph.ScalarOrder(we.OrderA)
		if we.OrderPair {
			order = graph.PairOrder(we.OrderA, we.OrderB)
		}
		_, err := its.AddEdge(graph.Edge{
			ID:            we.ID,
			From:          we.From,
			To:            we.To,
			Order:         order,
			StandardOrder: we.StandardOrder,
		})
		if err != nil {
			return nil, fmt.Errorf("reactionio: edge %s-%s: %w", we.From, we.To, errors.Join(ErrMalformedRecord, err))
		}
	}

	id := wire.ID
	if id == "" {
		id = uuid.NewString()
	}

	record := reaction.New(id, its)
	if wire.Class != "" {
		record.WithClass(wire.Class)
	}
	return record, nil
}

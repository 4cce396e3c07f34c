package tract

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrMalformedLine is returned by ReadText when a transaction line cannot
// be parsed.
var ErrMalformedLine = errors.New("tract: malformed transaction line")

// ReadText builds a MemoryDatabase from a deliberately minimal line format,
// one transaction per line: whitespace-separated item tokens, optionally
// followed by "#<weight>" (default weight 1), mirroring sequoia.c's own
// "-w: integer transaction weight in last field" option. Item tokens are
// recoded to dense identifiers in first-seen order.
//
// This is a demo reader, not the "transaction file parsing" collaborator
// spec.md places out of scope for the core engine — it exists only to
// drive cmd/borgelt and the package's own tests end to end.
func ReadText(r io.Reader) (db *MemoryDatabase, itemNames []string, err error) {
	ids := make(map[string]int)
	var names []string
	var rows [][]Item
	var weights []Support

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		weight := Support(1)
		if n := len(fields); n > 0 && strings.HasPrefix(fields[n-1], "#") {
			w, perr := strconv.ParseInt(fields[n-1][1:], 10, 64)
			if perr != nil {
				return nil, nil, errors.Wrapf(ErrMalformedLine, "weight field %q", fields[n-1])
			}
			weight = Support(w)
			fields = fields[:n-1]
		}
		row := make([]Item, 0, len(fields))
		for _, tok := range fields {
			id, ok := ids[tok]
			if !ok {
				id = len(names)
				ids[tok] = id
				names = append(names, tok)
			}
			row = append(row, Item(id))
		}
		rows = append(rows, row)
		weights = append(weights, weight)
	}
	if serr := scanner.Err(); serr != nil {
		return nil, nil, errors.Wrap(serr, "tract: reading transactions")
	}
	return NewMemoryDatabase(len(names), rows, weights), names, nil
}

// ReadWeightedText is the item-weighted counterpart of ReadText: each item
// token may carry a ":<weight>" suffix (default weight 1.0), e.g.
// "A:0.5 B:1.0 #2" for a transaction of weight 2 whose items A and B carry
// per-occurrence real weights. Like ReadText, this is a demo reader to
// drive cmd/borgelt and tests, not the out-of-scope transaction parser.
func ReadWeightedText(r io.Reader) (db *MemoryWeightedDatabase, itemNames []string, err error) {
	ids := make(map[string]int)
	var names []string
	var rows [][]WeightedItem
	var weights []Support

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		weight := Support(1)
		if n := len(fields); n > 0 && strings.HasPrefix(fields[n-1], "#") {
			w, perr := strconv.ParseInt(fields[n-1][1:], 10, 64)
			if perr != nil {
				return nil, nil, errors.Wrapf(ErrMalformedLine, "weight field %q", fields[n-1])
			}
			weight = Support(w)
			fields = fields[:n-1]
		}
		row := make([]WeightedItem, 0, len(fields))
		for _, tok := range fields {
			name := tok
			itemWeight := 1.0
			if idx := strings.LastIndex(tok, ":"); idx >= 0 {
				name = tok[:idx]
				iw, perr := strconv.ParseFloat(tok[idx+1:], 64)
				if perr != nil {
					return nil, nil, errors.Wrapf(ErrMalformedLine, "item weight %q", tok)
				}
				itemWeight = iw
			}
			id, ok := ids[name]
			if !ok {
				id = len(names)
				ids[name] = id
				names = append(names, name)
			}
			row = append(row, WeightedItem{Item: Item(id), Weight: itemWeight})
		}
		rows = append(rows, row)
		weights = append(weights, weight)
	}
	if serr := scanner.Err(); serr != nil {
		return nil, nil, errors.Wrap(serr, "tract: reading weighted transactions")
	}
	return NewMemoryWeightedDatabase(len(names), rows, weights), names, nil
}

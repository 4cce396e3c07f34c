// Package mine implements the projection engine and driver of the
// unweighted and item-weighted sequential pattern miners (spec.md §4.4,
// §4.7), wiring together pkg/occurrence, pkg/extension, pkg/closed and
// pkg/report. Naming (smin, zmax) tracks sequoia.c's own vocabulary.
package mine

import (
	"unsafe"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/faraday/borgelt/pkg/closed"
	"github.com/faraday/borgelt/pkg/extension"
	"github.com/faraday/borgelt/pkg/occurrence"
	"github.com/faraday/borgelt/pkg/report"
	"github.com/faraday/borgelt/pkg/tract"
)

// Mine runs the unweighted flavor of the engine against db, reporting
// through rep, per spec.md §4.7.
func Mine(db tract.Database, opts Options, rep report.Reporter) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	runID := uuid.New().String()
	mineLog := log.WithField("prefix", "mine").WithField("run", runID)

	w := db.TotalWeight()
	smin := opts.MinSupport
	if smin < 1 {
		smin = 1
	}
	if w < smin {
		mineLog.Debug("database weight below minimum support, nothing to report")
		return nil
	}
	m := db.ItemCount()
	if m == 0 {
		mineLog.Debug("empty item alphabet, nothing to report")
		return nil
	}

	occs := occurrence.BuildInitial(db)
	initial := extension.BuildInitial(m, occs)
	rd := &run{
		m:             m,
		zmax:          opts.zmax(),
		smin:          smin,
		closedMode:    opts.Target == TargetClosed,
		maxArenaBytes: opts.MaxArenaBytes,
		rep:           rep,
		oracle:        closed.New(m),
		log:           mineLog,
	}
	mineLog.WithFields(log.Fields{
		"items":        m,
		"transactions": db.TransactionCount(),
		"target":       opts.Target,
	}).Debug("starting mining run")

	max, err := rd.recurse(initial, db.Extent(), 0)
	if err != nil {
		return err
	}
	if max < w || !rd.closedMode {
		if err := rep.EmitEmpty(w); err != nil {
			return errWrap(ErrReporter, "emit empty sequence")
		}
	}
	return nil
}

// run carries the state threaded through every recurse call of one
// top-level Mine invocation — the Go counterpart of sequoia.c's RECDATA.
type run struct {
	m             int
	zmax          int
	smin          tract.Support
	closedMode    bool
	maxArenaBytes int64
	rep           report.Reporter
	oracle        *closed.Oracle
	log           *log.Entry
}

// recurse is the unweighted projection engine, sequoia.c's recurse(),
// translated per spec.md §4.4.
func (rd *run) recurse(exts []extension.Bucket, z int, l int) (tract.Support, error) {
	n := l + 1
	canRecurse := n <= rd.zmax
	if canRecurse && rd.maxArenaBytes > 0 && arenaBytes(rd.m, z) > rd.maxArenaBytes {
		return 0, errWrap(ErrOutOfMemory, "conditional extension arena")
	}

	// This frame owns exactly one conditional arena (spec.md §4.4 step 1,
	// §5), allocated once and reused — via Reset/FillConditional — across
	// every sibling in the i-loop below, rather than rebuilt per sibling.
	var cond []extension.Bucket
	if canRecurse {
		cond = extension.AllocConditional(rd.m, exts)
	}

	var max tract.Support
	for i := 0; i < rd.m; i++ {
		e := &exts[i]
		if e.Supp < rd.smin {
			continue
		}
		if e.Supp > max {
			max = e.Supp
		}

		// Commit the extension (spec.md §4.4 step 3c): this write happens
		// unconditionally, before the closedness oracle is ever consulted,
		// because the oracle reads pos[l-1] and pos[l].
		for _, x := range e.Oxs {
			x.Occ.Pos = append(x.Occ.Pos[:l], x.ItemRef)
		}

		if rd.closedMode && !rd.oracle.Check(e, n) {
			continue
		}

		if err := rd.rep.Add(tract.Item(i), e.Supp); err != nil {
			return 0, errWrap(ErrReporter, "add")
		}

		var s tract.Support
		if cond != nil {
			extension.Reset(cond)
			if tailLen := extension.FillConditional(cond, e); tailLen > 0 {
				var err error
				s, err = rd.recurse(cond, tailLen, n)
				if err != nil {
					return 0, err
				}
			}
		}

		if !rd.closedMode || s < e.Supp {
			if err := rd.rep.Report(); err != nil {
				return 0, errWrap(ErrReporter, "report")
			}
		}
		if err := rd.rep.Remove(l); err != nil {
			return 0, errWrap(ErrReporter, "remove")
		}
	}
	return max, nil
}

// arenaBytes estimates the byte footprint of a conditional extension arena
// sized for itemCount buckets and z occurrence extensions — the check
// backing Options.MaxArenaBytes, per SPEC_FULL.md §5.
func arenaBytes(itemCount, z int) int64 {
	var bucket extension.Bucket
	var entry extension.OccurrenceExtension
	return int64(itemCount)*int64(unsafe.Sizeof(bucket)) + int64(z)*int64(unsafe.Sizeof(entry))
}

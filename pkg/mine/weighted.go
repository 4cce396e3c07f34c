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

// MineWeighted runs the item-weighted flavor of the engine against db,
// reporting through rep, per spec.md §4.6/§4.7. The weighted driver's
// empty-sequence emission adopts the unweighted driver's "only if no
// prior error occurred" guard rather than sequoia.c's sequoia_iw(), which
// omits it — spec.md §9 names this as the safer, adopted resolution.
func MineWeighted(db tract.WeightedDatabase, opts Options, rep report.ItemsetReporter) error {
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
		mineLog.Debug("empty item alphabet, emitting empty sequence")
		if err := rep.EmitEmpty(w); err != nil {
			return errWrap(ErrReporter, "emit empty sequence")
		}
		return nil
	}

	occs := occurrence.BuildInitialWeighted(db)
	initial := extension.BuildInitialWeighted(m, occs)
	rd := &runWeighted{
		m:             m,
		zmax:          opts.zmax(),
		smin:          smin,
		closedMode:    opts.Target == TargetClosed,
		maxArenaBytes: opts.MaxArenaBytes,
		rep:           rep,
		oracle:        closed.New(m),
		log:           mineLog,
		prefix:        make([]tract.Item, 0, m),
	}
	mineLog.WithFields(log.Fields{
		"items":        m,
		"transactions": db.TransactionCount(),
		"target":       opts.Target,
	}).Debug("starting weighted mining run")

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

// runWeighted is the item-weighted counterpart of run.
type runWeighted struct {
	m             int
	zmax          int
	smin          tract.Support
	closedMode    bool
	maxArenaBytes int64
	rep           report.ItemsetReporter
	oracle        *closed.Oracle
	log           *log.Entry
	prefix        []tract.Item
}

// recurse is the item-weighted projection engine, sequoia.c's rec_iw(),
// translated per spec.md §4.4/§4.6.
func (rd *runWeighted) recurse(exts []extension.WBucket, z int, l int) (tract.Support, error) {
	n := l + 1
	canRecurse := n <= rd.zmax
	if canRecurse && rd.maxArenaBytes > 0 && arenaBytesWeighted(rd.m, z) > rd.maxArenaBytes {
		return 0, errWrap(ErrOutOfMemory, "conditional extension arena")
	}

	// This frame owns exactly one conditional arena (spec.md §4.4 step 1,
	// §5), allocated once and reused — via ResetWeighted/
	// FillConditionalWeighted — across every sibling in the i-loop below.
	var cond []extension.WBucket
	if canRecurse {
		cond = extension.AllocConditionalWeighted(rd.m, exts)
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

		rd.prefix = append(rd.prefix[:l], tract.Item(i))
		for _, x := range e.Oxs {
			x.Occ.Pos = append(x.Occ.Pos[:l], x.ItemRef)
		}

		if rd.closedMode && !rd.oracle.CheckWeighted(e, n) {
			continue
		}

		var s tract.Support
		if cond != nil {
			extension.ResetWeighted(cond)
			if tailLen := extension.FillConditionalWeighted(cond, e); tailLen > 0 {
				var err error
				s, err = rd.recurse(cond, tailLen, n)
				if err != nil {
					return 0, err
				}
			}
		}

		if rd.closedMode && s >= e.Supp {
			continue
		}

		wgts := make([]float64, n)
		for _, x := range e.Oxs {
			occ := x.Occ
			for k := 0; k < n; k++ {
				wgts[k] += float64(occ.Weight) * occ.Items[occ.Pos[k]].Weight
			}
		}
		if err := rd.rep.EmitItemset(rd.prefix[:n], wgts, e.Supp); err != nil {
			return 0, errWrap(ErrReporter, "emit itemset")
		}
	}
	return max, nil
}

func arenaBytesWeighted(itemCount, z int) int64 {
	var bucket extension.WBucket
	var entry extension.WOccurrenceExtension
	return int64(itemCount)*int64(unsafe.Sizeof(bucket)) + int64(z)*int64(unsafe.Sizeof(entry))
}

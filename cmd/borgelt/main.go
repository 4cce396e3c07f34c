// Command borgelt mines frequent (optionally closed) sequential patterns
// from a transaction file, under unique-item-occurrence semantics. It
// mirrors, at reduced scale, the original sequoia CLI's option surface
// (-t target, -s min. support, -m max. length, -n min. length).
//
// Sample usage:
//   go run ./cmd/borgelt -input transactions.txt -target closed -smin 2
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"

	"github.com/faraday/borgelt/pkg/mine"
	"github.com/faraday/borgelt/pkg/report"
	"github.com/faraday/borgelt/pkg/tract"
)

var (
	inputFlag    = flag.String("input", "", "transaction file (required); one transaction per line")
	weightedFlag = flag.Bool("weighted", false, "use the item-weighted flavor (items written as NAME:weight)")
	targetFlag   = flag.String("target", "all", "target type: all | closed")
	sminFlag     = flag.Int64("smin", 1, "minimum support")
	zmaxFlag     = flag.Int("zmax", -1, "maximum reported pattern length (-1 = unbounded)")
	zminFlag     = flag.Int("zmin", 0, "minimum reported pattern length")
	envFlag      = flag.Bool("env", false, "load mining options from BORGELT_* environment variables instead of flags")
)

func main() {
	flag.Parse()
	if *inputFlag == "" {
		log.Error("-input is required")
		os.Exit(1)
	}

	opts := mine.Options{
		MinSupport: tract.Support(*sminFlag),
		MaxLength:  *zmaxFlag,
		MinLength:  *zminFlag,
	}
	switch *targetFlag {
	case "all":
		opts.Target = mine.TargetAll
	case "closed":
		opts.Target = mine.TargetClosed
	default:
		log.WithField("target", *targetFlag).Error("unknown target type")
		os.Exit(1)
	}
	if *envFlag {
		if err := envconfig.Process("BORGELT", &opts); err != nil {
			log.WithError(err).Error("failed to load options from environment")
			os.Exit(1)
		}
	}

	f, err := os.Open(*inputFlag)
	if err != nil {
		log.WithError(err).Error("failed to open input file")
		os.Exit(1)
	}
	defer f.Close()

	if *weightedFlag {
		runWeighted(f, opts)
		return
	}
	run(f, opts)
}

func run(f *os.File, opts mine.Options) {
	db, names, err := tract.ReadText(f)
	if err != nil {
		log.WithError(err).Error("failed to read transactions")
		os.Exit(1)
	}
	w := report.NewBoundedTextWriter(os.Stdout, names, opts.MinLength, opts.MaxLength)
	if err := mine.Mine(db, opts, w); err != nil {
		log.WithError(err).Error("mining run failed")
		os.Exit(1)
	}
}

func runWeighted(f *os.File, opts mine.Options) {
	db, names, err := tract.ReadWeightedText(f)
	if err != nil {
		log.WithError(err).Error("failed to read weighted transactions")
		os.Exit(1)
	}
	w := report.NewBoundedWeightedTextWriter(os.Stdout, names, opts.MinLength, opts.MaxLength)
	if err := mine.MineWeighted(db, opts, w); err != nil {
		log.WithError(err).Error("weighted mining run failed")
		os.Exit(1)
	}
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s -input FILE [options]\n\n", os.Args[0])
		flag.PrintDefaults()
	}
}

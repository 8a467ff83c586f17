/*
NAME
  ft2hsim - FT2H sensitivity sweep driver.

DESCRIPTION
  ft2hsim runs the FT2H Monte-Carlo simulation across a sweep of
  channel SNRs and reports word/bit error rates. It is the external
  collaborator described in spec.md §1/§6: argument parsing, the sweep
  loop, console formatting and plot rendering all live here, outside
  the pure core (crc14, ldpc, frame, gfsk) and the trial driver (trial).

LICENSE
  FT2H is distributed under the MIT license. See LICENSE for details.
*/
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/ausocean/utils/logging"
	"github.com/ft2hsim/ft2h/frame"
	"github.com/ft2hsim/ft2h/gfsk"
	"github.com/ft2hsim/ft2h/trial"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gopkg.in/natefinch/lumberjack.v2"
)

const progName = "ft2hsim"

func main() {
	var (
		snrStart = flag.Float64("snr-start", 10, "sweep start SNR, dB (2500 Hz bandwidth)")
		snrStop  = flag.Float64("snr-stop", -22, "sweep stop SNR, dB")
		snrStep  = flag.Float64("snr-step", -4, "sweep step, dB")
		ntrials  = flag.Int("ntrials", 200, "trials per SNR point")
		f0       = flag.Float64("f0", 1500, "center frequency, Hz")
		maxIter  = flag.Int("maxiter", 0, "BP iteration cap (0 selects the decoder default)")
		maxFlips = flag.Int("maxflips", 0, "OSD flip cap (0 selects the decoder default)")
		seed     = flag.Int64("seed", 1, "random seed")
		quick    = flag.Bool("quick", false, "run a short fixed-point validation sweep instead")
		plotPath = flag.String("plot", "", "write a WER/BER-vs-SNR plot PNG to this path")
		wavPath  = flag.String("dumpwav", "", "write one noise-free, full-scale frame (all-zero payload) to this WAV path")
		logFile  = flag.String("logfile", "", "rotate logs to this file instead of stderr")
		logLevel = flag.Int("loglevel", int(logging.Info), "log level")
	)
	flag.Parse()

	log := newLogger(int8(*logLevel), *logFile)
	log.Info(progName + ": starting sweep")

	points := sweepPoints(*snrStart, *snrStop, *snrStep)
	if *quick {
		points = []float64{10, -10, -18}
		*ntrials = 50
	}

	rng := rand.New(rand.NewSource(*seed))
	var summary trial.Summary
	var dumped bool

	for _, snr := range points {
		p := trial.Params{SNRdB: snr, NTrials: *ntrials, F0: *f0, MaxIter: *maxIter, MaxFlips: *maxFlips}
		outcomes, err := trial.Run(rng, p, log)
		if err != nil {
			log.Fatal("sweep point failed", "snr_db", snr, "error", err.Error())
		}
		point := trial.Aggregate(snr, outcomes)
		summary.Points = append(summary.Points, point)
		log.Info("sweep point complete", "snr_db", snr, "wer", point.WER, "ber", point.BER)

		if *wavPath != "" && !dumped {
			if err := dumpPreviewWAV(*wavPath, snr, *f0); err != nil {
				log.Error("could not dump preview WAV", "error", err.Error())
			}
			dumped = true
		}
	}

	fmt.Print(summary.String())

	if *plotPath != "" {
		if err := renderPlot(*plotPath, summary); err != nil {
			log.Error("could not render plot", "error", err.Error())
		}
	}
}

// newLogger builds the structured logger used throughout the sweep,
// rotating to logPath via lumberjack if one is given, and to stderr
// otherwise, matching the cmd/audio-netsender / cmd/speaker idiom of
// building one logging.Logger in main and threading it down.
func newLogger(level int8, logPath string) logging.Logger {
	if logPath == "" {
		return logging.New(level, os.Stderr, true)
	}
	roller := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}
	return logging.New(level, roller, true)
}

// sweepPoints expands a start/stop/step range into a slice of SNR
// values, inclusive of the stop value.
func sweepPoints(start, stop, step float64) []float64 {
	if step == 0 {
		return []float64{start}
	}
	var pts []float64
	if step > 0 {
		for v := start; v <= stop+1e-9; v += step {
			pts = append(pts, v)
		}
	} else {
		for v := start; v >= stop-1e-9; v += step {
			pts = append(pts, v)
		}
	}
	return pts
}

// dumpPreviewWAV writes a single all-zero-payload frame, at full scale
// and without added noise, to a mono 12 kHz WAV file; snrDB does not
// affect the samples written. It is a listening
// / spectrum-analyzer aid analogous to the matplotlib plots the Python
// reference implementation produced.
func dumpPreviewWAV(path string, snrDB, f0 float64) error {
	payload := make([]byte, 77)
	asm, err := frame.Assemble(payload)
	if err != nil {
		return errors.Wrap(err, "assembling preview frame")
	}
	wave, err := gfsk.Modulate(asm.Tones[:], f0)
	if err != nil {
		return errors.Wrap(err, "modulating preview frame")
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating WAV file")
	}
	defer f.Close()

	enc := wav.NewEncoder(f, gfsk.FSample, 16, 1, 1)
	defer enc.Close()

	data := make([]int, len(wave))
	for i, s := range wave {
		data[i] = int(s * 32767)
	}
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: gfsk.FSample},
		SourceBitDepth: 16,
		Data:           data,
	}
	return enc.Write(buf)
}

// renderPlot draws WER and BER against SNR on one shared linear y axis
// and saves the result as a PNG, the plot-rendering collaborator
// spec.md §6 describes at its interface only.
func renderPlot(path string, s trial.Summary) error {
	p := plot.New()
	p.Title.Text = "FT2H sensitivity sweep"
	p.X.Label.Text = "SNR (dB, 2500 Hz bandwidth)"
	p.Y.Label.Text = "error rate"

	wer := make(plotter.XYs, len(s.Points))
	ber := make(plotter.XYs, len(s.Points))
	for i, pt := range s.Points {
		wer[i].X, wer[i].Y = pt.SNRdB, pt.WER
		ber[i].X, ber[i].Y = pt.SNRdB, pt.BER
	}

	if err := plotutil.AddLinePoints(p, "WER", wer, "BER", ber); err != nil {
		return errors.Wrap(err, "adding sweep series")
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

// Copyright 2026 The Ductolator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package calc implements the batch calculator of sizing jobs
//  Runs are independent: they are computed concurrently and their results are
//  stored in input order. A run that cannot be computed gets zero outputs and an
//  advisory note instead of failing the whole job.
package calc

import (
	"context"
	goio "io"
	"log/slog"
	"runtime"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/ductolator/ductolator/inp"
	"github.com/ductolator/ductolator/mdl/mat"
	"golang.org/x/sync/errgroup"
)

// Runner runs sizing jobs
type Runner struct {
	Db      mat.Db       // materials and fittings; nil means mat.Default()
	Logger  *slog.Logger // logger; nil discards messages
	Workers int          // maximum number of concurrent runs; 0 means number of CPUs
}

// NewRunner returns a runner using the default catalogue
func NewRunner(logger *slog.Logger) *Runner {
	return &Runner{Db: mat.Default(), Logger: logger}
}

// log returns the logger
func (o *Runner) log() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.NewJSONHandler(goio.Discard, nil))
	}
	return o.Logger
}

// db returns the materials database
func (o *Runner) db() mat.Db {
	if o.Db == nil {
		return mat.Default()
	}
	return o.Db
}

// Run computes all runs of job
//  Note: err is not nil only if the design conditions are invalid or ctx is done
func (o *Runner) Run(ctx context.Context, job *inp.Job) (rep *Report, err error) {

	// exit message
	log := o.log().With("job", job.Key)
	cputime := time.Now()
	defer func() {
		if err != nil {
			log.Error("calc.failed", "err", err)
			return
		}
		log.Info("calc.done", "elapsed", time.Since(cputime), "notes", rep.Notes())
	}()

	// design conditions
	amdl, err := job.Design.AirModel()
	if err != nil {
		return nil, chk.Err("design conditions are invalid:\n%v", err)
	}
	fmdl, err := job.Design.FluidModel()
	if err != nil {
		return nil, chk.Err("design conditions are invalid:\n%v", err)
	}
	cs := &caseData{db: o.db(), air: amdl.State(), fluid: fmdl.State()}
	cs.model, err = frictionModel(job.Design.Friction)
	if err != nil {
		return nil, err
	}

	// report
	rep = &Report{
		Key:    job.Key,
		Design: job.Design,
		Air:    cs.air,
		Fluid:  cs.fluid,
		Ducts:  make([]*DuctResult, len(job.Ducts)),
		Pipes:  make([]*PipeResult, len(job.Pipes)),
	}
	log.Info("calc.start", "ducts", len(job.Ducts), "pipes", len(job.Pipes), "density", cs.air.Density, "fluid", cs.fluid.Fluid)

	// runs
	workers := o.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, run := range job.Ducts {
		i, run := i, run
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res := cs.duct(run)
			logRun(log, "calc.duct", res.Name, res.Status.String(), res.Note)
			rep.Ducts[i] = res
			return nil
		})
	}
	for i, run := range job.Pipes {
		i, run := i, run
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res := cs.pipe(run)
			logRun(log, "calc.pipe", res.Name, res.Status.String(), res.Note)
			rep.Pipes[i] = res
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	return
}

// logRun logs the outcome of a run
func logRun(log *slog.Logger, msg, name, status, note string) {
	if note != "" {
		log.Warn(msg, "run", name, "status", status, "note", note)
		return
	}
	log.Debug(msg, "run", name, "status", status)
}

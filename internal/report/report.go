// Package report collects the hardware categories of a scope into one
// Report for rendering.
package report

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/shayne-snap/hwinfo/internal/hardware"
	"github.com/shayne-snap/hwinfo/internal/scope"
)

// Report is the result of one collection. Categories outside Scope are left
// at their zero value.
type Report struct {
	Scope     scope.Scope
	CPUs      []hardware.CPU
	OS        hardware.OS
	GPUs      []hardware.GPU
	Memory    hardware.Memory
	MainBoard hardware.MainBoard
	Batteries []hardware.Battery
	Disks     []hardware.Disk
	Networks  []hardware.Network
}

// Collect queries src for every category enabled in sc, one goroutine per
// category. A failed query is logged and leaves whatever partial value the
// source returned; it never fails the collection.
func Collect(ctx context.Context, src hardware.Source, sc scope.Scope, log *logrus.Entry) *Report {
	rep := &Report{Scope: sc}
	var wg sync.WaitGroup
	run := func(c scope.Category, query func() error) {
		if !sc.Has(c) {
			return
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := query(); err != nil {
				log.WithField("category", string(c)).WithError(err).Warn("hardware query failed")
				return
			}
			log.WithField("category", string(c)).Debug("hardware query done")
		}()
	}

	run(scope.CPU, func() (err error) {
		rep.CPUs, err = src.CPUs(ctx)
		return err
	})
	run(scope.OS, func() (err error) {
		rep.OS, err = src.OS(ctx)
		return err
	})
	run(scope.GPU, func() (err error) {
		rep.GPUs, err = src.GPUs(ctx)
		return err
	})
	run(scope.Memory, func() (err error) {
		rep.Memory, err = src.Memory(ctx)
		return err
	})
	run(scope.MainBoard, func() (err error) {
		rep.MainBoard, err = src.MainBoard(ctx)
		return err
	})
	run(scope.Battery, func() (err error) {
		rep.Batteries, err = src.Batteries(ctx)
		return err
	})
	run(scope.Disks, func() (err error) {
		rep.Disks, err = src.Disks(ctx)
		return err
	})
	run(scope.Network, func() (err error) {
		rep.Networks, err = src.Networks(ctx)
		return err
	})
	wg.Wait()
	return rep
}

// AddressedNetworks returns the interfaces that carry at least one IPv4 or
// IPv6 address, in source order.
func (r *Report) AddressedNetworks() []hardware.Network {
	var out []hardware.Network
	for _, n := range r.Networks {
		if n.HasAddress() {
			out = append(out, n)
		}
	}
	return out
}

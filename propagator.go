package orekit

import (
	"os"

	kitlog "github.com/go-kit/kit/log"
)

// Propagator advances a spacecraft state to a target date, forward or
// backward, and holds the resulting state for subsequent calls.
type Propagator interface {
	Propagate(target AbsoluteDate) (SpacecraftState, error)
}

type propagationStatus uint8

const (
	statusIdle propagationStatus = iota + 1
	statusPropagating
	statusFailed
)

func (s propagationStatus) String() string {
	switch s {
	case statusIdle:
		return "idle"
	case statusPropagating:
		return "propagating"
	case statusFailed:
		return "failed"
	}
	return "unknown"
}

func propLogger(name string) kitlog.Logger {
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	klog = kitlog.With(klog, "propagator", name)
	return klog
}

// Package signal handles process signals for long-running tickclock commands.
//
// SIGINT and SIGTERM cancel the handler's context. SIGHUP does not stop
// anything; it asks the running command to report its status.
//
// Import rules:
//   - CAN import: std lib only
//   - MUST NOT import: internal packages
package signal

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// Handler wraps a context and cancels it when an interrupt arrives.
type Handler struct {
	ctx         context.Context //nolint:containedctx // handler owns the context lifecycle
	cancel      context.CancelFunc
	interrupted chan struct{}
	status      chan struct{}
	done        chan struct{}
	once        sync.Once
	stopOnce    sync.Once
	sigChan     chan os.Signal
}

// NewHandler creates a handler listening for SIGINT, SIGTERM and SIGHUP.
//
//	h := signal.NewHandler(ctx)
//	defer h.Stop()
//	for {
//	    select {
//	    case <-h.Context().Done():
//	        return nil
//	    case <-h.StatusRequests():
//	        printStatus()
//	    }
//	}
func NewHandler(parent context.Context) *Handler {
	ctx, cancel := context.WithCancel(parent)
	h := &Handler{
		ctx:         ctx,
		cancel:      cancel,
		interrupted: make(chan struct{}),
		// Status requests coalesce: a second SIGHUP before the first is
		// consumed is dropped.
		status:  make(chan struct{}, 1),
		done:    make(chan struct{}),
		sigChan: make(chan os.Signal, 1),
	}

	signal.Notify(h.sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	go h.listen()

	return h
}

// Context returns the context canceled on interrupt or Stop.
func (h *Handler) Context() context.Context {
	return h.ctx
}

// Interrupted returns a channel closed when an interrupt signal is received.
func (h *Handler) Interrupted() <-chan struct{} {
	return h.interrupted
}

// StatusRequests returns a channel that receives one value per SIGHUP.
func (h *Handler) StatusRequests() <-chan struct{} {
	return h.status
}

// Stop stops listening for signals and cancels the context.
func (h *Handler) Stop() {
	h.stopOnce.Do(func() {
		signal.Stop(h.sigChan)
		close(h.done)
		h.cancel()
	})
}

func (h *Handler) dispatch(sig os.Signal) {
	if sig == syscall.SIGHUP {
		h.requestStatus()
		return
	}
	h.interrupt()
}

func (h *Handler) interrupt() {
	h.once.Do(func() {
		h.cancel()
		close(h.interrupted)
	})
}

func (h *Handler) requestStatus() {
	select {
	case h.status <- struct{}{}:
	default:
	}
}

// listen keeps draining sigChan until Stop or cancellation so repeated
// signals never block delivery.
func (h *Handler) listen() {
	for {
		select {
		case <-h.ctx.Done():
			return
		case <-h.done:
			return
		case sig := <-h.sigChan:
			h.dispatch(sig)
		}
	}
}

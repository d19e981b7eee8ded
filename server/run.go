package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/andrebq/maestro"
)

const shutdownTimeout = 10 * time.Second

// Run binds addr:port and serves the greeting until ctx is cancelled.
func Run(ctx context.Context, addr string, port uint) error {
	ln, err := Listen(addr, port)
	if err != nil {
		return err
	}
	return Serve(ctx, ln)
}

// Listen reserves the TCP port. An empty addr binds all interfaces.
func Listen(addr string, port uint) (net.Listener, error) {
	bind := net.JoinHostPort(addr, strconv.FormatUint(uint64(port), 10))
	ln, err := net.Listen("tcp", bind)
	if err != nil {
		return nil, fmt.Errorf("bind %v: %w", bind, err)
	}
	return ln, nil
}

// Serve takes ownership of ln and closes it on return.
func Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler: NewHandler(),
	}
	errc := make(chan error, 1)
	mctx := maestro.New(ctx)
	mctx.Spawn(func(ctx maestro.Context) error {
		defer mctx.Shutdown()
		slog.Info(fmt.Sprintf("Frontend running on port %v", boundPort(ln)), "address", ln.Addr().String())
		err := srv.Serve(ln)
		errc <- err
		return err
	})

	<-mctx.Done()
	slog.Info("Shutting down frontend", "address", ln.Addr().String())
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

func boundPort(ln net.Listener) string {
	_, port, err := net.SplitHostPort(ln.Addr().String())
	if err != nil {
		return ln.Addr().String()
	}
	return port
}

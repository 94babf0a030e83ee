// Package supervisor launches the API server and an optional auxiliary
// server as child processes, watches them and shuts them down together.
package supervisor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/jwalitptl/healthcare-platform/pkg/logger"
)

var ErrSetupTimeout = errors.New("database setup timed out")

// ProcessStatus is one row of the status report
type ProcessStatus struct {
	Name    string
	PID     int
	URL     string
	Running bool
}

type Manager struct {
	config  Config
	setup   ProcessSpec
	servers []ProcessSpec
	logger  *logger.Logger
	out     io.Writer

	mu        sync.Mutex
	processes []*Process
}

func NewManager(config Config, l *logger.Logger, out io.Writer) *Manager {
	if l == nil {
		l = logger.Nop()
	}
	if out == nil {
		out = os.Stdout
	}
	setup, servers := config.Specs()
	return &Manager{
		config:  config,
		setup:   setup,
		servers: servers,
		logger:  l,
		out:     out,
	}
}

// CheckRequirements verifies every command resolves and every required
// path exists before anything is started.
func (m *Manager) CheckRequirements() error {
	seen := map[string]bool{}
	for _, spec := range append([]ProcessSpec{m.setup}, m.servers...) {
		if seen[spec.Command] {
			continue
		}
		seen[spec.Command] = true
		if _, err := exec.LookPath(spec.Command); err != nil {
			return fmt.Errorf("%s: command %q not found: %w", spec.Name, spec.Command, err)
		}
	}
	for _, path := range m.config.RequiredPaths {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("required path %q: %w", path, err)
		}
	}
	m.logger.Info("Requirements satisfied")
	return nil
}

// SetupDatabase runs the schema step to completion within SetupTimeout.
func (m *Manager) SetupDatabase(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, m.config.SetupTimeout)
	defer cancel()

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, m.setup.Command, m.setup.Args...)
	cmd.Stdout = io.Discard
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return ErrSetupTimeout
	}
	if err != nil {
		return fmt.Errorf("database setup failed: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	m.logger.Info("Database setup complete")
	return nil
}

// StartAll checks requirements, prepares the database and starts the
// servers in order. If a later server fails to start, the ones already
// running are stopped.
func (m *Manager) StartAll(ctx context.Context) error {
	if err := m.CheckRequirements(); err != nil {
		return err
	}
	if err := m.SetupDatabase(ctx); err != nil {
		return err
	}
	return m.startServers(ctx)
}

func (m *Manager) startServers(ctx context.Context) error {
	for i, spec := range m.servers {
		if i > 0 && m.config.StartDelay > 0 {
			select {
			case <-time.After(m.config.StartDelay):
			case <-ctx.Done():
				m.StopAll()
				return ctx.Err()
			}
		}

		p, err := StartProcess(spec, m.out)
		if err != nil {
			m.logger.Error(err, "Failed to start server", "name", spec.Name)
			m.StopAll()
			return err
		}
		m.logger.Info("Server started", "name", spec.Name, "pid", p.PID())

		m.mu.Lock()
		m.processes = append(m.processes, p)
		m.mu.Unlock()
	}
	return nil
}

// Monitor polls the children every PollInterval. It returns nil when ctx
// ends, or an error naming the first child found stopped.
func (m *Manager) Monitor(ctx context.Context) error {
	ticker := time.NewTicker(m.config.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			for _, p := range m.snapshot() {
				if !p.Running() {
					err := fmt.Errorf("%s server has stopped", p.Name())
					m.logger.Error(p.ExitErr(), err.Error())
					return err
				}
			}
		}
	}
}

// StopAll stops the children in reverse start order.
func (m *Manager) StopAll() {
	procs := m.snapshot()
	for i := len(procs) - 1; i >= 0; i-- {
		p := procs[i]
		if !p.Running() {
			continue
		}
		m.logger.Info("Stopping server", "name", p.Name())
		killed, err := p.Stop(m.config.StopGrace)
		if err != nil {
			m.logger.Error(err, "Failed to stop server", "name", p.Name())
			continue
		}
		if killed {
			m.logger.Warn("Server did not exit in time and was killed", "name", p.Name())
		}
	}
	m.logger.Info("All servers stopped")
}

// Run starts everything, prints the status report and supervises until
// ctx ends or a child stops; either way all children are stopped.
func (m *Manager) Run(ctx context.Context) error {
	if err := m.StartAll(ctx); err != nil {
		return err
	}
	m.PrintStatus(m.out)

	err := m.Monitor(ctx)
	m.StopAll()
	return err
}

func (m *Manager) Status() []ProcessStatus {
	var out []ProcessStatus
	for _, p := range m.snapshot() {
		out = append(out, ProcessStatus{
			Name:    p.Name(),
			PID:     p.PID(),
			URL:     p.spec.URL,
			Running: p.Running(),
		})
	}
	return out
}

func (m *Manager) PrintStatus(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SERVER\tPID\tSTATUS\tURL")
	for _, s := range m.Status() {
		state := "Stopped"
		if s.Running {
			state = "Running"
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", s.Name, s.PID, state, s.URL)
	}
	tw.Flush()
}

func (m *Manager) snapshot() []*Process {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*Process(nil), m.processes...)
}

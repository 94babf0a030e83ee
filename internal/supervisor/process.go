package supervisor

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"syscall"
	"time"
)

// ProcessSpec describes one child process
type ProcessSpec struct {
	Name    string
	Command string
	Args    []string
	Dir     string
	Env     []string
	URL     string
}

// Process is a started child. It is safe for concurrent use.
type Process struct {
	spec ProcessSpec
	cmd  *exec.Cmd
	done chan struct{}

	mu      sync.Mutex
	waitErr error
}

// StartProcess launches spec with stdout and stderr forwarded to out.
func StartProcess(spec ProcessSpec, out io.Writer) (*Process, error) {
	cmd := exec.Command(spec.Command, spec.Args...)
	cmd.Dir = spec.Dir
	cmd.Env = append(os.Environ(), spec.Env...)
	cmd.Stdout = out
	cmd.Stderr = out
	// Grandchildren holding the output pipe must not block Wait
	cmd.WaitDelay = time.Second

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", spec.Name, err)
	}

	p := &Process{
		spec: spec,
		cmd:  cmd,
		done: make(chan struct{}),
	}
	go func() {
		err := cmd.Wait()
		p.mu.Lock()
		p.waitErr = err
		p.mu.Unlock()
		close(p.done)
	}()
	return p, nil
}

func (p *Process) Name() string { return p.spec.Name }

func (p *Process) PID() int { return p.cmd.Process.Pid }

// Running reports whether the child has not exited yet.
func (p *Process) Running() bool {
	select {
	case <-p.done:
		return false
	default:
		return true
	}
}

// Done is closed once the child has exited
func (p *Process) Done() <-chan struct{} { return p.done }

// ExitErr is the result of waiting on the child; nil while it runs or
// after a clean exit.
func (p *Process) ExitErr() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.waitErr
}

// Stop sends SIGTERM and kills the child if it is still alive after grace.
// It reports whether the kill was needed.
func (p *Process) Stop(grace time.Duration) (killed bool, err error) {
	if !p.Running() {
		return false, nil
	}

	if err := p.cmd.Process.Signal(syscall.SIGTERM); err != nil && p.Running() {
		return false, fmt.Errorf("failed to signal %s: %w", p.spec.Name, err)
	}

	timer := time.NewTimer(grace)
	defer timer.Stop()

	select {
	case <-p.done:
		return false, nil
	case <-timer.C:
	}

	if err := p.cmd.Process.Kill(); err != nil && p.Running() {
		return true, fmt.Errorf("failed to kill %s: %w", p.spec.Name, err)
	}
	<-p.done
	return true, nil
}

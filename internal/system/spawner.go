package system

import (
	"errors"
	"io"
	"os"
	"os/exec"
	"syscall"
)

// osSpawner implements Spawner using real OS operations.
type osSpawner struct{}

func (s *osSpawner) Spawn(name string, args ...string) (Process, error) {
	cmd := exec.Command(name, args...)
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}

	if err := cmd.Start(); err != nil {
		return nil, err
	}

	return &osProcess{cmd: cmd, stdin: stdin, stdout: stdout}, nil
}

func (s *osSpawner) ReplaceProcess(name string, args ...string) error {
	binary, err := exec.LookPath(name)
	if err != nil {
		return err
	}

	// Build argv with program name as first element
	argv := append([]string{name}, args...)

	return syscall.Exec(binary, argv, os.Environ())
}

// osProcess implements Process for a started exec.Cmd.
type osProcess struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout io.Reader
}

func (p *osProcess) Stdin() io.WriteCloser { return p.stdin }

func (p *osProcess) Stdout() io.Reader { return p.stdout }

func (p *osProcess) Wait() error {
	err := p.cmd.Wait()

	// A nonzero exit is normal picker behavior (dmenu exits 1 when the
	// user escapes); only the captured output carries meaning.
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return nil
	}
	return err
}

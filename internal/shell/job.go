package shell

import (
	"errors"
	"fmt"
	"os/exec"
)

// Process tracks the backend child while the session runs.
type Process struct {
	Command *exec.Cmd
	Status  string
	Pid     int
}

func start(cmd *exec.Cmd) (*Process, error) {
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &Process{
		Command: cmd,
		Status:  "Running",
		Pid:     cmd.Process.Pid,
	}, nil
}

func (p *Process) wait() error {
	err := p.Command.Wait()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			p.Status = fmt.Sprintf("Exited (%d)", exitErr.ExitCode())
		} else {
			p.Status = "Errored"
		}
	} else {
		p.Status = "Done"
	}
	return err
}

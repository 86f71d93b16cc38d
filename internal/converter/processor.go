package converter

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	apperrors "github.com/alexisbeaulieu97/streamui/pkg/errors"
)

// BuiltinProcessorName selects the in-process resolver instead of an executable.
const BuiltinProcessorName = "builtin"

// Processor renders a Less source into CSS.
type Processor interface {
	Name() string
	// Render receives both the on-disk path of the source and its content.
	Render(ctx context.Context, path, source string) (string, error)
}

// ResolveProcessor maps the pathToLess argument to a Processor. Values other
// than "builtin" must name a lessc executable, or a less package directory
// containing bin/lessc.
func ResolveProcessor(target string) (Processor, error) {
	target = strings.TrimSpace(target)
	if target == BuiltinProcessorName {
		return BuiltinProcessor{}, nil
	}
	if target == "" {
		return nil, missingArgument(ProcessorArgument)
	}

	candidate := target
	if info, err := os.Stat(target); err == nil && info.IsDir() {
		candidate = filepath.Join(target, "bin", "lessc")
	}

	path, err := exec.LookPath(candidate)
	if err != nil {
		return nil, apperrors.NewProcessorError(target, "wrong less package. Check path, passed in `"+ProcessorArgument+"` CLI argument", err)
	}
	return CommandProcessor{Path: path}, nil
}

// CommandProcessor runs an external lessc-compatible executable.
type CommandProcessor struct {
	Path string
	Args []string
}

// Name returns the executable path.
func (p CommandProcessor) Name() string {
	return p.Path
}

// Render invokes the executable with the source path and returns its stdout.
func (p CommandProcessor) Render(ctx context.Context, path, _ string) (string, error) {
	args := append(append([]string{}, p.Args...), path)
	cmd := exec.CommandContext(ctx, p.Path, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = "render failed"
		}
		return "", apperrors.NewProcessorError(p.Path, msg, err)
	}
	return stdout.String(), nil
}

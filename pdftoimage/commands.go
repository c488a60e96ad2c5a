package pdftoimage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// Names of the Poppler executables this package drives.
const (
	binPDFInfo  = "pdfinfo"
	binPDFToPPM = "pdftoppm"
)

var (
	// ErrToolFailed is returned when a Poppler tool cannot be started or exits
	// unsuccessfully.
	ErrToolFailed = errors.New("poppler tool failed")
	// ErrToolTimeout is returned when a Poppler tool is killed for exceeding
	// its time limit.
	ErrToolTimeout = errors.New("poppler tool timed out")
)

// CommandExecutor defines an interface for running external commands.
// This abstraction is crucial for enabling unit tests to mock command execution.
type CommandExecutor interface {
	// RunCombined executes a command and returns its combined standard output
	// and standard error.
	RunCombined(ctx context.Context, name string, args ...string) ([]byte, error)
}

// defaultExecutor implements the CommandExecutor interface using the standard os/exec
// package.
// This is the implementation used in the production application.
type defaultExecutor struct{}

// RunCombined is the production implementation for executing a command and capturing all
// output. The child inherits a copy of the parent environment and, on Windows,
// runs without a console window.
func (executor *defaultExecutor) RunCombined(
	ctx context.Context,
	name string,
	args ...string,
) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = os.Environ()
	hideConsoleWindow(cmd)

	return cmd.CombinedOutput()
}

// commandPath resolves the executable token for one of the toolkit binaries.
// Without a bin directory the bare name is returned and lookup is left to the
// search path of the calling process. With one, the name is joined to it,
// carrying the platform's executable suffix.
func commandPath(tool, binDir string) string {
	if binDir == "" {
		return tool
	}

	if runtime.GOOS == "windows" {
		tool += ".exe"
	}

	return filepath.Join(binDir, tool)
}

// ToolsAvailable reports whether both Poppler executables can be resolved,
// either through the search path or inside the configured bin directory.
func (converter *Converter) ToolsAvailable() bool {
	return toolAvailable(binPDFInfo, converter.config.BinDir) &&
		toolAvailable(binPDFToPPM, converter.config.BinDir)
}

func toolAvailable(tool, binDir string) bool {
	if binDir == "" {
		_, lookErr := exec.LookPath(tool)

		return lookErr == nil
	}

	_, statErr := os.Stat(commandPath(tool, binDir))

	return statErr == nil
}

// runTool executes one external command, applying the optional per-invocation
// timeout and mapping failures into the package's error values.
func (converter *Converter) runTool(
	ctx context.Context,
	timeout time.Duration,
	name string,
	args []string,
) ([]byte, error) {
	runCtx := ctx

	if timeout > 0 {
		var cancel context.CancelFunc

		runCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	converter.log.Info("Running: %s", commandLine(name, args))

	output, runErr := converter.executor.RunCombined(runCtx, name, args...)
	if runErr == nil {
		return output, nil
	}

	if errors.Is(runErr, context.DeadlineExceeded) ||
		errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return nil, fmt.Errorf("%w: %s", ErrToolTimeout, commandLine(name, args))
	}

	if ctxErr := runCtx.Err(); ctxErr != nil {
		return nil, fmt.Errorf("%s canceled: %w", name, ctxErr)
	}

	// Include the command's output in the error for better debugging.
	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		return nil, fmt.Errorf(
			"%w: %s: exit code %d. Output: %s",
			ErrToolFailed,
			commandLine(name, args),
			exitErr.ExitCode(),
			strings.TrimSpace(string(output)),
		)
	}

	return nil, fmt.Errorf(
		"%w: %s: %v. Output: %s",
		ErrToolFailed,
		commandLine(name, args),
		runErr,
		strings.TrimSpace(string(output)),
	)
}

// commandLine renders an invocation for logs and error messages. Tokens
// containing spaces or quotes are wrapped in double quotes so a reported
// command can be pasted into a shell unchanged.
func commandLine(name string, args []string) string {
	tokens := make([]string, 0, len(args)+1)

	for _, token := range append([]string{name}, args...) {
		if strings.ContainsAny(token, ` "`) {
			token = quotePath(token)
		}

		tokens = append(tokens, token)
	}

	return strings.Join(tokens, " ")
}

// buildInfoArgs constructs the pdfinfo argument list. Password switches carry
// their value as the following token and -rawdates stands alone, ahead of the
// source path.
func buildInfoArgs(opts InfoOptions, sourcePath string) []string {
	var args []string

	if opts.UserPassword != "" {
		args = append(args, "-upw", opts.UserPassword)
	}

	if opts.OwnerPassword != "" {
		args = append(args, "-opw", opts.OwnerPassword)
	}

	if opts.RawDates {
		args = append(args, "-rawdates")
	}

	return append(args, sourcePath)
}

// buildRenderArgs constructs the pdftoppm argument list for a single page:
// resolution, passwords, format and compression, grayscale, anti-aliasing,
// the one-page range, then the source path and output prefix.
func buildRenderArgs(
	opts ConvertOptions,
	formatFlag string,
	page int,
	sourcePath string,
	outputPrefix string,
) []string {
	args := []string{"-r", strconv.Itoa(opts.DPI)}

	if opts.UserPassword != "" {
		args = append(args, "-upw", opts.UserPassword)
	}

	if opts.OwnerPassword != "" {
		args = append(args, "-opw", opts.OwnerPassword)
	}

	if formatFlag != "" {
		args = append(args, formatFlag)
	}

	if opts.Format == FormatTIFF {
		args = append(
			args,
			"-tiffcompression",
			string(resolveTIFFCompression(opts.TIFFCompression)),
		)
	}

	if opts.Grayscale {
		args = append(args, "-gray")
	}

	pageNumber := strconv.Itoa(page)
	args = append(
		args,
		"-aa", "yes",
		"-aaVector", "yes",
		"-singlefile",
		"-f", pageNumber,
		"-l", pageNumber,
	)

	return append(args, sourcePath, outputPrefix)
}

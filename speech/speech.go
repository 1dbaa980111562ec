// Package speech implements parley.SpeechRecognizer by running an external
// speech-to-text command.
//
// The command is expected to capture audio, print each final transcript on
// its own line of stdout and exit. Interim hypotheses may be written on the
// same line separated by carriage returns; only the last one is kept.
package speech

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	osexec "os/exec"
	"strings"
	"syscall"
	"time"

	"github.com/fwojciec/parley"
)

// LocalePlaceholder in any argument is replaced with the requested locale.
const LocalePlaceholder = "{locale}"

// LocaleEnv is set in the command's environment to the requested locale.
const LocaleEnv = "PARLEY_SPEECH_LOCALE"

// Diagnostic codes reported in parley.SpeechError.
const (
	CodeNoSpeech     = "no-speech"
	CodeAborted      = "aborted"
	CodeAudioCapture = "audio-capture"
)

// waitDelay bounds how long Wait blocks on inherited pipes after a kill.
const waitDelay = 2 * time.Second

// Interface compliance check.
var _ parley.SpeechRecognizer = (*CommandRecognizer)(nil)

// CommandRecognizer runs argv for every recognition.
type CommandRecognizer struct {
	argv     []string
	lookPath func(string) (string, error)
}

// NewCommandRecognizer creates a recognizer for argv. An empty argv yields a
// recognizer that is never available.
func NewCommandRecognizer(argv []string) *CommandRecognizer {
	return &CommandRecognizer{
		argv:     append([]string(nil), argv...),
		lookPath: osexec.LookPath,
	}
}

// Available reports whether a command is configured and can be found.
func (r *CommandRecognizer) Available() bool {
	if len(r.argv) == 0 || r.argv[0] == "" {
		return false
	}
	_, err := r.lookPath(r.argv[0])
	return err == nil
}

// Recognize runs the command and returns the first non-empty transcript
// line, or with opts.Continuous every line joined by spaces. The process
// group is killed as soon as a single-shot result is read.
func (r *CommandRecognizer) Recognize(ctx context.Context, opts parley.RecognizeOptions) (string, error) {
	if !r.Available() {
		return "", parley.ErrUnsupported
	}

	argv := expand(r.argv, opts.Locale)
	cmd := osexec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Env = append(os.Environ(), LocaleEnv+"="+opts.Locale)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
	cmd.WaitDelay = waitDelay

	stderr := newTailWriter(stderrLimit)
	cmd.Stderr = stderr
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return "", fmt.Errorf("speech: stdout pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return "", &parley.SpeechError{Code: CodeAudioCapture}
	}

	var results []string
	sc := bufio.NewScanner(stdout)
	for sc.Scan() {
		line := Transcript(sc.Text())
		if line == "" {
			continue
		}
		results = append(results, line)
		if !opts.Continuous {
			break
		}
	}

	killed := false
	if len(results) > 0 && !opts.Continuous {
		_ = syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
		killed = true
	}
	waitErr := cmd.Wait()

	if ctx.Err() != nil {
		return "", &parley.SpeechError{Code: CodeAborted}
	}
	if len(results) > 0 {
		return strings.Join(results, " "), nil
	}
	if waitErr != nil && !killed {
		return "", &parley.SpeechError{Code: failureCode(waitErr, stderr.String())}
	}
	return "", &parley.SpeechError{Code: CodeNoSpeech}
}

func expand(argv []string, locale string) []string {
	out := make([]string, len(argv))
	for i, a := range argv {
		out[i] = strings.ReplaceAll(a, LocalePlaceholder, locale)
	}
	return out
}

// failureCode derives a diagnostic code from a failed run: the first word
// the command wrote to stderr, or the exit status.
func failureCode(waitErr error, stderr string) string {
	if fields := strings.Fields(Sanitize(stderr)); len(fields) > 0 {
		return strings.TrimRight(fields[0], ":")
	}
	var exitErr *osexec.ExitError
	if errors.As(waitErr, &exitErr) {
		return fmt.Sprintf("exit-status-%d", exitErr.ExitCode())
	}
	return CodeAudioCapture
}

// Package speech speaks prompt words aloud through an external TTS command.
package speech

import (
	"context"
	"os/exec"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Speaker delivers a spoken prompt. Speak must return immediately.
type Speaker interface {
	Speak(word string)
}

// Nop discards every prompt.
type Nop struct{}

func (Nop) Speak(string) {}

// Command runs a text-to-speech program for each word. A new word cancels
// the utterance still playing.
type Command struct {
	name string
	args []string
	log  *zap.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
	run    func(ctx context.Context, name string, args ...string) error
}

// NewCommand parses a command line such as "espeak -s 120". The word is
// appended as the last argument. An empty line yields a Nop speaker.
func NewCommand(line string, log *zap.Logger) Speaker {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Nop{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Command{name: fields[0], args: fields[1:], log: log, run: runCommand}
}

func runCommand(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

// Speak starts the command in the background.
func (c *Command) Speak(word string) {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.wg.Add(1)
	c.mu.Unlock()

	args := append(append([]string(nil), c.args...), word)
	go func() {
		defer c.wg.Done()
		defer cancel()
		if err := c.run(ctx, c.name, args...); err != nil && ctx.Err() == nil {
			c.log.Warn("speech command failed", zap.String("command", c.name), zap.Error(err))
		}
	}()
}

// Close cancels any utterance in progress and waits for it to stop.
func (c *Command) Close() error {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	c.mu.Unlock()
	c.wg.Wait()
	return nil
}

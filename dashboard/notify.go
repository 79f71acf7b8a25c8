package dashboard

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// LogNotifier reports outcomes through a zerolog logger
type LogNotifier struct {
	Logger zerolog.Logger
}

func (n LogNotifier) Success(title, message string) {
	n.Logger.Info().Str("title", title).Msg(message)
}

func (n LogNotifier) Error(title, message string) {
	n.Logger.Error().Str("title", title).Msg(message)
}

// PromptConfirmer asks a yes/no question on Out and reads the answer from In
type PromptConfirmer struct {
	In  io.Reader
	Out io.Writer
	// AssumeYes skips the prompt
	AssumeYes bool

	reader *bufio.Reader
}

func (c *PromptConfirmer) Confirm(prompt string) bool {
	if c.AssumeYes {
		return true
	}
	if c.reader == nil {
		c.reader = bufio.NewReader(c.In)
	}
	fmt.Fprintf(c.Out, "%s [y/N]: ", prompt)
	answer, err := c.reader.ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

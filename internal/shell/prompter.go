// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
)

// Prompter writes a prompt and returns the next line of input without its
// line terminator.
type Prompter interface {
	Prompt(prompt string) (string, error)
}

// PlainPrompter reads lines from any io.Reader. It is used when standard
// input is not a terminal and in tests.
type PlainPrompter struct {
	r *bufio.Reader
	w io.Writer
}

// NewPlainPrompter reads lines from r and writes prompts to w.
func NewPlainPrompter(r io.Reader, w io.Writer) *PlainPrompter {
	return &PlainPrompter{
		r: bufio.NewReader(r),
		w: w,
	}
}

// Prompt implements Prompter. A final line without a newline is returned
// first, and io.EOF on the call after it.
func (p *PlainPrompter) Prompt(prompt string) (string, error) {
	if _, err := fmt.Fprint(p.w, prompt); err != nil {
		return "", err
	}

	line, err := p.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// LinerPrompter provides line editing and history on a terminal.
type LinerPrompter struct {
	state       *liner.State
	historyFile string
}

// NewLinerPrompter puts the terminal under liner's control.
// If historyFile is not empty, history is loaded from it now and saved to it
// on Close. A missing history file is not an error.
func NewLinerPrompter(historyFile string) (*LinerPrompter, error) {
	state := liner.NewLiner()
	state.SetCtrlCAborts(false)

	p := &LinerPrompter{
		state:       state,
		historyFile: historyFile,
	}

	if historyFile == "" {
		return p, nil
	}

	f, err := os.Open(historyFile)
	if errors.Is(err, os.ErrNotExist) {
		return p, nil
	}

	if err != nil {
		_ = state.Close()
		return nil, errors.Join(ErrHistory, err)
	}
	defer f.Close() //nolint:errcheck

	if _, err := state.ReadHistory(f); err != nil {
		_ = state.Close()
		return nil, errors.Join(ErrHistory, err)
	}

	return p, nil
}

// Prompt implements Prompter. Non-blank lines are added to the history.
func (p *LinerPrompter) Prompt(prompt string) (string, error) {
	line, err := p.state.Prompt(prompt)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(line) != "" {
		p.state.AppendHistory(line)
	}

	return line, nil
}

// Close saves the history, if configured, and restores the terminal.
func (p *LinerPrompter) Close() error {
	var histErr error

	if p.historyFile != "" {
		histErr = p.writeHistory()
	}

	return errors.Join(histErr, p.state.Close())
}

func (p *LinerPrompter) writeHistory() error {
	f, err := os.Create(p.historyFile)
	if err != nil {
		return errors.Join(ErrHistory, err)
	}

	_, werr := p.state.WriteHistory(f)

	if err := errors.Join(werr, f.Close()); err != nil {
		return errors.Join(ErrHistory, err)
	}

	return nil
}

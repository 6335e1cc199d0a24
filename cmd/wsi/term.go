// Copyright 2026 The Whitespace Authors.
//
// The raw-tty flag manipulation in readRawTTY below is adapted from
// cmd/retro/term.go's setRawIO, Copyright 2016 Denis Bernard
// <db047h@gmail.com>, used here under the Apache License, Version 2.0.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//+build !windows

package main

import (
	"os"
	"syscall"

	"github.com/pkg/errors"
	"github.com/pkg/term/termios"
)

// readRawTTY switches stdin to raw mode, reads everything typed up to the
// next CTRL-D and returns what was read as the VM's input text, together
// with a function that restores the previous terminal settings. Stdin is
// still in raw mode when readRawTTY returns.
func readRawTTY() (string, func(), error) {
	var tios syscall.Termios
	if err := termios.Tcgetattr(0, &tios); err != nil {
		return "", nil, errors.Wrap(err, "Tcgetattr failed")
	}
	a := tios
	a.Iflag &^= syscall.IGNBRK | syscall.ISTRIP | syscall.IXON | syscall.IXOFF
	a.Iflag |= syscall.BRKINT | syscall.IGNPAR
	a.Lflag &^= syscall.ICANON | syscall.IEXTEN | syscall.ECHO
	a.Cc[syscall.VMIN] = 1
	a.Cc[syscall.VTIME] = 0
	if err := termios.Tcsetattr(0, termios.TCSANOW, &a); err != nil {
		termios.Tcsetattr(0, termios.TCSANOW, &tios)
		return "", nil, errors.Wrap(err, "Tcsetattr failed")
	}
	tearDown := func() { termios.Tcsetattr(0, termios.TCSANOW, &tios) }

	// In raw mode ICANON is off, so CTRL-D no longer triggers the line
	// discipline's EOF behavior; it arrives as an ordinary 0x04 byte and has
	// to be recognized here instead.
	buf := make([]byte, 0, 256)
	one := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(one)
		if n == 1 {
			if one[0] == 4 {
				break
			}
			buf = append(buf, one[0])
		}
		if err != nil {
			break
		}
	}
	return string(buf), tearDown, nil
}

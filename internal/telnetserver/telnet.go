// Package telnetserver serves the legacy transport: a raw byte stream
// speaking PETSCII, with embedded telnet negotiation bytes stripped
// before line extraction.
package telnetserver

import (
	"bytes"
	"strings"

	"github.com/azcoigreach/station-64/internal/petscii"
)

// Telnet protocol constants.
const (
	IAC byte = 255 // Interpret As Command
	SB  byte = 250 // Subnegotiation Begin
	SE  byte = 240 // Subnegotiation End
)

// framerState tracks the IAC filter across reads.
type framerState int

const (
	stateData    framerState = iota
	stateCommand             // saw IAC, next byte is the command
	stateSub                 // inside a subnegotiation, discarding
	stateSubIAC              // saw IAC inside a subnegotiation
)

// Framer turns a raw legacy byte stream into discrete decoded command
// lines. It removes IAC command pairs and whole subnegotiations (IAC SB
// ... IAC SE) before line extraction, and its state persists across
// Push calls so sequences split over multiple reads are still filtered.
type Framer struct {
	state framerState
	buf   []byte
}

// NewFramer creates a framer with an empty buffer.
func NewFramer() *Framer {
	return &Framer{state: stateData}
}

// Push filters one read's worth of bytes into the line buffer and
// returns every complete line now available, PETSCII-decoded and
// whitespace-trimmed. Lines terminate on CR or LF; when both are
// buffered the first CR wins.
func (f *Framer) Push(data []byte) []string {
	for _, b := range data {
		switch f.state {
		case stateData:
			if b == IAC {
				f.state = stateCommand
			} else {
				f.buf = append(f.buf, b)
			}
		case stateCommand:
			// The command byte itself is dropped; SB opens a
			// subnegotiation that is discarded through IAC SE.
			if b == SB {
				f.state = stateSub
			} else {
				f.state = stateData
			}
		case stateSub:
			if b == IAC {
				f.state = stateSubIAC
			}
		case stateSubIAC:
			switch b {
			case SE:
				f.state = stateData
			case IAC:
				// Still a candidate for IAC SE.
			default:
				f.state = stateSub
			}
		}
	}

	var lines []string
	for {
		end := bytes.IndexByte(f.buf, '\r')
		if end == -1 {
			end = bytes.IndexByte(f.buf, '\n')
		}
		if end == -1 {
			break
		}
		line := f.buf[:end]
		f.buf = f.buf[end+1:]
		lines = append(lines, strings.TrimSpace(petscii.Decode(line)))
	}
	return lines
}

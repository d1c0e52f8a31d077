package command

import (
	"errors"
	"io"
	"os"
	"runtime/debug"

	"golang.org/x/term"
)

func prompt(prompt string, mask bool) ([]byte, error) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		if _, err := os.Stderr.WriteString(prompt); err != nil {
			return nil, err
		}
	}
	if mask && term.IsTerminal(int(os.Stdin.Fd())) {
		b, err := term.ReadPassword(int(os.Stdin.Fd()))
		_, _ = os.Stderr.WriteString("\n")
		return b, err
	}
	return readLine(os.Stdin)
}

// readLine reads up to the first newline, dropping a trailing carriage return.
// EOF after some input ends the line.
func readLine(r io.Reader) ([]byte, error) {
	var buf [1]byte
	var ret []byte
	for {
		n, err := r.Read(buf[:])
		if n > 0 {
			switch buf[0] {
			case '\n':
				return trimCR(ret), nil
			case '\b':
				if len(ret) > 0 {
					ret = ret[:len(ret)-1]
				}
			default:
				ret = append(ret, buf[0])
			}
			continue
		}
		if err != nil {
			if errors.Is(err, io.EOF) && len(ret) > 0 {
				return trimCR(ret), nil
			}
			return ret, err
		}
	}
}

func trimCR(b []byte) []byte {
	if n := len(b); n > 0 && b[n-1] == '\r' {
		return b[:n-1]
	}
	return b
}

func version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown-dev"
	}
	ver := "unknown"
	dirty := false
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			ver = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	if dirty {
		ver += "-dev"
	}
	return ver
}

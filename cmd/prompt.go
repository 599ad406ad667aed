package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

var errEmptyPath = errors.New("no directory path given")

// promptDirectory reads one line from in and returns it without the line ending.
// Surrounding spaces are kept as part of the path. The prompt text
// is only written to out when in is a terminal.
func promptDirectory(in io.Reader, out io.Writer) (string, error) {
	if isTerminal(in) {
		fmt.Fprint(out, "Enter directory path: ")
	}

	reader := bufio.NewReader(in)
	response, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && response != "") {
		if errors.Is(err, io.EOF) {
			return "", errEmptyPath
		}
		return "", err
	}

	response = strings.TrimRight(response, "\r\n")
	if response == "" {
		return "", errEmptyPath
	}
	return response, nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

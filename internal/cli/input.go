package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// maxTokenSize bounds a single word; longer tokens are reported as errors.
const maxTokenSize = 1 << 20

// readWords splits r into whitespace-delimited tokens, in input order.
func readWords(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxTokenSize)
	sc.Split(bufio.ScanWords)

	var words []string
	for sc.Scan() {
		words = append(words, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read words: %w", err)
	}
	return words, nil
}

// readInputs reads words from each named file in order, or from stdin when
// no file is given. The name "-" also means stdin.
func readInputs(paths []string, stdin io.Reader) ([]string, error) {
	if len(paths) == 0 {
		return readWords(stdin)
	}

	var words []string
	for _, p := range paths {
		ws, err := readPath(p, stdin)
		if err != nil {
			return nil, err
		}
		words = append(words, ws...)
	}
	return words, nil
}

func readPath(path string, stdin io.Reader) ([]string, error) {
	if path == "-" {
		return readWords(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	ws, err := readWords(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ws, nil
}

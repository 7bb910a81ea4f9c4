package maze

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadMap reads text rows from r, one per line. Carriage returns are
// stripped so maps written on Windows parse the same as Unix ones. A
// trailing newline does not produce an extra empty row.
//
// ReadMap does not validate the rows - pass them to ParseGrid for that.
func ReadMap(r io.Reader) ([]string, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		rows = append(rows, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read map: %w", err)
	}
	return rows, nil
}

// LoadMap reads map rows from the file at path.
// This is a convenience wrapper around ReadMap for file-based input.
func LoadMap(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadMap(f)
}

// Package content loads the tips and relaxation exercises the bot serves and
// picks them at random without repeating the previous item for a user.
package content

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// Library holds the servable texts.
type Library struct {
	Tips      []string
	Exercises []string
}

// LoadLibrary reads tips and exercises from their files. A missing file
// yields an empty list.
func LoadLibrary(tipsPath, exercisesPath string) (*Library, error) {
	tips, err := LoadLines(tipsPath)
	if err != nil {
		return nil, fmt.Errorf("load tips: %w", err)
	}
	exercises, err := LoadLines(exercisesPath)
	if err != nil {
		return nil, fmt.Errorf("load exercises: %w", err)
	}
	return &Library{Tips: tips, Exercises: exercises}, nil
}

// LoadLines returns the non-blank, trimmed lines of a file.
func LoadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, err
	}
	defer f.Close()

	lines := []string{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

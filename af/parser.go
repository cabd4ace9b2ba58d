package af

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Parse reads an argumentation framework in the ICCMA ".af" text
// format from r.
//
// The format is line oriented: lines starting with '#' are comments,
// blank lines are ignored, exactly one header "p af <N>" declares the
// argument count, and every other line "<i> <j>" declares an attack
// i → j. Attack lines naming unknown arguments, and otherwise
// malformed attack lines, are skipped with a warning; a missing or
// unparseable header is fatal (ErrParse).
//
// The returned warnings preserve input order; the caller decides how
// to surface them.
func Parse(r io.Reader) (*AF, []string, error) {
	var (
		warnings []string
		attacks  []Attack
		n        int
		seen     bool
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "p ") {
			fields := strings.Fields(line)
			if len(fields) != 3 || fields[1] != "af" {
				return nil, warnings, fmt.Errorf("%w: bad header %q (line %d)", ErrParse, line, lineNo)
			}
			count, err := strconv.Atoi(fields[2])
			if err != nil || count < 1 {
				return nil, warnings, fmt.Errorf("%w: bad argument count %q (line %d)", ErrParse, fields[2], lineNo)
			}
			if seen {
				return nil, warnings, fmt.Errorf("%w: duplicate header (line %d)", ErrParse, lineNo)
			}
			n, seen = count, true

			continue
		}
		if !seen {
			return nil, warnings, fmt.Errorf("%w: attack before header (line %d)", ErrParse, lineNo)
		}

		from, to, ok := parseAttackLine(line)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("skipping malformed attack line %d: %q", lineNo, line))

			continue
		}
		if from < 1 || from > Argument(n) || to < 1 || to > Argument(n) {
			warnings = append(warnings, fmt.Sprintf("skipping attack %d -> %d with unknown argument (line %d)", from, to, lineNo))

			continue
		}
		attacks = append(attacks, Attack{From: from, To: to})
	}
	if err := sc.Err(); err != nil {
		return nil, warnings, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if !seen {
		return nil, warnings, fmt.Errorf("%w: missing \"p af\" header", ErrParse)
	}

	f, err := New(n, attacks)
	if err != nil {
		return nil, warnings, err
	}

	return f, warnings, nil
}

// ParseFile opens path and delegates to Parse.
func ParseFile(path string) (*AF, []string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	return Parse(file)
}

// parseAttackLine splits "<i> <j>" into its endpoints.
func parseAttackLine(line string) (from, to Argument, ok bool) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, false
	}
	i, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, false
	}
	j, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, false
	}

	return Argument(i), Argument(j), true
}

package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// filled tracks which keywords have already received a value, from
// whichever source (command line or config file) reached them first;
// later sources leave an already-filled keyword untouched, matching
// treat_keyword's "first writer wins" rule in the original program
// (command-line --KEYWORD=value always wins over the config file,
// since the CLI is parsed first).
type filled map[string]bool

// treatKeyword parses one "NAME = VALUE" line (already stripped of
// comments and leading/trailing space) and applies it to p if NAME
// names a known keyword and hasn't already been filled. The boolean
// result is false when the line has no '=' or NAME is not a known
// keyword (the error is then nil); a recognized keyword whose value
// does not parse or is out of range yields ErrKeywordOutOfRange.
func treatKeyword(line string, p *Params, f filled) (bool, error) {
	name, value, ok := splitKeywordLine(line)
	if !ok {
		return false, nil
	}

	if k, ok := findIntKeyword(name); ok {
		v, err := strconv.Atoi(value)
		if err != nil || v < 0 || v > k.max {
			return true, fmt.Errorf("%w: %s", ErrKeywordOutOfRange, line)
		}
		if !f[name] {
			f[name] = true
			k.set(p, v)
		}
		return true, nil
	}
	if k, ok := findFloatKeyword(name); ok {
		v, err := strconv.ParseFloat(value, 64)
		if err != nil || v < minFloatKeyword || v > maxFloatKeyword {
			return true, fmt.Errorf("%w: %s", ErrKeywordOutOfRange, line)
		}
		if !f[name] {
			f[name] = true
			k.set(p, v)
		}
		return true, nil
	}
	return false, nil
}

// splitKeywordLine splits "NAME = VALUE" (arbitrary space around '=')
// into its two trimmed parts. It does not itself validate NAME or
// VALUE; that's treatKeyword's job once it knows which table to try.
func splitKeywordLine(line string) (name, value string, ok bool) {
	i := strings.IndexByte(line, '=')
	if i < 0 {
		return "", "", false
	}
	name = strings.TrimSpace(line[:i])
	value = strings.TrimSpace(line[i+1:])
	if name == "" || value == "" {
		return "", "", false
	}
	return name, value, true
}

// ReadConfigFile applies every "KEYWORD = VALUE" line of the file at
// path to p, honoring f's first-writer-wins rule, and ignoring blank
// lines and anything from a '#' to end of line, per spec §6.
func ReadConfigFile(path string, p *Params, f filled) error {
	file, err := os.Open(path)
	if err != nil {
		return &InputError{Err: ErrConfigFileOpen, Detail: path}
	}
	defer file.Close()

	sc := bufio.NewScanner(file)
	for sc.Scan() {
		line := stripComment(sc.Text())
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		found, err := treatKeyword(line, p, f)
		if err != nil {
			return &InputError{Err: err, Detail: path}
		}
		if !found {
			return &InputError{Err: ErrUnknownKeyword, Detail: fmt.Sprintf("%s: %q", path, line)}
		}
	}
	return sc.Err()
}

func stripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		return line[:i]
	}
	return line
}

// DumpDefaultConfig renders every known keyword at its Defaults value as
// a "NAME = VALUE" config file, the text `--dump` prints to stdout
// (spec §6). The keyword ordering follows the declaration order of
// intKeywords then floatKeywords, the same order treat_keyword's table
// walk uses in the original program.
func DumpDefaultConfig() string {
	d := Defaults()
	var b strings.Builder
	b.WriteString("# innerdd default configuration\n")
	for _, k := range intKeywords {
		fmt.Fprintf(&b, "%s = %d\n", k.name, k.get(&d))
	}
	for _, k := range floatKeywords {
		fmt.Fprintf(&b, "%s = %g\n", k.name, k.get(&d))
	}
	return b.String()
}

package theme

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	powerlineerrors "github.com/alexisbeaulieu97/powerline/pkg/errors"
)

// LoadOverrides applies name=value lines on top of Defaults. Blank lines and
// lines starting with '#' are skipped. Any malformed line fails the whole
// load with a *errors.CorruptError and the defaults are returned untouched.
func LoadOverrides(lines []string) (Theme, error) {
	return Apply(Defaults(), lines)
}

// Apply is LoadOverrides against an arbitrary base theme. The base value is
// copied, so a failed load never leaks a partially applied theme.
func Apply(base Theme, lines []string) (Theme, error) {
	next := base
	for i, line := range lines {
		if err := assign(&next, line); err != nil {
			var corrupt *powerlineerrors.CorruptError
			if errors.As(err, &corrupt) {
				corrupt.Line = i + 1
			}
			return base, err
		}
	}
	return next, nil
}

// Read loads overrides from r.
func Read(r io.Reader) (Theme, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return Defaults(), fmt.Errorf("read theme: %w", err)
	}
	return LoadOverrides(lines)
}

// Load reads an override file from disk. I/O failures are returned as plain
// wrapped errors; schema violations as *errors.CorruptError carrying path.
func Load(path string) (Theme, error) {
	file, err := os.Open(path)
	if err != nil {
		return Defaults(), fmt.Errorf("open theme: %w", err)
	}
	defer file.Close()

	t, err := Read(file)
	var corrupt *powerlineerrors.CorruptError
	if errors.As(err, &corrupt) {
		corrupt.Path = path
	}
	return t, err
}

func assign(t *Theme, line string) error {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil
	}

	name, value, found := strings.Cut(line, "=")
	if !found {
		return powerlineerrors.NewCorruptError(0, "", "expected name=value", nil)
	}
	name = strings.TrimSpace(name)
	value = strings.TrimSpace(value)
	if name == "" || value == "" {
		return powerlineerrors.NewCorruptError(0, name, "empty name or value", nil)
	}

	if strings.HasSuffix(name, "char") {
		field, ok := glyphFields[name]
		if !ok {
			return powerlineerrors.NewCorruptError(0, name, "unknown glyph field", nil)
		}
		glyph, err := parseGlyph(value)
		if err != nil {
			return powerlineerrors.NewCorruptError(0, name, err.Error(), err)
		}
		*field(t) = glyph
		return nil
	}

	field, ok := colorFields[name]
	if !ok {
		return powerlineerrors.NewCorruptError(0, name, "unknown color field", nil)
	}
	color, err := strconv.ParseUint(value, 10, 8)
	if err != nil {
		return powerlineerrors.NewCorruptError(0, name, fmt.Sprintf("invalid color %q", value), err)
	}
	*field(t) = uint8(color)
	return nil
}

// parseGlyph accepts a single literal character or a hexadecimal code point.
func parseGlyph(value string) (rune, error) {
	if utf8.RuneCountInString(value) == 1 {
		r, size := utf8.DecodeRuneInString(value)
		if r == utf8.RuneError && size <= 1 {
			return 0, fmt.Errorf("invalid UTF-8 glyph %q", value)
		}
		return r, nil
	}

	codepoint, err := strconv.ParseUint(value, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid code point %q", value)
	}
	r := rune(codepoint)
	if !utf8.ValidRune(r) {
		return 0, fmt.Errorf("code point %q is not a valid character", value)
	}
	return r, nil
}

// Dump writes t in override-file syntax. Colors are decimal and glyphs are
// hexadecimal code points, so Read(Dump(t)) reproduces t.
func Dump(w io.Writer, t Theme) error {
	if _, err := fmt.Fprintln(w, "# colors (0-255)"); err != nil {
		return err
	}
	for _, name := range ColorNames() {
		color, _ := t.Color(name)
		if _, err := fmt.Fprintf(w, "%s=%d\n", name, color); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "\n# glyphs (literal character or hex code point)"); err != nil {
		return err
	}
	for _, name := range GlyphNames() {
		glyph, _ := t.Glyph(name)
		if _, err := fmt.Fprintf(w, "%s=%04x\n", name, glyph); err != nil {
			return err
		}
	}
	return nil
}

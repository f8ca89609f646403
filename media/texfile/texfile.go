// Package texfile reads and writes the line-based ".texture" sidecar
// document that describes an atlas page: image file, page size, pixel
// format and one subtex line per placed sprite.
package texfile

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"github.com/genietools/age_media_browser/media/texture"
)

const FormatVersion = 1

type Subtexture struct {
	XPos    int
	YPos    int
	XSize   int
	YSize   int
	XAnchor int
	YAnchor int
}

type TextureInfo struct {
	Version     int
	ImageFile   string
	Width       int
	Height      int
	PixelFormat string
	CBits       bool
	Subtextures []Subtexture
}

// SubInfo bridges one subtex record into the renderer-facing view with
// coordinates normalized against this page's dimensions.
func (ti *TextureInfo) SubInfo(i int) texture.SubtextureInfo {
	st := ti.Subtextures[i]
	meta := texture.SubtextureMeta{
		X:  int32(st.XPos),
		Y:  int32(st.YPos),
		W:  int32(st.XSize),
		H:  int32(st.YSize),
		CX: int32(st.XAnchor),
		CY: int32(st.YAnchor),
	}
	return texture.NewSubtextureInfo(meta, uint32(ti.Width), uint32(ti.Height))
}

// FromTexture builds the document for a packed texture. Panics if the
// texture has no cache params attached yet, same contract as Metadata.
func FromTexture(t *texture.Texture, imageFile string, atlasWidth, atlasHeight int) *TextureInfo {
	ti := &TextureInfo{
		Version:     FormatVersion,
		ImageFile:   imageFile,
		Width:       atlasWidth,
		Height:      atlasHeight,
		PixelFormat: "rgba8",
		CBits:       false,
	}
	for _, meta := range t.Metadata() {
		ti.Subtextures = append(ti.Subtextures, Subtexture{
			XPos:    int(meta.X),
			YPos:    int(meta.Y),
			XSize:   int(meta.W),
			YSize:   int(meta.H),
			XAnchor: int(meta.CX),
			YAnchor: int(meta.CY),
		})
	}
	return ti
}

const (
	TOKEN_IDENT = iota
	TOKEN_NUMBER
	TOKEN_STRING
	TOKEN_EQUALS
	TOKEN_NEWLINE
	TOKEN_COMMENT
)

var lexer *lexmachine.Lexer

func init() {
	lexer = lexmachine.NewLexer()
	lexer.Add([]byte(`[a-zA-Z_][a-zA-Z0-9_]*`), getToken(TOKEN_IDENT))
	lexer.Add([]byte(`[\+\-]?[0-9]+`), getToken(TOKEN_NUMBER))
	lexer.Add([]byte(`"(\\.|[^"])*"`), getToken(TOKEN_STRING))
	lexer.Add([]byte(`=`), getToken(TOKEN_EQUALS))
	lexer.Add([]byte(`(\n|\r|\n\r)+`), getToken(TOKEN_NEWLINE))
	lexer.Add([]byte(`#[^\n]*`), getToken(TOKEN_COMMENT))
	lexer.Add([]byte(`[ \t]+`), skip)
}

func getToken(tokenType int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(tokenType, string(m.Bytes), m), nil
	}
}

func skip(scan *lexmachine.Scanner, match *machines.Match) (interface{}, error) {
	return nil, nil
}

type line struct {
	keyword string
	tokens  []*lexmachine.Token
	number  int
}

func splitLines(text []byte) ([]line, error) {
	scanner, err := lexer.Scanner(text)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to create lexer scanner")
	}

	lines := make([]line, 0, 16)
	var current *line

	for Itok, err, eos := scanner.Next(); !eos; Itok, err, eos = scanner.Next() {
		if err != nil {
			return nil, errors.Wrapf(err, "Failed to parse token")
		}
		tok := Itok.(*lexmachine.Token)

		switch tok.Type {
		case TOKEN_NEWLINE:
			current = nil
		case TOKEN_COMMENT:
			// dropped
		default:
			if current == nil {
				if tok.Type != TOKEN_IDENT {
					return nil, errors.Errorf("Line %d must start with a keyword, got %q", tok.StartLine, tok.Lexeme)
				}
				lines = append(lines, line{keyword: string(tok.Lexeme), number: tok.StartLine})
				current = &lines[len(lines)-1]
			} else {
				current.tokens = append(current.tokens, tok)
			}
		}
	}

	return lines, nil
}

func (l *line) ints(count int) ([]int, error) {
	if len(l.tokens) != count {
		return nil, errors.Errorf("Keyword %q on line %d wants %d arguments, got %d", l.keyword, l.number, count, len(l.tokens))
	}
	out := make([]int, count)
	for i, tok := range l.tokens {
		if tok.Type != TOKEN_NUMBER {
			return nil, errors.Errorf("Argument %q on line %d is not a number", tok.Lexeme, l.number)
		}
		v, err := strconv.Atoi(string(tok.Lexeme))
		if err != nil {
			return nil, errors.Wrapf(err, "Bad number on line %d", l.number)
		}
		out[i] = v
	}
	return out, nil
}

// Parse reads one .texture document.
func Parse(text []byte) (*TextureInfo, error) {
	lines, err := splitLines(text)
	if err != nil {
		return nil, err
	}

	ti := &TextureInfo{}
	for i := range lines {
		l := &lines[i]
		switch l.keyword {
		case "version":
			args, err := l.ints(1)
			if err != nil {
				return nil, err
			}
			if args[0] != FormatVersion {
				return nil, errors.Errorf("Unsupported texture format version %d", args[0])
			}
			ti.Version = args[0]
		case "imagefile":
			if len(l.tokens) != 1 || l.tokens[0].Type != TOKEN_STRING {
				return nil, errors.Errorf("imagefile on line %d wants one quoted path", l.number)
			}
			path, err := strconv.Unquote(string(l.tokens[0].Lexeme))
			if err != nil {
				return nil, errors.Wrapf(err, "Bad imagefile path on line %d", l.number)
			}
			ti.ImageFile = path
		case "size":
			args, err := l.ints(2)
			if err != nil {
				return nil, err
			}
			ti.Width, ti.Height = args[0], args[1]
		case "pxformat":
			if err := parsePxFormat(ti, l); err != nil {
				return nil, err
			}
		case "subtex":
			args, err := l.ints(6)
			if err != nil {
				return nil, err
			}
			ti.Subtextures = append(ti.Subtextures, Subtexture{
				XPos:    args[0],
				YPos:    args[1],
				XSize:   args[2],
				YSize:   args[3],
				XAnchor: args[4],
				YAnchor: args[5],
			})
		default:
			return nil, errors.Errorf("Unknown keyword %q on line %d", l.keyword, l.number)
		}
	}

	if ti.Version == 0 {
		return nil, errors.New("Document has no version line")
	}

	return ti, nil
}

// pxformat rgba8 cbits=true
func parsePxFormat(ti *TextureInfo, l *line) error {
	if len(l.tokens) < 1 || l.tokens[0].Type != TOKEN_IDENT {
		return errors.Errorf("pxformat on line %d wants a format name", l.number)
	}
	ti.PixelFormat = string(l.tokens[0].Lexeme)

	rest := l.tokens[1:]
	for len(rest) > 0 {
		if len(rest) < 3 || rest[0].Type != TOKEN_IDENT ||
			rest[1].Type != TOKEN_EQUALS || rest[2].Type != TOKEN_IDENT {
			return errors.Errorf("Bad pxformat attribute on line %d", l.number)
		}
		key := string(rest[0].Lexeme)
		value := string(rest[2].Lexeme)
		switch key {
		case "cbits":
			ti.CBits = value == "true"
		default:
			return errors.Errorf("Unknown pxformat attribute %q on line %d", key, l.number)
		}
		rest = rest[3:]
	}
	return nil
}

// Write emits the document in the same shape Parse accepts.
func (ti *TextureInfo) Write(w io.Writer) error {
	var err error
	write := func(format string, a ...interface{}) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, a...)
		}
	}

	write("version %d\n", ti.Version)
	write("imagefile %q\n", ti.ImageFile)
	write("size %d %d\n", ti.Width, ti.Height)
	write("pxformat %s cbits=%t\n", ti.PixelFormat, ti.CBits)
	for _, st := range ti.Subtextures {
		write("subtex %d %d %d %d %d %d\n",
			st.XPos, st.YPos, st.XSize, st.YSize, st.XAnchor, st.YAnchor)
	}

	return errors.Wrapf(err, "Failed to write texture document")
}

// gcodegen is a tool to generate the gencode translation tables in go
// format from the NCBI genetic codes file in asn1 format.
//
// More information is available here:
// - https://www.ncbi.nlm.nih.gov/Taxonomy/Utils/wprintgc.cgi
// - ftp://ftp.ncbi.nih.gov/entrez/misc/data/gc.prt
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
)

// table is one genetic code entry of the asn1 file.
type table struct {
	id        int
	name      string
	shortName string
	ncbieaa   string
	sncbieaa  string
}

func isNameByte(b byte) bool {
	r := rune(b)
	return r == '-' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// scanToken is a bufio split function for the asn1 subset used by the
// genetic codes file: '--' comments, quoted strings, names, numbers,
// braces, commas and the '::=' assignment.
func scanToken(data []byte, atEOF bool) (int, []byte, error) {
	i := 0
	for ; i < len(data); i++ {
		if !unicode.IsSpace(rune(data[i])) {
			break
		}
	}
	data = data[i:]
	advance := i

	if len(data) == 0 {
		return 0, nil, nil
	}

	switch data[0] {
	case '-':
		if len(data) < 2 {
			if atEOF {
				return 0, nil, errors.New("unexpected end of file")
			}
			return advance, nil, nil
		}
		if data[1] != '-' {
			return 0, nil, errors.New("unexpected character after '-'")
		}
		a, t, e := bufio.ScanLines(data, atEOF)
		return a + advance, t, e
	case ':':
		if len(data) < 3 {
			if atEOF {
				return 0, nil, errors.New("unexpected end of file")
			}
			return advance, nil, nil
		}
		if data[1] == ':' && data[2] == '=' {
			return advance + 3, data[:3], nil
		}
		return 0, nil, errors.New("unexpected character after ':'")
	case '"':
		for j := 1; j < len(data); j++ {
			if data[j] == '"' {
				return advance + j + 1, data[:j+1], nil
			}
		}
		if atEOF {
			return 0, nil, errors.New("unfinished string literal")
		}
		return advance, nil, nil
	case '{', '}', ',':
		return advance + 1, data[:1], nil
	}
	if !isNameByte(data[0]) {
		return 0, nil, fmt.Errorf("unknown token starting with %q", data[0])
	}
	j := 1
	for ; j < len(data); j++ {
		if !isNameByte(data[j]) {
			break
		}
	}
	if j == len(data) && !atEOF {
		return advance, nil, nil
	}
	return advance + j, data[:j], nil
}

// parser yields asn1 tokens skipping comments.
type parser struct {
	s *bufio.Scanner
}

func (p *parser) next() (string, error) {
	for p.s.Scan() {
		t := p.s.Text()
		if strings.HasPrefix(t, "--") {
			continue
		}
		return t, nil
	}
	if err := p.s.Err(); err != nil {
		return "", err
	}
	return "", io.ErrUnexpectedEOF
}

func (p *parser) expect(want string) error {
	t, err := p.next()
	if err != nil {
		return err
	}
	if t != want {
		return fmt.Errorf("expecting %q, got %q", want, t)
	}
	return nil
}

func unquote(s string) (string, error) {
	if !strings.HasPrefix(s, "\"") || !strings.HasSuffix(s, "\"") {
		return "", fmt.Errorf("expecting a quoted string, got %q", s)
	}
	return strings.Trim(s, "\""), nil
}

// parseTable reads the fields of one genetic code element; the opening
// brace is already consumed. The first name field is the full name, an
// optional second one is the short name.
func (p *parser) parseTable() (*table, error) {
	t := &table{}
	for {
		field, err := p.next()
		if err != nil {
			return nil, err
		}
		val, err := p.next()
		if err != nil {
			return nil, err
		}
		switch field {
		case "name":
			s, err := unquote(val)
			if err != nil {
				return nil, err
			}
			// long names wrap in the source file
			s = strings.ReplaceAll(s, "\n", "")
			if t.name == "" {
				t.name = s
			} else {
				t.shortName = s
			}
		case "id":
			t.id, err = strconv.Atoi(val)
			if err != nil {
				return nil, err
			}
		case "ncbieaa":
			t.ncbieaa, err = unquote(val)
			if err != nil {
				return nil, err
			}
		case "sncbieaa":
			t.sncbieaa, err = unquote(val)
			if err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("unknown field %q", field)
		}
		sep, err := p.next()
		if err != nil {
			return nil, err
		}
		switch sep {
		case ",":
		case "}":
			return t, nil
		default:
			return nil, fmt.Errorf("expecting ',' or '}', got %q", sep)
		}
	}
}

func parse(rd io.Reader) ([]*table, error) {
	s := bufio.NewScanner(rd)
	s.Split(scanToken)
	p := &parser{s: s}

	if err := p.expect("Genetic-code-table"); err != nil {
		return nil, err
	}
	if err := p.expect("::="); err != nil {
		return nil, err
	}
	if err := p.expect("{"); err != nil {
		return nil, err
	}

	var tables []*table
	for {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		switch tok {
		case "{":
			t, err := p.parseTable()
			if err != nil {
				return nil, err
			}
			tables = append(tables, t)
		case "}":
			return tables, nil
		default:
			return nil, fmt.Errorf("expecting '{' or '}', got %q", tok)
		}
		sep, err := p.next()
		if err != nil {
			return nil, err
		}
		if sep == "}" {
			return tables, nil
		}
		if sep != "," {
			return nil, fmt.Errorf("expecting ',' or '}', got %q", sep)
		}
	}
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("please specify a gc file in asn1 format")
		os.Exit(1)
	}
	f, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	tables, err := parse(f)
	f.Close()
	if err != nil {
		fmt.Println(err)
		os.Exit(3)
	}

	fmt.Println("package gencode")
	fmt.Println()
	fmt.Println("// GeneticCodes is a map holding the NCBI genetic codes.")
	fmt.Println("// This file was generated using the gcodegen program from the NCBI")
	fmt.Println("// genetic codes file (ftp://ftp.ncbi.nih.gov/entrez/misc/data/gc.prt).")
	fmt.Println("var GeneticCodes = map[int]*GeneticCode{")
	for _, t := range tables {
		fmt.Printf("\t%d: newGeneticCode(%d,\n\t\t%q,\n\t\t%q,\n\t\t%q,\n\t\t%q),\n",
			t.id, t.id, t.name, t.shortName, t.ncbieaa, t.sncbieaa)
	}
	fmt.Println("}")
}

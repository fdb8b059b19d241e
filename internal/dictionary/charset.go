package dictionary

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// declaredCharset returns the value of the SET directive in raw affix data,
// or "UTF-8" when there is none.
func declaredCharset(aff []byte) string {
	sc := bufio.NewScanner(bytes.NewReader(aff))
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) >= 2 && fields[0] == "SET" {
			return fields[1]
		}
	}
	return "UTF-8"
}

// toUTF8 transcodes data from the named Hunspell charset.
func toUTF8(data []byte, charset string) ([]byte, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	name := strings.ToLower(charset)
	name = strings.TrimPrefix(name, "microsoft-")
	if name == "utf-8" || name == "utf8" {
		return data, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unsupported charset %q: %w", charset, err)
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", charset, err)
	}
	return out, nil
}

package blame

import (
	"regexp"
	"strings"
	"time"
)

var (
	authorExpr    = regexp.MustCompile(`[a-zA-Z ]+`)
	timestampExpr = regexp.MustCompile(`(\d+)-(\d+)-(\d+)\s(\d+):(\d+):(\d+)`)
)

// Record is one attributed line of blame output.
type Record struct {
	Author    string
	Timestamp time.Time
	Content   string
}

// Parse converts one line of `git blame` output, in the form
//
//	<revision> (<author>  <timestamp>  <line>) <content>
//
// into a Record.
//
// Lines that cannot be decoded as 7-bit text, that have no header group, or that
// yield an empty author or content return ok == false and no error. A timestamp
// that matches the expected shape but is not a valid date returns a
// *TimestampError.
//
// Both patterns take their first match after the first '(' of the line, so
// content that itself looks like a blame header can be misattributed.
func Parse(raw []byte) (record Record, ok bool, err error) {
	line, ok := decode(raw)
	if !ok {
		return Record{}, false, nil
	}

	header, ok := locateHeader(line)
	if !ok {
		return Record{}, false, nil
	}

	author, ok := matchAuthor(header)
	if !ok {
		return Record{}, false, nil
	}

	tsStart, tsEnd, ok := matchTimestamp(header)
	if !ok {
		return Record{}, false, nil
	}

	content := sliceContent(header, tsEnd)

	if author == "" || content == "" {
		return Record{}, false, nil
	}

	ts, err := ParseTimestamp(header[tsStart:tsEnd])
	if err != nil {
		return Record{}, false, err
	}

	return Record{
		Author:    author,
		Timestamp: ts,
		Content:   content,
	}, true, nil
}

// decode accepts only 7-bit bytes.
func decode(raw []byte) (string, bool) {
	for _, b := range raw {
		if b >= 0x80 {
			return "", false
		}
	}

	return string(raw), true
}

// locateHeader returns the text after the first '('.
func locateHeader(line string) (string, bool) {
	i := strings.IndexByte(line, '(')
	if i < 0 {
		return "", false
	}

	return line[i+1:], true
}

func matchAuthor(header string) (string, bool) {
	loc := authorExpr.FindStringIndex(header)
	if loc == nil {
		return "", false
	}

	return strings.TrimSpace(header[loc[0]:loc[1]]), true
}

func matchTimestamp(header string) (int, int, bool) {
	loc := timestampExpr.FindStringIndex(header)
	if loc == nil {
		return 0, 0, false
	}

	return loc[0], loc[1], true
}

// sliceContent returns what follows the first ')' after the timestamp. Without a
// closing parenthesis the whole remainder is returned.
func sliceContent(header string, tsEnd int) string {
	rest := header[tsEnd:]
	return rest[strings.IndexByte(rest, ')')+1:]
}

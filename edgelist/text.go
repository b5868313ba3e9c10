package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvpath/core"
)

func decodeText(r io.Reader) ([]core.Edge, error) {
	var edges []core.Edge
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: line %d: want 3 fields (from to length), got %d", ErrMalformed, line, len(fields))
		}

		from, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: from: %v", ErrMalformed, line, err)
		}
		to, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: to: %v", ErrMalformed, line, err)
		}
		length, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: length: %v", ErrMalformed, line, err)
		}
		edges = append(edges, core.Edge{From: from, To: to, Length: length})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return edges, nil
}

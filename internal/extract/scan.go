package extract

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"game-translator/internal/chunk"
	"game-translator/internal/pattern"
)

// scanFile extracts all units from a single file: every line goes through
// the pattern matcher, every capture through the chunk splitter. Game data
// occasionally carries broken encodings, so invalid byte sequences are
// dropped instead of failing the file.
func scanFile(path string, matcher *pattern.Matcher, maxChunkSize int) ([]Unit, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	var units []Unit

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 4*1024*1024), 4*1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.ToValidUTF8(scanner.Text(), "")

		matches := matcher.MatchLine(line)
		if len(matches) == 0 {
			continue
		}
		context := strings.TrimSpace(line)

		for _, m := range matches {
			pieces := chunk.Split(m.Text, maxChunkSize)
			if len(pieces) == 1 {
				units = append(units, Unit{
					Text:         pieces[0],
					SourcePath:   path,
					LineNumber:   lineNum,
					Context:      context,
					OriginalText: m.Original,
				})
				continue
			}
			for i, piece := range pieces {
				units = append(units, Unit{
					Text:         piece,
					SourcePath:   fmt.Sprintf("%s_chunk_%d", path, i),
					LineNumber:   lineNum,
					Context:      context,
					OriginalText: m.Original,
				})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return units, nil
}

package core

import "strings"

// CountDiffFile reads unified diff text from a file ("-" means stdin) and
// counts its added and deleted lines.
func CountDiffFile(source string) (added, deleted int, err error) {
	text, err := readDiffInput(source)
	if err != nil {
		return 0, 0, err
	}
	added, deleted = CountDiff(text)
	return added, deleted, nil
}

// CountDiff counts added and deleted lines in unified diff text. A line is
// added iff it starts with "+" and is not the "+++" file header; symmetric
// for "-" and "---". Pure function, no I/O.
func CountDiff(diffText string) (added, deleted int) {
	for line := range strings.SplitSeq(diffText, "\n") {
		switch {
		case strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++"):
			added++
		case strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "---"):
			deleted++
		}
	}
	return added, deleted
}

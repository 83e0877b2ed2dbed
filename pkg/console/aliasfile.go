package console

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"
)

// LoadAliasFile parses an alias file and installs its entries. Lines have
// the form `alias <name> "<expansion>"`; blank lines and # comments are
// skipped. Existing aliases with the same name are replaced, so the file
// can be reloaded in place.
func (c *Console) LoadAliasFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening alias file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}

		fields, err := splitLine(line)
		if err != nil {
			log.Printf("aliasfile: %s:%d: %v", path, lineNo, err)
			continue
		}
		if len(fields) < 3 || strings.ToLower(fields[0]) != "alias" {
			log.Printf("aliasfile: %s:%d: expected 'alias <name> \"<expansion>\"'", path, lineNo)
			continue
		}
		c.DefineAlias(fields[1], strings.Join(fields[2:], " "))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading alias file: %w", err)
	}
	return nil
}

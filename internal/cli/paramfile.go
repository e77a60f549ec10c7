package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// trimLine drops trailing bytes <= 0x20 or >= 0x7F, the original's
// tlvstore_parse_config byte-range trim (not just ASCII whitespace).
func trimLine(line string) string {
	end := len(line)

	for end > 0 {
		b := line[end-1]
		if b <= 0x20 || b >= 0x7F {
			end--
			continue
		}

		break
	}

	return line[:end]
}

// readParamFile reads one key[=value] parameter per line from path,
// trimming each with trimLine and skipping lines left empty, mirroring
// tlvstore_parse_config.
func readParamFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cli: open param file %q: %w", path, err)
	}
	defer f.Close()

	var params []string

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := trimLine(scanner.Text())
		if line == "" {
			continue
		}

		params = append(params, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cli: read param file %q: %w", path, err)
	}

	return params, nil
}

// expandParams assembles the ordered parameter list tlvstore_parse_params
// builds: each positional argument is kept verbatim unless it begins with
// '@', in which case it names a param file whose lines are spliced in.
func expandParams(args []string) ([]string, error) {
	var out []string

	for _, arg := range args {
		if !strings.HasPrefix(arg, "@") {
			out = append(out, arg)
			continue
		}

		lines, err := readParamFile(arg[1:])
		if err != nil {
			return nil, err
		}

		out = append(out, lines...)
	}

	return out, nil
}

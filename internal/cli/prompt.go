package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// confirmFixes asks whether the pending fixes should be written. Only a
// literal "yes" (any case, surrounding space ignored) confirms; EOF or any
// other answer declines.
func confirmFixes(in io.Reader, out io.Writer, fixes, files int) bool {
	fmt.Fprintf(out, "Apply %d fix(es) to %d file(s)? Type \"yes\" to confirm: ", fixes, files)

	reader := bufio.NewReader(in)
	answer, _ := reader.ReadString('\n')
	answer = strings.TrimSpace(strings.ToLower(answer))

	return answer == "yes"
}

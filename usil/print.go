package usil

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Print writes the stable text listing of p to w.
//
// The listing starts with a comment header (stage, instruction count and
// one line per binding), then a blank line, then one instruction per line
// indented two spaces per open structured block.
func Print(w io.Writer, p *Program) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "; stage: %s\n", p.Stage)
	fmt.Fprintf(bw, "; instructions: %d\n", len(p.Instructions))
	for _, b := range p.Bindings {
		if b.Kind == BindingConstant {
			fmt.Fprintf(bw, "; binding: %s %s slot=%d offset=%d\n", b.Kind, b.Name, b.Slot, b.Offset)
		} else {
			fmt.Fprintf(bw, "; binding: %s %s slot=%d\n", b.Kind, b.Name, b.Slot)
		}
	}
	bw.WriteByte('\n')

	depth := 0
	for _, in := range p.Instructions {
		if in.Op.closesBlock() && depth > 0 {
			depth--
		}
		bw.WriteString(strings.Repeat("  ", depth))
		bw.WriteString(in.String())
		bw.WriteByte('\n')
		if in.Op.opensBlock() {
			depth++
		}
	}
	return bw.Flush()
}

// Format returns the listing of p as a string.
func Format(p *Program) string {
	var sb strings.Builder
	_ = Print(&sb, p)
	return sb.String()
}

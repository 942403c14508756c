package glsl

import (
	"strings"

	"github.com/gogpu/usc/usil"
)

// stageMacros are the macros engine-style combined sources test to select
// a stage section.
var stageMacros = map[string]usil.Stage{
	"VERTEX":   usil.StageVertex,
	"FRAGMENT": usil.StageFragment,
}

// cond is an open conditional block.
type cond struct {
	// stage is set for blocks that test a stage macro.
	stage bool
	// active is whether the current branch is kept.
	active bool
	// taken is whether any branch so far was kept.
	taken bool
}

// SelectStage returns the lines of source that belong to stage. Blocks
// guarded by a stage macro are kept only for their stage; other
// conditionals keep their first branch. Directive lines are blanked so
// line numbers in later diagnostics still match the input.
func SelectStage(source string, stage usil.Stage) string {
	lines := strings.Split(source, "\n")
	var stack []cond
	keep := func() bool {
		for _, c := range stack {
			if !c.active {
				return false
			}
		}
		return true
	}

	continued := false
	for i, line := range lines {
		if continued {
			continued = strings.HasSuffix(line, "\\")
			lines[i] = ""
			continue
		}
		directive, arg, ok := parseDirective(line)
		if !ok {
			if !keep() {
				lines[i] = ""
			}
			continue
		}
		lines[i] = ""
		continued = strings.HasSuffix(line, "\\")

		switch directive {
		case "ifdef", "ifndef", "if":
			c := cond{active: true, taken: true}
			if s, isStage := stageCondition(directive, arg); isStage {
				c = cond{stage: true, active: s == stage}
				if directive == "ifndef" {
					c.active = !c.active
				}
				c.taken = c.active
			}
			stack = append(stack, c)
		case "elif":
			if n := len(stack); n > 0 {
				top := &stack[n-1]
				if s, isStage := stageCondition("if", arg); top.stage && isStage {
					top.active = !top.taken && s == stage
				} else {
					top.active = false
				}
				top.taken = top.taken || top.active
			}
		case "else":
			if n := len(stack); n > 0 {
				top := &stack[n-1]
				top.active = !top.taken
				top.taken = true
			}
		case "endif":
			if n := len(stack); n > 0 {
				stack = stack[:n-1]
			}
		}
	}
	return strings.Join(lines, "\n")
}

// HasStageSections reports whether source is a combined source with
// stage sections.
func HasStageSections(source string) bool {
	for _, line := range strings.Split(source, "\n") {
		directive, arg, ok := parseDirective(line)
		if !ok {
			continue
		}
		if _, isStage := stageCondition(directive, arg); isStage {
			return true
		}
	}
	return false
}

func parseDirective(line string) (directive, arg string, ok bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "#") {
		return "", "", false
	}
	line = strings.TrimSpace(line[1:])
	directive, arg, _ = strings.Cut(line, " ")
	if i := strings.IndexByte(directive, '('); i >= 0 {
		// "#if(defined(X))" has no separating space.
		arg = directive[i:] + " " + arg
		directive = directive[:i]
	}
	return directive, strings.TrimSpace(arg), true
}

// stageCondition reports the stage a conditional selects, if it tests a
// single stage macro.
func stageCondition(directive, arg string) (usil.Stage, bool) {
	if i := strings.Index(arg, "//"); i >= 0 {
		arg = strings.TrimSpace(arg[:i])
	}
	switch directive {
	case "ifdef", "ifndef":
	case "if", "elif":
		arg = strings.TrimSpace(arg)
		for strings.HasPrefix(arg, "(") && strings.HasSuffix(arg, ")") {
			arg = strings.TrimSpace(arg[1 : len(arg)-1])
		}
		inner, found := strings.CutPrefix(arg, "defined")
		if !found {
			return 0, false
		}
		arg = strings.TrimSpace(inner)
		arg = strings.TrimSuffix(strings.TrimPrefix(arg, "("), ")")
		arg = strings.TrimSpace(arg)
	default:
		return 0, false
	}
	s, ok := stageMacros[arg]
	return s, ok
}

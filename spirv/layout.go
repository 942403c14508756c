package spirv

import "strings"

// Operand layout letters.
const (
	kindID      = 'i'
	kindLiteral = 'l'
	kindString  = 's'
)

// layout describes how an instruction's operand words decode: a fixed
// prefix followed by a group repeated until the words run out. Optional
// trailing operands fall out of the prefix when the words end early.
type layout struct {
	prefix string
	repeat string
}

// parseLayout reads "iil*" (repeat the last letter) and "ii(li)" (repeat the
// group) forms.
func parseLayout(s string) layout {
	if i := strings.IndexByte(s, '('); i >= 0 {
		return layout{prefix: s[:i], repeat: strings.TrimSuffix(s[i+1:], ")")}
	}
	if strings.HasSuffix(s, "*") {
		return layout{prefix: s[:len(s)-2], repeat: s[len(s)-2 : len(s)-1]}
	}
	return layout{prefix: s, repeat: string(kindLiteral)}
}

// defaultLayout decodes every word as an id.
var defaultLayout = layout{repeat: string(kindID)}

const (
	sampleLayout     = "iiiili*"
	sampleDrefLayout = "iiiiili*"
)

var layoutSpecs = map[OpCode]string{
	OpSourceContinued:      "s",
	OpSource:               "llis",
	OpSourceExtension:      "s",
	OpName:                 "is",
	OpMemberName:           "ils",
	OpString:               "is",
	OpLine:                 "ill",
	OpExtension:            "s",
	OpExtInstImport:        "is",
	OpExtInst:              "iiili*",
	OpMemoryModel:          "ll",
	OpEntryPoint:           "lisi*",
	OpExecutionMode:        "ill*",
	OpExecutionModeID:      "ili*",
	OpCapability:           "l",
	OpTypeInt:              "ill",
	OpTypeFloat:            "ill",
	OpTypeVector:           "iil",
	OpTypeMatrix:           "iil",
	OpTypeImage:            "iil*",
	OpTypePointer:          "ili",
	OpTypeOpaque:           "is",
	OpConstant:             "iil*",
	OpSpecConstant:         "iil*",
	OpConstantSampler:      "iilll",
	OpSpecConstantOp:       "iili*",
	OpFunction:             "iili",
	OpVariable:             "iili",
	OpLoad:                 "iiil*",
	OpStore:                "iil*",
	OpCopyMemory:           "iil*",
	OpArrayLength:          "iiil",
	OpDecorate:             "ill*",
	OpMemberDecorate:       "ill*",
	OpDecorateID:           "ili*",
	OpDecorateString:       "ils(s)",
	OpMemberDecorateString: "ills(s)",
	OpVectorShuffle:        "iiiil*",
	OpCompositeExtract:     "iiil*",
	OpCompositeInsert:      "iiiil*",

	OpImageSampleImplicitLod:         sampleLayout,
	OpImageSampleExplicitLod:         sampleLayout,
	OpImageSampleProjImplicitLod:     sampleLayout,
	OpImageSampleProjExplicitLod:     sampleLayout,
	OpImageSampleDrefImplicitLod:     sampleDrefLayout,
	OpImageSampleDrefExplicitLod:     sampleDrefLayout,
	OpImageSampleProjDrefImplicitLod: sampleDrefLayout,
	OpImageSampleProjDrefExplicitLod: sampleDrefLayout,
	OpImageFetch:                     sampleLayout,
	OpImageRead:                      sampleLayout,
	OpImageGather:                    sampleDrefLayout,
	OpImageDrefGather:                sampleDrefLayout,
	OpImageWrite:                     "iiili*",

	OpSelectionMerge:    "il",
	OpLoopMerge:         "iil*",
	OpBranchConditional: "iiil*",
	OpSwitch:            "ii(li)",
	OpModuleProcessed:   "s",
}

var layouts = func() map[OpCode]layout {
	m := make(map[OpCode]layout, len(layoutSpecs))
	for op, s := range layoutSpecs {
		m[op] = parseLayout(s)
	}
	return m
}()

func layoutFor(op OpCode) layout {
	if l, ok := layouts[op]; ok {
		return l
	}
	return defaultLayout
}
